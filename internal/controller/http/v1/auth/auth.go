package auth

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/auth"
	"presensi/backend/internal/repository/postgres/user"
)

type Controller struct {
	user User
	auth *auth.Auth
}

func NewController(user User, auth *auth.Auth) *Controller {
	return &Controller{user: user, auth: auth}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	if err := c.BindFunc(&data, "Email", "Password"); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, data.Email)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil {
		return c.RespondError(&web.Error{
			Err:    errors.New("user not found!"),
			Status: http.StatusUnauthorized,
		})
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("email atau password salah"), http.StatusUnauthorized))
	}

	nama := ""
	if detail.Nama != nil {
		nama = *detail.Nama
	}
	role := auth.RoleUser
	if detail.Role != nil {
		role = *detail.Role
	}

	accessToken, refreshToken, err := uc.auth.GenTokens(detail.ID, nama, role)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
	}, http.StatusOK)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data user.RefreshTokenRequest

	if err := c.BindFunc(&data, "RefreshToken"); err != nil {
		return c.RespondError(err)
	}

	claims, err := uc.auth.ValidateRefreshToken(data.RefreshToken)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	// Re-read the user so a role change or deletion invalidates the
	// refresh chain.
	detail, err := uc.user.GetById(c.Ctx, claims.UserID)
	if err != nil {
		return c.RespondError(err)
	}

	nama := claims.UserName
	if detail.Nama != nil {
		nama = *detail.Nama
	}
	role := claims.Role
	if detail.Role != nil {
		role = *detail.Role
	}

	accessToken, refreshToken, err := uc.auth.GenTokens(detail.ID, nama, role)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
	}, http.StatusOK)
}
