package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"presensi/backend/foundation/web"
)

// Roles a token can carry. ADMIN may see every presensi record in the
// reports; USER is always scoped to their own records.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// ctxKey is how claims are stored and retrieved from a context.Context.
type ctxKey int

// Key is used to store/retrieve Claims from a context.Context.
const Key ctxKey = 1

// Claims is the verified token payload attached to every request:
// who checked in, under which name, with which role.
type Claims struct {
	UserID   int    `json:"user_id"`
	UserName string `json:"nama"`
	Role     string `json:"role"`
	Type     string `json:"type"`
	jwt.StandardClaims
}

// Authorized reports whether the claims carry one of the given roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// Auth validates and issues HMAC signed tokens.
type Auth struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(key string) *Auth {
	return &Auth{
		key:        []byte(key),
		accessTTL:  2 * time.Hour,
		refreshTTL: 7 * 24 * time.Hour,
	}
}

// GenTokens issues an access/refresh token pair for the identity.
func (a *Auth) GenTokens(userID int, userName, role string) (accessToken, refreshToken string, err error) {
	now := time.Now()

	accessToken, err = a.sign(Claims{
		UserID:   userID,
		UserName: userName,
		Role:     role,
		Type:     typeAccess,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(a.accessTTL).Unix(),
		},
	})
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshToken, err = a.sign(Claims{
		UserID:   userID,
		UserName: userName,
		Role:     role,
		Type:     typeRefresh,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(a.refreshTTL).Unix(),
		},
	})
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

// ValidateToken verifies an access token and returns its claims.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	return a.parse(tokenStr, typeAccess)
}

// ValidateRefreshToken verifies a refresh token and returns its claims.
func (a *Auth) ValidateRefreshToken(tokenStr string) (Claims, error) {
	return a.parse(tokenStr, typeRefresh)
}

func (a *Auth) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
}

func (a *Auth) parse(tokenStr, wantType string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return a.key, nil
	})
	if err != nil {
		return Claims{}, err
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}
	if claims.Type != wantType {
		return Claims{}, errors.Errorf("expected %s token", wantType)
	}
	return claims, nil
}

// GetClaims retrieves the verified claims that the authentication
// middleware stored in the context.
func GetClaims(ctx context.Context) (Claims, error) {
	claims, ok := ctx.Value(Key).(Claims)
	if !ok {
		return Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}
	return claims, nil
}
