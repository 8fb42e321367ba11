package book

import (
	"net/http"
	"reflect"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/repository/postgres/book"
)

type Controller struct {
	book Book
}

func NewController(book Book) *Controller {
	return &Controller{book}
}

func (uc Controller) GetList(c *web.Context) error {
	list, err := uc.book.GetList(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   list,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.book.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request book.CreateRequest
	if err := c.BindFunc(&request, "Title", "Author"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.book.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) UpdateAll(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request book.UpdateRequest
	if err := c.BindFunc(&request, "Title", "Author"); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := uc.book.UpdateAll(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.book.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.RespondNoContent(http.StatusNoContent)
}
