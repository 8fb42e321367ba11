package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// InternalMessage is the message body every unexpected failure is
// converted to at the handler boundary.
const InternalMessage = "Terjadi kesalahan pada server"

// Context carries the request scoped values through a Handler.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrs []error
	queryErrs []error
}

func NewContext(c *gin.Context) *Context {
	return &Context{Context: c, Ctx: c.Request.Context()}
}

// Respond writes the payload as JSON with the given status code.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondNoContent writes an empty body with the given status code.
func (c *Context) RespondNoContent(status int) error {
	c.Status(status)
	return nil
}

// RespondError converts err into the {message, error, status} envelope.
// Expected errors (*Error) keep their status and message; everything
// else becomes a 500 with the underlying detail surfaced.
func (c *Context) RespondError(err error) error {
	if re := GetRequestError(err); re != nil {
		c.JSON(re.Status, map[string]interface{}{
			"message": re.Err.Error(),
			"status":  false,
		})
		return err
	}

	c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"message": InternalMessage,
		"error":   err.Error(),
		"status":  false,
	})
	return err
}

// BindFunc binds the request body (json, form or multipart) into ptr
// and checks that every named field was supplied.
func (c *Context) BindFunc(ptr interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(ptr); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request"), http.StatusBadRequest)
	}
	return ValidateRequired(ptr, requiredFields...)
}

// GetParam parses a path parameter into the requested kind. Parse
// failures are collected and reported by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	raw := c.Param(name)
	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.paramErrs = append(c.paramErrs, errors.Errorf("invalid %s param: %q", name, raw))
			return 0
		}
		return v
	case reflect.String:
		return raw
	default:
		c.paramErrs = append(c.paramErrs, errors.Errorf("unsupported param kind for %s", name))
		return nil
	}
}

func (c *Context) ValidParam() error {
	if len(c.paramErrs) > 0 {
		return NewRequestError(c.paramErrs[0], http.StatusBadRequest)
	}
	return nil
}

// GetQueryFunc parses an optional query value into a typed pointer.
// A missing value yields nil so callers can distinguish "absent".
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}
	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Errorf("invalid %s query: %q", name, raw))
			return nil
		}
		return &v
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Errorf("invalid %s query: %q", name, raw))
			return nil
		}
		return &v
	case reflect.Float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Errorf("invalid %s query: %q", name, raw))
			return nil
		}
		return &v
	case reflect.String:
		return &raw
	default:
		c.queryErrs = append(c.queryErrs, errors.Errorf("unsupported query kind for %s", name))
		return nil
	}
}

func (c *Context) ValidQuery() error {
	if len(c.queryErrs) > 0 {
		return NewRequestError(c.queryErrs[0], http.StatusBadRequest)
	}
	return nil
}

// ValidateRequired checks that the named struct fields are set: pointer
// fields must be non-nil, value fields must not be the zero value.
func ValidateRequired(ptr interface{}, fields ...string) error {
	v := reflect.ValueOf(ptr)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.New("validate: expected a struct")
	}

	for _, name := range fields {
		f := v.FieldByName(name)
		if !f.IsValid() {
			return errors.Errorf("validate: unknown field %s", name)
		}
		missing := false
		switch f.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
			missing = f.IsNil()
		default:
			missing = f.IsZero()
		}
		if missing {
			return NewRequestError(fmt.Errorf("field %s is required", name), http.StatusBadRequest)
		}
	}
	return nil
}
