package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler is the signature every application handler implements. The
// returned error has already been responded to the client; it is
// surfaced so the app can log it.
type Handler func(c *Context) error

// Middleware runs some code before or after a Handler.
type Middleware func(Handler) Handler

// App is the entrypoint for the web application. It wraps a gin engine
// and converts Handler functions into gin routes.
type App struct {
	*gin.Engine
	log zerolog.Logger
}

func NewApp(log zerolog.Logger) *App {
	return &App{
		Engine: gin.New(),
		log:    log,
	}
}

func (a *App) handle(method, path string, handler Handler, middlewares ...Middleware) {
	// Wrap from the last middleware out so the first one listed runs first.
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	h := handler
	a.Engine.Handle(method, path, func(c *gin.Context) {
		ctx := NewContext(c)
		if err := h(ctx); err != nil {
			a.log.Warn().
				Str("method", method).
				Str("path", path).
				Err(err).
				Msg("request failed")
		}
	})
}

func (a *App) Get(path string, handler Handler, middlewares ...Middleware) {
	a.handle("GET", path, handler, middlewares...)
}

func (a *App) Post(path string, handler Handler, middlewares ...Middleware) {
	a.handle("POST", path, handler, middlewares...)
}

func (a *App) Put(path string, handler Handler, middlewares ...Middleware) {
	a.handle("PUT", path, handler, middlewares...)
}

func (a *App) Patch(path string, handler Handler, middlewares ...Middleware) {
	a.handle("PATCH", path, handler, middlewares...)
}

func (a *App) Delete(path string, handler Handler, middlewares ...Middleware) {
	a.handle("DELETE", path, handler, middlewares...)
}

func (a *App) Head(path string, handler Handler, middlewares ...Middleware) {
	a.handle("HEAD", path, handler, middlewares...)
}
