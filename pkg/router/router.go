package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type (
	HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

	// MiddlewareFunc runs before the handler. A non-nil returned context
	// replaces the request context, a non-nil error stops the request.
	MiddlewareFunc func(ctx context.Context) (context.Context, error)

	// CloserFunc runs after the response has been written.
	CloserFunc func(ctx context.Context)
)

type Router struct {
	Inner gin.IRouter

	root        context.Context
	middlewares []MiddlewareFunc
	closers     []CloserFunc
}

// New returns a Router whose request contexts derive from root.
func New(root context.Context) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{Inner: engine, root: root}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

// Handle registers a plain http.Handler which bypasses middlewares and
// closers.
func (r *Router) Handle(method, pattern string, handler http.Handler) {
	r.Inner.Handle(method, pattern, gin.WrapH(handler))
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.middlewares = append(r.middlewares, middleware)
}

func (r *Router) After(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

// Group returns a sub router inheriting the middlewares and closers registered
// so far.
func (r *Router) Group(pattern string) *Router {
	return &Router{
		Inner:       r.Inner.Group(pattern),
		root:        r.root,
		middlewares: append([]MiddlewareFunc{}, r.middlewares...),
		closers:     append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}
