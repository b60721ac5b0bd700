package router

import (
	"context"
	"net/http"

	"github.com/learnquest-lab/backend/pkg/xcontext"
	"github.com/rs/cors"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It may derive a new context, and a
// returned error short-circuits the request.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the handler with the error it returned, if any.
type CloserFunc func(ctx context.Context, err error)

type Router struct {
	mux *http.ServeMux
	ctx context.Context

	befores []MiddlewareFunc
	closers []CloserFunc
}

// New creates a router on top of a base context carrying the configs, logger,
// database and the other process-wide dependencies.
func New(ctx context.Context) *Router {
	return &Router{mux: http.NewServeMux(), ctx: ctx}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain.
func (r *Router) Branch() *Router {
	return &Router{
		mux:     r.mux,
		ctx:     r.ctx,
		befores: append([]MiddlewareFunc{}, r.befores...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   xcontext.Configs(r.ctx).ApiServer.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r.mux)
}

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := xcontext.WithHTTPRequest(router.ctx, req)

		err := func() error {
			if req.Method != method {
				return errMethodNotAllowed
			}

			var err error
			for _, middleware := range router.befores {
				if ctx, err = middleware(ctx); err != nil {
					return err
				}
			}

			request := new(Request)
			if err := bindRequest(req, method, request); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
				return errBadRequest
			}

			resp, err := handler(ctx, request)
			if err != nil {
				return err
			}

			return writeJSON(w, newResponse(resp))
		}()

		if err != nil {
			if writeErr := writeJSON(w, newErrorResponse(err)); writeErr != nil {
				xcontext.Logger(ctx).Errorf("Cannot write the response: %v", writeErr)
			}
		}

		for _, closer := range router.closers {
			closer(ctx, err)
		}
	}
}
