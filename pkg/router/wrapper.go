package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/questx-lab/concierge/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		ctx := xcontext.WithHTTPRequest(router.root, ginCtx.Request)

		ctx = func() context.Context {
			for _, middleware := range router.middlewares {
				newCtx, err := middleware(ctx)
				if err != nil {
					return xcontext.WithError(ctx, err)
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			var req Request
			var err error
			switch method {
			case http.MethodGet:
				err = ginCtx.ShouldBindQuery(&req)
			case http.MethodPost:
				if ginCtx.Request.ContentLength != 0 {
					err = ginCtx.ShouldBindJSON(&req)
				}
			default:
				err = errorx.New(errorx.NotImplemented, "Unsupported method %s", method)
			}

			if err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
				return xcontext.WithError(ctx, errorx.New(errorx.BadRequest, "Invalid request"))
			}

			resp, err := handler(ctx, &req)
			if err != nil {
				return xcontext.WithError(ctx, err)
			}

			writeResponse(ctx, ginCtx, resp)
			return ctx
		}()

		if err := xcontext.Error(ctx); err != nil {
			writeError(ctx, ginCtx, err)
		}

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}
