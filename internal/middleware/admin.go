package middleware

import (
	"context"
	"crypto/subtle"

	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/questx-lab/concierge/pkg/router"
	"github.com/questx-lab/concierge/pkg/xcontext"
)

const AdminTokenHeader = "X-Admin-Token"

// OnlyAdmin rejects requests without the configured admin token.
func OnlyAdmin() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		expected := xcontext.Configs(ctx).Admin.Token
		if expected == "" {
			return nil, errorx.New(errorx.PermissionDenied, "Admin API is disabled")
		}

		token := xcontext.HTTPRequest(ctx).Header.Get(AdminTokenHeader)
		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "Missing admin token")
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}

		return nil, nil
	}
}
