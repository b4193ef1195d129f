package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/questx-lab/concierge/pkg/testutil"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestOnlyAdmin(t *testing.T) {
	tests := []struct {
		name  string
		token string
		code  errorx.Code
	}{
		{name: "valid", token: "admin-token"},
		{name: "missing", token: "", code: errorx.Unauthenticated},
		{name: "wrong", token: "user-token", code: errorx.PermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/getOrder", nil)
			if tt.token != "" {
				req.Header.Set(AdminTokenHeader, tt.token)
			}

			ctx := xcontext.WithHTTPRequest(testutil.MockContext(), req)
			_, err := OnlyAdmin()(ctx)
			if tt.code == 0 {
				require.NoError(t, err)
			} else {
				require.True(t, errorx.Is(err, tt.code))
			}
		})
	}
}

func TestOnlyAdmin_Disabled(t *testing.T) {
	ctx := testutil.MockContext()
	cfg := xcontext.Configs(ctx)
	cfg.Admin.Token = ""
	ctx = xcontext.WithConfigs(ctx, cfg)

	req := httptest.NewRequest(http.MethodGet, "/getOrder", nil)
	req.Header.Set(AdminTokenHeader, "")
	_, err := OnlyAdmin()(xcontext.WithHTTPRequest(ctx, req))
	require.True(t, errorx.Is(err, errorx.PermissionDenied))
}

func TestErrorCode(t *testing.T) {
	ctx := testutil.MockContext()
	require.Equal(t, 0, errorCode(ctx))
	require.Equal(t, -1, errorCode(xcontext.WithError(ctx, errors.New("boom"))))
	require.Equal(t, int(errorx.NotFound),
		errorCode(xcontext.WithError(ctx, errorx.New(errorx.NotFound, "Not found"))))
}

func TestClosers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/getOrder", nil)
	ctx := xcontext.WithHTTPRequest(testutil.MockContext(), req)

	ctx, err := WithStartTime()(ctx)
	require.NoError(t, err)
	require.False(t, xcontext.StartTime(ctx).IsZero())

	require.NotPanics(t, func() {
		Prometheus()(ctx)
		Logger()(ctx)
		Logger()(xcontext.WithError(ctx, errors.New("boom")))
	})
}
