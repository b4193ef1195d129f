package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/questx-lab/concierge/internal/common"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/questx-lab/concierge/pkg/router"
	"github.com/questx-lab/concierge/pkg/xcontext"
)

func WithStartTime() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		return xcontext.WithStartTime(ctx, time.Now()), nil
	}
}

func Prometheus() router.CloserFunc {
	return func(ctx context.Context) {
		startTime := xcontext.StartTime(ctx)
		path := xcontext.HTTPRequest(ctx).URL.Path
		code := fmt.Sprint(errorCode(ctx))

		common.PromCounters[common.HTTPRequestTotal].WithLabelValues(path, code).Inc()
		if !startTime.IsZero() {
			common.PromHistograms[common.HTTPRequestDurationSeconds].
				WithLabelValues(path, code).Observe(time.Since(startTime).Seconds())
		}
	}
}

// errorCode returns 0 on success and -1 for errors which are not errorx.Error.
func errorCode(ctx context.Context) int {
	err := xcontext.Error(ctx)
	if err == nil {
		return 0
	}

	var errx errorx.Error
	if errors.As(err, &errx) {
		return int(errx.Code)
	}

	return -1
}
