package prometheus

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/questx-lab/concierge/internal/common"
	"github.com/stretchr/testify/require"
)

func Test_NewHandler(t *testing.T) {
	common.PromCounters[common.SettlementOrdersTotal].
		WithLabelValues("Powerball", common.OutcomeSettled).Inc()

	handler := NewHandler()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "go_goroutines"))
	require.True(t, strings.Contains(string(body),
		`settlement_orders_total{game="Powerball",outcome="settled"}`))
}
