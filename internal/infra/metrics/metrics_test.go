package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectors_IndependentRegistries(t *testing.T) {
	a, b := New(), New()

	a.OrdersCreated.Add(2)

	assert.InDelta(t, 2, testutil.ToFloat64(a.OrdersCreated), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.OrdersCreated), 0)
}

func TestCollectors_Handler(t *testing.T) {
	c := New()
	c.WebhookEvents.WithLabelValues("checkout.session.completed", "processed").Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `comerciojusto_webhook_events_total{outcome="processed",type="checkout.session.completed"} 1`)
}
