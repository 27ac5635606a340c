package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(Logger(logger, "/health"))
	r.Use(Metrics)
	r.Get("/orders/{order_id}", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("hello"))
	})
	r.Get("/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestLogger(t *testing.T) {
	testCases := []struct {
		name      string
		target    string
		wantLog   bool
		wantLevel string
		wantRoute string
	}{
		{name: "ok request", target: "/orders/ORD-1", wantLog: true, wantLevel: "INFO", wantRoute: "/orders/{order_id}"},
		{name: "server error", target: "/broken", wantLog: true, wantLevel: "WARN", wantRoute: "/broken"},
		{name: "skipped probe", target: "/health", wantLog: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			rr := httptest.NewRecorder()
			newRouter(logger).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.target, nil))

			if !tc.wantLog {
				assert.Empty(t, buf.String())
				return
			}

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, tc.wantLevel, record["level"])
			assert.Equal(t, tc.wantRoute, record["route"])
			assert.Equal(t, tc.target, record["path"])
		})
	}
}

func TestMetrics_RouteLabel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/orders/{order_id}", "200")
	before := testutil.ToFloat64(counter)

	r := newRouter(logger)
	for _, id := range []string{"ORD-1", "ORD-2", "ORD-3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/"+id, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}
