package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_RecordVote(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordVote(1)
	c.RecordVote(1)
	c.RecordVote(-1)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.votesCast.WithLabelValues("up")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.votesCast.WithLabelValues("down")))
}

func TestCollector_MiddlewareUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/api/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/123", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// One labelled series for the matched pattern, not the raw path.
	count := testutil.ToFloat64(c.httpRequests.WithLabelValues("/api/posts/{id}", http.MethodGet, "200"))
	assert.Equal(t, float64(1), count)
}
