package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakhac/graph-algorithms/metrics"
)

func TestRecordSearch(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordSearch("dijkstra", "success", 4, 20, time.Millisecond)
	r.RecordSearch("dijkstra", "success", 2, 10, time.Millisecond)
	r.RecordSearch("greedy", "cycle", 3, 6, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.SearchesTotal.WithLabelValues("dijkstra", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SearchesTotal.WithLabelValues("greedy", "cycle")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.SearchIterations))
}

func TestRecordAnimation(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordAnimation("terminated", 5)
	r.RecordAnimation("aborted", 2)

	assert.Equal(t, 7.0, testutil.ToFloat64(r.AnimationSteps))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.AnimationsTotal.WithLabelValues("aborted")))
}

func TestHandler(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordSearch("bfs", "noPathToFinish", 1, 3, time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `pathviz_searches_total{algorithm="bfs",outcome="noPathToFinish"} 1`))

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
