package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"particle-audit/core/reconcile"
	"particle-audit/core/tables"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *reconcile.Result {
	return &reconcile.Result{
		SimOnly: []int{999},
		RefOnly: []int{-321, 321, 443},
		Both:    []int{-211, 211, 22},
		Counts:  reconcile.Counts{Mass: 2, Width: 1, Charge: 0, Spin: 3},
		Skipped: []*tables.ParseError{{Source: "evtgenParts.txt", Line: 5}},
	}
}

func TestObserve(t *testing.T) {
	m := New()
	m.Observe(sampleResult(), 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.differences.WithLabelValues("mass")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.differences.WithLabelValues("width")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.differences.WithLabelValues("charge")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.differences.WithLabelValues("spin")))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.particles.WithLabelValues("simulation_only")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.particles.WithLabelValues("reference_only")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.particles.WithLabelValues("both")))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.skipped))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(successStatusLabel)))
	assert.Greater(t, testutil.ToFloat64(m.lastSuccess), 0.0)
}

func TestObserveFailure_KeepsLastCounts(t *testing.T) {
	m := New()
	m.Observe(sampleResult(), time.Millisecond)
	m.ObserveFailure(time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(failStatusLabel)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.differences.WithLabelValues("mass")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.Observe(sampleResult(), time.Millisecond)

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `particle_audit_differences{property="mass"} 2`)
	assert.Contains(t, string(body), `particle_audit_particles{set="reference_only"} 3`)
	assert.Contains(t, string(body), "particle_audit_runs_total")
}
