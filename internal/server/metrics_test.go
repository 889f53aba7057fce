package server

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsObserve(t *testing.T) {
	m := newMetrics()
	m.observe("ok", 0.01)
	m.observe("ok", 0.02)
	m.observe("miss", 0.05)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.resolves.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.resolves.WithLabelValues("miss")))

	fams, err := m.registry.Gather()
	require.NoError(t, err)
	assert.Len(t, fams, 2, "registry should expose the counter and the histogram")
}
