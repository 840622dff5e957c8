package metrics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounter struct {
	n   int64
	err error
}

func (c fixedCounter) CountAttendees(context.Context) (int64, error) {
	return c.n, c.err
}

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, nil)
	m.Observe("POST", 204)
	m.Observe("POST", 204)
	m.Observe("DELETE", 405)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("DELETE", "405")))
}

func TestObserveNil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.Observe("GET", 200) })
}

func TestStoredGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg, fixedCounter{n: 3})

	expected := `
# HELP attendees_stored Documents in the attendees collection.
# TYPE attendees_stored gauge
attendees_stored 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "attendees_stored"))
}

func TestStoredGaugeError(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg, fixedCounter{err: errors.New("down")})

	expected := `
# HELP attendees_stored Documents in the attendees collection.
# TYPE attendees_stored gauge
attendees_stored 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "attendees_stored"))
}
