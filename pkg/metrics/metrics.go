package metrics

import (
	"context"
	"strconv"

	"github.com/coneno/logger"
	"github.com/prometheus/client_golang/prometheus"
)

type AttendeeCounter interface {
	CountAttendees(ctx context.Context) (int64, error)
}

type Metrics struct {
	requests *prometheus.CounterVec
}

// New registers the function metrics on reg. counter may be nil, in which
// case the stored attendees gauge is not exported.
func New(reg prometheus.Registerer, counter AttendeeCounter) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "attendees_requests_total",
			Help: "Handled invocations by method and response code.",
		}, []string{"method", "code"}),
	}
	reg.MustRegister(m.requests)

	if counter != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "attendees_stored",
			Help: "Documents in the attendees collection.",
		}, func() float64 {
			n, err := counter.CountAttendees(context.Background())
			if err != nil {
				logger.Error.Printf("count attendees: %v", err)
				return 0
			}
			return float64(n)
		}))
	}
	return m
}

func (m *Metrics) Observe(method string, code int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, strconv.Itoa(code)).Inc()
}
