package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// LikeMetrics exports counter activity to Prometheus.
type LikeMetrics struct {
	totalLikes    prometheus.Gauge
	likes         prometheus.Counter
	storageErrors *prometheus.CounterVec
}

var _ usecasecontract.ILikeMetrics = (*LikeMetrics)(nil)

// NewLikeMetrics creates the collectors and registers them with reg.
func NewLikeMetrics(reg prometheus.Registerer) *LikeMetrics {
	m := &LikeMetrics{
		totalLikes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "likeboard_total_likes",
			Help: "Last observed like total.",
		}),
		likes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "likeboard_likes_total",
			Help: "Likes recorded by this process.",
		}),
		storageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "likeboard_storage_errors_total",
			Help: "Counter store failures by operation.",
		}, []string{"op"}),
	}
	reg.MustRegister(m.totalLikes, m.likes, m.storageErrors)
	return m
}

func (m *LikeMetrics) ObserveTotal(total int64) {
	m.totalLikes.Set(float64(total))
}

func (m *LikeMetrics) IncLikes() {
	m.likes.Inc()
}

func (m *LikeMetrics) IncStorageErrors(op string) {
	m.storageErrors.WithLabelValues(op).Inc()
}
