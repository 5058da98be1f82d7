package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	MessagesSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "messages_sent_total",
			Help: "Total messages dispatched successfully",
		},
	)

	MessagesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "messages_failed_total",
			Help: "Total messages that failed delivery",
		},
	)

	CampaignsEnqueued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "campaigns_enqueued_total",
			Help: "Total campaigns accepted by the send endpoint",
		},
	)
)

func Init() {
	prometheus.MustRegister(MessagesSent)
	prometheus.MustRegister(MessagesFailed)
	prometheus.MustRegister(CampaignsEnqueued)
}
