package moderation

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "moderation_transitions_total",
		Help: "Moderation state transitions by content kind and action.",
	},
	[]string{"kind", "action"},
)

func logHookErr(kind Kind, id string, err error) {
	log.Printf("[moderation] approve hook failed kind=%s id=%s: %v", kind, id, err)
}
