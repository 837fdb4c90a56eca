package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	slotCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sproutly",
			Name:      "branch_slot_created_total",
			Help:      "Count of branch slots created by status.",
		},
		[]string{"status"},
	)

	slotDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sproutly",
			Name:      "branch_slot_deleted_total",
			Help:      "Count of branch slots deleted.",
		},
	)

	assignmentOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sproutly",
			Name:      "assignment_operations_total",
			Help:      "Count of room/staff assignment operations by kind.",
		},
		[]string{"kind"},
	)

	wizardStage = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sproutly",
			Name:      "wizard_stage_committed_total",
			Help:      "Count of wizard stage submissions committed.",
		},
		[]string{"stage"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(slotCreated, slotDeleted, assignmentOps, wizardStage)
	})
}

func IncSlotCreated(status string) {
	slotCreated.WithLabelValues(status).Inc()
}

func IncSlotDeleted() {
	slotDeleted.Inc()
}

func IncAssignmentOp(kind string) {
	assignmentOps.WithLabelValues(kind).Inc()
}

func IncWizardStage(stage string) {
	wizardStage.WithLabelValues(stage).Inc()
}
