package profiles

import (
	"fmt"
	"time"

	"pet-health-log/internal/domain/logs"
)

const (
	HealthGood          = "Good"
	HealthNeedsMoreData = "Needs More Data"

	// Con más de esta cantidad de pesajes se considera que hay datos suficientes.
	minWeightLogsForGood = 3
)

type HealthStatus struct {
	Overall           string     `json:"overall"`
	LastVetVisit      *time.Time `json:"last_vet_visit,omitempty"`
	LastVetVisitLabel string     `json:"last_vet_visit_label"`
}

func Health(now time.Time, b Bundle) HealthStatus {
	h := HealthStatus{Overall: HealthNeedsMoreData, LastVetVisitLabel: "No visits"}
	if len(b.WeightLogs) > minWeightLogsForGood {
		h.Overall = HealthGood
	}

	if _, at, ok := logs.Latest(now.Location(), b.VetVisitLogs); ok {
		h.LastVetVisit = &at
		h.LastVetVisitLabel = relativeLabel(now, at)
	}
	return h
}

// relativeLabel: "today", "N days ago", "N months ago", "N years ago".
func relativeLabel(now, at time.Time) string {
	if at.After(now) {
		return "upcoming"
	}

	months := (now.Year()-at.Year())*12 + int(now.Month()-at.Month())
	if now.Day() < at.Day() {
		months--
	}

	switch {
	case months >= 12:
		return plural(months/12, "year")
	case months >= 1:
		return plural(months, "month")
	}

	days := int(now.Sub(at).Hours() / 24)
	if days == 0 {
		return "today"
	}
	return plural(days, "day")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
