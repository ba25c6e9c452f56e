package profiles

import (
	"time"

	"pet-health-log/internal/domain/logs"
	"pet-health-log/internal/domain/pets"
	"pet-health-log/internal/domain/tabs"
)

// Bundle es el resultado de una carga de perfil: la mascota y sus tres colecciones de logs,
// en el orden del store. Se reconstruye entero en cada carga; no se persiste.
type Bundle struct {
	Pet               pets.Pet
	WeightLogs        []logs.WeightLog
	BodyConditionLogs []logs.BodyConditionLog
	VetVisitLogs      []logs.VetVisitLog
}

// Summary deriva el resumen del mes de now.
func (b Bundle) Summary(now time.Time) logs.MonthlySummary {
	return logs.SummarizeMonth(now, b.BodyConditionLogs, b.WeightLogs)
}

// Project delega en el controller de tabs con las secuencias del bundle.
func (b Bundle) Project(c *tabs.Controller) tabs.Projection {
	return c.Project(b.WeightLogs, b.BodyConditionLogs, b.VetVisitLogs)
}

// View es el estado observable por la capa de presentación.
// Siempre tiene forma válida: ante error, Pet es nil y Error trae el mensaje.
type View struct {
	Pet               *pets.Pet               `json:"pet"`
	WeightLogs        []logs.WeightLog        `json:"weight_logs"`
	BodyConditionLogs []logs.BodyConditionLog `json:"body_condition_logs"`
	VetVisitLogs      []logs.VetVisitLog      `json:"vet_visit_logs"`

	Summary logs.MonthlySummary `json:"summary"`
	Health  HealthStatus        `json:"health"`

	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

func (v View) Bundle() (Bundle, bool) {
	if v.Pet == nil {
		return Bundle{}, false
	}
	return Bundle{
		Pet:               *v.Pet,
		WeightLogs:        v.WeightLogs,
		BodyConditionLogs: v.BodyConditionLogs,
		VetVisitLogs:      v.VetVisitLogs,
	}, true
}

func emptyView() View {
	return View{
		WeightLogs:        []logs.WeightLog{},
		BodyConditionLogs: []logs.BodyConditionLog{},
		VetVisitLogs:      []logs.VetVisitLog{},
	}
}
