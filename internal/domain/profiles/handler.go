package profiles

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-health-log/internal/domain/logs"
	"pet-health-log/internal/domain/pets"
	"pet-health-log/internal/domain/tabs"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}", func(pr chi.Router) {
		pr.Get("/profile", getProfileHandler(svc))

		// Alta de visita: solo dispara el trigger; el formulario vive afuera.
		pr.Post("/vet-visits", addVetVisitHandler(svc))
	})
}

// petCardResponse es la tarjeta de la mascota con sus textos.
type petCardResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Species      string  `json:"species"`
	Age          float64 `json:"age"`
	SpeciesLabel string  `json:"species_label"`
	AgeLabel     string  `json:"age_label"`
}

type summaryResponse struct {
	LatestWeightLog        *logs.WeightLog        `json:"latest_weight_log"`
	LatestBodyConditionLog *logs.BodyConditionLog `json:"latest_body_condition_log"`
	WeightText             string                 `json:"weight_text"`
	BodyConditionText      string                 `json:"body_condition_text"`
}

// profileResponse es la vista de detalle completa.
type profileResponse struct {
	Pet               *petCardResponse        `json:"pet"`
	WeightLogs        []logs.WeightLog        `json:"weight_logs"`
	BodyConditionLogs []logs.BodyConditionLog `json:"body_condition_logs"`
	VetVisitLogs      []logs.VetVisitLog      `json:"vet_visit_logs"`
	Summary           *summaryResponse        `json:"summary,omitempty"`
	Health            *HealthStatus           `json:"health,omitempty"`
	Tabs              []tabs.Info             `json:"tabs"`
	ActiveTab         tabs.Tab                `json:"active_tab"`
	Projection        *tabs.Projection        `json:"projection,omitempty"`
	Loading           bool                    `json:"loading"`
	Error             string                  `json:"error,omitempty"`
}

// getProfileHandler godoc
// @Summary Perfil de mascota
// @Description Carga en paralelo la mascota y sus logs de peso, condición corporal y visitas; devuelve el resumen del mes, el estado de salud y la proyección del tab pedido.
// @Tags profiles
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param tab query string false "Tab activo" Enums(Weight_Logs, Body_Condition, Vet_Visits)
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "unknown tab"
// @Failure 404 {object} profileResponse
// @Router /pets/{petID}/profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tab, err := tabs.Parse(r.URL.Query().Get("tab"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctrl := tabs.NewController()
		if _, err := ctrl.Select(tab); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		v := svc.Load(r.Context(), chi.URLParam(r, "petID"))
		out := toProfileResponse(v, ctrl)

		status := http.StatusOK
		if v.Pet == nil {
			status = http.StatusNotFound
		}
		writeJSON(w, status, out)
	}
}

// addVetVisitHandler godoc
// @Summary Agregar visita veterinaria
// @Description Dispara el trigger "Add new vet visit". La carga de la visita la implementa el formulario externo; este servicio responde 501.
// @Tags profiles
// @Param petID path string true "ID de la mascota"
// @Failure 404 {string} string "pet not found"
// @Failure 501 {string} string "not implemented"
// @Router /pets/{petID}/vet-visits [post]
func addVetVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		if _, err := svc.LoadProfile(r.Context(), petID); errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		ctrl := tabs.NewController(tabs.WithAddVisit(func() {
			svc.log.Info("add vet visit requested", map[string]any{"pet_id": petID})
		}))
		_, _ = ctrl.Select(tabs.VetVisits)
		ctrl.TriggerAddVisit()

		http.Error(w, "adding vet visits is not implemented", http.StatusNotImplemented)
	}
}

func toProfileResponse(v View, ctrl *tabs.Controller) profileResponse {
	out := profileResponse{
		WeightLogs:        v.WeightLogs,
		BodyConditionLogs: v.BodyConditionLogs,
		VetVisitLogs:      v.VetVisitLogs,
		Tabs:              tabs.All,
		ActiveTab:         ctrl.Active(),
		Loading:           v.Loading,
		Error:             v.Error,
	}

	b, ok := v.Bundle()
	if !ok {
		return out
	}

	out.Pet = toPetCard(b.Pet)
	out.Summary = &summaryResponse{
		LatestWeightLog:        v.Summary.LatestWeightLog,
		LatestBodyConditionLog: v.Summary.LatestBodyConditionLog,
		WeightText:             v.Summary.WeightText(),
		BodyConditionText:      v.Summary.BodyConditionText(),
	}
	h := v.Health
	out.Health = &h
	p := b.Project(ctrl)
	out.Projection = &p
	return out
}

func toPetCard(p pets.Pet) *petCardResponse {
	return &petCardResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Species:      string(p.Species),
		Age:          p.Age,
		SpeciesLabel: p.SpeciesLabel(),
		AgeLabel:     p.AgeLabel(),
	}
}

// writeJSON duplicado a propósito (ver pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
