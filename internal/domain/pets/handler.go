package pets

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pets", listPetsHandler(svc))
}

// petResponse representa una mascota en el listado.
type petResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Age     float64 `json:"age"`
}

// listResponse es la vista completa de la pantalla de listado.
type listResponse struct {
	Pets    []petResponse `json:"pets"`
	Empty   bool          `json:"empty"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas del store, en el orden del store. Sin mascotas => `empty=true` con mensaje, no es error. Si el store falla la respuesta mantiene la misma forma con `error` y status 502.
// @Tags pets
// @Produce json
// @Success 200 {object} listResponse
// @Failure 502 {object} listResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := svc.List(r.Context())

		out := listResponse{
			Pets:    make([]petResponse, 0, len(v.Pets)),
			Empty:   v.Empty,
			Message: v.Message,
			Error:   v.Error,
		}
		for _, p := range v.Pets {
			out.Pets = append(out.Pets, toPetResponse(p))
		}

		status := http.StatusOK
		if v.Error != "" {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, out)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:      p.ID.String(),
		Name:    p.Name,
		Species: string(p.Species),
		Age:     p.Age,
	}
}

// writeJSON está duplicado en handlers de distintos módulos (pets/profiles)
// para no crear un paquete de helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
