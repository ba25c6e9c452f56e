package pets

import (
	"fmt"
	"strconv"

	"pet-health-log/internal/ports/store"
)

// Species es libre en el store; estas son las más comunes.
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Pet representa el perfil básico de una mascota. Solo lectura desde este servicio.
type Pet struct {
	ID      store.ID `json:"id"`
	Name    string   `json:"name"`
	Species Species  `json:"species"`
	Age     float64  `json:"age"` // años
}

// SpeciesLabel / AgeLabel: textos de la tarjeta de mascota.
func (p Pet) SpeciesLabel() string {
	return fmt.Sprintf("Species: %s", p.Species)
}

func (p Pet) AgeLabel() string {
	return fmt.Sprintf("Age: %s years", strconv.FormatFloat(p.Age, 'f', -1, 64))
}
