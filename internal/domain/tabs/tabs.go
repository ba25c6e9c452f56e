package tabs

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTab = errors.New("unknown tab")

// Tab identifica qué secuencia de logs se proyecta en la vista de detalle.
type Tab string

const (
	WeightLogs    Tab = "Weight_Logs"
	BodyCondition Tab = "Body_Condition"
	VetVisits     Tab = "Vet_Visits"
)

// Info es la entrada del selector de tabs.
type Info struct {
	ID   Tab    `json:"id"`
	Name string `json:"name"`
}

// All en orden de declaración; el primero es el default.
var All = []Info{
	{ID: WeightLogs, Name: "Weight Logs"},
	{ID: BodyCondition, Name: "Body Condition"},
	{ID: VetVisits, Name: "Vet Visits"},
}

func Default() Tab {
	return All[0].ID
}

func (t Tab) Valid() bool {
	for _, i := range All {
		if i.ID == t {
			return true
		}
	}
	return false
}

func (t Tab) Name() string {
	for _, i := range All {
		if i.ID == t {
			return i.Name
		}
	}
	return ""
}

// Parse acepta el id del tab; vacío => default.
func Parse(s string) (Tab, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default(), nil
	}
	t := Tab(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
	return t, nil
}
