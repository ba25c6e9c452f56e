package tabs

import (
	"fmt"
	"strconv"
	"time"

	"pet-health-log/internal/domain/logs"
)

const (
	MessageNoLogs = "There are no logs"

	dateLayout = "1/2/2006"
)

// Row es una fila lista para mostrar (tabs de peso y condición corporal).
type Row struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	DateLabel string `json:"date_label"`
}

// Projection es lo que se renderiza para el tab activo.
// Empty=true se muestra como estado "sin logs", no como lista vacía.
type Projection struct {
	Tab          Tab                `json:"tab"`
	Rows         []Row              `json:"rows,omitempty"`
	VetVisits    []logs.VetVisitLog `json:"vet_visits,omitempty"`
	Empty        bool               `json:"empty"`
	EmptyMessage string             `json:"empty_message,omitempty"`
	CanAddVisit  bool               `json:"can_add_visit"`
}

// Controller mantiene el tab activo de una vista de detalle.
// Vive lo que vive la vista; no tiene estado terminal.
type Controller struct {
	active     Tab
	loc        *time.Location
	onAddVisit func()
}

type Option func(*Controller)

// WithAddVisit registra el callback del botón "agregar visita".
// El formulario lo implementa el colaborador externo.
func WithAddVisit(fn func()) Option {
	return func(c *Controller) { c.onAddVisit = fn }
}

// WithLocation fija la zona para las etiquetas de fecha (default time.Local).
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) {
		if loc != nil {
			c.loc = loc
		}
	}
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		active: Default(),
		loc:    time.Local,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) Active() Tab {
	return c.active
}

// Select cambia el tab activo. Un tab desconocido se rechaza sin tocar el estado;
// seleccionar el tab actual no cambia nada (changed=false).
func (c *Controller) Select(t Tab) (changed bool, err error) {
	if !t.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownTab, t)
	}
	if t == c.active {
		return false, nil
	}
	c.active = t
	return true, nil
}

// TriggerAddVisit dispara el callback si hay uno registrado.
func (c *Controller) TriggerAddVisit() {
	if c.onAddVisit != nil {
		c.onAddVisit()
	}
}

// Project arma la proyección del tab activo. Es derivada: se recalcula en cada llamada.
func (c *Controller) Project(weights []logs.WeightLog, conditions []logs.BodyConditionLog, visits []logs.VetVisitLog) Projection {
	p := Projection{Tab: c.active}

	switch c.active {
	case WeightLogs:
		p.Rows = make([]Row, 0, len(weights))
		for _, l := range weights {
			p.Rows = append(p.Rows, Row{
				ID:        l.ID.String(),
				Label:     WeightLabel(l.Weight),
				DateLabel: "Date: " + FormatDate(l.Date, c.loc),
			})
		}
		p.Empty = len(p.Rows) == 0
	case BodyCondition:
		p.Rows = make([]Row, 0, len(conditions))
		for _, l := range conditions {
			p.Rows = append(p.Rows, Row{
				ID:        l.ID.String(),
				Label:     l.BodyCondition,
				DateLabel: "Date: " + FormatDate(l.Date, c.loc),
			})
		}
		p.Empty = len(p.Rows) == 0
	case VetVisits:
		p.VetVisits = visits
		if p.VetVisits == nil {
			p.VetVisits = []logs.VetVisitLog{}
		}
		p.Empty = len(p.VetVisits) == 0
		// Visible también con la lista vacía.
		p.CanAddVisit = true
	}

	if p.Empty {
		p.EmptyMessage = MessageNoLogs
	}
	return p
}

// WeightLabel imprime el peso sin redondear ni rellenar.
func WeightLabel(w float64) string {
	return "Weight: " + strconv.FormatFloat(w, 'f', -1, 64) + "Kg"
}

// FormatDate usa fecha corta M/D/YYYY; fechas inválidas => "Invalid Date".
func FormatDate(d logs.Date, loc *time.Location) string {
	t, ok := d.Time(loc)
	if !ok {
		return "Invalid Date"
	}
	return t.Format(dateLayout)
}
