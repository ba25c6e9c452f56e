package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"pet-health-log/internal/domain/pets"
	"pet-health-log/internal/domain/profiles"
	"pet-health-log/internal/domain/tabs"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Printer renderiza las vistas en la terminal (tabla o JSON).
type Printer struct {
	Out  io.Writer
	JSON bool
}

func NewPrinter(out io.Writer, asJSON bool) *Printer {
	if out == nil {
		out = color.Output
	}
	return &Printer{Out: out, JSON: asJSON}
}

func (p *Printer) title(s string) {
	_, _ = color.New(color.Bold, color.Underline).Fprintln(p.Out, s)
}

func (p *Printer) faint(s string) {
	_, _ = color.New(color.Faint, color.Italic).Fprintln(p.Out, s)
}

func (p *Printer) printJSON(v any) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Pets imprime el listado. El error del store se muestra pero no corta.
func (p *Printer) Pets(v pets.ListView) error {
	if p.JSON {
		return p.printJSON(v)
	}

	if v.Error != "" {
		_, _ = color.New(color.FgRed).Fprintf(p.Out, "error: %s\n", v.Error)
	}
	p.title("Pets")
	if v.Empty {
		p.faint(v.Message)
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Species"), bold.Sprint("Age"))
	for _, pet := range v.Pets {
		tbl.AddRow(pet.ID.String(), pet.Name, string(pet.Species), pet.AgeLabel())
	}
	_, _ = fmt.Fprintln(p.Out, tbl)
	return nil
}

// Profile imprime la tarjeta, el resumen del mes y el tab activo.
func (p *Printer) Profile(v profiles.View, ctrl *tabs.Controller) error {
	b, ok := v.Bundle()

	if p.JSON {
		out := struct {
			profiles.View
			Projection *tabs.Projection `json:"projection,omitempty"`
		}{View: v}
		if ok {
			proj := b.Project(ctrl)
			out.Projection = &proj
		}
		return p.printJSON(out)
	}

	if !ok {
		_, _ = color.New(color.FgRed).Fprintln(p.Out, v.Error)
		return nil
	}

	p.title(b.Pet.Name)
	card := uitable.New()
	card.Separator = "  "
	card.AddRow(b.Pet.SpeciesLabel(), b.Pet.AgeLabel())
	card.AddRow("Health: "+v.Health.Overall, "Last vet visit: "+v.Health.LastVetVisitLabel)
	card.AddRow(v.Summary.WeightText(), v.Summary.BodyConditionText())
	_, _ = fmt.Fprintln(p.Out, card)
	_, _ = fmt.Fprintln(p.Out)

	p.tabBar(ctrl.Active())
	p.projection(b.Project(ctrl))
	return nil
}

func (p *Printer) tabBar(active tabs.Tab) {
	sel := color.New(color.Bold, color.FgHiCyan)
	names := make([]string, 0, len(tabs.All))
	for _, t := range tabs.All {
		if t.ID == active {
			names = append(names, sel.Sprint("["+active.Name()+"]"))
			continue
		}
		names = append(names, " "+t.Name+" ")
	}
	_, _ = fmt.Fprintln(p.Out, strings.Join(names, " "))
}

func (p *Printer) projection(pr tabs.Projection) {
	if pr.Empty {
		p.faint(pr.EmptyMessage)
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		if pr.Tab == tabs.VetVisits {
			tbl.MaxColWidth = 60
			tbl.Wrap = true
			for _, l := range pr.VetVisits {
				tbl.AddRow(tabs.FormatDate(l.Date, nil), l.Notes)
			}
		} else {
			for _, r := range pr.Rows {
				tbl.AddRow(r.Label, r.DateLabel)
			}
		}
		_, _ = fmt.Fprintln(p.Out, tbl)
	}

	if pr.CanAddVisit {
		_, _ = color.New(color.FgGreen).Fprintln(p.Out, "+ Add new vet visit")
	}
}
