package client

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-admin-config/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// resolvedView is the printed shape of a resolved configuration. Entities
// are listed in order of first appearance rather than keyed by name.
type resolvedView struct {
	Entities []models.EntityConfig `json:"entities" yaml:"entities"`
	Options  map[string]any        `json:"options,omitempty" yaml:"options,omitempty"`
}

func (a *App) printResolved(w io.Writer, resolved *models.ResolvedConfig) error {
	if a.output != outputTable {
		return a.printStructured(w, resolvedView{
			Entities: resolved.OrderedEntities(),
			Options:  resolved.Options,
		})
	}

	return a.printEntities(w, resolved.OrderedEntities())
}

func (a *App) printEntities(w io.Writer, entities []models.EntityConfig) error {
	if a.output != outputTable {
		return a.printStructured(w, entities)
	}

	t := newTable().Headers("NAME", "CLASS", "OPTIONS")
	for _, entity := range entities {
		t.Row(entity.Name, entity.Class, strings.Join(slices.Sorted(maps.Keys(entity.Options)), ", "))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func (a *App) printEntity(w io.Writer, entity models.EntityConfig) error {
	if a.output != outputTable {
		return a.printStructured(w, entity)
	}

	t := newTable().Headers("OPTION", "VALUE").
		Row(models.OptionName, entity.Name).
		Row(models.OptionClass, entity.Class)
	for _, key := range slices.Sorted(maps.Keys(entity.Options)) {
		t.Row(key, formatValue(entity.Options[key]))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func (a *App) printStructured(w io.Writer, v any) error {
	switch a.output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errUnknownOutputFormat
	}
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// formatValue prints nested option values as compact JSON so lists and maps
// stay on one table row.
func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
