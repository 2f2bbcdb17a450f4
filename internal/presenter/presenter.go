// Package presenter formats a dough.Result into display strings.
package presenter

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/Simplici0/bakersmath/internal/dough"
)

// Row is one line of the recipe table.
type Row struct {
	Name    string
	Weight  string
	Percent string
	Sub     bool
	Accent  bool
}

// View is the display-ready rendering of one calculation.
type View struct {
	TotalWeight       string
	Rows              []Row
	RequiredWaterTemp string
	CostPerUnit       string
	HasPreferment     bool
}

// Options controls locale-ish formatting choices.
type Options struct {
	CurrencySymbol string
}

// Present builds the View for a successful calculation of p.
func Present(p dough.Params, r dough.Result, opts Options) View {
	rows := make([]Row, 0, 9)
	rows = append(rows, Row{Name: "Flour (Main)", Weight: Grams(r.Ingredients.Flour), Percent: Percent(100 - p.PrefermentPct)})

	if r.Preferment != nil {
		rows = append(rows,
			Row{Name: "Preferment", Weight: Grams(r.Preferment.Total), Percent: "-", Accent: true},
			Row{Name: "Flour", Weight: Grams(r.Preferment.Flour), Sub: true},
			Row{Name: "Water", Weight: Grams(r.Preferment.Water), Sub: true},
		)
	}

	rows = append(rows,
		Row{Name: "Water", Weight: Grams(r.Ingredients.Water), Percent: Percent(p.HydrationPct)},
		Row{Name: "Salt", Weight: Grams(r.Ingredients.Salt), Percent: Percent(p.SaltPct)},
		Row{Name: "Yeast", Weight: Grams(r.Ingredients.Yeast), Percent: Percent(p.YeastPct)},
	)
	if r.Ingredients.Oil > 0 {
		rows = append(rows, Row{Name: "Oil", Weight: Grams(r.Ingredients.Oil), Percent: Percent(p.OilPct)})
	}
	if r.Ingredients.Sugar > 0 {
		rows = append(rows, Row{Name: "Sugar/Honey", Weight: Grams(r.Ingredients.Sugar), Percent: Percent(p.SugarPct)})
	}

	return View{
		TotalWeight:       Grams(r.TotalBatchWeight),
		Rows:              rows,
		RequiredWaterTemp: Degrees(r.RequiredWaterTemp),
		CostPerUnit:       Currency(opts.CurrencySymbol, r.CostPerUnit),
		HasPreferment:     r.Preferment != nil,
	}
}

// Grams rounds to the nearest whole gram.
func Grams(v float64) string {
	return fmt.Sprintf("%dg", int64(roundHalfUp(v)))
}

// Degrees rounds a temperature to a whole degree. The unit is whatever the
// caller used for the inputs.
func Degrees(v float64) string {
	return fmt.Sprintf("%d°", int64(roundHalfUp(v)))
}

// Percent formats a baker's percentage with one decimal.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Currency formats an amount with two decimals behind symbol.
func Currency(symbol string, v float64) string {
	return fmt.Sprintf("%s%.2f", symbol, v)
}

// roundHalfUp rounds .5 toward positive infinity so negative values render
// the same way a browser's Math.round would.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// WriteText renders v as a plain-text recipe card.
func WriteText(w io.Writer, v View) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Total dough: %s\n\n", v.TotalWeight)

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Ingredient\tWeight\tBaker's %")
	for _, row := range v.Rows {
		name := row.Name
		if row.Sub {
			name = "  ↳ " + name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, row.Weight, row.Percent)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush recipe table: %w", err)
	}

	fmt.Fprintf(&b, "\nWater temperature: %s\n", v.RequiredWaterTemp)
	fmt.Fprintf(&b, "Cost per unit: %s\n", v.CostPerUnit)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write recipe text: %w", err)
	}
	return nil
}
