package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Simplici0/bakersmath/internal/dough"
)

type formField struct {
	Key   string
	Label string
	Unit  string
	Group string
	value func(*dough.Params) *float64
}

var recipeFields = []formField{
	{"quantity", "Quantity", "balls", "basics", func(p *dough.Params) *float64 { return &p.Quantity }},
	{"unit_weight", "Weight per ball", "g", "basics", func(p *dough.Params) *float64 { return &p.UnitWeight }},
	{"hydration_pct", "Hydration", "%", "percentages", func(p *dough.Params) *float64 { return &p.HydrationPct }},
	{"salt_pct", "Salt", "%", "percentages", func(p *dough.Params) *float64 { return &p.SaltPct }},
	{"yeast_pct", "Yeast", "%", "percentages", func(p *dough.Params) *float64 { return &p.YeastPct }},
	{"oil_pct", "Oil", "%", "percentages", func(p *dough.Params) *float64 { return &p.OilPct }},
	{"sugar_pct", "Sugar/Honey", "%", "percentages", func(p *dough.Params) *float64 { return &p.SugarPct }},
	{"preferment_pct", "Preferment flour", "%", "advanced", func(p *dough.Params) *float64 { return &p.PrefermentPct }},
	{"preferment_hydration_pct", "Preferment hydration", "%", "advanced", func(p *dough.Params) *float64 { return &p.PrefermentHydrationPct }},
	{"room_temp", "Room temperature", "°", "advanced", func(p *dough.Params) *float64 { return &p.RoomTemp }},
	{"flour_temp", "Flour temperature", "°", "advanced", func(p *dough.Params) *float64 { return &p.FlourTemp }},
	{"friction_factor_temp", "Friction factor", "°", "advanced", func(p *dough.Params) *float64 { return &p.FrictionFactorTemp }},
	{"target_dough_temp", "Desired dough temperature", "°", "advanced", func(p *dough.Params) *float64 { return &p.TargetDoughTemp }},
	{"flour_cost_per_kg", "Flour cost per kg", "", "advanced", func(p *dough.Params) *float64 { return &p.FlourCostPerKg }},
	{"toppings_cost_per_unit", "Toppings cost per ball", "", "advanced", func(p *dough.Params) *float64 { return &p.ToppingsCostPerUnit }},
}

// parseRecipeForm builds Params from form or query values. Absent or empty
// fields keep their default; anything present must parse as a number.
func parseRecipeForm(values url.Values) (dough.Params, error) {
	params := dough.Defaults()

	for _, f := range recipeFields {
		raw := strings.TrimSpace(values.Get(f.Key))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, fmt.Errorf("%s must be numeric", f.Key)
		}
		*f.value(&params) = value
	}

	return params, nil
}

type formInput struct {
	Key   string
	Label string
	Unit  string
	Value string
}

// formInputs echoes the submitted values back into the form, falling back to
// the value actually used in the calculation.
func formInputs(values url.Values, params dough.Params, group string) []formInput {
	inputs := make([]formInput, 0, len(recipeFields))
	for _, f := range recipeFields {
		if f.Group != group {
			continue
		}
		value := strings.TrimSpace(values.Get(f.Key))
		if value == "" {
			value = strconv.FormatFloat(*f.value(&params), 'f', -1, 64)
		}
		inputs = append(inputs, formInput{Key: f.Key, Label: f.Label, Unit: f.Unit, Value: value})
	}
	return inputs
}
