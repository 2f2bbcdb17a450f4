package dough

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter marks an input outside its allowed domain.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDivisionByZero marks an input that would force a division by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// ParameterError describes the first precondition a Params value violates.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
	Err    error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %v)", e.Err, e.Field, e.Reason, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

type field struct {
	name  string
	value float64
}

func (p Params) fields() []field {
	return []field{
		{"quantity", p.Quantity},
		{"unit_weight", p.UnitWeight},
		{"hydration_pct", p.HydrationPct},
		{"salt_pct", p.SaltPct},
		{"yeast_pct", p.YeastPct},
		{"oil_pct", p.OilPct},
		{"sugar_pct", p.SugarPct},
		{"preferment_pct", p.PrefermentPct},
		{"preferment_hydration_pct", p.PrefermentHydrationPct},
		{"room_temp", p.RoomTemp},
		{"flour_temp", p.FlourTemp},
		{"friction_factor_temp", p.FrictionFactorTemp},
		{"target_dough_temp", p.TargetDoughTemp},
		{"flour_cost_per_kg", p.FlourCostPerKg},
		{"toppings_cost_per_unit", p.ToppingsCostPerUnit},
	}
}

func invalid(name string, value float64, reason string) error {
	return &ParameterError{Field: name, Value: value, Reason: reason, Err: ErrInvalidParameter}
}

// Validate reports the first precondition p violates, or nil.
func Validate(p Params) error {
	for _, f := range p.fields() {
		if !isFinite(f.value) {
			return invalid(f.name, f.value, "must be a finite number")
		}
	}

	if p.Quantity == 0 {
		return &ParameterError{Field: "quantity", Value: p.Quantity, Reason: "must not be zero", Err: ErrDivisionByZero}
	}
	if p.Quantity < 0 {
		return invalid("quantity", p.Quantity, "must be greater than 0")
	}
	if p.UnitWeight <= 0 {
		return invalid("unit_weight", p.UnitWeight, "must be greater than 0")
	}

	for _, f := range []field{
		{"hydration_pct", p.HydrationPct},
		{"salt_pct", p.SaltPct},
		{"yeast_pct", p.YeastPct},
		{"oil_pct", p.OilPct},
		{"sugar_pct", p.SugarPct},
		{"preferment_pct", p.PrefermentPct},
		{"preferment_hydration_pct", p.PrefermentHydrationPct},
	} {
		if f.value < 0 {
			return invalid(f.name, f.value, "must be greater than or equal to 0")
		}
	}
	if p.PrefermentPct > 100 {
		return invalid("preferment_pct", p.PrefermentPct, "must be between 0 and 100")
	}

	if p.FlourCostPerKg < 0 {
		return invalid("flour_cost_per_kg", p.FlourCostPerKg, "must be greater than or equal to 0")
	}
	if p.ToppingsCostPerUnit < 0 {
		return invalid("toppings_cost_per_unit", p.ToppingsCostPerUnit, "must be greater than or equal to 0")
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkFinite rejects a Result whose derived values overflowed even though
// every input was finite.
func checkFinite(r Result) error {
	derived := []field{
		{"ingredients.flour", r.Ingredients.Flour},
		{"ingredients.water", r.Ingredients.Water},
		{"ingredients.salt", r.Ingredients.Salt},
		{"ingredients.yeast", r.Ingredients.Yeast},
		{"ingredients.oil", r.Ingredients.Oil},
		{"ingredients.sugar", r.Ingredients.Sugar},
		{"required_water_temp", r.RequiredWaterTemp},
		{"flour_cost", r.FlourCost},
		{"toppings_cost", r.ToppingsCost},
		{"cost_per_unit", r.CostPerUnit},
	}
	if r.Preferment != nil {
		derived = append(derived,
			field{"preferment.flour", r.Preferment.Flour},
			field{"preferment.water", r.Preferment.Water},
			field{"preferment.total", r.Preferment.Total},
		)
	}
	for _, f := range derived {
		if !isFinite(f.value) {
			return invalid(f.name, f.value, "overflows")
		}
	}
	return nil
}
