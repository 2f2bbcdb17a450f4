// Package dough derives ingredient weights, water temperature and a rough
// per-unit cost from a set of baker's-percentage recipe parameters.
package dough

// Params holds the recipe parameters for one calculation. Percentages are
// baker's percentages: grams of ingredient per 100 g of flour.
type Params struct {
	Quantity   float64 `json:"quantity"`
	UnitWeight float64 `json:"unit_weight"`

	HydrationPct float64 `json:"hydration_pct"`
	SaltPct      float64 `json:"salt_pct"`
	YeastPct     float64 `json:"yeast_pct"`
	OilPct       float64 `json:"oil_pct"`
	SugarPct     float64 `json:"sugar_pct"`

	PrefermentPct          float64 `json:"preferment_pct"`
	PrefermentHydrationPct float64 `json:"preferment_hydration_pct"`

	RoomTemp           float64 `json:"room_temp"`
	FlourTemp          float64 `json:"flour_temp"`
	FrictionFactorTemp float64 `json:"friction_factor_temp"`
	TargetDoughTemp    float64 `json:"target_dough_temp"`

	FlourCostPerKg      float64 `json:"flour_cost_per_kg"`
	ToppingsCostPerUnit float64 `json:"toppings_cost_per_unit"`
}

// Defaults returns the starting recipe: four 280 g Neapolitan-style balls.
func Defaults() Params {
	return Params{
		Quantity:               4,
		UnitWeight:             280,
		HydrationPct:           65,
		SaltPct:                3,
		YeastPct:               0.5,
		PrefermentHydrationPct: 100,
		RoomTemp:               24,
		FlourTemp:              23,
		FrictionFactorTemp:     26,
		TargetDoughTemp:        25,
		FlourCostPerKg:         1.50,
		ToppingsCostPerUnit:    2.00,
	}
}

// Ingredients are main-dough weights in grams. Flour excludes any flour
// moved into the preferment.
type Ingredients struct {
	Flour float64 `json:"flour"`
	Water float64 `json:"water"`
	Salt  float64 `json:"salt"`
	Yeast float64 `json:"yeast"`
	Oil   float64 `json:"oil"`
	Sugar float64 `json:"sugar"`
}

// Sum returns the combined main-dough weight.
func (i Ingredients) Sum() float64 {
	return i.Flour + i.Water + i.Salt + i.Yeast + i.Oil + i.Sugar
}

// Preferment is the flour and water portion mixed ahead of the main dough.
type Preferment struct {
	Flour float64 `json:"flour"`
	Water float64 `json:"water"`
	Total float64 `json:"total"`
}

// Result groups every value derived from one Params snapshot.
type Result struct {
	TotalBatchWeight  float64     `json:"total_batch_weight"`
	TotalPercentage   float64     `json:"total_percentage"`
	Ingredients       Ingredients `json:"ingredients"`
	Preferment        *Preferment `json:"preferment,omitempty"`
	RequiredWaterTemp float64     `json:"required_water_temp"`
	FlourCost         float64     `json:"flour_cost"`
	ToppingsCost      float64     `json:"toppings_cost"`
	CostPerUnit       float64     `json:"cost_per_unit"`
}

// ddtFactors is the number of temperature factors in the straight-dough
// formula: room, flour and friction. A preferment is not counted.
const ddtFactors = 3

// Compute validates p and derives the full formulation. It returns either a
// complete Result or the first violated precondition as a *ParameterError.
func Compute(p Params) (Result, error) {
	if err := Validate(p); err != nil {
		return Result{}, err
	}

	totalBatchWeight := p.Quantity * p.UnitWeight
	if !isFinite(totalBatchWeight) {
		return Result{}, invalid("total_batch_weight", totalBatchWeight, "overflows")
	}

	totalPercentage := 100 + p.HydrationPct + p.SaltPct + p.YeastPct + p.OilPct + p.SugarPct
	if !isFinite(totalPercentage) {
		return Result{}, invalid("total_percentage", totalPercentage, "overflows")
	}
	if totalPercentage <= 0 {
		return Result{}, &ParameterError{Field: "total_percentage", Value: totalPercentage, Reason: "must be greater than 0", Err: ErrDivisionByZero}
	}

	flourWeight := totalBatchWeight / (totalPercentage / 100.0)
	ingredients := Ingredients{
		Flour: flourWeight,
		Water: flourWeight * (p.HydrationPct / 100.0),
		Salt:  flourWeight * (p.SaltPct / 100.0),
		Yeast: flourWeight * (p.YeastPct / 100.0),
		Oil:   flourWeight * (p.OilPct / 100.0),
		Sugar: flourWeight * (p.SugarPct / 100.0),
	}

	// Preferment is flour and water only. The main water remainder may go
	// negative for very wet preferments and is returned as-is.
	var preferment *Preferment
	if p.PrefermentPct > 0 {
		prefermentFlour := flourWeight * (p.PrefermentPct / 100.0)
		prefermentWater := prefermentFlour * (p.PrefermentHydrationPct / 100.0)

		ingredients.Flour -= prefermentFlour
		ingredients.Water -= prefermentWater

		preferment = &Preferment{
			Flour: prefermentFlour,
			Water: prefermentWater,
			Total: prefermentFlour + prefermentWater,
		}
	}

	requiredWaterTemp := p.TargetDoughTemp*ddtFactors - p.RoomTemp - p.FlourTemp - p.FrictionFactorTemp

	// Salt, yeast, oil and sugar are left out of the estimate.
	flourCost := (ingredients.Flour / 1000.0) * p.FlourCostPerKg
	toppingsCost := p.Quantity * p.ToppingsCostPerUnit
	costPerUnit := (flourCost + toppingsCost) / p.Quantity

	result := Result{
		TotalBatchWeight:  totalBatchWeight,
		TotalPercentage:   totalPercentage,
		Ingredients:       ingredients,
		Preferment:        preferment,
		RequiredWaterTemp: requiredWaterTemp,
		FlourCost:         flourCost,
		ToppingsCost:      toppingsCost,
		CostPerUnit:       costPerUnit,
	}
	if err := checkFinite(result); err != nil {
		return Result{}, err
	}
	return result, nil
}
