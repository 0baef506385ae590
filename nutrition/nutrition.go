package nutrition

import (
	"errors"
	"math"
)

// ErrNoWeight is returned when a composition has no positive total weight,
// which would make the per-100g normalization divide by zero.
var ErrNoWeight = errors.New("total ingredient weight must be positive")

// Macros holds the tracked nutrients. Values are kcal for Calories and
// grams for everything else.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber,omitempty"`
}

// Ingredient pairs a food's per-100g macros with a quantity in grams.
type Ingredient struct {
	Per100    Macros  `json:"per_100"`
	QuantityG float64 `json:"quantity_grams"`
}

// Round1 rounds to one decimal place, the policy for gram-based nutrients.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RoundMacros applies the rounding policy: calories to the nearest
// integer, protein/carbs/fat/fiber to one decimal.
func RoundMacros(m Macros) Macros {
	return Macros{
		Calories: math.Round(m.Calories),
		Protein:  Round1(m.Protein),
		Carbs:    Round1(m.Carbs),
		Fat:      Round1(m.Fat),
		Fiber:    Round1(m.Fiber),
	}
}

// Scale returns the macros contributed by quantityG grams of a food whose
// macros are expressed per 100g. Unrounded.
func Scale(per100 Macros, quantityG float64) Macros {
	f := quantityG / 100
	return Macros{
		Calories: per100.Calories * f,
		Protein:  per100.Protein * f,
		Carbs:    per100.Carbs * f,
		Fat:      per100.Fat * f,
		Fiber:    per100.Fiber * f,
	}
}

// Snapshot is Scale with the rounding policy applied, used when
// denormalizing a log or plan item.
func Snapshot(per100 Macros, quantityG float64) Macros {
	return RoundMacros(Scale(per100, quantityG))
}

// Totals sums the contribution of every ingredient. Unrounded.
func Totals(ingredients []Ingredient) Macros {
	var t Macros
	for _, in := range ingredients {
		s := Scale(in.Per100, in.QuantityG)
		t.Calories += s.Calories
		t.Protein += s.Protein
		t.Carbs += s.Carbs
		t.Fat += s.Fat
		t.Fiber += s.Fiber
	}
	return t
}

// TotalWeight sums ingredient quantities in grams.
func TotalWeight(ingredients []Ingredient) float64 {
	var w float64
	for _, in := range ingredients {
		w += in.QuantityG
	}
	return w
}

// Combine computes the per-100g macros of a composed food: sum each
// nutrient's contributions, then normalize by 100/totalWeight and round.
// A non-positive total weight is rejected rather than producing NaN.
func Combine(ingredients []Ingredient) (Macros, error) {
	w := TotalWeight(ingredients)
	if w <= 0 {
		return Macros{}, ErrNoWeight
	}
	t := Totals(ingredients)
	factor := 100 / w
	return RoundMacros(Macros{
		Calories: t.Calories * factor,
		Protein:  t.Protein * factor,
		Carbs:    t.Carbs * factor,
		Fat:      t.Fat * factor,
		Fiber:    t.Fiber * factor,
	}), nil
}
