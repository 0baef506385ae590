package nutrition

import (
	"errors"
	"testing"
)

func TestCombineTwoFoods(t *testing.T) {
	// 100g of A(cal=200,p=10,c=20,f=5) + 50g of B(cal=100,p=5,c=10,f=2),
	// total weight 150g, normalization factor 100/150.
	got, err := Combine([]Ingredient{
		{Per100: Macros{Calories: 200, Protein: 10, Carbs: 20, Fat: 5}, QuantityG: 100},
		{Per100: Macros{Calories: 100, Protein: 5, Carbs: 10, Fat: 2}, QuantityG: 50},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Calories != 167 {
		t.Errorf("calories = %v, want 167", got.Calories)
	}
	if got.Protein != 8.3 {
		t.Errorf("protein = %v, want 8.3", got.Protein)
	}
	if got.Carbs != 16.7 {
		t.Errorf("carbs = %v, want 16.7", got.Carbs)
	}
	if got.Fat != 4 {
		t.Errorf("fat = %v, want 4", got.Fat)
	}
}

func TestCombineSingleIngredientIsIdentity(t *testing.T) {
	per100 := Macros{Calories: 250, Protein: 12.5, Carbs: 30.2, Fat: 8.1, Fiber: 3.4}
	got, err := Combine([]Ingredient{{Per100: per100, QuantityG: 80}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != RoundMacros(per100) {
		t.Errorf("single-ingredient combine = %+v, want %+v", got, per100)
	}
}

func TestCombineZeroWeightRejected(t *testing.T) {
	cases := [][]Ingredient{
		nil,
		{},
		{{Per100: Macros{Calories: 100}, QuantityG: 0}},
	}
	for _, in := range cases {
		if _, err := Combine(in); !errors.Is(err, ErrNoWeight) {
			t.Errorf("Combine(%v) err = %v, want ErrNoWeight", in, err)
		}
	}
}

func TestCombineMatchesNormalizationFormula(t *testing.T) {
	ingredients := []Ingredient{
		{Per100: Macros{Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, Fiber: 10.6}, QuantityG: 40},
		{Per100: Macros{Calories: 61, Protein: 3.3, Carbs: 4.7, Fat: 3.3}, QuantityG: 200},
		{Per100: Macros{Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Fiber: 2.6}, QuantityG: 118},
	}
	got, err := Combine(ingredients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := TotalWeight(ingredients)
	totals := Totals(ingredients)
	want := RoundMacros(Macros{
		Calories: totals.Calories * 100 / w,
		Protein:  totals.Protein * 100 / w,
		Carbs:    totals.Carbs * 100 / w,
		Fat:      totals.Fat * 100 / w,
		Fiber:    totals.Fiber * 100 / w,
	})
	if got != want {
		t.Errorf("Combine = %+v, want %+v", got, want)
	}
}

func TestSnapshotScalesByQuantity(t *testing.T) {
	per100 := Macros{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2}
	got := Snapshot(per100, 150)
	if got.Calories != 78 {
		t.Errorf("calories = %v, want 78", got.Calories)
	}
	if got.Carbs != 21 {
		t.Errorf("carbs = %v, want 21", got.Carbs)
	}
	if got.Protein != 0.5 {
		t.Errorf("protein = %v, want 0.5", got.Protein)
	}
}

func TestRound1(t *testing.T) {
	cases := map[float64]float64{
		4.666666: 4.7,
		8.333333: 8.3,
		0.05:     0.1,
		2.0:      2.0,
	}
	for in, want := range cases {
		if got := Round1(in); got != want {
			t.Errorf("Round1(%v) = %v, want %v", in, got, want)
		}
	}
}
