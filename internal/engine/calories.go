package engine

// CalculateCalories scales a food's per-serving calories to an arbitrary
// amount and unit. When the target unit matches the base serving unit the
// scaling is purely linear; otherwise the target amount is converted into
// the serving unit first. It returns ok == false when that conversion is
// impossible, in which case callers must retain the previously cached value
// instead of zeroing it.
//
// baseServingSize must be positive; the food invariants guarantee this and
// callers normalize or reject zero before calling.
func CalculateCalories(baseCalories, baseServingSize float64, baseServingUnit string, targetAmount float64, targetUnit string) (float64, bool) {
	if SameUnit(targetUnit, baseServingUnit) {
		return baseCalories / baseServingSize * targetAmount, true
	}

	converted, ok := ConvertUnit(targetAmount, targetUnit, baseServingUnit)
	if !ok {
		return 0, false
	}
	return baseCalories / baseServingSize * converted, true
}

// Nutrition is a scaled macro profile.
type Nutrition struct {
	Calories      float64
	Protein       float64
	Carbohydrates float64
	Fats          float64
}

// ScaleNutrition applies the calorie calculator's scaling factor to a full
// macro profile. The base profile is defined per baseServingSize units of
// baseServingUnit, mirroring CalculateCalories.
func ScaleNutrition(base Nutrition, baseServingSize float64, baseServingUnit string, targetAmount float64, targetUnit string) (Nutrition, bool) {
	amount := targetAmount
	if !SameUnit(targetUnit, baseServingUnit) {
		converted, ok := ConvertUnit(targetAmount, targetUnit, baseServingUnit)
		if !ok {
			return Nutrition{}, false
		}
		amount = converted
	}

	factor := amount / baseServingSize
	return Nutrition{
		Calories:      base.Calories * factor,
		Protein:       base.Protein * factor,
		Carbohydrates: base.Carbohydrates * factor,
		Fats:          base.Fats * factor,
	}, true
}
