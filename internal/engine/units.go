// Package engine holds the calculation core: unit conversion, calorie and
// macro scaling, pantry availability and readiness scoring, recipe
// similarity, and the freshness classifier. Every function is a pure
// computation over the records it is handed; callers own the collections and
// are responsible for serializing mutation.
package engine

import "strings"

// Category classifies a unit for conversion purposes. Conversion is defined
// only within a single non-custom category.
type Category string

const (
	CategoryMass   Category = "mass"
	CategoryVolume Category = "volume"
	CategoryCustom Category = "custom"
)

type unitDef struct {
	category Category
	// factor converts one unit into the category base: grams for mass,
	// milliliters for volume.
	factor float64
}

var unitTable = map[string]unitDef{
	// mass (base = g)
	"mg": {CategoryMass, 0.001},
	"g":  {CategoryMass, 1},
	"kg": {CategoryMass, 1000},
	"oz": {CategoryMass, 28.349523125},
	"lb": {CategoryMass, 453.59237},

	// volume (base = ml)
	"ml":    {CategoryVolume, 1},
	"l":     {CategoryVolume, 1000},
	"tsp":   {CategoryVolume, 4.92892159375},
	"tbs":   {CategoryVolume, 14.78676478125},
	"fl-oz": {CategoryVolume, 29.5735295625},
	"cup":   {CategoryVolume, 236.5882365},
}

func resolveUnit(unit string) (unitDef, bool) {
	def, ok := unitTable[strings.ToLower(strings.TrimSpace(unit))]
	return def, ok
}

// UnitCategory returns the conversion category of the unit. Anything outside
// the fixed mass and volume tables (slice, piece, serving, loaf, ...) is
// custom.
func UnitCategory(unit string) Category {
	if def, ok := resolveUnit(unit); ok {
		return def.category
	}
	return CategoryCustom
}

// CanConvert reports whether values can be converted between the two units.
// Custom units are never interconvertible, not even with themselves under a
// different label.
func CanConvert(from, to string) bool {
	fromCategory := UnitCategory(from)
	if fromCategory == CategoryCustom {
		return false
	}
	return fromCategory == UnitCategory(to)
}

// ConvertUnit converts value from one unit to another through the category
// base unit. It returns ok == false when the pair is not convertible;
// callers are expected to fall back to a previously known value rather than
// fail the surrounding operation.
func ConvertUnit(value float64, from, to string) (float64, bool) {
	if !CanConvert(from, to) {
		return 0, false
	}
	fromDef, _ := resolveUnit(from)
	toDef, _ := resolveUnit(to)
	return value * fromDef.factor / toDef.factor, true
}

// SameUnit reports whether two labels name the same unit after trimming and
// case folding. Equal custom labels compare the same even though they are
// not convertible.
func SameUnit(a, b string) bool {
	return strings.ToLower(strings.TrimSpace(a)) == strings.ToLower(strings.TrimSpace(b))
}
