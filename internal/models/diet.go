package models

import (
	"fmt"
	"slices"
	"strings"
)

// DietaryRestriction is the meal requirement recorded for a guest.
type DietaryRestriction string

const (
	DietNone          DietaryRestriction = "NONE"
	DietVegetarian    DietaryRestriction = "VEGETARIAN"
	DietVegan         DietaryRestriction = "VEGAN"
	DietHalal         DietaryRestriction = "HALAL"
	DietKosher        DietaryRestriction = "KOSHER"
	DietGlutenFree    DietaryRestriction = "GLUTEN_FREE"
	DietNutFree       DietaryRestriction = "NUT_FREE"
	DietDairyFree     DietaryRestriction = "DAIRY_FREE"
	DietShellfishFree DietaryRestriction = "SHELLFISH_FREE"
)

var DietaryRestrictions = []DietaryRestriction{
	DietNone, DietVegetarian, DietVegan, DietHalal, DietKosher,
	DietGlutenFree, DietNutFree, DietDairyFree, DietShellfishFree,
}

// ParseDietaryRestriction is case-insensitive; hyphens and spaces are read as
// underscores so "gluten-free" and "Gluten Free" both parse.
func ParseDietaryRestriction(s string) (DietaryRestriction, error) {
	folded := strings.ToUpper(strings.TrimSpace(s))
	folded = strings.NewReplacer("-", "_", " ", "_").Replace(folded)
	diet := DietaryRestriction(folded)
	if !slices.Contains(DietaryRestrictions, diet) {
		names := make([]string, len(DietaryRestrictions))
		for i, d := range DietaryRestrictions {
			names[i] = string(d)
		}
		return "", fmt.Errorf("dietary restriction should be one of %s, got %q", strings.Join(names, ", "), s)
	}
	return diet, nil
}
