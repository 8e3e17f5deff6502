package food

import (
	"fmt"
	"strings"
)

// foodImageKeywords maps name fragments to TheMealDB ingredient images.
// Kept as a slice because order matters: the first matching fragment wins.
var foodImageKeywords = []struct {
	keyword string
	image   string
}{
	{"chicken", "Chicken"},
	{"rice", "Rice"},
	{"beef", "Beef"},
	{"pork", "Pork"},
	{"egg", "Eggs"},
	{"milk", "Milk"},
	{"cheese", "Cheese"},
	{"butter", "Butter"},
	{"apple", "Apple"},
	{"banana", "Banana"},
	{"orange", "Orange"},
	{"tomato", "Tomato"},
	{"potato", "Potatoes"},
	{"onion", "Onion"},
	{"carrot", "Carrots"},
	{"broccoli", "Broccoli"},
	{"bread", "Bread"},
	{"pasta", "Farfalle"},
	{"spaghetti", "Spaghetti"},
	{"fish", "Fish"},
	{"salmon", "Salmon"},
	{"tuna", "Tuna"},
	{"yogurt", "Greek Yogurt"},
	{"chocolate", "Chocolate"},
	{"flour", "Flour"},
	{"sugar", "Sugar"},
	{"salt", "Salt"},
	{"water", "Water"},
	{"oil", "Olive Oil"},
	{"avocado", "Avocado"},
	{"lettuce", "Lettuce"},
	{"cucumber", "Cucumber"},
	{"garlic", "Garlic"},
	{"lemon", "Lemon"},
	{"lime", "Lime"},
	{"strawberry", "Strawberries"},
	{"grape", "Grapes"},
}

// guessFoodImage picks a stock ingredient image for foods that come
// without one. Returns "" when nothing matches.
func guessFoodImage(foodName string) string {
	nameLower := strings.ToLower(foodName)
	for _, entry := range foodImageKeywords {
		if strings.Contains(nameLower, entry.keyword) {
			return fmt.Sprintf("https://www.themealdb.com/images/ingredients/%s.png", entry.image)
		}
	}
	return ""
}
