package recipe

import (
	"github.com/google/uuid"
	"math"
	"pantry-pilot/entities"
	"sort"
)

const (
	// defaultMinScore drops recipes whose match score is too weak to be
	// worth showing.
	defaultMinScore = 40.0
	// defaultRecommendationLimit caps the result list after sorting.
	defaultRecommendationLimit = 10
	// expiringBonusCap bounds the urgency bonus added on top of the
	// ingredient match score.
	expiringBonusCap = 10.0
)

type scoredRecipe struct {
	recipe             *entities.Recipe
	matchScore         float64
	availableCount     int
	totalCount         int
	missingIngredients []string
	requiredMissing    int
	usesExpiring       bool
}

// scoreRecipes ranks recipes against what the user has on hand.
//
// The match score is the share of ingredients available, scaled to 100,
// plus a bonus of up to 10 points for ingredients that expire within the
// next few days. Optional ingredients count toward availability and the
// missing list, but only required ones decide whether a recipe is
// cookable right now. Recipes without ingredients are skipped: there is
// nothing to match against.
func scoreRecipes(recipes []*entities.Recipe, available, expiring map[uuid.UUID]bool, minScore float64, limit int) []scoredRecipe {
	scored := make([]scoredRecipe, 0, len(recipes))

	for _, r := range recipes {
		if len(r.Ingredients) == 0 {
			continue
		}

		total := len(r.Ingredients)
		availableCount := 0
		expiringCount := 0
		requiredTotal := 0
		requiredAvailable := 0
		var missing []string

		for _, ingredient := range r.Ingredients {
			has := available[ingredient.FoodID]
			if has {
				availableCount++
			} else {
				name := ingredient.FoodID.String()
				if ingredient.Food != nil {
					name = ingredient.Food.Name
				}
				missing = append(missing, name)
			}
			if expiring[ingredient.FoodID] {
				expiringCount++
			}
			if !ingredient.IsOptional {
				requiredTotal++
				if has {
					requiredAvailable++
				}
			}
		}

		baseScore := float64(availableCount) / float64(total) * 100
		bonus := math.Min(float64(expiringCount)/float64(total)*10, expiringBonusCap)
		finalScore := baseScore + bonus

		if finalScore < minScore {
			continue
		}

		scored = append(scored, scoredRecipe{
			recipe:             r,
			matchScore:         math.Round(finalScore*100) / 100,
			availableCount:     availableCount,
			totalCount:         total,
			missingIngredients: missing,
			requiredMissing:    requiredTotal - requiredAvailable,
			usesExpiring:       expiringCount > 0,
		})
	}

	// Cookable recipes first, then ones that use up expiring stock,
	// then by score.
	sort.SliceStable(scored, func(i, j int) bool {
		iCookable := scored[i].requiredMissing == 0
		jCookable := scored[j].requiredMissing == 0
		if iCookable != jCookable {
			return iCookable
		}
		if scored[i].usesExpiring != scored[j].usesExpiring {
			return scored[i].usesExpiring
		}
		return scored[i].matchScore > scored[j].matchScore
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
