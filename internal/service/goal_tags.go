package service

import (
	"sort"

	"fitlistic/fitness-app/internal/domain"
)

// goalTagTable maps each fitness goal to the content tags relevant for it,
// per category. Goals without an entry for a category contribute that
// category's default tags instead, so every goal always contributes
// something.
var goalTagTable = map[domain.Category]map[domain.Goal][]string{
	domain.CategoryExercise: {
		domain.GoalMuscleGain:       {"push", "upper-body", "compound", "strength"},
		domain.GoalWeightLoss:       {"hiit", "full-body", "cardio"},
		domain.GoalGeneralFitness:   {"functional", "bodyweight", "compound", "general"},
		domain.GoalFlexibility:      {"bodyweight", "functional", "mobility"},
		domain.GoalMentalHealth:     {"bodyweight", "functional"},
		domain.GoalStressResilience: {"functional", "bodyweight"},
	},
	domain.CategoryBreathwork: {
		domain.GoalGeneralFitness:   {"hiit", "recovery", "foam-rolling", "stretching"},
		domain.GoalWeightLoss:       {"hiit", "recovery", "foam-rolling", "stretching"},
		domain.GoalMentalHealth:     {"recovery", "foam-rolling"},
		domain.GoalFlexibility:      {"recovery", "stretching"},
		domain.GoalStressResilience: {"recovery", "relaxation"},
		domain.GoalMuscleGain:       {"recovery", "power"},
	},
	domain.CategoryMeditation: {
		domain.GoalMentalHealth:     {"mindfulness", "relaxation", "anxiety-reduction", "awareness"},
		domain.GoalStressResilience: {"relaxation", "anxiety-reduction", "awareness"},
		domain.GoalGeneralFitness:   {"mindfulness", "relaxation"},
		domain.GoalFlexibility:      {"mindfulness", "body-awareness"},
		domain.GoalWeightLoss:       {"focus", "discipline"},
		domain.GoalMuscleGain:       {"focus", "visualization"},
	},
	domain.CategoryStretching: {
		domain.GoalFlexibility:      {"morning", "mobility", "wake-up", "energizing"},
		domain.GoalGeneralFitness:   {"mobility", "functional"},
		domain.GoalWeightLoss:       {"full-body", "active"},
		domain.GoalMentalHealth:     {"relaxation", "mindful"},
		domain.GoalStressResilience: {"relaxation", "recovery"},
		domain.GoalMuscleGain:       {"recovery", "muscle-specific"},
	},
	domain.CategoryCoolDown: {
		domain.GoalGeneralFitness:   {"general", "basic", "relaxation", "recovery"},
		domain.GoalWeightLoss:       {"general", "basic", "relaxation", "recovery"},
		domain.GoalFlexibility:      {"stretching", "mobility"},
		domain.GoalMentalHealth:     {"relaxation", "mindful"},
		domain.GoalStressResilience: {"relaxation", "recovery"},
		domain.GoalMuscleGain:       {"recovery", "gentle"},
	},
	domain.CategoryWarmUp: {
		domain.GoalGeneralFitness:   {"general", "foundational", "no-equipment", "scalable"},
		domain.GoalMuscleGain:       {"strength", "activation", "mobility", "preparation"},
		domain.GoalWeightLoss:       {"cardio", "full-body", "hiit"},
		domain.GoalFlexibility:      {"mobility", "dynamic"},
		domain.GoalMentalHealth:     {"energizing", "focus"},
		domain.GoalStressResilience: {"grounding", "energizing"},
	},
}

// defaultTags is the per-category fallback used for goals with no mapping
// and for categories whose final tag set would otherwise be empty.
var defaultTags = map[domain.Category][]string{
	domain.CategoryExercise:   {"functional", "bodyweight", "compound", "general"},
	domain.CategoryBreathwork: {"recovery", "relaxation"},
	domain.CategoryMeditation: {"mindfulness", "relaxation"},
	domain.CategoryStretching: {"general", "full-body"},
	domain.CategoryCoolDown:   {"general", "basic"},
	domain.CategoryWarmUp:     {"general", "foundational"},
}

// MapGoalsToTags translates a user's fitness goals into the tag set to
// query each of the six content categories with. The result always covers
// every category and no category's tag list is ever empty; lists are
// deduplicated and sorted so downstream cache keys are stable.
func MapGoalsToTags(goals []domain.Goal) map[domain.Category][]string {
	result := make(map[domain.Category][]string, len(goalTagTable))

	for category, goalMap := range goalTagTable {
		seen := make(map[string]bool)
		var tags []string
		add := func(ts []string) {
			for _, t := range ts {
				if !seen[t] {
					seen[t] = true
					tags = append(tags, t)
				}
			}
		}

		for _, goal := range goals {
			if mapped, ok := goalMap[goal]; ok {
				add(mapped)
			} else {
				add(defaultTags[category])
			}
		}
		if len(tags) == 0 {
			add(defaultTags[category])
		}

		sort.Strings(tags)
		result[category] = tags
	}

	return result
}
