package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"fitlistic/fitness-app/internal/domain"
	"fitlistic/fitness-app/internal/repository"
)

// unfilteredLimit caps the last-resort "any item" query.
const unfilteredLimit = 3

// maxExerciseCandidates bounds how many exercises one day considers.
const maxExerciseCandidates = 5

// contentFetcher queries the content repository for one plan generation.
// Results are cached per (category, level, goals, day) so repeated lookups
// within the same generation hit the repository only once; the cache dies
// with the fetcher.
type contentFetcher struct {
	repo          repository.ContentRepository
	level         domain.Level
	tagsByCat     map[domain.Category][]string
	sortedGoalKey string

	activityCache map[string][]domain.Activity
	exerciseCache map[string][]domain.Exercise
}

func newContentFetcher(repo repository.ContentRepository, goals []domain.Goal, level domain.Level) *contentFetcher {
	keys := make([]string, 0, len(goals))
	for _, g := range goals {
		keys = append(keys, string(g))
	}
	sort.Strings(keys)

	return &contentFetcher{
		repo:          repo,
		level:         level,
		tagsByCat:     MapGoalsToTags(goals),
		sortedGoalKey: strings.Join(keys, "-"),
		activityCache: make(map[string][]domain.Activity),
		exerciseCache: make(map[string][]domain.Exercise),
	}
}

// fallbackFilters builds the ordered query ladder for a tag set and level:
// most specific first, ending with a last-resort query capped at a small
// limit. The first filter to return results wins. With requireLevelData
// the last resort still demands difficulty data, so exercises without any
// prescription never reach selection; the other categories accept anything.
func fallbackFilters(tags []string, level domain.Level, requireLevelData bool) []repository.ContentFilter {
	filters := []repository.ContentFilter{
		{Tags: tags, Level: level},
		{Tags: tags},
		{Level: level},
	}
	for _, fb := range level.Fallbacks() {
		filters = append(filters, repository.ContentFilter{Level: fb})
	}
	return append(filters, repository.ContentFilter{AnyLevel: requireLevelData, Limit: unfilteredLimit})
}

func (f *contentFetcher) cacheKey(category domain.Category, dayDate string) string {
	return fmt.Sprintf("%s_%s_%s_%s", category, f.level, f.sortedGoalKey, dayDate)
}

// FetchActivities returns candidate items for one of the single-instance
// categories, walking the fallback ladder until a query returns results.
// An empty result after the whole ladder means the category has no content
// at all; the caller omits the component rather than failing.
func (f *contentFetcher) FetchActivities(ctx context.Context, category domain.Category, dayDate string) ([]domain.Activity, error) {
	key := f.cacheKey(category, dayDate)
	if cached, ok := f.activityCache[key]; ok {
		return cached, nil
	}

	var items []domain.Activity
	for _, filter := range fallbackFilters(f.tagsByCat[category], f.level, false) {
		found, err := f.repo.FindActivities(ctx, category, filter)
		if err != nil {
			return nil, err
		}
		if len(found) > 0 {
			items = found
			break
		}
	}

	f.activityCache[key] = items
	return items, nil
}

// FetchExercises returns up to maxExerciseCandidates exercises for the day,
// walking the same fallback ladder and then taking a day-seeded sample so
// different dates see different subsets of a large pool.
func (f *contentFetcher) FetchExercises(ctx context.Context, dayDate string) ([]domain.Exercise, error) {
	key := f.cacheKey(domain.CategoryExercise, dayDate)
	if cached, ok := f.exerciseCache[key]; ok {
		return cached, nil
	}

	var exercises []domain.Exercise
	for _, filter := range fallbackFilters(f.tagsByCat[domain.CategoryExercise], f.level, true) {
		found, err := f.repo.FindExercises(ctx, filter)
		if err != nil {
			return nil, err
		}
		if len(found) > 0 {
			exercises = found
			break
		}
	}

	sampled := sampleExercises(exercises, dayDate+"_"+string(f.level))
	f.exerciseCache[key] = sampled
	return sampled, nil
}

// sampleExercises shuffles with a seed derived from the given key and takes
// the first few, so the subset is stable for a date but varies across dates.
func sampleExercises(exercises []domain.Exercise, seedKey string) []domain.Exercise {
	if len(exercises) == 0 {
		return nil
	}

	shuffled := make([]domain.Exercise, len(exercises))
	copy(shuffled, exercises)

	rng := rand.New(rand.NewSource(charSum(seedKey)))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > maxExerciseCandidates {
		shuffled = shuffled[:maxExerciseCandidates]
	}
	return shuffled
}

// charSum derives a deterministic seed from a string as the sum of its
// character codes. Collisions are fine; only per-day stability matters.
func charSum(s string) int64 {
	var sum int64
	for _, c := range s {
		sum += int64(c)
	}
	return sum
}
