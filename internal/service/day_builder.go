package service

import (
	"context"
	"math/rand"

	"fitlistic/fitness-app/internal/domain"
)

// minExerciseMinutes is the floor for per-exercise time, guarding against
// degenerate allocations when auxiliary components consume most of the
// budget.
const minExerciseMinutes = 5

// selectionOffsets gives each single-instance category a distinct small
// offset on top of the day seed, so the same base seed does not pick the
// same index across categories.
var selectionOffsets = map[domain.Category]int64{
	domain.CategoryWarmUp:     0,
	domain.CategoryBreathwork: 1,
	domain.CategoryStretching: 2,
	domain.CategoryCoolDown:   3,
	domain.CategoryMeditation: 4,
}

// scheduleBuilder assembles one calendar day's ordered block list for a
// single plan generation.
type scheduleBuilder struct {
	fetcher      *contentFetcher
	table        AllocationTable
	level        domain.Level
	totalMinutes int
}

// selectActivity picks one item deterministically from candidates using a
// seed derived from the day plus the category's offset. Returns nil when
// there are no candidates.
func selectActivity(candidates []domain.Activity, seedBase, offset int64) domain.Activity {
	if len(candidates) == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seedBase + offset))
	return candidates[rng.Intn(len(candidates))]
}

// fetchAndSelect fetches candidates for a category and makes the day's
// seeded pick, wrapping it in a block with the given duration. Returns nil
// when the category has no content for this day.
func (b *scheduleBuilder) fetchAndSelect(ctx context.Context, category domain.Category, dayDate string, seedBase int64, minutes int) (*domain.ScheduledBlock, error) {
	candidates, err := b.fetcher.FetchActivities(ctx, category, dayDate)
	if err != nil {
		return nil, err
	}
	selected := selectActivity(candidates, seedBase, selectionOffsets[category])
	if selected == nil {
		return nil, nil
	}
	return &domain.ScheduledBlock{Activity: selected.Snapshot(), Duration: minutes}, nil
}

// exerciseBlocks builds the main-exercise blocks: up to maxCount exercises,
// each with the time share computed by the caller and the sets/reps
// resolved for the user's level. Exercises with no difficulty data at all
// are skipped.
func (b *scheduleBuilder) exerciseBlocks(exercises []domain.Exercise, timePerExercise, maxCount int) []domain.ScheduledBlock {
	count := len(exercises)
	if count > maxCount {
		count = maxCount
	}

	blocks := make([]domain.ScheduledBlock, 0, count)
	for _, ex := range exercises[:count] {
		prescription, _, ok := ex.PrescriptionFor(b.level)
		if !ok {
			continue
		}
		blocks = append(blocks, domain.ScheduledBlock{
			Activity: domain.ActivitySnapshot{
				ID:        ex.ID,
				Name:      ex.Name,
				Type:      domain.CategoryExercise,
				Exercises: []domain.ExerciseDetail{ex.Detail(prescription)},
			},
			Duration: timePerExercise,
		})
	}
	return blocks
}

// BuildDay assembles the ordered schedule for one workout day: warm-up,
// breathwork, main exercises, stretching, cool-down, meditation. Components
// whose category yields no content are omitted; an empty day is valid.
func (b *scheduleBuilder) BuildDay(ctx context.Context, dayDate string) ([]domain.ScheduledBlock, error) {
	durations := b.table.Allocate(b.totalMinutes)
	seedBase := charSum(dayDate)

	warmup, err := b.fetchAndSelect(ctx, domain.CategoryWarmUp, dayDate, seedBase, durations.WarmupMinutes)
	if err != nil {
		return nil, err
	}

	var breathwork *domain.ScheduledBlock
	if durations.IncludeBreathwork {
		breathwork, err = b.fetchAndSelect(ctx, domain.CategoryBreathwork, dayDate, seedBase, durations.BreathworkMinutes)
		if err != nil {
			return nil, err
		}
	}

	exercises, err := b.fetcher.FetchExercises(ctx, dayDate)
	if err != nil {
		return nil, err
	}

	// Time actually claimed by auxiliary components; cool-down and
	// meditation are budgeted unconditionally, matching the allocation
	// table's intent.
	auxiliaryTime := durations.CooldownMinutes + durations.MeditationMinutes
	if warmup != nil {
		auxiliaryTime += durations.WarmupMinutes
	}
	if breathwork != nil {
		auxiliaryTime += durations.BreathworkMinutes
	}
	if durations.IncludeStretching {
		auxiliaryTime += durations.StretchingMinutes
	}

	var exerciseList []domain.ScheduledBlock
	exerciseCount := len(exercises)
	if exerciseCount > durations.MaxExercises {
		exerciseCount = durations.MaxExercises
	}
	if exerciseCount > 0 {
		remaining := b.totalMinutes - auxiliaryTime
		timePerExercise := remaining / exerciseCount
		if timePerExercise < minExerciseMinutes {
			timePerExercise = minExerciseMinutes
		}
		exerciseList = b.exerciseBlocks(exercises, timePerExercise, exerciseCount)
	}

	var stretching *domain.ScheduledBlock
	if durations.IncludeStretching {
		stretching, err = b.fetchAndSelect(ctx, domain.CategoryStretching, dayDate, seedBase, durations.StretchingMinutes)
		if err != nil {
			return nil, err
		}
	}

	cooldown, err := b.fetchAndSelect(ctx, domain.CategoryCoolDown, dayDate, seedBase, durations.CooldownMinutes)
	if err != nil {
		return nil, err
	}

	meditation, err := b.fetchAndSelect(ctx, domain.CategoryMeditation, dayDate, seedBase, durations.MeditationMinutes)
	if err != nil {
		return nil, err
	}

	schedule := make([]domain.ScheduledBlock, 0, len(exerciseList)+5)
	if warmup != nil {
		schedule = append(schedule, *warmup)
	}
	if breathwork != nil {
		schedule = append(schedule, *breathwork)
	}
	schedule = append(schedule, exerciseList...)
	if stretching != nil {
		schedule = append(schedule, *stretching)
	}
	if cooldown != nil {
		schedule = append(schedule, *cooldown)
	}
	if meditation != nil {
		schedule = append(schedule, *meditation)
	}

	return schedule, nil
}
