// internal/domain/exercise.go
package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prescription holds the sets/reps scheme an exercise defines for one
// difficulty level.
type Prescription struct {
	Sets  int    `bson:"sets" json:"sets"`
	Reps  string `bson:"reps" json:"reps"` // e.g. "8-12" or "30 seconds"
	Rest  string `bson:"rest,omitempty" json:"rest,omitempty"`
	Tempo string `bson:"tempo,omitempty" json:"tempo,omitempty"`
}

// Exercise represents a single exercise definition in the content library.
// Unlike the other content categories it carries a per-level prescription
// map; an exercise with no levels at all is not eligible for scheduling.
type Exercise struct {
	ID               primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Name             string                 `bson:"name" json:"name"`
	Description      string                 `bson:"description,omitempty" json:"description,omitempty"`
	FormCues         []string               `bson:"form_cues,omitempty" json:"formCues,omitempty"`
	TargetMuscles    []string               `bson:"target_muscles,omitempty" json:"targetMuscles,omitempty"`
	Tags             []string               `bson:"tags,omitempty" json:"tags,omitempty"`
	EquipmentNeeded  string                 `bson:"equipment_needed,omitempty" json:"equipmentNeeded,omitempty"`
	DifficultyLevels map[Level]Prescription `bson:"difficulty_levels" json:"difficultyLevels"`
}

// PrescriptionFor resolves the prescription to use for the requested level,
// falling back to easier levels when the exact one is absent and finally to
// whatever level the exercise does define. The second return value is the
// level actually used; ok is false when the exercise defines no levels.
func (e Exercise) PrescriptionFor(level Level) (Prescription, Level, bool) {
	if p, ok := e.DifficultyLevels[level]; ok {
		return p, level, true
	}
	for _, fb := range level.Fallbacks() {
		if p, ok := e.DifficultyLevels[fb]; ok {
			return p, fb, true
		}
	}
	// Last resort: any defined level, easiest first for stable results.
	for _, l := range Levels {
		if p, ok := e.DifficultyLevels[l]; ok {
			return p, l, true
		}
	}
	return Prescription{}, "", false
}

// Detail builds the per-exercise entry embedded in an exercise block's
// snapshot, using the prescription resolved for the given level.
func (e Exercise) Detail(p Prescription) ExerciseDetail {
	return ExerciseDetail{
		Name:          e.Name,
		FormCues:      e.FormCues,
		Sets:          p.Sets,
		Reps:          p.Reps,
		Rest:          p.Rest,
		Tempo:         p.Tempo,
		TargetMuscles: e.TargetMuscles,
	}
}

// ExerciseDetail is the denormalized exercise entry inside a scheduled
// block, with the sets/reps already resolved for the user's level.
type ExerciseDetail struct {
	Name          string   `bson:"name" json:"name"`
	FormCues      []string `bson:"form_cues,omitempty" json:"formCues,omitempty"`
	Sets          int      `bson:"sets" json:"sets"`
	Reps          string   `bson:"reps" json:"reps"`
	Rest          string   `bson:"rest,omitempty" json:"rest,omitempty"`
	Tempo         string   `bson:"tempo,omitempty" json:"tempo,omitempty"`
	TargetMuscles []string `bson:"target_muscles,omitempty" json:"targetMuscles,omitempty"`
}
