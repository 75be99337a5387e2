package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"fitlistic/fitness-app/internal/config"
	"fitlistic/fitness-app/internal/domain"
	"fitlistic/fitness-app/internal/repository"
	"fitlistic/fitness-app/internal/repository/mongo"
	"fitlistic/fitness-app/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// runMode selects which command the binary executes. Generation is the
// default; the tracking modes each require -user.
type runMode int

const (
	modeGenerate runMode = iota
	modeLog
	modeStats
	modeComplete
)

func main() {
	var (
		goalsFlag    = flag.String("goals", "General Fitness", "comma-separated fitness goals")
		levelFlag    = flag.String("level", "beginner", "experience level: beginner, intermediate or advanced")
		durationFlag = flag.Int("duration", 0, "workout duration in minutes (default from config)")
		weightFlag   = flag.Float64("weight", 70, "body weight in kg")
		heightFlag   = flag.Float64("height", 175, "height in cm")
		startFlag    = flag.String("start", "", "plan start date (YYYY-MM-DD, default today)")
		restDayFlag  = flag.String("rest-day", "", "preferred rest day (YYYY-MM-DD within the plan week)")
		userFlag     = flag.String("user", "", "user ID (hex); when set the plan is saved as the user's active plan")
		logFlag      = flag.String("log", "", "log a completed activity of this type (e.g. exercise, yoga) instead of generating a plan")
		minutesFlag  = flag.Int("minutes", 0, "duration in minutes of the logged activity (with -log)")
		notesFlag    = flag.String("notes", "", "free-form notes for the logged activity (with -log)")
		statsFlag    = flag.Bool("stats", false, "print this week's workout stats instead of generating a plan")
		completeFlag = flag.String("complete", "", "mark this weekday (e.g. monday) completed on the active plan")
	)
	flag.Parse()

	mode, err := selectMode(*logFlag, *statsFlag, *completeFlag)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	log.Println("Starting Fitlistic planner...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), time.Minute)
	defer cancelIndexes()
	mongo.EnsureContentIndexes(indexCtx, appDB)
	mongo.EnsurePlanIndexes(indexCtx, appDB.Collection("user_workout_plans"))
	mongo.EnsureWorkoutLogIndexes(indexCtx, appDB.Collection("workout_logs"))

	contentRepo := mongo.NewMongoContentRepository(appDB)
	planRepo := mongo.NewMongoPlanRepository(appDB)
	logRepo := mongo.NewMongoWorkoutLogRepository(appDB)
	planner := service.NewPlannerService(contentRepo, nil)
	tracking := service.NewTrackingService(logRepo, planRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch mode {
	case modeLog:
		runLog(ctx, tracking, *userFlag, *logFlag, *minutesFlag, *weightFlag, *notesFlag)
	case modeStats:
		runStats(ctx, tracking, planRepo, *userFlag)
	case modeComplete:
		runComplete(ctx, tracking, *userFlag, *completeFlag)
	default:
		runGenerate(ctx, cfg, planner, planRepo,
			*goalsFlag, *levelFlag, *durationFlag, *weightFlag, *heightFlag, *startFlag, *restDayFlag, *userFlag)
	}
}

// selectMode picks the command implied by the tracking flags. At most one
// tracking flag may be set; none of them means plan generation.
func selectMode(logType string, stats bool, completeDay string) (runMode, error) {
	var modes []runMode
	if logType != "" {
		modes = append(modes, modeLog)
	}
	if stats {
		modes = append(modes, modeStats)
	}
	if completeDay != "" {
		modes = append(modes, modeComplete)
	}
	switch len(modes) {
	case 0:
		return modeGenerate, nil
	case 1:
		return modes[0], nil
	default:
		return modeGenerate, errors.New("-log, -stats and -complete are mutually exclusive")
	}
}

func runGenerate(ctx context.Context, cfg config.Config, planner service.PlannerService, planRepo repository.PlanRepository,
	goals, level string, duration int, weight, height float64, start, restDay, user string) {
	req := buildRequest(cfg, goals, level, duration, weight, height, start, restDay)

	plan, err := planner.GeneratePlan(ctx, req)
	if err != nil {
		log.Fatalf("FATAL: Plan generation failed: %v", err)
	}
	log.Printf("Generated plan %s starting %s", plan.Metadata.GenerationID, plan.Metadata.StartDate)

	if user != "" {
		userID := parseUserID(user)
		stored := &domain.WorkoutPlan{UserID: userID, Plan: *plan}
		planID, err := planRepo.Create(ctx, stored)
		if err != nil {
			log.Fatalf("FATAL: Could not save plan: %v", err)
		}
		log.Printf("Saved plan %s as active plan for user %s", planID.Hex(), userID.Hex())
	}

	printJSON(plan)
}

func runLog(ctx context.Context, tracking service.TrackingService, user, activityType string, minutes int, weight float64, notes string) {
	userID := parseUserID(user)

	entry, err := tracking.LogWorkout(ctx, userID, time.Now().UTC(), activityType, minutes, weight, notes)
	if err != nil {
		log.Fatalf("FATAL: Could not log workout: %v", err)
	}
	log.Printf("Logged %d min of %s (%d kcal) for user %s", entry.DurationMinutes, entry.ActivityType, entry.CaloriesBurned, userID.Hex())
	printJSON(entry)
}

func runStats(ctx context.Context, tracking service.TrackingService, planRepo repository.PlanRepository, user string) {
	userID := parseUserID(user)

	stats, err := tracking.WeeklyStats(ctx, userID)
	if err != nil {
		log.Fatalf("FATAL: Could not load weekly stats: %v", err)
	}

	// Having no active plan is fine; the stats still cover logged workouts.
	report := struct {
		*service.WeeklyWorkoutStats
		NextIncompleteDay string `json:"nextIncompleteDay,omitempty"`
	}{WeeklyWorkoutStats: stats}

	plan, err := planRepo.GetActiveByUserID(ctx, userID)
	switch {
	case err == nil:
		report.NextIncompleteDay = tracking.NextIncompleteDay(plan, time.Now().UTC())
	case errors.Is(err, repository.ErrNotFound):
		log.Printf("No active plan for user %s", userID.Hex())
	default:
		log.Fatalf("FATAL: Could not load active plan: %v", err)
	}

	printJSON(report)
}

func runComplete(ctx context.Context, tracking service.TrackingService, user, day string) {
	userID := parseUserID(user)

	if err := tracking.MarkDayCompleted(ctx, userID, day); err != nil {
		log.Fatalf("FATAL: Could not mark %s completed: %v", day, err)
	}
	log.Printf("Marked %s completed on the active plan for user %s", strings.ToLower(day), userID.Hex())
}

func parseUserID(user string) primitive.ObjectID {
	if user == "" {
		log.Fatalf("FATAL: -user is required for this command")
	}
	userID, err := primitive.ObjectIDFromHex(user)
	if err != nil {
		log.Fatalf("FATAL: Invalid user ID %q: %v", user, err)
	}
	return userID
}

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		log.Fatalf("FATAL: Could not encode output: %v", err)
	}
}

// buildRequest assembles a PlanRequest from flags, filling the 7-day date
// range from the start date.
func buildRequest(cfg config.Config, goals, level string, duration int, weight, height float64, start, restDay string) domain.PlanRequest {
	if duration == 0 {
		duration = cfg.Planner.DefaultDuration
	}
	if start == "" {
		start = time.Now().UTC().Format(domain.DateLayout)
	}

	startDate, err := time.Parse(domain.DateLayout, start)
	if err != nil {
		log.Fatalf("FATAL: Invalid start date %q: %v", start, err)
	}
	dateRange := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		dateRange = append(dateRange, startDate.AddDate(0, 0, i).Format(domain.DateLayout))
	}

	var parsedGoals []domain.Goal
	for _, g := range strings.Split(goals, ",") {
		if g = strings.TrimSpace(g); g != "" {
			parsedGoals = append(parsedGoals, domain.Goal(g))
		}
	}

	return domain.PlanRequest{
		WeightKg:         weight,
		HeightCm:         height,
		FitnessGoals:     parsedGoals,
		ExperienceLevel:  domain.Level(level),
		PreferredRestDay: restDay,
		WorkoutDuration:  duration,
		StartDate:        start,
		DateRange:        dateRange,
	}
}
