package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/myrjola/planfit/internal/metrics"
	"github.com/myrjola/planfit/internal/sqlite"
)

// Service handles the business logic for the workout and exercise logs.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
}

// NewService creates a new history service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db),
		logger: logger,
	}
}

// LogWorkout appends one performed session. When the entry carries no
// calorie figure one is estimated from the session parameters and the
// caller-supplied body weight.
func (s *Service) LogWorkout(ctx context.Context, entry WorkoutEntry, bodyWeightKg float64) (WorkoutEntry, error) {
	if entry.Calories == 0 {
		calories, err := metrics.EstimateExpenditure(
			entry.Category == "cardio",
			metrics.Intensity(entry.Intensity),
			entry.DurationMin,
			entry.TotalLoadKg,
			bodyWeightKg,
		)
		if err != nil {
			return WorkoutEntry{}, fmt.Errorf("estimate expenditure: %w", err)
		}
		entry.Calories = calories
	}

	if err := s.repo.appendWorkout(ctx, entry); err != nil {
		return WorkoutEntry{}, fmt.Errorf("log workout: %w", err)
	}
	return entry, nil
}

// LogExerciseSets appends the per-set detail of a session.
func (s *Service) LogExerciseSets(ctx context.Context, sets []ExerciseSet) error {
	if err := s.repo.appendExerciseSets(ctx, sets); err != nil {
		return fmt.Errorf("log exercise sets: %w", err)
	}
	return nil
}

// Workouts returns the full workout log in insertion order.
func (s *Service) Workouts(ctx context.Context) ([]WorkoutEntry, error) {
	entries, err := s.repo.listWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return entries, nil
}

// Stats summarises the workout log.
func (s *Service) Stats(ctx context.Context, today time.Time) (Stats, error) {
	entries, err := s.repo.listWorkouts(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list workouts: %w", err)
	}
	return Aggregate(entries, today), nil
}

// Consistency reports the training streak and this week's adherence against
// the given number of planned training days.
func (s *Service) Consistency(ctx context.Context, plannedDays int, today time.Time) (Consistency, error) {
	entries, err := s.repo.listWorkouts(ctx)
	if err != nil {
		return Consistency{}, fmt.Errorf("list workouts: %w", err)
	}
	return AnalyzeConsistency(entries, plannedDays, today), nil
}

// PreviousPerformance returns the sets logged for one exercise on the most
// recent date it appears, or nil when it was never logged.
func (s *Service) PreviousPerformance(ctx context.Context, exerciseName string) ([]ExerciseSet, error) {
	sets, err := s.repo.previousPerformance(ctx, exerciseName)
	if err != nil {
		return nil, fmt.Errorf("previous performance: %w", err)
	}
	return sets, nil
}
