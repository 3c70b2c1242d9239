package profile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/myrjola/planfit/internal/metrics"
	"github.com/myrjola/planfit/internal/sqlite"
)

// Service handles the business logic for biometric profiles, goals, and the
// measurement history.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
}

// NewService creates a new profile service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db),
		logger: logger,
	}
}

// Profile retrieves the stored biometric profile for the current user.
func (s *Service) Profile(ctx context.Context) (Profile, error) {
	profile, err := s.repo.getProfile(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// SaveProfile persists the biometric profile for the current user.
func (s *Service) SaveProfile(ctx context.Context, profile Profile) error {
	if err := s.repo.saveProfile(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Goal retrieves the active goal for the current user. A user without a
// stored goal gets a maintenance goal anchored on today.
func (s *Service) Goal(ctx context.Context, today time.Time) (Goal, error) {
	goal, err := s.repo.getGoal(ctx, today)
	if err != nil {
		return Goal{}, fmt.Errorf("get goal: %w", err)
	}
	return goal, nil
}

// SaveGoal persists the active goal for the current user, replacing any
// previous goal.
func (s *Service) SaveGoal(ctx context.Context, goal Goal) error {
	if err := s.repo.saveGoal(ctx, goal); err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

// Evolution returns the full measurement history in insertion order.
func (s *Service) Evolution(ctx context.Context) ([]EvolutionRecord, error) {
	records, err := s.repo.listEvolution(ctx)
	if err != nil {
		return nil, fmt.Errorf("list evolution: %w", err)
	}
	return records, nil
}

// RecordEvolution appends one measurement session to the history. Zero
// fields mean "not measured" and are preserved as such.
func (s *Service) RecordEvolution(ctx context.Context, record EvolutionRecord) error {
	if err := s.repo.appendEvolution(ctx, record); err != nil {
		return fmt.Errorf("record evolution: %w", err)
	}
	return nil
}

// EffectiveSnapshot builds the metrics input for the current user. The
// stored profile provides identity fields while the evolution history
// overrides each composition measurement with its freshest non-zero value.
func (s *Service) EffectiveSnapshot(ctx context.Context) (metrics.Snapshot, MergedMeasurements, error) {
	profile, err := s.repo.getProfile(ctx)
	if err != nil {
		return metrics.Snapshot{}, MergedMeasurements{}, fmt.Errorf("get profile: %w", err)
	}
	records, err := s.repo.listEvolution(ctx)
	if err != nil {
		return metrics.Snapshot{}, MergedMeasurements{}, fmt.Errorf("list evolution: %w", err)
	}

	merged := MergeLatest(records)
	if merged.WeightKg == 0 {
		merged.WeightKg = profile.WeightKg
	}
	if merged.BodyFatPct == 0 {
		merged.BodyFatPct = profile.BodyFatPct
	}
	if merged.VisceralLevel == 0 {
		merged.VisceralLevel = profile.VisceralLevel
	}
	if merged.MusclePct == 0 {
		merged.MusclePct = profile.MusclePct
	}

	snapshot := metrics.Snapshot{
		Sex:      profile.Sex,
		Age:      profile.Age,
		HeightM:  profile.HeightM,
		WeightKg: merged.WeightKg,
	}
	return snapshot, merged, nil
}

// ComputeMetrics derives the full health-metric record for the current user
// from the effective snapshot and the active goal.
func (s *Service) ComputeMetrics(ctx context.Context, today time.Time) (metrics.Result, error) {
	snapshot, _, err := s.EffectiveSnapshot(ctx)
	if err != nil {
		return metrics.Result{}, fmt.Errorf("build snapshot: %w", err)
	}
	goal, err := s.repo.getGoal(ctx, today)
	if err != nil {
		return metrics.Result{}, fmt.Errorf("get goal: %w", err)
	}
	return metrics.Compute(snapshot, metrics.Goal{
		StartDate:      goal.StartDate,
		Activity:       goal.Activity,
		Environment:    goal.Environment,
		Direction:      goal.Direction,
		TargetWeightKg: goal.TargetWeightKg,
		DietFactor:     goal.DietFactor,
	}, today), nil
}

// ClassifyComposition buckets the current user's freshest composition
// measurements against the reference tables.
func (s *Service) ClassifyComposition(ctx context.Context) (metrics.Classification, error) {
	snapshot, merged, err := s.EffectiveSnapshot(ctx)
	if err != nil {
		return metrics.Classification{}, fmt.Errorf("build snapshot: %w", err)
	}
	return metrics.ClassifyComposition(
		merged.BodyFatPct, merged.VisceralLevel, merged.MusclePct, snapshot.Sex, snapshot.Age,
	), nil
}

// Progress reports movement from the first recorded weight towards the goal
// weight. Without an explicit target the ideal reference weight for the
// user's height stands in, so progress is still measurable. It returns nil
// only when the history holds no weight entries.
func (s *Service) Progress(ctx context.Context, today time.Time) (*GoalProgress, error) {
	records, err := s.repo.listEvolution(ctx)
	if err != nil {
		return nil, fmt.Errorf("list evolution: %w", err)
	}
	goal, err := s.repo.getGoal(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	target := goal.TargetWeightKg
	if target <= 0 {
		snapshot, _, err := s.EffectiveSnapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("effective snapshot: %w", err)
		}
		target = metrics.IdealWeight(snapshot.HeightM)
	}
	return AnalyzeProgress(records, target), nil
}
