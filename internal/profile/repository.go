package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/myrjola/planfit/internal/contexthelpers"
	"github.com/myrjola/planfit/internal/metrics"
	"github.com/myrjola/planfit/internal/sqlite"
)

// Dates are stored ISO so that lexical ordering in SQL matches calendar
// ordering. The day/month/year convention only exists at the API boundary.
const storageDateFormat = time.DateOnly

// sqliteRepository handles database operations for profiles, goals, and the
// evolution history.
type sqliteRepository struct {
	db *sqlite.Database
}

func newSQLiteRepository(db *sqlite.Database) *sqliteRepository {
	return &sqliteRepository{db: db}
}

// getProfile retrieves the biometric profile for the current user. An absent
// row yields a zero-valued profile so that a fresh user can compute metrics
// from the documented defaults.
func (r *sqliteRepository) getProfile(ctx context.Context) (Profile, error) {
	userID := contexthelpers.CurrentProfileID(ctx)
	var profile Profile
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT sex, age, height_m, weight_kg, body_fat_pct, visceral_level, muscle_pct
		FROM profiles
		WHERE user_id = ?`, userID).Scan(
		&profile.Sex,
		&profile.Age,
		&profile.HeightM,
		&profile.WeightKg,
		&profile.BodyFatPct,
		&profile.VisceralLevel,
		&profile.MusclePct,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}
	return profile, nil
}

// saveProfile upserts the biometric profile for the current user.
func (r *sqliteRepository) saveProfile(ctx context.Context, profile Profile) error {
	userID := contexthelpers.CurrentProfileID(ctx)
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO profiles (user_id, sex, age, height_m, weight_kg, body_fat_pct, visceral_level, muscle_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			sex            = excluded.sex,
			age            = excluded.age,
			height_m       = excluded.height_m,
			weight_kg      = excluded.weight_kg,
			body_fat_pct   = excluded.body_fat_pct,
			visceral_level = excluded.visceral_level,
			muscle_pct     = excluded.muscle_pct`,
		userID,
		profile.Sex,
		profile.Age,
		profile.HeightM,
		profile.WeightKg,
		profile.BodyFatPct,
		profile.VisceralLevel,
		profile.MusclePct,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// getGoal retrieves the active goal for the current user. An absent row
// yields a maintenance goal starting today so that callers never branch on
// goal existence.
func (r *sqliteRepository) getGoal(ctx context.Context, today time.Time) (Goal, error) {
	userID := contexthelpers.CurrentProfileID(ctx)
	var goal Goal
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT start_date, activity, environment, direction, target_weight, diet_factor
		FROM goals
		WHERE user_id = ?`, userID).Scan(
		&goal.StartDate,
		&goal.Activity,
		&goal.Environment,
		&goal.Direction,
		&goal.TargetWeightKg,
		&goal.DietFactor,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Goal{
			StartDate:   today.Format(metrics.DateFormat),
			Activity:    metrics.ActivityModerate,
			Environment: metrics.EnvironmentMild,
			Direction:   metrics.DirectionMaintenance,
			DietFactor:  1,
		}, nil
	}
	if err != nil {
		return Goal{}, fmt.Errorf("query goal: %w", err)
	}
	goal.StartDate = apiDate(goal.StartDate)
	return goal, nil
}

// saveGoal upserts the single active goal for the current user.
func (r *sqliteRepository) saveGoal(ctx context.Context, goal Goal) error {
	userID := contexthelpers.CurrentProfileID(ctx)
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO goals (user_id, start_date, activity, environment, direction, target_weight, diet_factor)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			start_date    = excluded.start_date,
			activity      = excluded.activity,
			environment   = excluded.environment,
			direction     = excluded.direction,
			target_weight = excluded.target_weight,
			diet_factor   = excluded.diet_factor`,
		userID,
		storageDate(goal.StartDate),
		goal.Activity,
		goal.Environment,
		goal.Direction,
		goal.TargetWeightKg,
		goal.DietFactor,
	)
	if err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

// listEvolution returns the full measurement history for the current user in
// insertion order.
func (r *sqliteRepository) listEvolution(ctx context.Context) ([]EvolutionRecord, error) {
	userID := contexthelpers.CurrentProfileID(ctx)
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT seq, record_date, weight_kg, body_fat_pct, visceral_level, muscle_pct,
		       waist_cm, hip_cm, arm_cm, thigh_cm
		FROM evolution_records
		WHERE user_id = ?
		ORDER BY seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("query evolution records: %w", err)
	}
	defer rows.Close()

	var records []EvolutionRecord
	for rows.Next() {
		var record EvolutionRecord
		if err := rows.Scan(
			&record.Seq,
			&record.Date,
			&record.WeightKg,
			&record.BodyFatPct,
			&record.VisceralLevel,
			&record.MusclePct,
			&record.WaistCm,
			&record.HipCm,
			&record.ArmCm,
			&record.ThighCm,
		); err != nil {
			return nil, fmt.Errorf("scan evolution record: %w", err)
		}
		record.Date = apiDate(record.Date)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evolution records: %w", err)
	}
	return records, nil
}

// appendEvolution appends one measurement record, assigning the next
// sequence number for the user.
func (r *sqliteRepository) appendEvolution(ctx context.Context, record EvolutionRecord) error {
	userID := contexthelpers.CurrentProfileID(ctx)
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO evolution_records (
			user_id, seq, record_date, weight_kg, body_fat_pct, visceral_level, muscle_pct,
			waist_cm, hip_cm, arm_cm, thigh_cm
		)
		SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?, ?, ?, ?, ?, ?
		FROM (SELECT seq FROM evolution_records WHERE user_id = ?)`,
		userID,
		storageDate(record.Date),
		record.WeightKg,
		record.BodyFatPct,
		record.VisceralLevel,
		record.MusclePct,
		record.WaistCm,
		record.HipCm,
		record.ArmCm,
		record.ThighCm,
		userID,
	)
	if err != nil {
		return fmt.Errorf("append evolution record: %w", err)
	}
	return nil
}

// storageDate normalises an API-format date for storage. Unparseable input
// is stored verbatim rather than rejected.
func storageDate(date string) string {
	t, err := time.Parse(metrics.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(storageDateFormat)
}

// apiDate converts a stored date back to the API convention.
func apiDate(date string) string {
	t, err := time.Parse(storageDateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(metrics.DateFormat)
}
