package history

import (
	"context"
	"fmt"
	"time"

	"github.com/myrjola/planfit/internal/contexthelpers"
	"github.com/myrjola/planfit/internal/metrics"
	"github.com/myrjola/planfit/internal/sqlite"
)

const storageDateFormat = time.DateOnly

// sqliteRepository handles database operations for the workout and exercise
// logs.
type sqliteRepository struct {
	db *sqlite.Database
}

func newSQLiteRepository(db *sqlite.Database) *sqliteRepository {
	return &sqliteRepository{db: db}
}

// appendWorkout appends one performed session, assigning the next sequence
// number for the user.
func (r *sqliteRepository) appendWorkout(ctx context.Context, entry WorkoutEntry) error {
	userID := contexthelpers.CurrentProfileID(ctx)
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO workout_log (
			user_id, seq, workout_date, template_name, category, intensity,
			duration_min, total_load_kg, calories
		)
		SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?, ?, ?, ?
		FROM (SELECT seq FROM workout_log WHERE user_id = ?)`,
		userID,
		storageDate(entry.Date),
		entry.TemplateName,
		entry.Category,
		entry.Intensity,
		entry.DurationMin,
		entry.TotalLoadKg,
		entry.Calories,
		userID,
	)
	if err != nil {
		return fmt.Errorf("append workout entry: %w", err)
	}
	return nil
}

// listWorkouts returns the full workout log for the current user in
// insertion order.
func (r *sqliteRepository) listWorkouts(ctx context.Context) ([]WorkoutEntry, error) {
	userID := contexthelpers.CurrentProfileID(ctx)
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT seq, workout_date, template_name, category, intensity,
		       duration_min, total_load_kg, calories
		FROM workout_log
		WHERE user_id = ?
		ORDER BY seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("query workout log: %w", err)
	}
	defer rows.Close()

	var entries []WorkoutEntry
	for rows.Next() {
		var entry WorkoutEntry
		if err := rows.Scan(
			&entry.Seq,
			&entry.Date,
			&entry.TemplateName,
			&entry.Category,
			&entry.Intensity,
			&entry.DurationMin,
			&entry.TotalLoadKg,
			&entry.Calories,
		); err != nil {
			return nil, fmt.Errorf("scan workout entry: %w", err)
		}
		entry.Date = apiDate(entry.Date)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout log: %w", err)
	}
	return entries, nil
}

// appendExerciseSets appends the logged sets of one session.
func (r *sqliteRepository) appendExerciseSets(ctx context.Context, sets []ExerciseSet) error {
	userID := contexthelpers.CurrentProfileID(ctx)
	for _, set := range sets {
		_, err := r.db.ReadWrite.ExecContext(ctx, `
			INSERT INTO exercise_log (
				user_id, seq, workout_date, exercise_name, set_number, weight_kg, reps, minutes
			)
			SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?, ?, ?
			FROM (SELECT seq FROM exercise_log WHERE user_id = ?)`,
			userID,
			storageDate(set.Date),
			set.ExerciseName,
			set.SetNumber,
			set.WeightKg,
			set.Reps,
			set.Minutes,
			userID,
		)
		if err != nil {
			return fmt.Errorf("append exercise set: %w", err)
		}
	}
	return nil
}

// previousPerformance returns the sets logged for one exercise on the most
// recent date it appears, or nil when the exercise was never logged.
func (r *sqliteRepository) previousPerformance(ctx context.Context, exerciseName string) ([]ExerciseSet, error) {
	userID := contexthelpers.CurrentProfileID(ctx)
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT seq, workout_date, exercise_name, set_number, weight_kg, reps, minutes
		FROM exercise_log
		WHERE user_id = ? AND exercise_name = ? AND workout_date = (
			SELECT MAX(workout_date) FROM exercise_log WHERE user_id = ? AND exercise_name = ?
		)
		ORDER BY set_number, seq`,
		userID, exerciseName, userID, exerciseName)
	if err != nil {
		return nil, fmt.Errorf("query previous performance: %w", err)
	}
	defer rows.Close()

	var sets []ExerciseSet
	for rows.Next() {
		var set ExerciseSet
		if err := rows.Scan(
			&set.Seq,
			&set.Date,
			&set.ExerciseName,
			&set.SetNumber,
			&set.WeightKg,
			&set.Reps,
			&set.Minutes,
		); err != nil {
			return nil, fmt.Errorf("scan exercise set: %w", err)
		}
		set.Date = apiDate(set.Date)
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise sets: %w", err)
	}
	return sets, nil
}

func storageDate(date string) string {
	t, err := time.Parse(metrics.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(storageDateFormat)
}

func apiDate(date string) string {
	t, err := time.Parse(storageDateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(metrics.DateFormat)
}
