package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/myrjola/planfit/internal/contexthelpers"
	"github.com/myrjola/planfit/internal/sqlite"
)

const storageDateFormat = time.DateOnly

// sqliteRepository handles database operations for the periodization
// hierarchy and the workout templates.
type sqliteRepository struct {
	db *sqlite.Database
}

func newSQLiteRepository(db *sqlite.Database) *sqliteRepository {
	return &sqliteRepository{db: db}
}

// listMacrocycles returns all macrocycles of the current user ordered by
// start date.
func (r *sqliteRepository) listMacrocycles(ctx context.Context) ([]Macrocycle, error) {
	userID := contexthelpers.CurrentProfileID(ctx)
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, goal_markdown, start_date, end_date
		FROM macrocycles
		WHERE user_id = ?
		ORDER BY start_date`, userID)
	if err != nil {
		return nil, fmt.Errorf("query macrocycles: %w", err)
	}
	defer rows.Close()

	var macrocycles []Macrocycle
	for rows.Next() {
		var (
			macro      Macrocycle
			start, end string
		)
		if err := rows.Scan(&macro.ID, &macro.Name, &macro.GoalMarkdown, &start, &end); err != nil {
			return nil, fmt.Errorf("scan macrocycle: %w", err)
		}
		if macro.Start, err = time.Parse(storageDateFormat, start); err != nil {
			return nil, fmt.Errorf("parse macrocycle start %q: %w", start, err)
		}
		if macro.End, err = time.Parse(storageDateFormat, end); err != nil {
			return nil, fmt.Errorf("parse macrocycle end %q: %w", end, err)
		}
		macrocycles = append(macrocycles, macro)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate macrocycles: %w", err)
	}
	return macrocycles, nil
}

// createMacrocycle inserts a macrocycle and returns its id.
func (r *sqliteRepository) createMacrocycle(ctx context.Context, macro Macrocycle) (int, error) {
	userID := contexthelpers.CurrentProfileID(ctx)
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO macrocycles (user_id, name, goal_markdown, start_date, end_date)
		VALUES (?, ?, ?, ?, ?)`,
		userID,
		macro.Name,
		macro.GoalMarkdown,
		macro.Start.Format(storageDateFormat),
		macro.End.Format(storageDateFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("insert macrocycle: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("macrocycle id: %w", err)
	}
	return int(id), nil
}

// listMesocycles returns the mesocycles of all the current user's
// macrocycles ordered by macrocycle and order index.
func (r *sqliteRepository) listMesocycles(ctx context.Context) ([]Mesocycle, error) {
	userID := contexthelpers.CurrentProfileID(ctx)
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT m.id, m.macrocycle_id, m.order_index, m.duration_weeks, m.focus
		FROM mesocycles m
		JOIN macrocycles mc ON mc.id = m.macrocycle_id
		WHERE mc.user_id = ?
		ORDER BY m.macrocycle_id, m.order_index`, userID)
	if err != nil {
		return nil, fmt.Errorf("query mesocycles: %w", err)
	}
	defer rows.Close()

	var mesocycles []Mesocycle
	for rows.Next() {
		var meso Mesocycle
		if err := rows.Scan(&meso.ID, &meso.MacrocycleID, &meso.OrderIndex, &meso.DurationWeeks, &meso.Focus); err != nil {
			return nil, fmt.Errorf("scan mesocycle: %w", err)
		}
		mesocycles = append(mesocycles, meso)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mesocycles: %w", err)
	}
	return mesocycles, nil
}

// createMesocycle inserts a mesocycle and returns its id. The unique
// (macrocycle_id, order_index) constraint rejects duplicate positions.
func (r *sqliteRepository) createMesocycle(ctx context.Context, meso Mesocycle) (int, error) {
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO mesocycles (macrocycle_id, order_index, duration_weeks, focus)
		VALUES (?, ?, ?, ?)`,
		meso.MacrocycleID,
		meso.OrderIndex,
		meso.DurationWeeks,
		meso.Focus,
	)
	if err != nil {
		return 0, fmt.Errorf("insert mesocycle: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("mesocycle id: %w", err)
	}
	return int(id), nil
}

// listAssignments returns every weekday assignment reachable from the
// current user's macrocycles.
func (r *sqliteRepository) listAssignments(ctx context.Context) ([]WeeklyAssignment, error) {
	userID := contexthelpers.CurrentProfileID(ctx)
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT wp.mesocycle_id, wp.week_number, wp.weekday, wp.template_name
		FROM weekly_plan wp
		JOIN mesocycles m ON m.id = wp.mesocycle_id
		JOIN macrocycles mc ON mc.id = m.macrocycle_id
		WHERE mc.user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("query weekly plan: %w", err)
	}
	defer rows.Close()

	var assignments []WeeklyAssignment
	for rows.Next() {
		var (
			assignment WeeklyAssignment
			weekday    string
		)
		if err := rows.Scan(&assignment.MesocycleID, &assignment.WeekNumber, &weekday, &assignment.TemplateName); err != nil {
			return nil, fmt.Errorf("scan weekly assignment: %w", err)
		}
		if assignment.Weekday, err = parseWeekday(weekday); err != nil {
			return nil, fmt.Errorf("parse weekday: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weekly plan: %w", err)
	}
	return assignments, nil
}

// saveAssignment upserts one weekday assignment.
func (r *sqliteRepository) saveAssignment(ctx context.Context, assignment WeeklyAssignment) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO weekly_plan (mesocycle_id, week_number, weekday, template_name)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (mesocycle_id, week_number, weekday) DO UPDATE SET
			template_name = excluded.template_name`,
		assignment.MesocycleID,
		assignment.WeekNumber,
		assignment.Weekday.String(),
		assignment.TemplateName,
	)
	if err != nil {
		return fmt.Errorf("save weekly assignment: %w", err)
	}
	return nil
}

// listTemplates returns the current user's workout templates keyed by name,
// exercise rows included.
func (r *sqliteRepository) listTemplates(ctx context.Context) (map[string]Template, error) {
	userID := contexthelpers.CurrentProfileID(ctx)
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT t.id, t.name, t.notes_markdown,
		       COALESCE(e.order_index, 0), COALESCE(e.exercise_name, ''),
		       COALESCE(e.exercise_type, ''), COALESCE(e.sets, 0), COALESCE(e.target, 0)
		FROM workout_templates t
		LEFT JOIN exercise_plan_rows e ON e.template_id = t.id
		WHERE t.user_id = ?
		ORDER BY t.name, e.order_index`, userID)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	templates := make(map[string]Template)
	for rows.Next() {
		var (
			template Template
			row      ExerciseRow
		)
		if err := rows.Scan(
			&template.ID,
			&template.Name,
			&template.NotesMarkdown,
			&row.OrderIndex,
			&row.ExerciseName,
			&row.ExerciseType,
			&row.Sets,
			&row.Target,
		); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		existing, ok := templates[template.Name]
		if ok {
			template = existing
		}
		if row.ExerciseName != "" {
			template.Exercises = append(template.Exercises, row)
		}
		templates[template.Name] = template
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return templates, nil
}

// saveTemplate upserts a template by name and replaces its exercise rows.
func (r *sqliteRepository) saveTemplate(ctx context.Context, template Template) error {
	userID := contexthelpers.CurrentProfileID(ctx)
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin template transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var templateID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO workout_templates (user_id, name, notes_markdown)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, name) DO UPDATE SET notes_markdown = excluded.notes_markdown
		RETURNING id`,
		userID, template.Name, template.NotesMarkdown).Scan(&templateID)
	if err != nil {
		return fmt.Errorf("upsert template: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM exercise_plan_rows WHERE template_id = ?`, templateID); err != nil {
		return fmt.Errorf("clear template rows: %w", err)
	}
	for _, row := range template.Exercises {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO exercise_plan_rows (template_id, order_index, exercise_name, exercise_type, sets, target)
			VALUES (?, ?, ?, ?, ?, ?)`,
			templateID, row.OrderIndex, row.ExerciseName, row.ExerciseType, row.Sets, row.Target)
		if err != nil {
			return fmt.Errorf("insert template row: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit template transaction: %w", err)
	}
	return nil
}

func parseWeekday(name string) (time.Weekday, error) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if day.String() == name {
			return day, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}
