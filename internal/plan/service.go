package plan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/myrjola/planfit/internal/errors"
	"github.com/myrjola/planfit/internal/logging"
	"github.com/myrjola/planfit/internal/sqlite"
	"golang.org/x/sync/errgroup"
)

// ErrValidation marks rejected plan-authoring input. Handlers map it to a
// client error instead of a server fault.
var ErrValidation = errors.NewSentinel("invalid plan input")

// Service handles the business logic for periodization and workout
// templates.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
}

// NewService creates a new plan service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db),
		logger: logger,
	}
}

// Schedule loads the full periodization state of the current user. The four
// collections are independent so they load concurrently over the read-only
// pool.
func (s *Service) Schedule(ctx context.Context) (Schedule, error) {
	var schedule Schedule
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		schedule.Macrocycles, err = s.repo.listMacrocycles(gctx)
		return err
	})
	g.Go(func() (err error) {
		schedule.Mesocycles, err = s.repo.listMesocycles(gctx)
		return err
	})
	g.Go(func() (err error) {
		schedule.Assignments, err = s.repo.listAssignments(gctx)
		return err
	})
	g.Go(func() (err error) {
		schedule.Templates, err = s.repo.listTemplates(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Schedule{}, fmt.Errorf("load schedule: %w", err)
	}
	return schedule, nil
}

// ResolveDate resolves the plan for one calendar date. A dangling template
// reference is logged since it means the stored plan is broken, but the
// resolution is still returned for the caller to degrade gracefully.
func (s *Service) ResolveDate(ctx context.Context, date time.Time) (Resolution, error) {
	schedule, err := s.Schedule(ctx)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve date: %w", err)
	}
	resolution := Resolve(schedule, date)
	if resolution.State == StateUnknownTemplate {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "weekly plan references unknown template",
			slog.String("template", resolution.TemplateName),
			slog.Time("date", resolution.Date))
	}
	return resolution, nil
}

// ResolveWeek resolves all seven days of the Monday-based week containing
// anchor, in weekday order.
func (s *Service) ResolveWeek(ctx context.Context, anchor time.Time) ([]Resolution, error) {
	schedule, err := s.Schedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve week: %w", err)
	}
	monday := startOfWeek(anchor)
	resolutions := make([]Resolution, 0, 7)
	for day := 0; day < 7; day++ {
		resolutions = append(resolutions, Resolve(schedule, monday.AddDate(0, 0, day)))
	}
	return resolutions, nil
}

// PlannedDays counts the training days of the Monday-based week containing
// anchor. Assignments with broken template references still count as
// planned: the user intended to train that day.
func (s *Service) PlannedDays(ctx context.Context, anchor time.Time) (int, error) {
	resolutions, err := s.ResolveWeek(ctx, anchor)
	if err != nil {
		return 0, fmt.Errorf("planned days: %w", err)
	}
	planned := 0
	for _, resolution := range resolutions {
		if resolution.State == StatePlanFound || resolution.State == StateUnknownTemplate {
			planned++
		}
	}
	return planned, nil
}

// Macrocycles lists the current user's macrocycles ordered by start date.
func (s *Service) Macrocycles(ctx context.Context) ([]Macrocycle, error) {
	macrocycles, err := s.repo.listMacrocycles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list macrocycles: %w", err)
	}
	return macrocycles, nil
}

// CreateMacrocycle validates and stores a macrocycle, returning its id.
func (s *Service) CreateMacrocycle(ctx context.Context, macro Macrocycle) (int, error) {
	if macro.Name == "" {
		return 0, errors.Wrap(ErrValidation, "macrocycle name is required")
	}
	if !macro.End.After(macro.Start) {
		return 0, errors.Wrap(ErrValidation, "macrocycle must end after it starts",
			slog.Time("start", macro.Start), slog.Time("end", macro.End))
	}
	id, err := s.repo.createMacrocycle(ctx, macro)
	if err != nil {
		return 0, fmt.Errorf("create macrocycle: %w", err)
	}
	return id, nil
}

// Mesocycles lists the mesocycles of all the current user's macrocycles.
func (s *Service) Mesocycles(ctx context.Context) ([]Mesocycle, error) {
	mesocycles, err := s.repo.listMesocycles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mesocycles: %w", err)
	}
	return mesocycles, nil
}

// CreateMesocycle validates and stores a mesocycle, returning its id.
func (s *Service) CreateMesocycle(ctx context.Context, meso Mesocycle) (int, error) {
	if meso.DurationWeeks < 1 {
		return 0, errors.Wrap(ErrValidation, "mesocycle needs at least one week",
			slog.Int("duration_weeks", meso.DurationWeeks))
	}
	if meso.OrderIndex < 1 {
		return 0, errors.Wrap(ErrValidation, "mesocycle order index starts at one",
			slog.Int("order_index", meso.OrderIndex))
	}
	id, err := s.repo.createMesocycle(ctx, meso)
	if err != nil {
		return 0, fmt.Errorf("create mesocycle: %w", err)
	}
	return id, nil
}

// SaveAssignment validates and upserts one weekday assignment.
func (s *Service) SaveAssignment(ctx context.Context, assignment WeeklyAssignment) error {
	if assignment.WeekNumber < 1 {
		return errors.Wrap(ErrValidation, "week number starts at one",
			slog.Int("week_number", assignment.WeekNumber))
	}
	if assignment.TemplateName == "" {
		assignment.TemplateName = RestTemplateName
	}
	if err := s.repo.saveAssignment(ctx, assignment); err != nil {
		return fmt.Errorf("save assignment: %w", err)
	}
	return nil
}

// Templates lists the current user's workout templates keyed by name.
func (s *Service) Templates(ctx context.Context) (map[string]Template, error) {
	templates, err := s.repo.listTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

// SaveTemplate validates and upserts a template with its exercise rows.
// The rest marker name is reserved and cannot name a real template.
func (s *Service) SaveTemplate(ctx context.Context, template Template) error {
	if template.Name == "" || template.Name == RestTemplateName {
		return errors.Wrap(ErrValidation, "template name is reserved or empty",
			slog.String("name", template.Name))
	}
	ctx = logging.WithAttrs(ctx, slog.String("template", template.Name))
	if err := s.repo.saveTemplate(ctx, template); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "template saved",
		slog.Int("exercises", len(template.Exercises)))
	return nil
}
