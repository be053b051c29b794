package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/course-planner/internal/dto"
	"github.com/noah-isme/course-planner/internal/models"
	"github.com/noah-isme/course-planner/internal/scheduler"
	appErrors "github.com/noah-isme/course-planner/pkg/errors"
	"github.com/noah-isme/course-planner/pkg/export"
	"github.com/noah-isme/course-planner/pkg/jobs"
)

// SectionLookup resolves a course name pattern (SQL LIKE) to catalog sections.
type SectionLookup interface {
	LookupSections(ctx context.Context, pattern string) ([]models.CourseRecord, error)
}

// PlannerConfig governs planner behaviour.
type PlannerConfig struct {
	MaxCombinations    int
	LookupWorkers      int
	LookupRetries      int
	LookupRetryDelay   time.Duration
	EnumerationWorkers int
	DefaultLimit       int
}

// PlannerService turns a plan request into ranked schedules.
type PlannerService struct {
	catalog   SectionLookup
	pool      *jobs.Pool
	scorer    *scheduler.Scorer
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       PlannerConfig
	renderers map[string]export.Renderer
	now       func() time.Time
}

// NewPlannerService wires the planner. metrics may be nil.
func NewPlannerService(catalog SectionLookup, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg PlannerConfig) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 10
	}
	pool := jobs.NewPool("catalog-lookup", jobs.PoolConfig{
		Workers:    cfg.LookupWorkers,
		MaxRetries: cfg.LookupRetries,
		RetryDelay: cfg.LookupRetryDelay,
		Retryable:  retryableLookupError,
		Logger:     logger,
	})
	return &PlannerService{
		catalog:   catalog,
		pool:      pool,
		scorer:    scheduler.NewScorer(),
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
		renderers: map[string]export.Renderer{
			"csv": export.NewCSVExporter(),
			"pdf": export.NewPDFExporter(),
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

type planOutcome struct {
	id           string
	ranking      *scheduler.Ranking
	combinations int
	legal        int
	missing      []string
}

// Plan looks up every requested course, enumerates conflict-free
// combinations and ranks them against the request's preferences.
func (s *PlannerService) Plan(ctx context.Context, req dto.PlanScheduleRequest) (*dto.PlanScheduleResponse, error) {
	outcome, err := s.plan(ctx, req)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	ranked := outcome.ranking.Schedules()
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	resp := &dto.PlanScheduleResponse{
		PlanID:         outcome.id,
		Schedules:      make([]dto.PlannedSchedule, 0, len(ranked)),
		MissingCourses: outcome.missing,
		GeneratedAt:    s.now(),
		Counts: dto.PlanCounts{
			Combinations: outcome.combinations,
			Legal:        outcome.legal,
			Ranked:       outcome.ranking.Len(),
			Returned:     len(ranked),
		},
	}
	for i, schedule := range ranked {
		resp.Schedules = append(resp.Schedules, toPlannedSchedule(i+1, schedule))
	}
	if len(resp.Schedules) > 0 {
		best := resp.Schedules[0]
		resp.Best = &best
		resp.Found = true
	}
	return resp, nil
}

// Export plans the request and renders the schedule at rank (0 is the best)
// in the given format.
func (s *PlannerService) Export(ctx context.Context, req dto.PlanScheduleRequest, format string, rank int) (*dto.PlanExport, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clonef(appErrors.ErrValidation, "unsupported export format %q", format)
	}
	if rank < 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "rank must not be negative")
	}

	outcome, err := s.plan(ctx, req)
	if err != nil {
		return nil, err
	}
	ranked := outcome.ranking.Schedules()
	if len(ranked) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no schedule satisfies the request")
	}
	if rank >= len(ranked) {
		return nil, appErrors.Clonef(appErrors.ErrNotFound, "rank %d out of range, %d schedules ranked", rank, len(ranked))
	}

	table := export.Timetable{
		Title: fmt.Sprintf("Schedule %d of %d", rank+1, len(ranked)),
		Rows:  timetableRows(rank+1, ranked[rank]),
	}
	body, err := renderer.Render(table)
	if err != nil {
		return nil, appErrors.WrapAs(err, appErrors.ErrInternal, "failed to render timetable")
	}
	return &dto.PlanExport{
		PlanID:      outcome.id,
		Filename:    fmt.Sprintf("schedule-%s.%s", outcome.id[:8], renderer.Extension()),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func (s *PlannerService) plan(ctx context.Context, req dto.PlanScheduleRequest) (outcome *planOutcome, err error) {
	start := time.Now()
	defer func() {
		switch {
		case err != nil:
			s.metrics.ObservePlan(PlanOutcomeFailure, 0, 0, time.Since(start))
		case outcome.ranking.Len() == 0:
			s.metrics.ObservePlan(PlanOutcomeEmpty, outcome.combinations, outcome.legal, time.Since(start))
		default:
			s.metrics.ObservePlan(PlanOutcomeFound, outcome.combinations, outcome.legal, time.Since(start))
		}
	}()

	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapAs(err, appErrors.ErrValidation, "invalid schedule plan payload")
	}
	params, err := buildParameters(req)
	if err != nil {
		return nil, err
	}

	candidates, missing, err := s.lookupCandidates(ctx, req.Courses, params.SkipMissingCourses())
	if err != nil {
		return nil, err
	}

	combinations, ok := scheduler.CombinationCount(candidates)
	if !ok || (s.cfg.MaxCombinations > 0 && combinations > s.cfg.MaxCombinations) {
		msg := fmt.Sprintf("%d section combinations exceed the limit of %d", combinations, s.cfg.MaxCombinations)
		if !ok {
			msg = "section combinations overflow"
		}
		return nil, appErrors.Clone(appErrors.ErrCombinationLimit, msg)
	}

	var schedules []*scheduler.Schedule
	if s.cfg.EnumerationWorkers > 1 {
		schedules, err = scheduler.EnumerateParallel(ctx, candidates, s.cfg.EnumerationWorkers)
		if err != nil {
			return nil, err
		}
	} else {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		schedules = scheduler.Enumerate(candidates)
	}

	ranking := scheduler.RankWith(s.scorer, schedules, params)
	outcome = &planOutcome{
		id:           uuid.NewString(),
		ranking:      ranking,
		combinations: combinations,
		legal:        len(schedules),
		missing:      missing,
	}

	fields := []zap.Field{
		zap.String("plan_id", outcome.id),
		zap.Strings("courses", req.Courses),
		zap.Int("combinations", combinations),
		zap.Int("legal", outcome.legal),
		zap.Int("ranked", ranking.Len()),
		zap.Duration("elapsed", time.Since(start)),
	}
	if best, found := ranking.Best(); found {
		fields = append(fields, zap.Int("best_fitness", best.Fitness))
	}
	if len(missing) > 0 {
		fields = append(fields, zap.Strings("missing", missing))
	}
	s.logger.Info("schedule plan built", fields...)

	return outcome, nil
}

// lookupCandidates resolves every course name concurrently and returns the
// candidate lists in request order.
func (s *PlannerService) lookupCandidates(ctx context.Context, names []string, skipMissing bool) ([][]*scheduler.Course, []string, error) {
	results := jobs.Process(ctx, s.pool, names, func(ctx context.Context, job jobs.Job) ([]models.CourseRecord, error) {
		return s.catalog.LookupSections(ctx, job.ID)
	})

	candidates := make([][]*scheduler.Course, 0, len(results))
	var missing []string
	for _, res := range results {
		if res.Err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, nil, ctxErr
			}
			var appErr *appErrors.Error
			if errors.As(res.Err, &appErr) {
				return nil, nil, res.Err
			}
			return nil, nil, appErrors.WrapAs(res.Err, appErrors.ErrCatalogUnavailable,
				fmt.Sprintf("catalog lookup for %s failed after %d attempts", res.Job.ID, res.Job.Attempt))
		}

		courses, err := scheduler.NewCourses(res.Value)
		if err != nil {
			return nil, nil, err
		}
		if len(courses) == 0 {
			missing = append(missing, res.Job.ID)
			if skipMissing {
				continue
			}
		}
		candidates = append(candidates, courses)
	}
	return candidates, missing, nil
}

func buildParameters(req dto.PlanScheduleRequest) (*scheduler.Parameters, error) {
	badDays := make([]scheduler.Weekday, 0, len(req.BadDays))
	for _, raw := range req.BadDays {
		day, err := scheduler.ParseWeekday(raw)
		if err != nil {
			return nil, err
		}
		badDays = append(badDays, day)
	}
	return scheduler.NewParameters(scheduler.ParametersConfig{
		AroundTime:           scheduler.ParseSingleTime(req.AroundTime),
		MaximumTimeDistance:  req.MaximumTimeDistance,
		BadDays:              badDays,
		EarliestTime:         scheduler.ParseSingleTime(req.EarliestTime),
		LatestTime:           scheduler.ParseSingleTime(req.LatestTime),
		PreferNoWaitlist:     req.PreferNoWaitlist,
		IncludeSections:      req.IncludeSections,
		IncludeProfessors:    req.IncludeProfessors,
		IncludeAllProfessors: req.IncludeAllProfessors,
		SkipMissingCourses:   req.SkipMissingCourses,
	})
}

// retryableLookupError keeps client-side failures from being retried.
func retryableLookupError(err error) bool {
	return appErrors.StatusOf(err) >= 500
}

func toPlannedSchedule(rank int, schedule *scheduler.Schedule) dto.PlannedSchedule {
	sections := make([]dto.PlannedSection, 0, len(schedule.Courses))
	for _, course := range schedule.Courses {
		meetings := make([]dto.PlannedMeeting, 0, len(course.Meetings))
		for _, meeting := range course.Meetings {
			pm := dto.PlannedMeeting{
				Day:        meeting.Day.String(),
				MeetingID:  meeting.MeetingID,
				Type:       meeting.Type,
				Instructor: meeting.Instructor,
				Location:   meeting.Location,
			}
			if meeting.Timed() {
				pm.Start = meeting.Time.Start.String()
				pm.End = meeting.Time.End.String()
			}
			meetings = append(meetings, pm)
		}
		sections = append(sections, dto.PlannedSection{
			Course:         course.Name,
			SectionID:      course.SectionID,
			ScheduleNumber: course.ScheduleNumber,
			Title:          course.Title,
			Section:        course.Section,
			Units:          course.Units,
			SeatsAvailable: course.SeatsAvailable,
			SeatsTotal:     course.SeatsTotal,
			Waitlisted:     course.Waitlisted,
			Meetings:       meetings,
			Footnotes:      course.Footnotes,
			Summary:        course.String(),
		})
	}
	return dto.PlannedSchedule{Rank: rank, Fitness: schedule.Fitness, Sections: sections}
}

func timetableRows(rank int, schedule *scheduler.Schedule) []export.TimetableRow {
	var rows []export.TimetableRow
	for _, course := range schedule.Courses {
		for _, meeting := range course.Meetings {
			row := export.TimetableRow{
				Rank:           rank,
				Fitness:        schedule.Fitness,
				Course:         course.Name,
				SectionID:      course.SectionID,
				ScheduleNumber: course.ScheduleNumber,
				Title:          course.Title,
				MeetingType:    meeting.Type,
				Day:            meeting.Day.String(),
				Location:       meeting.Location,
				Instructor:     meeting.Instructor,
				Waitlisted:     course.Waitlisted,
			}
			if meeting.Timed() {
				row.Time = meeting.Time.String()
			}
			rows = append(rows, row)
		}
	}
	return rows
}
