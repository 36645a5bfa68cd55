package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tidsreg-be/internal/entities"
	"tidsreg-be/internal/models"
	"tidsreg-be/internal/repository"
	"tidsreg-be/internal/timecalc"
)

// TimeEntryOptions selects the server variant.
type TimeEntryOptions struct {
	ProjectsEnabled    bool
	BreaksEnabled      bool
	DeleteRequiresUser bool
}

// TimeEntryService defines the interface for time entry business logic
type TimeEntryService interface {
	List(ctx context.Context, r repository.DateRange) ([]entities.EntryRow, error)
	Summary(ctx context.Context, r repository.DateRange) ([]models.SummaryResponse, error)
	Create(ctx context.Context, req *models.CreateTimeEntryRequest) (*entities.TimeEntry, error)
	Delete(ctx context.Context, id int64, userID *int64) error
}

type timeEntryService struct {
	entries  repository.TimeEntryRepository
	projects repository.ProjectRepository
	opts     TimeEntryOptions
	log      *slog.Logger
}

// NewTimeEntryService creates a new time entry service
func NewTimeEntryService(entries repository.TimeEntryRepository, projects repository.ProjectRepository, opts TimeEntryOptions, log *slog.Logger) TimeEntryService {
	return &timeEntryService{
		entries:  entries,
		projects: projects,
		opts:     opts,
		log:      log,
	}
}

func (s *timeEntryService) List(ctx context.Context, r repository.DateRange) ([]entities.EntryRow, error) {
	return s.entries.List(ctx, r)
}

func (s *timeEntryService) Summary(ctx context.Context, r repository.DateRange) ([]models.SummaryResponse, error) {
	rows, err := s.entries.Summary(ctx, r)
	if err != nil {
		return nil, err
	}

	out := make([]models.SummaryResponse, len(rows))
	for i, row := range rows {
		out[i] = models.SummaryResponse{
			UserID:   row.UserID,
			UserName: row.UserName,
			Entries:  row.Entries,
			Minutes:  row.Minutes,
			Hours:    timecalc.Hours(row.Minutes),
		}
	}
	return out, nil
}

// Create validates the request in a fixed order and stores the entry.
func (s *timeEntryService) Create(ctx context.Context, req *models.CreateTimeEntryRequest) (*entities.TimeEntry, error) {
	if req.UserID.Int64() <= 0 {
		return nil, invalid("user_id er påkrævet")
	}
	if req.WorkDate == "" {
		return nil, invalid("work_date er påkrævet (YYYY-MM-DD)")
	}
	if _, err := timecalc.ParseDate(req.WorkDate); err != nil {
		return nil, invalid("work_date skal være YYYY-MM-DD")
	}
	if s.opts.ProjectsEnabled && req.ProjectID.Int64() <= 0 {
		return nil, invalid("project_id er påkrævet")
	}

	start, errStart := timecalc.ParseHHMM(req.StartTime)
	end, errEnd := timecalc.ParseHHMM(req.EndTime)
	if errStart != nil || errEnd != nil {
		return nil, invalid("start_time / end_time skal være HH:MM")
	}

	span := timecalc.Span(start, end)
	switch err := timecalc.ValidateSpan(span); {
	case errors.Is(err, timecalc.ErrNoDuration):
		return nil, invalid("Start/slut giver ingen varighed")
	case errors.Is(err, timecalc.ErrSpanTooLong):
		return nil, invalid("Maks ét døgn pr. registrering")
	}

	breakMinutes := 0
	if s.opts.BreaksEnabled {
		breakMinutes = int(req.BreakMinutes.Int64())
	}
	duration, err := timecalc.Duration(span, breakMinutes)
	switch {
	case errors.Is(err, timecalc.ErrNegativeBreak):
		return nil, invalid("break_minutes kan ikke være negativ")
	case errors.Is(err, timecalc.ErrBreakTooLong):
		return nil, invalid("Pausen skal være kortere end arbejdstiden")
	}

	projectID, err := s.resolveProject(ctx, req)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.Create(ctx, repository.CreateTimeEntryParams{
		UserID:          req.UserID.Int64(),
		ProjectID:       projectID,
		WorkDate:        req.WorkDate,
		StartTime:       start.String(),
		EndTime:         end.String(),
		BreakMinutes:    breakMinutes,
		DurationMinutes: duration,
		Note:            normalizeNote(req.Note),
	})
	if errors.Is(err, repository.ErrUnknownReference) {
		return nil, invalid("Ukendt bruger eller projekt")
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "time entry created",
		slog.Int64("id", entry.ID),
		slog.Int64("user_id", entry.UserID),
		slog.Int64("project_id", entry.ProjectID),
		slog.String("work_date", entry.WorkDate),
		slog.Int("duration_minutes", entry.DurationMinutes))

	return entry, nil
}

// resolveProject returns the requested project, or the implicit one when
// projects are not exposed.
func (s *timeEntryService) resolveProject(ctx context.Context, req *models.CreateTimeEntryRequest) (int64, error) {
	if s.opts.ProjectsEnabled {
		return req.ProjectID.Int64(), nil
	}

	id, err := s.projects.DefaultID(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, ErrNoProject
	}
	if err != nil {
		return 0, fmt.Errorf("resolve default project: %w", err)
	}
	return id, nil
}

func (s *timeEntryService) Delete(ctx context.Context, id int64, userID *int64) error {
	if id <= 0 {
		return invalid("id mangler")
	}
	if s.opts.DeleteRequiresUser && (userID == nil || *userID <= 0) {
		return invalid("user_id mangler")
	}

	if err := s.entries.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "time entry deleted", slog.Int64("id", id))
	return nil
}

// normalizeNote stores blank notes as NULL.
func normalizeNote(note *string) *string {
	if note == nil || strings.TrimSpace(*note) == "" {
		return nil
	}
	return note
}
