package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	appointmentserrors "leadg/internal/appointments/errors"
	"leadg/internal/appointments/events"
	"leadg/internal/appointments/repository"
	"leadg/internal/appointments/validator"
	"leadg/internal/availability"
	"leadg/pkg/config"
	apperrors "leadg/pkg/errors"
	"leadg/pkg/model"
	"leadg/pkg/sanitizer"
)

type AppointmentService interface {
	Calendar(ctx context.Context) model.CalendarWindow
	Availability(ctx context.Context, date, viewerZone string, includeBooked bool) (*model.Availability, error)
	Create(ctx context.Context, input *model.AppointmentInput) (*model.Appointment, error)
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	List(ctx context.Context, filter model.AppointmentFilter) ([]*model.Appointment, int64, error)
	UpdateStatus(ctx context.Context, id string, update *model.StatusUpdate) (*model.Appointment, error)
}

type appointmentService struct {
	repo      repository.AppointmentRepository
	lockRepo  repository.SlotLockRepository
	validator *validator.AppointmentValidator
	engine    *availability.Engine
	publisher events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	lockRepo repository.SlotLockRepository,
	validator *validator.AppointmentValidator,
	engine *availability.Engine,
	publisher events.Publisher,
	cfg *config.Config,
) AppointmentService {
	return &appointmentService{
		repo:      repo,
		lockRepo:  lockRepo,
		validator: validator,
		engine:    engine,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *appointmentService) Calendar(ctx context.Context) model.CalendarWindow {
	return s.engine.Window(s.now())
}

func (s *appointmentService) Availability(ctx context.Context, date, viewerZone string, includeBooked bool) (*model.Availability, error) {
	viewerZone = sanitizer.SanitizeTimezone(viewerZone)

	if _, err := availability.ParseDate(date, s.engine.Reference()); err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", date))
	}

	// Weekends have no slots, so the store is not consulted.
	var snapshot []*model.Appointment
	if availability.IsBusinessDay(date, s.engine.Reference()) {
		var err error
		snapshot, err = s.repo.FindByDate(ctx, date)
		if err != nil {
			s.cfg.Log.Error("Failed to read appointments for availability", "date", date, "error", err)
			return nil, s.storeError("Failed to load availability", err)
		}
	}

	compute := s.engine.Availability
	if includeBooked {
		compute = s.engine.Slots
	}
	result, err := compute(date, viewerZone, snapshot)
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	if result.Fallback && viewerZone != "" {
		s.cfg.Log.Debug("Viewer timezone not recognized, using reference timezone", "timezone", viewerZone)
	}
	return result, nil
}

func (s *appointmentService) Create(ctx context.Context, input *model.AppointmentInput) (*model.Appointment, error) {
	if input == nil {
		return nil, apperrors.InvalidInput("Appointment details are required")
	}

	in := sanitize(*input)
	if err := s.validate(&in); err != nil {
		return nil, err
	}

	appointment, err := s.buildAppointment(&in)
	if err != nil {
		return nil, err
	}

	err = s.guardSlot(ctx, appointment.Date, appointment.ReferenceTime, func(ctx context.Context) error {
		snapshot, err := s.repo.FindByDate(ctx, appointment.Date)
		if err != nil {
			return s.storeError("Failed to check slot availability", err)
		}
		if err := s.engine.CheckSlot(appointment.Date, appointment.ReferenceTime, snapshot); err != nil {
			return slotError(appointment.Date, appointment.ReferenceTime, err)
		}
		if err := s.repo.Create(ctx, appointment); err != nil {
			return s.storeError("Failed to create appointment", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeSlotUnavailable) {
			s.cfg.Log.Info("Slot unavailable",
				"date", appointment.Date,
				"reference_time", appointment.ReferenceTime,
			)
		} else {
			s.cfg.Log.Error("Failed to create appointment",
				"date", appointment.Date,
				"reference_time", appointment.ReferenceTime,
				"error", err,
			)
		}
		return nil, err
	}

	s.cfg.Log.Info("Appointment created successfully",
		"id", appointment.ID,
		"date", appointment.Date,
		"reference_time", appointment.ReferenceTime,
		"viewer_timezone", appointment.ViewerTimezone,
	)

	if err := s.publisher.AppointmentCreated(ctx, appointment); err != nil {
		s.cfg.Log.Warn("Failed to publish appointment created event", "id", appointment.ID, "error", err)
	}

	return appointment, nil
}

func (s *appointmentService) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Appointment ID cannot be empty")
	}

	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	return appointment, nil
}

func (s *appointmentService) List(ctx context.Context, filter model.AppointmentFilter) ([]*model.Appointment, int64, error) {
	if filter.Date != "" {
		if _, err := availability.ParseDate(filter.Date, s.engine.Reference()); err != nil {
			return nil, 0, apperrors.InvalidInput(fmt.Sprintf("Invalid date filter %q, expected YYYY-MM-DD", filter.Date))
		}
	}
	if filter.Status != "" && !isKnownStatus(filter.Status) {
		return nil, 0, apperrors.InvalidInput(fmt.Sprintf("Invalid status filter %q", filter.Status))
	}
	filter.Limit = config.NormalizePaginationLimit(filter.Limit)
	filter.Offset = config.NormalizeOffset(filter.Offset)

	var count int64
	var appointments []*model.Appointment
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx, filter)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count appointments", "error", errCount)
			errCount = s.storeError("Failed to count appointments", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		appointments, errFind = s.repo.List(ctx, filter)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list appointments",
				"date", filter.Date,
				"status", filter.Status,
				"limit", filter.Limit,
				"offset", filter.Offset,
				"error", errFind,
			)
			errFind = s.storeError("Failed to retrieve appointments", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}
	if appointments == nil {
		appointments = []*model.Appointment{}
	}

	return appointments, count, nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id string, update *model.StatusUpdate) (*model.Appointment, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Appointment ID cannot be empty")
	}
	if update == nil {
		return nil, apperrors.InvalidInput("Status is required")
	}
	if err := s.validator.ValidateStatus(update); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	if existing.Status == update.Status {
		return existing, nil
	}

	var updated *model.Appointment
	apply := func(ctx context.Context) error {
		var err error
		updated, err = s.repo.UpdateStatus(ctx, id, update.Status)
		if err != nil {
			return s.lookupError(id, err)
		}
		return nil
	}

	if existing.Occupies() || update.Status == model.AppointmentStatusCancelled {
		err = apply(ctx)
	} else {
		// Reactivating a cancelled appointment needs its slot back.
		err = s.guardSlot(ctx, existing.Date, existing.ReferenceTime, func(ctx context.Context) error {
			snapshot, err := s.repo.FindByDate(ctx, existing.Date)
			if err != nil {
				return s.storeError("Failed to check slot availability", err)
			}
			if _, taken := availability.OccupiedTimes(existing.Date, snapshot)[existing.ReferenceTime]; taken {
				return apperrors.SlotUnavailable(existing.Date, existing.ReferenceTime)
			}
			return apply(ctx)
		})
	}
	if err != nil {
		s.cfg.Log.Warn("Failed to update appointment status", "id", id, "status", update.Status, "error", err)
		return nil, err
	}

	s.cfg.Log.Info("Appointment status updated",
		"id", id,
		"from", existing.Status,
		"to", updated.Status,
	)

	if err := s.publisher.StatusChanged(ctx, updated, existing.Status); err != nil {
		s.cfg.Log.Warn("Failed to publish status changed event", "id", id, "error", err)
	}

	return updated, nil
}

// --- Helpers ---

// guardSlot runs fn so that no other submission for the same slot can
// interleave between its read and its write. With the "none" guard fn runs
// unprotected.
func (s *appointmentService) guardSlot(ctx context.Context, date, referenceTime string, fn func(ctx context.Context) error) error {
	if s.cfg.SlotGuard == config.SlotGuardNone {
		return fn(ctx)
	}

	lockID, err := s.acquireSlotLock(ctx, date, referenceTime)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.lockRepo.Release(context.WithoutCancel(ctx), lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release slot lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	return s.repo.ExecuteTransaction(ctx, fn)
}

func (s *appointmentService) acquireSlotLock(ctx context.Context, date, referenceTime string) (string, error) {
	now := s.now().UTC()
	lock := &model.SlotLock{
		ID:        model.SlotLockID(date, referenceTime),
		Date:      date,
		Time:      referenceTime,
		ExpiresAt: now.Add(s.cfg.SlotLockTTL),
	}

	if err := s.lockRepo.Acquire(ctx, lock); err != nil {
		if errors.Is(err, appointmentserrors.ErrLockHeld) {
			return "", apperrors.SlotUnavailable(date, referenceTime)
		}
		return "", s.storeError("Failed to acquire slot lock", err)
	}
	return lock.ID, nil
}

func (s *appointmentService) validate(in *model.AppointmentInput) error {
	if err := s.validator.Validate(in); err != nil {
		s.cfg.Log.Warn("Appointment validation failed", "error", err)
		return validationError(err)
	}
	return nil
}

func (s *appointmentService) buildAppointment(in *model.AppointmentInput) (*model.Appointment, error) {
	projector := s.engine.Projector()

	referenceDisplay, err := availability.FormatDisplay(in.ReferenceTime)
	if err != nil {
		return nil, slotError(in.Date, in.ReferenceTime, availability.ErrInvalidTime)
	}
	viewer, err := projector.Project(in.Date, in.ReferenceTime, in.ViewerTimezone)
	if err != nil {
		return nil, slotError(in.Date, in.ReferenceTime, err)
	}

	return &model.Appointment{
		Name:              in.Name,
		Email:             in.Email,
		Phone:             sanitizer.NormalizePhone(in.Phone),
		Company:           in.Company,
		Industry:          in.Industry,
		ServiceInterests:  in.ServiceInterests,
		Message:           in.Message,
		Date:              in.Date,
		ReferenceTime:     in.ReferenceTime,
		ReferenceTimezone: projector.Reference().String(),
		ReferenceDisplay:  referenceDisplay,
		ViewerTimezone:    viewer.Zone,
		ViewerDate:        viewer.Date,
		ViewerTime:        viewer.Time,
		ViewerDisplay:     viewer.Display,
		ViewerFallback:    viewer.Fallback,
		Status:            model.AppointmentStatusPending,
	}, nil
}

func (s *appointmentService) lookupError(id string, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	if errors.Is(err, appointmentserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Appointment", id)
	}
	if errors.Is(err, appointmentserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid appointment ID format")
	}
	return s.storeError("Failed to retrieve appointment", err)
}

func (s *appointmentService) storeError(message string, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Unavailable("Appointment store")
	}
	return apperrors.Internal(message, err)
}

func sanitize(in model.AppointmentInput) model.AppointmentInput {
	in.Name = sanitizer.NormalizeName(in.Name)
	in.Email = sanitizer.NormalizeEmail(in.Email)
	in.Phone = sanitizer.TrimAndNormalize(in.Phone)
	in.Date = sanitizer.TrimAndNormalize(in.Date)
	in.ReferenceTime = sanitizer.TrimAndNormalize(in.ReferenceTime)
	in.ViewerTimezone = sanitizer.SanitizeTimezone(in.ViewerTimezone)
	in.Company = sanitizer.TrimAndNormalize(in.Company)
	in.Industry = sanitizer.TrimAndNormalize(in.Industry)
	in.ServiceInterests = sanitizer.NormalizeList(in.ServiceInterests, sanitizer.TrimAndNormalize)
	in.Message = sanitizer.NormalizeMessage(in.Message)
	return in
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs.First()
		return apperrors.FieldValidation(first.Field, first.Message)
	}
	return apperrors.Validation("Appointment validation failed", map[string]any{"error": err.Error()})
}

// slotError maps engine sentinels to API errors.
func slotError(date, referenceTime string, err error) error {
	switch {
	case errors.Is(err, availability.ErrSlotOccupied), errors.Is(err, availability.ErrOutsideCatalog):
		return apperrors.SlotUnavailable(date, referenceTime)
	case errors.Is(err, availability.ErrInvalidDate), errors.Is(err, availability.ErrNotBusinessDay):
		return apperrors.FieldValidation("date", "Please select a weekday (Monday-Friday)")
	case errors.Is(err, availability.ErrInvalidTime):
		return apperrors.FieldValidation("reference_time", "Please select an available time slot")
	default:
		return apperrors.Internal("Failed to check slot", err)
	}
}

func isKnownStatus(status string) bool {
	for _, s := range model.AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}
