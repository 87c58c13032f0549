package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventsapi/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// CreateEvent validates in, maps it onto a new draft event and persists it.
// Timestamps are normalized before validation so the rules see the stored values.
// Nothing is stored when validation fails.
func (s *eventService) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	in = in.Normalize()
	if errs := domain.ValidateEvent(in); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event := domain.NewEventFromInput(in)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, req domain.PageRequest) (*domain.EventPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if req.Size < 1 {
		req.Size = domain.DefaultPageSize
	}
	if req.Size > domain.MaxPageSize {
		req.Size = domain.MaxPageSize
	}
	if req.Page < 0 {
		req.Page = 0
	}
	if len(req.Sort) == 0 {
		req.Sort = domain.DefaultSort
	}

	page, err := s.eventRepo.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return page, nil
}

// UpdateEvent replaces every mutable field of an existing event. A missing event is
// reported before the payload is validated.
func (s *eventService) UpdateEvent(ctx context.Context, id int64, in domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	in = in.Normalize()
	if errs := domain.ValidateEvent(in); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	event.Apply(in)
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}
