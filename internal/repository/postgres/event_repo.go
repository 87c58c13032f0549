package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventsapi/internal/domain"
	"eventsapi/internal/repository/eventsql"
	"eventsapi/internal/repository/migrate"
	"eventsapi/internal/repository/postgres/migrations"

	"github.com/lib/pq"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// Open connects to the PostgreSQL database at dsn and applies migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres db: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded event schema migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	return migrate.Apply(ctx, db, migrations.FS, "$1")
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, description, begin_enrollment_date_time, close_enrollment_date_time,
			begin_event_date_time, end_event_date_time, location, base_price, max_price,
			limit_of_enrollment, offline, free, event_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, values(e)...).Scan(&e.ID); err != nil {
		return describe("insert event", err)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventsql.Columns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, req domain.PageRequest) (*domain.EventPage, error) {
	orderBy, err := eventsql.OrderBy(req.Sort)
	if err != nil {
		return nil, err
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return nil, err
	}

	query := `SELECT ` + eventsql.Columns + ` FROM events ` + orderBy + ` LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, req.Size, req.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0, req.Size)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return domain.NewEventPage(events, req, total), nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events SET name = $1, description = $2, begin_enrollment_date_time = $3,
			close_enrollment_date_time = $4, begin_event_date_time = $5, end_event_date_time = $6,
			location = $7, base_price = $8, max_price = $9, limit_of_enrollment = $10,
			offline = $11, free = $12, event_status = $13
		WHERE id = $14
	`
	args := append(values(e), e.ID)
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return describe("update event", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return describe("update event", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEvent(s eventsql.Scanner) (*domain.Event, error) {
	e := &domain.Event{}
	var locationNull sql.NullString
	var status string
	err := s.Scan(
		&e.ID, &e.Name, &e.Description,
		&e.BeginEnrollmentDateTime, &e.CloseEnrollmentDateTime,
		&e.BeginEventDateTime, &e.EndEventDateTime,
		&locationNull, &e.BasePrice, &e.MaxPrice, &e.LimitOfEnrollment,
		&e.Offline, &e.Free, &status,
	)
	if err != nil {
		return nil, err
	}
	if locationNull.Valid {
		e.Location = locationNull.String
	}
	e.EventStatus = domain.EventStatus(status)
	e.BeginEnrollmentDateTime = e.BeginEnrollmentDateTime.UTC()
	e.CloseEnrollmentDateTime = e.CloseEnrollmentDateTime.UTC()
	e.BeginEventDateTime = e.BeginEventDateTime.UTC()
	e.EndEventDateTime = e.EndEventDateTime.UTC()
	return e, nil
}

func values(e *domain.Event) []any {
	var location sql.NullString
	if e.Location != "" {
		location = sql.NullString{String: e.Location, Valid: true}
	}
	return []any{
		e.Name, e.Description,
		e.BeginEnrollmentDateTime, e.CloseEnrollmentDateTime,
		e.BeginEventDateTime, e.EndEventDateTime,
		location, e.BasePrice, e.MaxPrice, e.LimitOfEnrollment,
		e.Offline, e.Free, string(e.EventStatus),
	}
}

// describe adds the violated constraint to Postgres errors.
func describe(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Constraint != "" {
		return fmt.Errorf("%s: %s (%s): %w", op, pqErr.Code.Name(), pqErr.Constraint, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
