// Package sqlite provides a SQLite-backed event repository for local runs and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"eventsapi/internal/domain"
	"eventsapi/internal/repository/eventsql"
	"eventsapi/internal/repository/migrate"
	"eventsapi/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Timestamps are stored as fixed-width UTC text at microsecond precision, so
// lexical order in ORDER BY is chronological order.
const timeLayout = "2006-01-02T15:04:05.000000Z"

func formatTime(t time.Time) string {
	return domain.NormalizeTime(t).Format(timeLayout)
}

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// Open opens a SQLite database at path and applies embedded migrations.
// ":memory:" opens a private in-memory database bound to a single connection.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrate.Apply(ctx, db, migrations.FS, "?"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, description, begin_enrollment_date_time, close_enrollment_date_time,
			begin_event_date_time, end_event_date_time, location, base_price, max_price,
			limit_of_enrollment, offline, free, event_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query, values(e)...)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	e.ID = id
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventsql.Columns + ` FROM events WHERE id = ?`
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

	query := `SELECT ` + eventsql.Columns + ` FROM events ` + orderBy + ` LIMIT ? OFFSET ?`
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
		UPDATE events SET name = ?, description = ?, begin_enrollment_date_time = ?,
			close_enrollment_date_time = ?, begin_event_date_time = ?, end_event_date_time = ?,
			location = ?, base_price = ?, max_price = ?, limit_of_enrollment = ?,
			offline = ?, free = ?, event_status = ?
		WHERE id = ?
	`
	args := append(values(e), e.ID)
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event: %w", err)
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
	var beginEnroll, closeEnroll, beginEvent, endEvent string
	err := s.Scan(
		&e.ID, &e.Name, &e.Description,
		&beginEnroll, &closeEnroll, &beginEvent, &endEvent,
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
	for _, ts := range []struct {
		raw string
		dst *time.Time
	}{
		{beginEnroll, &e.BeginEnrollmentDateTime},
		{closeEnroll, &e.CloseEnrollmentDateTime},
		{beginEvent, &e.BeginEventDateTime},
		{endEvent, &e.EndEventDateTime},
	} {
		t, err := time.Parse(timeLayout, ts.raw)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts.raw, err)
		}
		*ts.dst = t.UTC()
	}
	return e, nil
}

func values(e *domain.Event) []any {
	var location sql.NullString
	if e.Location != "" {
		location = sql.NullString{String: e.Location, Valid: true}
	}
	return []any{
		e.Name, e.Description,
		formatTime(e.BeginEnrollmentDateTime),
		formatTime(e.CloseEnrollmentDateTime),
		formatTime(e.BeginEventDateTime),
		formatTime(e.EndEventDateTime),
		location, e.BasePrice, e.MaxPrice, e.LimitOfEnrollment,
		e.Offline, e.Free, string(e.EventStatus),
	}
}
