package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"eventsapi/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) domain.EventRepository {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewEventRepository(db)
}

func newEvent(name, location string, basePrice, maxPrice int) *domain.Event {
	begin := time.Date(2025, 3, 1, 10, 30, 0, 123456789, time.UTC)
	return domain.NewEventFromInput(domain.EventInput{
		Name:                    name,
		Description:             "description of " + name,
		BeginEnrollmentDateTime: begin,
		CloseEnrollmentDateTime: begin.Add(time.Hour),
		BeginEventDateTime:      begin.Add(2 * time.Hour),
		EndEventDateTime:        begin.Add(3 * time.Hour),
		Location:                location,
		BasePrice:               basePrice,
		MaxPrice:                maxPrice,
		LimitOfEnrollment:       10,
	})
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), " ")
	require.Error(t, err)
}

func TestEventRepository_CreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	tests := []struct {
		name  string
		event *domain.Event
	}{
		{"offline paid", newEvent("Spring", "Seoul", 100, 200)},
		{"online free", newEvent("Go", "", 0, 0)},
	}

	var lastID int64
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, repo.Create(ctx, tt.event))
			require.Greater(t, tt.event.ID, lastID, "identifiers are unique and increasing")
			lastID = tt.event.ID

			got, err := repo.GetByID(ctx, tt.event.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.event, got)
		})
	}
}

func TestEventRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	got, err := repo.GetByID(context.Background(), 12345)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Nil(t, got)
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	for i := range 25 {
		require.NoError(t, repo.Create(ctx, newEvent(fmt.Sprintf("event %02d", i), "", i, i)))
	}

	tests := []struct {
		name      string
		req       domain.PageRequest
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{"first page", domain.PageRequest{Page: 0, Size: 10}, 10, "event 00", "event 09"},
		{"last page", domain.PageRequest{Page: 2, Size: 10}, 5, "event 20", "event 24"},
		{"past the end", domain.PageRequest{Page: 5, Size: 10}, 0, "", ""},
		{
			name:      "sorted by name desc",
			req:       domain.PageRequest{Page: 0, Size: 3, Sort: []domain.SortField{{Field: "name", Desc: true}}},
			wantLen:   3,
			wantFirst: "event 24",
			wantLast:  "event 22",
		},
		{
			name:      "sorted by base price",
			req:       domain.PageRequest{Page: 1, Size: 5, Sort: []domain.SortField{{Field: "basePrice"}}},
			wantLen:   5,
			wantFirst: "event 05",
			wantLast:  "event 09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.List(ctx, tt.req)
			require.NoError(t, err)
			require.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, 25, page.TotalElements)
			assert.Equal(t, (25+tt.req.Size-1)/tt.req.Size, page.TotalPages)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, page.Items[0].Name)
				assert.Equal(t, tt.wantLast, page.Items[len(page.Items)-1].Name)
			}
		})
	}

	_, err := repo.List(ctx, domain.PageRequest{Page: 0, Size: 10, Sort: []domain.SortField{{Field: "nope"}}})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEventRepository_ListSortedByTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	begin := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	// Created out of order; offsets straddle whole seconds and sub-second fractions.
	offsets := []struct {
		name   string
		offset time.Duration
	}{
		{"later", 500 * time.Millisecond},
		{"earlier", 0},
		{"latest", time.Second + 250*time.Microsecond},
		{"middle", 250 * time.Millisecond},
	}
	for _, o := range offsets {
		e := newEvent(o.name, "", 0, 0)
		e.BeginEnrollmentDateTime = begin.Add(o.offset)
		e.CloseEnrollmentDateTime = begin.Add(time.Hour + o.offset)
		e.BeginEventDateTime = begin.Add(2*time.Hour + o.offset)
		e.EndEventDateTime = begin.Add(3*time.Hour + o.offset)
		require.NoError(t, repo.Create(ctx, e))
	}

	ascending := []string{"earlier", "middle", "later", "latest"}
	descending := []string{"latest", "later", "middle", "earlier"}
	for _, field := range []string{"beginEnrollmentDateTime", "closeEnrollmentDateTime", "beginEventDateTime", "endEventDateTime"} {
		for _, desc := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s desc=%t", field, desc), func(t *testing.T) {
				page, err := repo.List(ctx, domain.PageRequest{Page: 0, Size: 10, Sort: []domain.SortField{{Field: field, Desc: desc}}})
				require.NoError(t, err)
				names := make([]string, 0, len(page.Items))
				for _, e := range page.Items {
					names = append(names, e.Name)
				}
				want := ascending
				if desc {
					want = descending
				}
				assert.Equal(t, want, names)
			})
		}
	}
}

func TestEventRepository_SubSecondRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	e := newEvent("precise", "Seoul", 100, 200)
	e.BeginEventDateTime = time.Date(2025, 3, 1, 12, 30, 0, 500000000, time.UTC)
	e.EndEventDateTime = time.Date(2025, 3, 1, 13, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	e := newEvent("Spring", "Seoul", 100, 200)
	require.NoError(t, repo.Create(ctx, e))

	e.Apply(domain.EventInput{
		Name:                    "Spring Boot",
		Description:             "updated",
		BeginEnrollmentDateTime: e.BeginEnrollmentDateTime,
		CloseEnrollmentDateTime: e.CloseEnrollmentDateTime,
		BeginEventDateTime:      e.BeginEventDateTime,
		EndEventDateTime:        e.EndEventDateTime,
		LimitOfEnrollment:       5,
	})
	require.NoError(t, repo.Update(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, got)
	assert.False(t, got.Offline)
	assert.True(t, got.Free)

	missing := newEvent("ghost", "", 0, 0)
	missing.ID = e.ID + 100
	require.ErrorIs(t, repo.Update(ctx, missing), domain.ErrNotFound)

	page, err := repo.List(ctx, domain.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalElements, "update must never insert")
}
