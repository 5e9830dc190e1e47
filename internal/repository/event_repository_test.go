package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_ListOnlyUpcomingOrderedByStart(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "org@example.com")
	music := seedCategory(t, db, "Music")

	seedEvent(t, db, user.ID, music.ID, "Past gig", baseTime.Add(-48*time.Hour))
	later := seedEvent(t, db, user.ID, music.ID, "Later gig", baseTime.Add(72*time.Hour))
	sooner := seedEvent(t, db, user.ID, music.ID, "Sooner gig", baseTime.Add(24*time.Hour))

	filter := EventFilter{From: baseTime, Limit: 10}
	events, err := repo.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, sooner.ID, events[0].ID)
	assert.Equal(t, later.ID, events[1].ID)
	require.NotNil(t, events[0].Category)
	assert.Equal(t, "Music", events[0].Category.Name)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestEventRepository_ListFiltersAndPaginates(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "org@example.com")
	music := seedCategory(t, db, "Music")
	sports := seedCategory(t, db, "Sports")

	for i := 0; i < 5; i++ {
		seedEvent(t, db, user.ID, music.ID, "Jazz Night", baseTime.Add(time.Duration(i+1)*time.Hour), withCity("Manchester"))
	}
	seedEvent(t, db, user.ID, sports.ID, "Jazz Runners", baseTime.Add(time.Hour), withCity("Manchester"))
	seedEvent(t, db, user.ID, music.ID, "Rock Night", baseTime.Add(time.Hour), withCity("Leeds"))

	filter := EventFilter{
		Name:       "JAZZ",
		City:       "manch",
		CategoryID: &music.ID,
		From:       baseTime,
		Offset:     2,
		Limit:      2,
	}

	events, err := repo.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, "Jazz Night", e.Name)
		assert.Equal(t, music.ID, e.CategoryID)
	}
	assert.True(t, events[0].DateStart.Before(events[1].DateStart))
	assert.True(t, events[0].DateStart.Equal(baseTime.Add(3*time.Hour)))

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestEventRepository_Trending(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "org@example.com")
	music := seedCategory(t, db, "Music")

	seedEvent(t, db, user.ID, music.ID, "past but popular", baseTime.Add(-time.Hour), withViews(1000))
	tieLate := seedEvent(t, db, user.ID, music.ID, "tie late", baseTime.Add(5*time.Hour), withViews(50))
	tieEarly := seedEvent(t, db, user.ID, music.ID, "tie early", baseTime.Add(2*time.Hour), withViews(50))
	top := seedEvent(t, db, user.ID, music.ID, "top", baseTime.Add(9*time.Hour), withViews(90))
	for i := 0; i < 5; i++ {
		seedEvent(t, db, user.ID, music.ID, "quiet", baseTime.Add(time.Duration(i+1)*time.Hour), withViews(i))
	}

	events, err := repo.Trending(ctx, baseTime, 6)
	require.NoError(t, err)
	require.Len(t, events, 6)
	assert.Equal(t, top.ID, events[0].ID)
	assert.Equal(t, tieEarly.ID, events[1].ID)
	assert.Equal(t, tieLate.ID, events[2].ID)
	for i := 1; i < len(events); i++ {
		assert.GreaterOrEqual(t, events[i-1].ViewCount, events[i].ViewCount)
		assert.False(t, events[i].DateStart.Before(baseTime))
	}
}

func TestEventRepository_CitiesDistinctSorted(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "org@example.com")
	music := seedCategory(t, db, "Music")

	seedEvent(t, db, user.ID, music.ID, "a", baseTime.Add(time.Hour), withCity("York"))
	seedEvent(t, db, user.ID, music.ID, "b", baseTime.Add(time.Hour), withCity("Bristol"))
	seedEvent(t, db, user.ID, music.ID, "c", baseTime.Add(2*time.Hour), withCity("York"))
	seedEvent(t, db, user.ID, music.ID, "d", baseTime.Add(-time.Hour), withCity("Aberdeen"))

	cities, err := repo.Cities(ctx, baseTime)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bristol", "York"}, cities)
}

func TestEventRepository_IncrementViewCountConcurrently(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "org@example.com")
	music := seedCategory(t, db, "Music")
	event := seedEvent(t, db, user.ID, music.ID, "gig", baseTime.Add(time.Hour))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.IncrementViewCount(ctx, event.ID))
		}()
	}
	wg.Wait()

	stored, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.ViewCount)
}

func TestEventRepository_GetUpcomingAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "org@example.com")
	music := seedCategory(t, db, "Music")
	past := seedEvent(t, db, user.ID, music.ID, "past", baseTime.Add(-time.Hour))
	future := seedEvent(t, db, user.ID, music.ID, "future", baseTime.Add(time.Hour))

	_, err := repo.GetUpcomingByID(ctx, past.ID, baseTime)
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := repo.GetUpcomingByID(ctx, future.ID, baseTime)
	require.NoError(t, err)
	assert.Equal(t, "future", found.Name)

	require.NoError(t, repo.Delete(ctx, future.ID))
	assert.ErrorIs(t, repo.Delete(ctx, future.ID), ErrNotFound)
	assert.ErrorIs(t, repo.IncrementViewCount(ctx, uuid.New()), ErrNotFound)
}

func TestEventRepository_FilterTreatsWildcardsLiterally(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "org@example.com")
	music := seedCategory(t, db, "Music")
	start := baseTime.Add(24 * time.Hour)
	seedEvent(t, db, user.ID, music.ID, "Jazz Night", start)
	seedEvent(t, db, user.ID, music.ID, "Rock Night", start)
	seedEvent(t, db, user.ID, music.ID, "100% Techno", start)
	seedEvent(t, db, user.ID, music.ID, "Drum_Bass", start, withCity(`Back\Slash`))

	tests := []struct {
		name   string
		filter EventFilter
		want   int64
	}{
		{"percent", EventFilter{Name: "%"}, 1},
		{"underscore", EventFilter{Name: "_"}, 1},
		{"plain text still matches", EventFilter{Name: "night"}, 2},
		{"backslash in city", EventFilter{City: `k\s`}, 1},
		{"percent in city", EventFilter{City: "%"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.From = baseTime
			count, err := repo.Count(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}
