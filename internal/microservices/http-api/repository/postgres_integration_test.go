//go:build integration

package repository

// Runs the repositories against a real Postgres started with testcontainers.
//
//   go test -tags integration ./internal/microservices/http-api/repository/...

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"testing"
	"time"

	"cinehub/database"
	"cinehub/internal/logging"
	"cinehub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, "docker", "info").Run() == nil
}

// setupPostgres starts a throwaway Postgres, migrates it and returns a handle.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if !dockerAvailable() {
		t.Skip("Skipping test: Docker not available")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "cinehub",
				"POSTGRES_PASSWORD": "cinehub",
				"POSTGRES_DB":       "cinehub_test",
			},
			// postgres restarts once after initdb
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://cinehub:cinehub@%s:%s/cinehub_test?sslmode=disable", host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.Migrate(db, logging.Discard()))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()
	u := &models.User{Username: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u.ID
}

func seedContent(t *testing.T, db *gorm.DB, title string, genre models.Genre) int64 {
	t.Helper()
	c := &models.Content{
		Title:       title,
		Description: title,
		Genre:       genre,
		Language:    models.LanguageEnglish,
		ContentType: models.ContentTypeMovie,
		ReleaseDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(c).Error)
	return c.ID
}

func TestPostgres_RatingUpsert(t *testing.T) {
	db := setupPostgres(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	movie := seedContent(t, db, "Heat", models.GenreAction)

	t.Run("re-rating overwrites the single row", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, &models.Rating{UserID: alice, ContentID: movie, RatingValue: 3}))
		first, err := repo.GetByUserAndContent(ctx, alice, movie)
		require.NoError(t, err)

		require.NoError(t, repo.Upsert(ctx, &models.Rating{UserID: alice, ContentID: movie, RatingValue: 5}))

		got, err := repo.GetByUserAndContent(ctx, alice, movie)
		require.NoError(t, err)
		assert.Equal(t, 5, got.RatingValue)
		assert.Equal(t, first.ID, got.ID)
		assert.True(t, first.RatingDate.Equal(got.RatingDate), "rating_date keeps its original value")

		n, err := repo.CountByContent(ctx, movie)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("concurrent writers leave one row", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make(chan error, 10)
		for v := 1; v <= 10; v++ {
			wg.Add(1)
			go func(value int) {
				defer wg.Done()
				errs <- repo.Upsert(ctx, &models.Rating{UserID: bob, ContentID: movie, RatingValue: value%5 + 1})
			}(v)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		n, err := repo.CountByContent(ctx, movie)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("out of range value is rejected by the check constraint", func(t *testing.T) {
		assert.Error(t, repo.Upsert(ctx, &models.Rating{UserID: alice, ContentID: movie, RatingValue: 6}))
	})
}

func TestPostgres_RankedCandidates(t *testing.T) {
	db := setupPostgres(t)
	repo := NewContentRepository(db)
	ratings := NewRatingRepository(db)
	ctx := context.Background()

	u1 := seedUser(t, db, "u1")
	u2 := seedUser(t, db, "u2")
	c1 := seedContent(t, db, "c1", models.GenreAction)
	c2 := seedContent(t, db, "c2", models.GenreAction)
	c3 := seedContent(t, db, "c3", models.GenreAction)
	c4 := seedContent(t, db, "c4", models.GenreAction)
	c5 := seedContent(t, db, "c5", models.GenreDrama)

	for _, r := range []models.Rating{
		{UserID: u2, ContentID: c1, RatingValue: 5},
		{UserID: u1, ContentID: c3, RatingValue: 5},
		{UserID: u2, ContentID: c3, RatingValue: 2},
		{UserID: u1, ContentID: c4, RatingValue: 4},
	} {
		require.NoError(t, ratings.Upsert(ctx, &r))
	}

	idsOf := func(list []models.RankedContent) []int64 {
		out := make([]int64, 0, len(list))
		for _, c := range list {
			out = append(out, c.ID)
		}
		return out
	}

	t.Run("top rating desc then id asc, unrated last", func(t *testing.T) {
		got, err := repo.RankedCandidates(ctx, "", []int64{c1}, 10)
		require.NoError(t, err)
		assert.Equal(t, []int64{c3, c4, c2, c5}, idsOf(got))
		assert.Equal(t, 5, got[0].TopRating)
		assert.Equal(t, 0, got[2].TopRating)
	})

	t.Run("genre filter and limit", func(t *testing.T) {
		got, err := repo.RankedCandidates(ctx, models.GenreAction, nil, 3)
		require.NoError(t, err)
		assert.Equal(t, []int64{c1, c3, c4}, idsOf(got))
	})

	t.Run("empty exclusion list", func(t *testing.T) {
		got, err := repo.RankedCandidates(ctx, models.GenreDrama, []int64{}, 6)
		require.NoError(t, err)
		assert.Equal(t, []int64{c5}, idsOf(got))
	})
}

func TestPostgres_ReviewUpdateComment(t *testing.T) {
	db := setupPostgres(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "critic")
	movie := seedContent(t, db, "Alien", models.GenreSciFi)

	review := &models.Review{UserID: author, ContentID: movie, Comment: "great", IsApproved: true, IsVerified: true}
	require.NoError(t, repo.Create(ctx, review))

	review.Comment = "still great"
	review.IsApproved = false
	review.IsVerified = false
	require.NoError(t, repo.UpdateComment(ctx, review))

	got, err := repo.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "still great", got.Comment)
	assert.False(t, got.IsApproved)
	assert.True(t, got.IsVerified, "is_verified is frozen at creation")

	missing := &models.Review{ID: review.ID + 100, Comment: "x"}
	assert.ErrorIs(t, repo.UpdateComment(ctx, missing), gorm.ErrRecordNotFound)

	// a second review on the same content is allowed
	require.NoError(t, repo.Create(ctx, &models.Review{UserID: author, ContentID: movie, Comment: "again"}))
}

func TestPostgres_WatchlistAndGrants(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	user := seedUser(t, db, "viewer")
	movie := seedContent(t, db, "Up", models.GenreAnimation)

	watchlist := NewWatchlistRepository(db)
	created, err := watchlist.Add(ctx, user, movie)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = watchlist.Add(ctx, user, movie)
	require.NoError(t, err)
	assert.False(t, created)

	profiles := NewProfileRepository(db)
	_, err = profiles.GrantReviewer(ctx, user, nil)
	require.NoError(t, err)
	_, err = profiles.GrantReviewer(ctx, user, nil)
	assert.ErrorIs(t, err, ErrDuplicate)

	caps, err := profiles.Capabilities(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, models.CapabilityActive, caps.Reviewer)
	assert.Equal(t, models.CapabilityNone, caps.Creator)

	// inactive records still count
	other := seedUser(t, db, "lapsed")
	rc, err := profiles.GrantReviewer(ctx, other, nil)
	require.NoError(t, err)
	require.NoError(t, db.Model(rc).Update("is_active", false).Error)

	n, err := profiles.CountReviewers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
