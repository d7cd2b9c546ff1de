//go:build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newPostgresDB starts a throwaway PostgreSQL container and applies the
// embedded migrations of every service to it.
func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, service := range migration.Services {
		m, err := migration.New(sqlDB, service, zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, m.Up())

		version, dirty, err := m.Version()
		require.NoError(t, err)
		assert.Equal(t, uint(1), version)
		assert.False(t, dirty)
	}

	return db
}

func TestRepositories_Postgres_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := newPostgresDB(t)
	ctx := context.Background()

	t.Run("product", func(t *testing.T) {
		repo := NewGormProductRepository(db)

		require.NoError(t, repo.Create(ctx, &catalog.Product{ProductID: 1, Name: "n", Weight: 1}))
		err := repo.Create(ctx, &catalog.Product{ProductID: 1, Name: "dup"})
		assert.ErrorIs(t, err, shared.ErrDuplicateKey)

		found, err := repo.FindByProductID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "n", found.Name)

		require.NoError(t, repo.DeleteByProductID(ctx, 1))
		_, err = repo.FindByProductID(ctx, 1)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("recommendations", func(t *testing.T) {
		repo := NewGormRecommendationRepository(db)

		for _, id := range []int{2, 1} {
			require.NoError(t, repo.Create(ctx, &catalog.Recommendation{ProductID: 1, RecommendationID: id, Rating: id}))
		}
		err := repo.Create(ctx, &catalog.Recommendation{ProductID: 1, RecommendationID: 1})
		assert.ErrorIs(t, err, shared.ErrDuplicateKey)

		got, err := repo.FindByProductID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].RecommendationID)
	})

	t.Run("reviews", func(t *testing.T) {
		repo := NewGormReviewRepository(db)

		require.NoError(t, repo.Create(ctx, &catalog.Review{ProductID: 1, ReviewID: 1, Subject: "s"}))
		err := repo.Create(ctx, &catalog.Review{ProductID: 1, ReviewID: 1})
		assert.ErrorIs(t, err, shared.ErrDuplicateKey)

		require.NoError(t, repo.DeleteByProductID(ctx, 1))
		got, err := repo.FindByProductID(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
