package repositories

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dugun.link/models"
)

func newPricingTestRepo(t *testing.T) IPricingRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Bellek içi veritabanı bağlantı başına ayrıdır; tek bağlantıya inilir.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.PricingFeature{},
		&models.ConfigurablePricingPlan{},
		&models.PlanFeature{},
	))
	return NewPricingRepositoryTx(db)
}

func seedPlanRow(t *testing.T, repo IPricingRepository, key string, order int) *models.ConfigurablePricingPlan {
	t.Helper()
	plan := &models.ConfigurablePricingPlan{
		Key: key, Name: key, Currency: "TRY", DisplayOrder: order, IsActive: true,
	}
	require.NoError(t, repo.CreatePlan(context.Background(), plan))
	return plan
}

func TestSwapDisplayOrders_ExchangesBothRows(t *testing.T) {
	repo := newPricingTestRepo(t)
	ctx := context.Background()

	first := seedPlanRow(t, repo, "basic", 0)
	second := seedPlanRow(t, repo, "standard", 1)

	require.NoError(t, repo.SwapDisplayOrders(ctx, first.ID, second.ID, 1))

	afterFirst, err := repo.FindPlanByID(ctx, first.ID)
	require.NoError(t, err)
	afterSecond, err := repo.FindPlanByID(ctx, second.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, afterFirst.DisplayOrder)
	assert.Equal(t, 0, afterSecond.DisplayOrder)
	assert.NotEqual(t, afterFirst.DisplayOrder, afterSecond.DisplayOrder,
		"takas iki satırı aynı sıraya düşürmemeli")
}

func TestSwapDisplayOrders_SwapBackRestoresOriginalOrder(t *testing.T) {
	repo := newPricingTestRepo(t)
	ctx := context.Background()

	first := seedPlanRow(t, repo, "basic", 0)
	second := seedPlanRow(t, repo, "standard", 1)

	require.NoError(t, repo.SwapDisplayOrders(ctx, first.ID, second.ID, 1))
	require.NoError(t, repo.SwapDisplayOrders(ctx, first.ID, second.ID, 1))

	afterFirst, err := repo.FindPlanByID(ctx, first.ID)
	require.NoError(t, err)
	afterSecond, err := repo.FindPlanByID(ctx, second.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, afterFirst.DisplayOrder)
	assert.Equal(t, 1, afterSecond.DisplayOrder)
}

func TestSwapDisplayOrders_UnknownPlan(t *testing.T) {
	repo := newPricingTestRepo(t)
	first := seedPlanRow(t, repo, "basic", 0)

	err := repo.SwapDisplayOrders(context.Background(), first.ID, first.ID+99, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
