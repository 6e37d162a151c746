package persistence

import (
	"context"
	"testing"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB) (accepting, closed *catalog.Shop) {
	t.Helper()
	ctx := context.Background()

	supplierA := createTestUser(t, db, "a@example.com", identity.UserTypeShop)
	supplierB := createTestUser(t, db, "b@example.com", identity.UserTypeShop)
	accepting = createTestShop(t, db, supplierA.ID, "Accepting shop")
	closed = createTestShop(t, db, supplierB.ID, "Closed shop")

	shopRepo := NewGormShopRepository(db)
	_, err := shopRepo.SetAccepting(ctx, supplierB.ID, false)
	require.NoError(t, err)

	phones := &catalog.Category{Name: "Phones"}
	phones.ID = 224
	require.NoError(t, db.Save(phones).Error)
	cables := &catalog.Category{Name: "Cables"}
	cables.ID = 15
	require.NoError(t, db.Save(cables).Error)

	productRepo := NewGormProductRepository(db)
	paramRepo := NewGormParameterRepository(db)
	offerRepo := NewGormOfferRepository(db)

	phone, err := productRepo.FindOrCreate(ctx, "Phone X", phones.ID)
	require.NoError(t, err)
	cable, err := productRepo.FindOrCreate(ctx, "Cable 2m", cables.ID)
	require.NoError(t, err)

	color, err := paramRepo.FindOrCreate(ctx, "Color")
	require.NoError(t, err)

	phoneOffer, err := catalog.NewOffer(accepting.ID, phone.ID, 1, "x", decimal.New(100, 0), decimal.New(110, 0), 5)
	require.NoError(t, err)
	phoneOffer.AddParameter(color.ID, "black")
	require.NoError(t, offerRepo.Save(ctx, phoneOffer))

	cableOffer, err := catalog.NewOffer(accepting.ID, cable.ID, 2, "c", decimal.New(5, 0), decimal.New(6, 0), 50)
	require.NoError(t, err)
	require.NoError(t, offerRepo.Save(ctx, cableOffer))

	closedPhone, err := productRepo.FindOrCreate(ctx, "Phone Y", phones.ID)
	require.NoError(t, err)
	closedOffer, err := catalog.NewOffer(closed.ID, closedPhone.ID, 3, "y", decimal.New(90, 0), decimal.New(95, 0), 2)
	require.NoError(t, err)
	require.NoError(t, offerRepo.Save(ctx, closedOffer))

	return accepting, closed
}

func TestOfferRepositoryFindDetailed(t *testing.T) {
	db := setupTestDB(t)
	accepting, closed := seedCatalog(t, db)
	repo := NewGormOfferRepository(db)
	ctx := context.Background()

	t.Run("accepting-only hides closed shops", func(t *testing.T) {
		offers, err := repo.FindDetailed(ctx, catalog.OfferFilter{AcceptingOnly: true})
		require.NoError(t, err)
		require.Len(t, offers, 2)
		for _, o := range offers {
			assert.Equal(t, accepting.ID, o.ShopID)
			require.NotNil(t, o.Product)
			require.NotNil(t, o.Product.Category)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		offers, err := repo.FindDetailed(ctx, catalog.OfferFilter{AcceptingOnly: true, CategoryID: 224})
		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, "Phone X", offers[0].Product.Name)
		require.Len(t, offers[0].Parameters, 1)
		require.NotNil(t, offers[0].Parameters[0].Parameter)
		assert.Equal(t, "Color", offers[0].Parameters[0].Parameter.Name)
		assert.Equal(t, "black", offers[0].Parameters[0].Value)
	})

	t.Run("shop filter without accepting restriction", func(t *testing.T) {
		offers, err := repo.FindDetailed(ctx, catalog.OfferFilter{ShopID: closed.ID})
		require.NoError(t, err)
		require.Len(t, offers, 1)
		assert.Equal(t, closed.ID, offers[0].ShopID)
	})
}

func TestOfferRepositoryDeleteForShop(t *testing.T) {
	db := setupTestDB(t)
	accepting, closed := seedCatalog(t, db)
	repo := NewGormOfferRepository(db)
	ctx := context.Background()

	deleted, err := repo.DeleteForShop(ctx, accepting.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	var paramCount int64
	require.NoError(t, db.Model(&catalog.OfferParameter{}).Count(&paramCount).Error)
	assert.Zero(t, paramCount, "parameter values must go with their offers")

	remaining, err := repo.FindDetailed(ctx, catalog.OfferFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, closed.ID, remaining[0].ShopID)
}

func TestCategoryRepositoryAttachShop(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()

	supplier := createTestUser(t, db, "shop@example.com", identity.UserTypeShop)
	shop := createTestShop(t, db, supplier.ID, "Shop")

	category, err := catalog.NewCategory(42, "Gadgets")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, category))

	require.NoError(t, repo.AttachShop(ctx, category.ID, shop.ID))
	require.NoError(t, repo.AttachShop(ctx, category.ID, shop.ID), "attach is idempotent")

	categories, err := repo.FindForShop(ctx, shop.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, uint(42), categories[0].ID)
	assert.Equal(t, "Gadgets", categories[0].Name)
}

func TestProductRepositoryFindOrCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	category, err := catalog.NewCategory(7, "Things")
	require.NoError(t, err)
	require.NoError(t, db.Save(category).Error)

	first, err := repo.FindOrCreate(ctx, "Thing", category.ID)
	require.NoError(t, err)
	second, err := repo.FindOrCreate(ctx, "Thing", category.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
