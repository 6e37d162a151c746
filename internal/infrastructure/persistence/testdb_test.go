package persistence

import (
	"context"
	"testing"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Entities()...))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, userType identity.UserType) *identity.User {
	t.Helper()
	user, err := identity.NewUser(email, "password123", "Test", "User", "", "", userType)
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestShop(t *testing.T, db *gorm.DB, userID uint, name string) *catalog.Shop {
	t.Helper()
	shop, err := catalog.NewShop(userID, name)
	require.NoError(t, err)
	require.NoError(t, db.Create(shop).Error)
	return shop
}

func createTestOffer(t *testing.T, db *gorm.DB, shopID uint, productName string, price string) *catalog.Offer {
	t.Helper()
	category := &catalog.Category{Name: "Test category"}
	category.ID = 1
	require.NoError(t, db.Save(category).Error)

	product, err := catalog.NewProduct(productName, category.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)

	offer, err := catalog.NewOffer(shopID, product.ID, 1000+product.ID, "test/model",
		decimal.RequireFromString(price), decimal.RequireFromString(price), 10)
	require.NoError(t, err)
	require.NoError(t, db.Create(offer).Error)
	return offer
}

func placeTestOrder(t *testing.T, db *gorm.DB, repo *GormOrderRepository, userID, offerID uint, qty int) *order.Order {
	t.Helper()
	ctx := context.Background()

	basket, err := repo.GetOrCreateBasket(ctx, userID)
	require.NoError(t, err)
	item, err := order.NewItem(basket.ID, offerID, qty)
	require.NoError(t, err)
	require.NoError(t, repo.CreateItem(ctx, item))

	contact, err := identity.NewContact(userID, "City", "Street", "1", "", "", "", "+70000000000")
	require.NoError(t, err)
	require.NoError(t, db.Create(contact).Error)

	require.NoError(t, basket.Place(contact))
	require.NoError(t, repo.Place(ctx, basket))
	return basket
}
