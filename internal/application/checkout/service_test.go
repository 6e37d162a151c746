package checkout

import (
	"context"
	"testing"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/order"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetOrCreateBasket(ctx context.Context, userID uint) (*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindBasket(ctx context.Context, userID uint) (*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindBasketByID(ctx context.Context, userID, orderID uint) (*order.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindPlacedForUser(ctx context.Context, userID uint) ([]order.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindForSupplier(ctx context.Context, supplierUserID uint) ([]order.Order, error) {
	args := m.Called(ctx, supplierUserID)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindForSupplierByID(ctx context.Context, supplierUserID, orderID uint) (*order.Order, error) {
	args := m.Called(ctx, supplierUserID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Place(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateItem(ctx context.Context, item *order.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateItemQuantity(ctx context.Context, orderID, offerID uint, quantity int) (int64, error) {
	args := m.Called(ctx, orderID, offerID, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) DeleteItem(ctx context.Context, orderID, offerID uint) (int64, error) {
	args := m.Called(ctx, orderID, offerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) DeleteAllItems(ctx context.Context, orderID uint) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

// MockContactRepository is a mock implementation of identity.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByIDForUser(ctx context.Context, userID, id uint) (*identity.Contact, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Contact), args.Error(1)
}

func (m *MockContactRepository) FindAllForUser(ctx context.Context, userID uint) ([]identity.Contact, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]identity.Contact), args.Error(1)
}

func (m *MockContactRepository) Save(ctx context.Context, contact *identity.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteForUser(ctx context.Context, userID uint, ids []uint) (int64, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type recordingGateway struct {
	sent []string
}

func (g *recordingGateway) Notify(_ context.Context, recipient, _, _ string) error {
	g.sent = append(g.sent, recipient)
	return nil
}

func newFixture() (*Service, *MockOrderRepository, *MockContactRepository, *MockUserRepository, *recordingGateway) {
	orderRepo := new(MockOrderRepository)
	contactRepo := new(MockContactRepository)
	userRepo := new(MockUserRepository)
	gateway := &recordingGateway{}
	svc := NewService(orderRepo, contactRepo, userRepo, gateway, zap.NewNop())
	return svc, orderRepo, contactRepo, userRepo, gateway
}

func basketWithOwner(id, userID uint) *order.Order {
	owner := userID
	b := &order.Order{UserID: userID, State: order.StateBasket, BasketOwner: &owner}
	b.ID = id
	return b
}

func ownedContact(id, userID uint) *identity.Contact {
	c := &identity.Contact{UserID: userID, City: "City", Street: "Street", Phone: "+70000000000"}
	c.ID = id
	return c
}

func TestServicePlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("places the basket and notifies the buyer", func(t *testing.T) {
		svc, orderRepo, contactRepo, userRepo, gateway := newFixture()

		orderRepo.On("FindBasketByID", ctx, uint(1), uint(10)).Return(basketWithOwner(10, 1), nil)
		contactRepo.On("FindByIDForUser", ctx, uint(1), uint(3)).Return(ownedContact(3, 1), nil)
		orderRepo.On("Place", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.State == order.StateNew && o.ContactID != nil && *o.ContactID == 3
		})).Return(nil)

		buyer := &identity.User{Email: "buyer@example.com"}
		buyer.ID = 1
		userRepo.On("FindByID", ctx, uint(1)).Return(buyer, nil)

		require.NoError(t, svc.PlaceOrder(ctx, 1, PlaceInput{OrderID: 10, ContactID: 3}))
		assert.Equal(t, []string{"buyer@example.com"}, gateway.sent)
		orderRepo.AssertExpectations(t)
	})

	t.Run("foreign order collapses to not found", func(t *testing.T) {
		svc, orderRepo, _, _, gateway := newFixture()
		orderRepo.On("FindBasketByID", ctx, uint(1), uint(10)).Return(nil, shared.ErrNotFound)

		err := svc.PlaceOrder(ctx, 1, PlaceInput{OrderID: 10, ContactID: 3})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Empty(t, gateway.sent)
	})

	t.Run("foreign contact collapses to not found", func(t *testing.T) {
		svc, orderRepo, contactRepo, _, gateway := newFixture()
		orderRepo.On("FindBasketByID", ctx, uint(1), uint(10)).Return(basketWithOwner(10, 1), nil)
		contactRepo.On("FindByIDForUser", ctx, uint(1), uint(3)).Return(nil, shared.ErrNotFound)

		err := svc.PlaceOrder(ctx, 1, PlaceInput{OrderID: 10, ContactID: 3})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Empty(t, gateway.sent)
	})

	t.Run("concurrent placement loses the guarded update", func(t *testing.T) {
		svc, orderRepo, contactRepo, _, gateway := newFixture()
		orderRepo.On("FindBasketByID", ctx, uint(1), uint(10)).Return(basketWithOwner(10, 1), nil)
		contactRepo.On("FindByIDForUser", ctx, uint(1), uint(3)).Return(ownedContact(3, 1), nil)
		orderRepo.On("Place", ctx, mock.Anything).Return(shared.ErrNotFound)

		err := svc.PlaceOrder(ctx, 1, PlaceInput{OrderID: 10, ContactID: 3})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Empty(t, gateway.sent, "no notification when placement fails")
	})
}

func TestServiceListOrders(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, _, _, _ := newFixture()

	o := order.Order{UserID: 1, State: order.StateNew}
	o.ID = 10
	o.Items = []order.Item{
		{OfferID: 1, Quantity: 3, Offer: &catalog.Offer{Price: decimal.RequireFromString("100.00")}},
		{OfferID: 2, Quantity: 1, Offer: &catalog.Offer{Price: decimal.RequireFromString("49.90")}},
	}
	orderRepo.On("FindPlacedForUser", ctx, uint(1)).Return([]order.Order{o}, nil)

	summaries, err := svc.ListOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "349.90", summaries[0].Total.String())
}
