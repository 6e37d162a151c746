package partner

import (
	"context"

	"github.com/procure/backend/internal/domain/catalog"
)

// TransactionScope runs a price-list import atomically. A failure
// anywhere in the replace rolls the whole import back, so a malformed
// goods entry can never leave the shop's catalog wiped.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the catalog repositories bound to
// the transaction in flight.
type TransactionalRepositories interface {
	Shops() catalog.ShopRepository
	Categories() catalog.CategoryRepository
	Products() catalog.ProductRepository
	Offers() catalog.OfferRepository
	Parameters() catalog.ParameterRepository
}

// NoOpTransactionScope runs the function against plain repositories
// without a transaction. Used in tests.
type NoOpTransactionScope struct {
	ShopRepo      catalog.ShopRepository
	CategoryRepo  catalog.CategoryRepository
	ProductRepo   catalog.ProductRepository
	OfferRepo     catalog.OfferRepository
	ParameterRepo catalog.ParameterRepository
}

// Execute runs fn directly.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Shops returns the shop repository.
func (s *NoOpTransactionScope) Shops() catalog.ShopRepository { return s.ShopRepo }

// Categories returns the category repository.
func (s *NoOpTransactionScope) Categories() catalog.CategoryRepository { return s.CategoryRepo }

// Products returns the product repository.
func (s *NoOpTransactionScope) Products() catalog.ProductRepository { return s.ProductRepo }

// Offers returns the offer repository.
func (s *NoOpTransactionScope) Offers() catalog.OfferRepository { return s.OfferRepo }

// Parameters returns the parameter repository.
func (s *NoOpTransactionScope) Parameters() catalog.ParameterRepository { return s.ParameterRepo }
