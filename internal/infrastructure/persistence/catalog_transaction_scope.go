package persistence

import (
	"context"

	apppartner "github.com/procure/backend/internal/application/partner"
	"github.com/procure/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormTransactionScope implements partner.TransactionScope on a GORM
// transaction. Every repository handed to the callback shares it, so
// the price-list replace commits or rolls back as one unit.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn inside a transaction; an error rolls it back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apppartner.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Shops() catalog.ShopRepository {
	return NewGormShopRepository(r.tx)
}

func (r *gormTransactionalRepositories) Categories() catalog.CategoryRepository {
	return NewGormCategoryRepository(r.tx)
}

func (r *gormTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) Offers() catalog.OfferRepository {
	return NewGormOfferRepository(r.tx)
}

func (r *gormTransactionalRepositories) Parameters() catalog.ParameterRepository {
	return NewGormParameterRepository(r.tx)
}

var _ apppartner.TransactionScope = (*GormTransactionScope)(nil)
var _ apppartner.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
