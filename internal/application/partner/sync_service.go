// Package partner implements the supplier side: price-list import and
// export, shop state, and order fulfillment.
package partner

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/pricelist"
	"go.uber.org/zap"
)

// SyncService imports and exports supplier price lists and manages
// the shop's accepting-orders state.
type SyncService struct {
	scope    TransactionScope
	shopRepo catalog.ShopRepository
	fetcher  pricelist.Fetcher
	logger   *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(
	scope TransactionScope,
	shopRepo catalog.ShopRepository,
	fetcher pricelist.Fetcher,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		scope:    scope,
		shopRepo: shopRepo,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// ImportFromURL downloads a price list and imports it.
func (s *SyncService) ImportFromURL(ctx context.Context, supplierUserID uint, rawURL string) error {
	data, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return err
	}
	return s.Import(ctx, supplierUserID, data)
}

// Import replaces the supplier's catalog with the document's content.
// The whole replace runs in one transaction: either every category,
// product, offer and parameter lands, or nothing changes.
func (s *SyncService) Import(ctx context.Context, supplierUserID uint, data []byte) error {
	doc, err := pricelist.Parse(data)
	if err != nil {
		return err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		shop, err := s.resolveShop(ctx, repos, supplierUserID, doc.Shop)
		if err != nil {
			return err
		}
		if err := s.syncCategories(ctx, repos, shop.ID, doc.Categories); err != nil {
			return err
		}
		if _, err := repos.Offers().DeleteForShop(ctx, shop.ID); err != nil {
			return err
		}
		return s.createOffers(ctx, repos, shop.ID, doc.Goods)
	})
	if err != nil {
		return err
	}

	s.logger.Info("price list imported",
		zap.Uint("supplier_id", supplierUserID),
		zap.String("shop", doc.Shop),
		zap.Int("categories", len(doc.Categories)),
		zap.Int("goods", len(doc.Goods)),
	)
	return nil
}

func (s *SyncService) resolveShop(ctx context.Context, repos TransactionalRepositories, supplierUserID uint, name string) (*catalog.Shop, error) {
	shop, err := repos.Shops().FindByUser(ctx, supplierUserID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		shop, err = catalog.NewShop(supplierUserID, name)
		if err != nil {
			return nil, err
		}
	} else {
		shop.Rename(name)
	}
	if err := repos.Shops().Save(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *SyncService) syncCategories(ctx context.Context, repos TransactionalRepositories, shopID uint, entries []pricelist.Category) error {
	for _, entry := range entries {
		category, err := repos.Categories().FindByID(ctx, entry.ID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return err
			}
			category, err = catalog.NewCategory(entry.ID, entry.Name)
			if err != nil {
				return err
			}
		} else {
			category.Rename(entry.Name)
		}
		if err := repos.Categories().Save(ctx, category); err != nil {
			return err
		}
		if err := repos.Categories().AttachShop(ctx, category.ID, shopID); err != nil {
			return err
		}
	}
	return nil
}

func (s *SyncService) createOffers(ctx context.Context, repos TransactionalRepositories, shopID uint, goods []pricelist.Good) error {
	for _, good := range goods {
		product, err := repos.Products().FindOrCreate(ctx, good.Name, good.Category)
		if err != nil {
			return err
		}
		offer, err := catalog.NewOffer(shopID, product.ID, good.ID, good.Model, good.Price, good.PriceRRC, good.Quantity)
		if err != nil {
			return err
		}
		for _, name := range sortedKeys(good.Parameters) {
			parameter, err := repos.Parameters().FindOrCreate(ctx, name)
			if err != nil {
				return err
			}
			offer.AddParameter(parameter.ID, fmt.Sprintf("%v", good.Parameters[name]))
		}
		if err := repos.Offers().Save(ctx, offer); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
