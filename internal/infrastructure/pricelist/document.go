// Package pricelist reads and writes the supplier price-list document,
// the YAML interchange format used for catalog import and export.
package pricelist

import (
	"fmt"

	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Document is a full supplier price list. The same shape is produced
// by export, so an exported document can be fed straight back into
// import.
type Document struct {
	Shop       string     `yaml:"shop" json:"shop"`
	Categories []Category `yaml:"categories" json:"categories"`
	Goods      []Good     `yaml:"goods" json:"goods"`
}

// Category is a supplier-assigned category with its numeric id. Ids
// are chosen by the supplier and shared across shops that sell the
// same kind of goods.
type Category struct {
	ID   uint   `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Good is one catalog position of the price list.
type Good struct {
	ID         uint            `yaml:"id" json:"id"`
	Category   uint            `yaml:"category" json:"category"`
	Model      string          `yaml:"model" json:"model"`
	Name       string          `yaml:"name" json:"name"`
	Price      decimal.Decimal `yaml:"price" json:"price"`
	PriceRRC   decimal.Decimal `yaml:"price_rrc" json:"price_rrc"`
	Quantity   int             `yaml:"quantity" json:"quantity"`
	Parameters map[string]any  `yaml:"parameters" json:"parameters"`
}

// Validate checks the structural invariants the importer relies on:
// a shop name, category names and ids, and goods that reference a
// category declared in the same document.
func (d *Document) Validate() error {
	if d.Shop == "" {
		return shared.NewDomainError("PARSE_ERROR", "price list has no shop name")
	}
	declared := make(map[uint]struct{}, len(d.Categories))
	for i, c := range d.Categories {
		if c.ID == 0 {
			return shared.NewDomainError("PARSE_ERROR", fmt.Sprintf("category %d has no id", i))
		}
		if c.Name == "" {
			return shared.NewDomainError("PARSE_ERROR", fmt.Sprintf("category %d has no name", c.ID))
		}
		declared[c.ID] = struct{}{}
	}
	for i, g := range d.Goods {
		if g.Name == "" {
			return shared.NewDomainError("PARSE_ERROR", fmt.Sprintf("good %d has no name", i))
		}
		if _, ok := declared[g.Category]; !ok {
			return shared.NewDomainError("PARSE_ERROR", fmt.Sprintf("good %q references undeclared category %d", g.Name, g.Category))
		}
		if g.Quantity < 0 {
			return shared.NewDomainError("PARSE_ERROR", fmt.Sprintf("good %q has negative quantity", g.Name))
		}
	}
	return nil
}
