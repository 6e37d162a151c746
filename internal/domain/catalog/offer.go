package catalog

import (
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Offer is a shop-specific listing of a product: price, recommended
// retail price, available quantity and the supplier's own identifier.
// Offers are unique per (shop, product); a re-import replaces them
// wholesale and never merges.
type Offer struct {
	shared.BaseEntity
	ShopID     uint             `gorm:"not null;uniqueIndex:idx_offer_shop_product,priority:1" json:"shop"`
	ProductID  uint             `gorm:"not null;uniqueIndex:idx_offer_shop_product,priority:2" json:"-"`
	ExternalID uint             `gorm:"not null" json:"external_id"`
	Model      string           `gorm:"type:varchar(100)" json:"model"`
	Price      decimal.Decimal  `gorm:"type:decimal(18,2);not null" json:"price"`
	PriceRRC   decimal.Decimal  `gorm:"type:decimal(18,2);not null" json:"price_rrc"`
	Quantity   int              `gorm:"not null" json:"quantity"`
	Product    *Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Parameters []OfferParameter `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"product_parameters"`
}

// TableName returns the table name for GORM
func (Offer) TableName() string {
	return "offers"
}

// Parameter is a supplier-defined attribute name ("Color", "Memory").
// Names are global so values stay comparable across shops.
type Parameter struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(60);not null;uniqueIndex" json:"name"`
}

// TableName returns the table name for GORM
func (Parameter) TableName() string {
	return "parameters"
}

// OfferParameter attaches one attribute value to an offer. The open
// key-value shape carries arbitrary supplier spec fields without a
// fixed schema.
type OfferParameter struct {
	shared.BaseEntity
	OfferID     uint       `gorm:"not null;index" json:"-"`
	ParameterID uint       `gorm:"not null" json:"-"`
	Parameter   *Parameter `gorm:"foreignKey:ParameterID" json:"parameter,omitempty"`
	Value       string     `gorm:"type:varchar(120);not null" json:"value"`
}

// TableName returns the table name for GORM
func (OfferParameter) TableName() string {
	return "offer_parameters"
}

// NewOffer creates an offer for a product in a shop.
func NewOffer(shopID, productID, externalID uint, model string, price, priceRRC decimal.Decimal, quantity int) (*Offer, error) {
	if shopID == 0 || productID == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Offer requires a shop and a product")
	}
	if price.IsNegative() || priceRRC.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Prices cannot be negative")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity cannot be negative")
	}
	return &Offer{
		ShopID:     shopID,
		ProductID:  productID,
		ExternalID: externalID,
		Model:      model,
		Price:      price,
		PriceRRC:   priceRRC,
		Quantity:   quantity,
	}, nil
}

// AddParameter appends an attribute value referencing a resolved
// parameter name.
func (o *Offer) AddParameter(parameterID uint, value string) {
	o.Parameters = append(o.Parameters, OfferParameter{
		ParameterID: parameterID,
		Value:       value,
	})
}
