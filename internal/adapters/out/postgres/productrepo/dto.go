// Package productrepo provides data transfer objects and mapping functions
// for product catalog persistence.
package productrepo

import (
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting catalog products.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmerID uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Unit     string
	Price    decimal.Decimal `gorm:"type:numeric(14,2)"`
	Active   bool
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:       aggregate.ID().Bytes(),
		FarmerID: aggregate.FarmerID().Bytes(),
		Name:     aggregate.Name(),
		Unit:     aggregate.Unit(),
		Price:    aggregate.Price().Decimal(),
		Active:   aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, farmerID, dto.Name, dto.Unit, price, dto.Active)
}
