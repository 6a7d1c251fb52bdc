package converter

import (
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// ProductToResponse converts a Product entity to ProductResponse DTO
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:        product.ID,
		EnName:    product.EnName,
		ThName:    product.ThName,
		UnitPrice: product.UnitPrice,
		ImagePath: product.ImagePath,
	}
}

// ProductsToResponses converts a slice of Product entities to slice of ProductResponse DTOs
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *ProductToResponse(&product)
	}
	return responses
}
