package usecase

import (
	"context"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/gateway"

	"github.com/sirupsen/logrus"
)

type ProductUsecase interface {
	List(ctx context.Context) (*dto.ProductListResponse, error)
}

type productUsecase struct {
	log              *logrus.Logger
	inventoryGateway gateway.InventoryGateway
}

func NewProductUsecase(log *logrus.Logger, inventoryGateway gateway.InventoryGateway) ProductUsecase {
	return &productUsecase{
		log:              log,
		inventoryGateway: inventoryGateway,
	}
}

// List returns the medicine catalog.
func (u *productUsecase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	_, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	products, err := u.inventoryGateway.Products(ctx, bearer, "")
	if err != nil {
		return nil, err
	}

	return &dto.ProductListResponse{
		Products: converter.ProductsToResponses(products),
		Total:    len(products),
	}, nil
}
