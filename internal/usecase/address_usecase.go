package usecase

import (
	"context"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/service"

	"github.com/sirupsen/logrus"
)

type AddressUsecase interface {
	MyAddresses(ctx context.Context) (*dto.AddressListResponse, error)
	Create(ctx context.Context, req *dto.AddressRequest) (*dto.AddressResponse, error)
	Update(ctx context.Context, addressID int, req *dto.AddressRequest) (*dto.AddressResponse, error)
	Delete(ctx context.Context, addressID int) error
}

type addressUsecase struct {
	log               *logrus.Logger
	deliveriesGateway gateway.DeliveriesGateway
	viewCache         *service.ViewCache
}

func NewAddressUsecase(
	log *logrus.Logger,
	deliveriesGateway gateway.DeliveriesGateway,
	viewCache *service.ViewCache,
) AddressUsecase {
	return &addressUsecase{
		log:               log,
		deliveriesGateway: deliveriesGateway,
		viewCache:         viewCache,
	}
}

func (u *addressUsecase) MyAddresses(ctx context.Context) (*dto.AddressListResponse, error) {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var addresses []entity.DeliveryAddress
	hit, err := u.viewCache.Get(ctx, subject, service.ViewMyAddresses, &addresses)
	if err != nil {
		u.log.Warnf("Addresses view read failed for subject %s: %+v", subject, err)
	}
	if !hit {
		addresses, err = u.deliveriesGateway.MyAddresses(ctx, bearer)
		if err != nil {
			return nil, err
		}
		if err := u.viewCache.Put(ctx, subject, service.ViewMyAddresses, addresses); err != nil {
			u.log.Warnf("Addresses view write failed for subject %s: %+v", subject, err)
		}
	}

	return &dto.AddressListResponse{
		Addresses: converter.AddressesToResponses(addresses),
		Total:     len(addresses),
	}, nil
}

func (u *addressUsecase) Create(ctx context.Context, req *dto.AddressRequest) (*dto.AddressResponse, error) {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	created, err := u.deliveriesGateway.CreateAddress(ctx, bearer, addressDraft(req))
	if err != nil {
		u.log.Warnf("Address creation failed for subject %s: %+v", subject, err)
		return nil, err
	}

	u.patchAddresses(ctx, subject, func(addresses []entity.DeliveryAddress) []entity.DeliveryAddress {
		return append(addresses, *created)
	})
	return converter.AddressToResponse(created), nil
}

func (u *addressUsecase) Update(ctx context.Context, addressID int, req *dto.AddressRequest) (*dto.AddressResponse, error) {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := u.deliveriesGateway.UpdateAddress(ctx, bearer, addressID, addressDraft(req))
	if err != nil {
		u.log.Warnf("Address %d update failed for subject %s: %+v", addressID, subject, err)
		return nil, err
	}

	u.patchAddresses(ctx, subject, func(addresses []entity.DeliveryAddress) []entity.DeliveryAddress {
		for i := range addresses {
			if addresses[i].ID == addressID {
				addresses[i] = *updated
				break
			}
		}
		return addresses
	})
	return converter.AddressToResponse(updated), nil
}

func (u *addressUsecase) Delete(ctx context.Context, addressID int) error {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := u.deliveriesGateway.DeleteAddress(ctx, bearer, addressID); err != nil {
		u.log.Warnf("Address %d deletion failed for subject %s: %+v", addressID, subject, err)
		return err
	}

	u.patchAddresses(ctx, subject, func(addresses []entity.DeliveryAddress) []entity.DeliveryAddress {
		kept := addresses[:0]
		for _, address := range addresses {
			if address.ID != addressID {
				kept = append(kept, address)
			}
		}
		return kept
	})
	return nil
}

func (u *addressUsecase) patchAddresses(ctx context.Context, subject string, edit func([]entity.DeliveryAddress) []entity.DeliveryAddress) {
	var addresses []entity.DeliveryAddress
	hit, err := u.viewCache.Get(ctx, subject, service.ViewMyAddresses, &addresses)
	if err != nil || !hit {
		return
	}
	if err := u.viewCache.Put(ctx, subject, service.ViewMyAddresses, edit(addresses)); err != nil {
		u.log.Warnf("Failed to patch addresses view for subject %s: %+v", subject, err)
	}
}

func addressDraft(req *dto.AddressRequest) *gateway.AddressDraft {
	return &gateway.AddressDraft{
		RecipientName: req.RecipientName,
		PhoneNumber:   req.PhoneNumber,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
	}
}
