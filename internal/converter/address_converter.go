package converter

import (
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
)

// AddressToResponse converts a DeliveryAddress entity to AddressResponse DTO
func AddressToResponse(address *entity.DeliveryAddress) *dto.AddressResponse {
	if address == nil {
		return nil
	}

	return &dto.AddressResponse{
		ID:            address.ID,
		RecipientName: address.RecipientName,
		PhoneNumber:   address.PhoneNumber,
		StreetAddress: address.StreetAddress,
		City:          address.City,
		State:         address.State,
		PostalCode:    address.PostalCode,
		Country:       address.Country,
	}
}

// AddressesToResponses converts a slice of DeliveryAddress entities to slice of AddressResponse DTOs
func AddressesToResponses(addresses []entity.DeliveryAddress) []dto.AddressResponse {
	responses := make([]dto.AddressResponse, len(addresses))
	for i, address := range addresses {
		responses[i] = *AddressToResponse(&address)
	}
	return responses
}
