package services

import (
	"context"
	"fmt"

	"peopledir/internal/models"
	"peopledir/internal/query"
	"peopledir/internal/repositories"
)

type AddressService struct {
	addressRepo *repositories.AddressRepository
	personRepo  *repositories.PersonRepository
}

func NewAddressService(addressRepo *repositories.AddressRepository, personRepo *repositories.PersonRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo, personRepo: personRepo}
}

type CreateAddressRequest struct {
	Street   string `json:"street" binding:"required,max=100"`
	City     string `json:"city" binding:"required,max=50"`
	PersonID int64  `json:"person_id" binding:"required,gt=0"`
}

type UpdateAddressRequest struct {
	Street   *string `json:"street" binding:"omitempty,min=1,max=100"`
	City     *string `json:"city" binding:"omitempty,min=1,max=50"`
	PersonID *int64  `json:"person_id" binding:"omitempty,gt=0"`
}

func (s *AddressService) Create(ctx context.Context, req *CreateAddressRequest) (*models.Address, error) {
	if err := s.ensurePersonExists(ctx, req.PersonID); err != nil {
		return nil, err
	}

	address := &models.Address{
		Street:   req.Street,
		City:     req.City,
		PersonID: req.PersonID,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		if isForeignKeyViolation(err) {
			return nil, personMissing(req.PersonID)
		}
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	return address, nil
}

func (s *AddressService) Get(ctx context.Context, id int64) (*models.Address, error) {
	address, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	if address == nil {
		return nil, ErrNotFound
	}

	return address, nil
}

func (s *AddressService) List(ctx context.Context, params query.Params) ([]models.Address, int64, error) {
	addresses, total, err := s.addressRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list addresses: %w", err)
	}

	return addresses, total, nil
}

func (s *AddressService) Update(ctx context.Context, id int64, req *UpdateAddressRequest) (*models.Address, error) {
	address, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	if address == nil {
		return nil, ErrNotFound
	}

	if req.Street != nil {
		address.Street = *req.Street
	}
	if req.City != nil {
		address.City = *req.City
	}
	if req.PersonID != nil {
		if err := s.ensurePersonExists(ctx, *req.PersonID); err != nil {
			return nil, err
		}
		address.PersonID = *req.PersonID
	}

	if err := s.addressRepo.Update(ctx, address); err != nil {
		if isForeignKeyViolation(err) {
			return nil, personMissing(address.PersonID)
		}
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	return address, nil
}

func (s *AddressService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.addressRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}

func (s *AddressService) ensurePersonExists(ctx context.Context, personID int64) error {
	exists, err := s.personRepo.Exists(ctx, personID)
	if err != nil {
		return fmt.Errorf("failed to check person: %w", err)
	}
	if !exists {
		return personMissing(personID)
	}

	return nil
}
