package services

import (
	"context"
	"fmt"
	"strings"

	"peopledir/internal/models"
	"peopledir/internal/query"
	"peopledir/internal/repositories"
)

// phoneTypes maps accepted inputs to their stored spelling.
var phoneTypes = map[string]string{
	"home":   "Home",
	"work":   "Work",
	"mobile": "Mobile",
}

type PhoneService struct {
	phoneRepo  *repositories.PhoneRepository
	personRepo *repositories.PersonRepository
}

func NewPhoneService(phoneRepo *repositories.PhoneRepository, personRepo *repositories.PersonRepository) *PhoneService {
	return &PhoneService{phoneRepo: phoneRepo, personRepo: personRepo}
}

type CreatePhoneRequest struct {
	Number   string `json:"number" binding:"required,max=20"`
	Type     string `json:"type" binding:"required"`
	PersonID int64  `json:"person_id" binding:"required,gt=0"`
}

type UpdatePhoneRequest struct {
	Number   *string `json:"number" binding:"omitempty,min=1,max=20"`
	Type     *string `json:"type" binding:"omitempty"`
	PersonID *int64  `json:"person_id" binding:"omitempty,gt=0"`
}

func (s *PhoneService) Create(ctx context.Context, req *CreatePhoneRequest) (*models.Phone, error) {
	phoneType, err := normalizePhoneType(req.Type)
	if err != nil {
		return nil, err
	}

	if err := s.ensurePersonExists(ctx, req.PersonID); err != nil {
		return nil, err
	}

	phone := &models.Phone{
		Number:   req.Number,
		Type:     phoneType,
		PersonID: req.PersonID,
	}

	if err := s.phoneRepo.Create(ctx, phone); err != nil {
		if isForeignKeyViolation(err) {
			return nil, personMissing(req.PersonID)
		}
		return nil, fmt.Errorf("failed to create phone: %w", err)
	}

	return phone, nil
}

func (s *PhoneService) Get(ctx context.Context, id int64) (*models.Phone, error) {
	phone, err := s.phoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get phone: %w", err)
	}
	if phone == nil {
		return nil, ErrNotFound
	}

	return phone, nil
}

func (s *PhoneService) List(ctx context.Context, params query.Params) ([]models.Phone, int64, error) {
	phones, total, err := s.phoneRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list phones: %w", err)
	}

	return phones, total, nil
}

func (s *PhoneService) Update(ctx context.Context, id int64, req *UpdatePhoneRequest) (*models.Phone, error) {
	phone, err := s.phoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get phone: %w", err)
	}
	if phone == nil {
		return nil, ErrNotFound
	}

	if req.Number != nil {
		phone.Number = *req.Number
	}
	if req.Type != nil {
		phoneType, err := normalizePhoneType(*req.Type)
		if err != nil {
			return nil, err
		}
		phone.Type = phoneType
	}
	if req.PersonID != nil {
		if err := s.ensurePersonExists(ctx, *req.PersonID); err != nil {
			return nil, err
		}
		phone.PersonID = *req.PersonID
	}

	if err := s.phoneRepo.Update(ctx, phone); err != nil {
		if isForeignKeyViolation(err) {
			return nil, personMissing(phone.PersonID)
		}
		return nil, fmt.Errorf("failed to update phone: %w", err)
	}

	return phone, nil
}

func (s *PhoneService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.phoneRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete phone: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}

func (s *PhoneService) ensurePersonExists(ctx context.Context, personID int64) error {
	exists, err := s.personRepo.Exists(ctx, personID)
	if err != nil {
		return fmt.Errorf("failed to check person: %w", err)
	}
	if !exists {
		return personMissing(personID)
	}

	return nil
}

// normalizePhoneType validates the type against the accepted set and
// returns its canonical Title-case spelling.
func normalizePhoneType(raw string) (string, error) {
	normalized, ok := phoneTypes[strings.ToLower(raw)]
	if !ok {
		return "", &ValidationError{
			Message: fmt.Sprintf("invalid phone type %q: must be one of home, work, mobile", raw),
		}
	}

	return normalized, nil
}
