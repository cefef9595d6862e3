package services

import (
	"context"
	"fmt"

	"peopledir/internal/models"
	"peopledir/internal/query"
	"peopledir/internal/repositories"
)

type PersonService struct {
	personRepo *repositories.PersonRepository
}

func NewPersonService(personRepo *repositories.PersonRepository) *PersonService {
	return &PersonService{personRepo: personRepo}
}

type CreatePersonRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Age  int    `json:"age" binding:"required,gt=0"`
}

// UpdatePersonRequest uses pointers so absent fields are left untouched
// while present-but-invalid values are still rejected.
type UpdatePersonRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	Age  *int    `json:"age" binding:"omitempty,gt=0"`
}

func (s *PersonService) Create(ctx context.Context, req *CreatePersonRequest) (*models.Person, error) {
	person := &models.Person{
		Name: req.Name,
		Age:  req.Age,
	}

	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

func (s *PersonService) Get(ctx context.Context, id int64) (*models.Person, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	if person == nil {
		return nil, ErrNotFound
	}

	return person, nil
}

func (s *PersonService) List(ctx context.Context, params query.Params) ([]models.Person, int64, error) {
	persons, total, err := s.personRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list persons: %w", err)
	}

	return persons, total, nil
}

func (s *PersonService) Update(ctx context.Context, id int64, req *UpdatePersonRequest) (*models.Person, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	if person == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		person.Name = *req.Name
	}
	if req.Age != nil {
		person.Age = *req.Age
	}

	if err := s.personRepo.Update(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	return person, nil
}

func (s *PersonService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.personRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}
