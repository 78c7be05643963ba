package service

import (
	"context"

	"github.com/hseconsult/backend/internal/model"
	"github.com/hseconsult/backend/internal/repository"
	"github.com/hseconsult/backend/internal/validation"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	validator *validation.Validator
	repo      repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository, v *validation.Validator) ContactService {
	return &contactServiceImpl{validator: v, repo: repo}
}

// Submit validates first so that an invalid body never reaches the repository.
func (s *contactServiceImpl) Submit(ctx context.Context, body map[string]any) (*model.ContactSubmission, error) {
	in, err := s.validator.ValidateContact(body)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in)
}

func (s *contactServiceImpl) Get(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	return s.repo.FindByID(ctx, id)
}
