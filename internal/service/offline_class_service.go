package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"remedial/internal/errors"
	"remedial/internal/model"
	"remedial/internal/repository"
)

// OfflineClassInput carries the writable offline class fields.
type OfflineClassInput struct {
	Subject   string
	Location  string
	StartDate time.Time
	Time      string
}

// OfflineClassService handles offline class CRUD.
type OfflineClassService interface {
	ListClasses(ctx context.Context) ([]model.OfflineClass, error)
	GetClassByID(ctx context.Context, id uuid.UUID) (*model.OfflineClass, error)
	CreateClass(ctx context.Context, input OfflineClassInput) (*model.OfflineClass, error)
	UpdateClassByID(ctx context.Context, id uuid.UUID, input OfflineClassInput) (*model.OfflineClass, error)
	DeleteClassByID(ctx context.Context, id uuid.UUID) error
}

type offlineClassService struct {
	repo repository.OfflineClassRepository
}

// NewOfflineClassService creates a new offline class service.
func NewOfflineClassService(repo repository.OfflineClassRepository) OfflineClassService {
	return &offlineClassService{repo: repo}
}

// ListClasses returns all offline classes.
func (s *offlineClassService) ListClasses(ctx context.Context) ([]model.OfflineClass, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// GetClassByID returns an offline class by ID.
func (s *offlineClassService) GetClassByID(ctx context.Context, id uuid.UUID) (*model.OfflineClass, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrClassNotFound
		}
		return nil, fmt.Errorf("get class: %w", err)
	}
	return class, nil
}

// CreateClass creates a new offline class.
func (s *offlineClassService) CreateClass(ctx context.Context, input OfflineClassInput) (*model.OfflineClass, error) {
	class := &model.OfflineClass{
		Subject:   input.Subject,
		Location:  input.Location,
		StartDate: input.StartDate,
		Time:      input.Time,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}
	return class, nil
}

// UpdateClassByID overwrites an offline class in place.
func (s *offlineClassService) UpdateClassByID(ctx context.Context, id uuid.UUID, input OfflineClassInput) (*model.OfflineClass, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrClassNotFound
		}
		return nil, fmt.Errorf("find class: %w", err)
	}

	class.Subject = input.Subject
	class.Location = input.Location
	class.StartDate = input.StartDate
	class.Time = input.Time

	if err := s.repo.Update(ctx, class); err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}
	return class, nil
}

// DeleteClassByID deletes an offline class by ID.
func (s *offlineClassService) DeleteClassByID(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrClassNotFound
		}
		return fmt.Errorf("find class: %w", err)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	return nil
}
