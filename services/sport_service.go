package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/darshan1301/psfa-landing-page-sub001/repositories"
	"github.com/darshan1301/psfa-landing-page-sub001/storage"
)

var (
	ErrSportNameRequired  = errors.New("sport name is required")
	ErrSportImageRequired = errors.New("sport image is required")
)

type SportService interface {
	CreateSport(ctx context.Context, input CreateSportInput) (*models.Sport, error)
	GetAllSports(ctx context.Context) ([]models.Sport, error)
	UpdateSport(ctx context.Context, id int, input UpdateSportInput) (*models.Sport, error)
	SetSportActive(ctx context.Context, id int, active bool) (*models.Sport, error)
	DeleteSport(ctx context.Context, id int) error
}

type CreateSportInput struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	IsActive *bool  `json:"is_active"`
}

type UpdateSportInput struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	IsActive *bool  `json:"is_active"`
}

type sportService struct {
	sportRepo repositories.SportRepository
	uploader  storage.FileUploader
	bucket    string
	logger    *slog.Logger
}

func NewSportService(sportRepo repositories.SportRepository, uploader storage.FileUploader, bucket string, logger *slog.Logger) SportService {
	return &sportService{
		sportRepo: sportRepo,
		uploader:  uploader,
		bucket:    bucket,
		logger:    logger,
	}
}

func (s *sportService) CreateSport(ctx context.Context, input CreateSportInput) (*models.Sport, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSportNameRequired
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrSportImageRequired
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	sport := &models.Sport{
		Name:     name,
		ImageURL: strings.TrimSpace(input.ImageURL),
		IsActive: active,
	}

	if err := s.sportRepo.Create(ctx, sport); err != nil {
		if errors.Is(err, repositories.ErrSportNameConflict) {
			return nil, ErrSportNameConflict
		}
		return nil, fmt.Errorf("failed to create sport: %w", err)
	}

	return sport, nil
}

func (s *sportService) GetAllSports(ctx context.Context) ([]models.Sport, error) {
	sports, err := s.sportRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sports: %w", err)
	}
	return sports, nil
}

// UpdateSport replaces the sport's fields. If the image URL changes, the
// record is persisted first and the orphaned old asset is deleted afterwards;
// a failed old-asset delete is logged but does not fail the update.
func (s *sportService) UpdateSport(ctx context.Context, id int, input UpdateSportInput) (*models.Sport, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSportNameRequired
	}
	newImageURL := strings.TrimSpace(input.ImageURL)
	if newImageURL == "" {
		return nil, ErrSportImageRequired
	}

	existing, err := s.sportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to get sport %d: %w", id, err)
	}

	updated := &models.Sport{
		ID:        id,
		Name:      name,
		ImageURL:  newImageURL,
		IsActive:  existing.IsActive,
		CreatedAt: existing.CreatedAt,
	}
	if input.IsActive != nil {
		updated.IsActive = *input.IsActive
	}

	if err := s.sportRepo.Update(ctx, updated); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSportNotFound):
			return nil, ErrSportNotFound
		case errors.Is(err, repositories.ErrSportNameConflict):
			return nil, ErrSportNameConflict
		default:
			return nil, fmt.Errorf("failed to update sport %d: %w", id, err)
		}
	}

	if existing.ImageURL != newImageURL {
		if err := deleteAssetByURL(ctx, s.uploader, s.bucket, existing.ImageURL); err != nil {
			s.logger.Warn("failed to delete replaced sport image",
				slog.Int("sport_id", id),
				slog.String("image_url", existing.ImageURL),
				slog.Any("error", err))
		}
	}

	return updated, nil
}

func (s *sportService) SetSportActive(ctx context.Context, id int, active bool) (*models.Sport, error) {
	sport, err := s.sportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to get sport %d: %w", id, err)
	}

	sport.IsActive = active
	if err := s.sportRepo.Update(ctx, sport); err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to update sport %d: %w", id, err)
	}

	return sport, nil
}

// DeleteSport removes the record and then its stored image. The two steps are
// not atomic: once the record delete commits, an asset-delete failure is
// surfaced to the caller but the record stays deleted.
func (s *sportService) DeleteSport(ctx context.Context, id int) error {
	sport, err := s.sportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return ErrSportNotFound
		}
		return fmt.Errorf("failed to get sport %d: %w", id, err)
	}

	if err := s.sportRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return ErrSportNotFound
		}
		return fmt.Errorf("failed to delete sport %d: %w", id, err)
	}

	if err := deleteAssetByURL(ctx, s.uploader, s.bucket, sport.ImageURL); err != nil {
		return err
	}

	return nil
}
