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
	"golang.org/x/sync/errgroup"
)

var (
	ErrInfrastructureFieldsRequired = errors.New("name, location and area are required")
	ErrInfrastructureImagesRequired = errors.New("at least one image is required")
)

type InfrastructureService interface {
	CreateInfrastructure(ctx context.Context, input InfrastructureInput) (*models.SportsInfrastructure, error)
	GetAllInfrastructure(ctx context.Context) ([]models.SportsInfrastructure, error)
	UpdateInfrastructure(ctx context.Context, id int, input InfrastructureInput) (*models.SportsInfrastructure, error)
	DeleteInfrastructure(ctx context.Context, id int) error
}

type InfrastructureInput struct {
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Area      string   `json:"area"`
	Images    []string `json:"images"`
	Amenities []string `json:"amenities"`
}

func (in InfrastructureInput) validate() error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.Area) == "" {
		return ErrInfrastructureFieldsRequired
	}
	if len(in.Images) == 0 {
		return ErrInfrastructureImagesRequired
	}
	for _, img := range in.Images {
		if strings.TrimSpace(img) == "" {
			return ErrInfrastructureImagesRequired
		}
	}
	return nil
}

type infrastructureService struct {
	infraRepo repositories.InfrastructureRepository
	uploader  storage.FileUploader
	bucket    string
	logger    *slog.Logger
}

func NewInfrastructureService(infraRepo repositories.InfrastructureRepository, uploader storage.FileUploader, bucket string, logger *slog.Logger) InfrastructureService {
	return &infrastructureService{
		infraRepo: infraRepo,
		uploader:  uploader,
		bucket:    bucket,
		logger:    logger,
	}
}

func (s *infrastructureService) CreateInfrastructure(ctx context.Context, input InfrastructureInput) (*models.SportsInfrastructure, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	infra := &models.SportsInfrastructure{
		Name:      strings.TrimSpace(input.Name),
		Location:  strings.TrimSpace(input.Location),
		Area:      strings.TrimSpace(input.Area),
		Images:    input.Images,
		Amenities: input.Amenities,
	}
	if infra.Amenities == nil {
		infra.Amenities = []string{}
	}

	if err := s.infraRepo.Create(ctx, infra); err != nil {
		return nil, fmt.Errorf("failed to create sports infrastructure: %w", err)
	}

	return infra, nil
}

func (s *infrastructureService) GetAllInfrastructure(ctx context.Context) ([]models.SportsInfrastructure, error) {
	items, err := s.infraRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sports infrastructure: %w", err)
	}
	return items, nil
}

func (s *infrastructureService) UpdateInfrastructure(ctx context.Context, id int, input InfrastructureInput) (*models.SportsInfrastructure, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.infraRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInfrastructureNotFound) {
			return nil, ErrInfrastructureNotFound
		}
		return nil, fmt.Errorf("failed to get sports infrastructure %d: %w", id, err)
	}

	updated := &models.SportsInfrastructure{
		ID:        id,
		Name:      strings.TrimSpace(input.Name),
		Location:  strings.TrimSpace(input.Location),
		Area:      strings.TrimSpace(input.Area),
		Images:    input.Images,
		Amenities: input.Amenities,
		CreatedAt: existing.CreatedAt,
	}
	if updated.Amenities == nil {
		updated.Amenities = []string{}
	}

	if err := s.infraRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repositories.ErrInfrastructureNotFound) {
			return nil, ErrInfrastructureNotFound
		}
		return nil, fmt.Errorf("failed to update sports infrastructure %d: %w", id, err)
	}

	// Удаляем только те изображения, которых больше нет в списке.
	kept := make(map[string]struct{}, len(updated.Images))
	for _, img := range updated.Images {
		kept[img] = struct{}{}
	}
	for _, img := range existing.Images {
		if _, ok := kept[img]; ok {
			continue
		}
		if err := deleteAssetByURL(ctx, s.uploader, s.bucket, img); err != nil {
			s.logger.Warn("failed to delete replaced infrastructure image",
				slog.Int("infrastructure_id", id),
				slog.String("image_url", img),
				slog.Any("error", err))
		}
	}

	return updated, nil
}

// DeleteInfrastructure removes the record and fans asset deletion out across
// every image in the gallery. Any asset failure is reported to the caller;
// the record stays deleted.
func (s *infrastructureService) DeleteInfrastructure(ctx context.Context, id int) error {
	infra, err := s.infraRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInfrastructureNotFound) {
			return ErrInfrastructureNotFound
		}
		return fmt.Errorf("failed to get sports infrastructure %d: %w", id, err)
	}

	if err := s.infraRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrInfrastructureNotFound) {
			return ErrInfrastructureNotFound
		}
		return fmt.Errorf("failed to delete sports infrastructure %d: %w", id, err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, img := range infra.Images {
		img := img
		g.Go(func() error {
			return deleteAssetByURL(gCtx, s.uploader, s.bucket, img)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return nil
}
