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

var ErrTestimonialFieldsRequired = errors.New("name, membership, comment and image are required")

type TestimonialService interface {
	CreateTestimonial(ctx context.Context, input TestimonialInput) (*models.Testimonial, error)
	GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id int, input TestimonialInput) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int) error
}

type TestimonialInput struct {
	Name       string `json:"name"`
	Membership string `json:"membership"`
	Comment    string `json:"comment"`
	ImageURL   string `json:"image_url"`
}

func (in TestimonialInput) validate() error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Membership) == "" ||
		strings.TrimSpace(in.Comment) == "" ||
		strings.TrimSpace(in.ImageURL) == "" {
		return ErrTestimonialFieldsRequired
	}
	return nil
}

type testimonialService struct {
	testimonialRepo repositories.TestimonialRepository
	uploader        storage.FileUploader
	bucket          string
	logger          *slog.Logger
}

func NewTestimonialService(testimonialRepo repositories.TestimonialRepository, uploader storage.FileUploader, bucket string, logger *slog.Logger) TestimonialService {
	return &testimonialService{
		testimonialRepo: testimonialRepo,
		uploader:        uploader,
		bucket:          bucket,
		logger:          logger,
	}
}

func (s *testimonialService) CreateTestimonial(ctx context.Context, input TestimonialInput) (*models.Testimonial, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	testimonial := &models.Testimonial{
		Name:       strings.TrimSpace(input.Name),
		Membership: strings.TrimSpace(input.Membership),
		Comment:    strings.TrimSpace(input.Comment),
		ImageURL:   strings.TrimSpace(input.ImageURL),
	}

	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	return testimonial, nil
}

func (s *testimonialService) GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.testimonialRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all testimonials: %w", err)
	}
	return testimonials, nil
}

// UpdateTestimonial persists the new record first, then deletes the previous
// image when it changed. The record must never be left pointing at a deleted
// asset, so the delete comes after the update and its failure is log-only.
func (s *testimonialService) UpdateTestimonial(ctx context.Context, id int, input TestimonialInput) (*models.Testimonial, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial %d: %w", id, err)
	}

	updated := &models.Testimonial{
		ID:         id,
		Name:       strings.TrimSpace(input.Name),
		Membership: strings.TrimSpace(input.Membership),
		Comment:    strings.TrimSpace(input.Comment),
		ImageURL:   strings.TrimSpace(input.ImageURL),
		CreatedAt:  existing.CreatedAt,
	}

	if err := s.testimonialRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("failed to update testimonial %d: %w", id, err)
	}

	if existing.ImageURL != updated.ImageURL {
		if err := deleteAssetByURL(ctx, s.uploader, s.bucket, existing.ImageURL); err != nil {
			s.logger.Warn("failed to delete replaced testimonial image",
				slog.Int("testimonial_id", id),
				slog.String("image_url", existing.ImageURL),
				slog.Any("error", err))
		}
	}

	return updated, nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, id int) error {
	testimonial, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return ErrTestimonialNotFound
		}
		return fmt.Errorf("failed to get testimonial %d: %w", id, err)
	}

	if err := s.testimonialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return ErrTestimonialNotFound
		}
		return fmt.Errorf("failed to delete testimonial %d: %w", id, err)
	}

	// Запись уже удалена; ошибка хранилища возвращается вызывающему как есть.
	if err := deleteAssetByURL(ctx, s.uploader, s.bucket, testimonial.ImageURL); err != nil {
		return err
	}

	return nil
}
