package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/darshan1301/psfa-landing-page-sub001/repositories"
	"github.com/darshan1301/psfa-landing-page-sub001/storage"
)

var (
	ErrMilestoneFieldsRequired = errors.New("title, description and image are required")
	ErrMilestoneInvalidYear    = errors.New("milestone year is out of range")
)

type MilestoneService interface {
	CreateMilestone(ctx context.Context, input MilestoneInput) (*models.Milestone, error)
	GetAllMilestones(ctx context.Context) ([]models.Milestone, error)
	UpdateMilestone(ctx context.Context, id int, input MilestoneInput) (*models.Milestone, error)
	DeleteMilestone(ctx context.Context, id int) error
}

type MilestoneInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Year        int    `json:"year"`
}

func (in MilestoneInput) validate() error {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.ImageURL) == "" {
		return ErrMilestoneFieldsRequired
	}
	if in.Year < 1900 || in.Year > time.Now().Year()+1 {
		return ErrMilestoneInvalidYear
	}
	return nil
}

type milestoneService struct {
	milestoneRepo repositories.MilestoneRepository
	uploader      storage.FileUploader
	bucket        string
	logger        *slog.Logger
}

func NewMilestoneService(milestoneRepo repositories.MilestoneRepository, uploader storage.FileUploader, bucket string, logger *slog.Logger) MilestoneService {
	return &milestoneService{
		milestoneRepo: milestoneRepo,
		uploader:      uploader,
		bucket:        bucket,
		logger:        logger,
	}
}

func (s *milestoneService) CreateMilestone(ctx context.Context, input MilestoneInput) (*models.Milestone, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	milestone := &models.Milestone{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Year:        input.Year,
	}

	if err := s.milestoneRepo.Create(ctx, milestone); err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}

	return milestone, nil
}

func (s *milestoneService) GetAllMilestones(ctx context.Context) ([]models.Milestone, error) {
	milestones, err := s.milestoneRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all milestones: %w", err)
	}
	return milestones, nil
}

func (s *milestoneService) UpdateMilestone(ctx context.Context, id int, input MilestoneInput) (*models.Milestone, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.milestoneRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMilestoneNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("failed to get milestone %d: %w", id, err)
	}

	updated := &models.Milestone{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Year:        input.Year,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.milestoneRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repositories.ErrMilestoneNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("failed to update milestone %d: %w", id, err)
	}

	if existing.ImageURL != updated.ImageURL {
		if err := deleteAssetByURL(ctx, s.uploader, s.bucket, existing.ImageURL); err != nil {
			s.logger.Warn("failed to delete replaced milestone image",
				slog.Int("milestone_id", id),
				slog.String("image_url", existing.ImageURL),
				slog.Any("error", err))
		}
	}

	return updated, nil
}

// DeleteMilestone checks the record exists, deletes it, then deletes its
// image. The caller sees a single failed delete if the asset step fails,
// even though the record delete has already committed.
func (s *milestoneService) DeleteMilestone(ctx context.Context, id int) error {
	milestone, err := s.milestoneRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMilestoneNotFound) {
			return ErrMilestoneNotFound
		}
		return fmt.Errorf("failed to get milestone %d: %w", id, err)
	}

	if err := s.milestoneRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMilestoneNotFound) {
			return ErrMilestoneNotFound
		}
		return fmt.Errorf("failed to delete milestone %d: %w", id, err)
	}

	if err := deleteAssetByURL(ctx, s.uploader, s.bucket, milestone.ImageURL); err != nil {
		return err
	}

	return nil
}
