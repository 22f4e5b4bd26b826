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
	ErrTeamMemberFieldsRequired    = errors.New("name, role, description and image are required")
	ErrTeamMemberInvalidExperience = errors.New("years of experience must not be negative")
)

type TeamMemberService interface {
	CreateTeamMember(ctx context.Context, input TeamMemberInput) (*models.TeamMember, error)
	GetAllTeamMembers(ctx context.Context) ([]models.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id int, input TeamMemberInput) (*models.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id int) error
}

type TeamMemberInput struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	Description     string `json:"description"`
	ImageURL        string `json:"image_url"`
	YearsExperience int    `json:"years_experience"`
	SortOrder       int    `json:"sort_order"`
}

func (in TeamMemberInput) validate() error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Role) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.ImageURL) == "" {
		return ErrTeamMemberFieldsRequired
	}
	if in.YearsExperience < 0 {
		return ErrTeamMemberInvalidExperience
	}
	return nil
}

type teamMemberService struct {
	memberRepo repositories.TeamMemberRepository
	uploader   storage.FileUploader
	bucket     string
	logger     *slog.Logger
}

func NewTeamMemberService(memberRepo repositories.TeamMemberRepository, uploader storage.FileUploader, bucket string, logger *slog.Logger) TeamMemberService {
	return &teamMemberService{
		memberRepo: memberRepo,
		uploader:   uploader,
		bucket:     bucket,
		logger:     logger,
	}
}

func (s *teamMemberService) CreateTeamMember(ctx context.Context, input TeamMemberInput) (*models.TeamMember, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	member := &models.TeamMember{
		Name:            strings.TrimSpace(input.Name),
		Role:            strings.TrimSpace(input.Role),
		Description:     strings.TrimSpace(input.Description),
		ImageURL:        strings.TrimSpace(input.ImageURL),
		YearsExperience: input.YearsExperience,
		SortOrder:       input.SortOrder,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	return member, nil
}

func (s *teamMemberService) GetAllTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	members, err := s.memberRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all team members: %w", err)
	}
	return members, nil
}

func (s *teamMemberService) UpdateTeamMember(ctx context.Context, id int, input TeamMemberInput) (*models.TeamMember, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamMemberNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member %d: %w", id, err)
	}

	updated := &models.TeamMember{
		ID:              id,
		Name:            strings.TrimSpace(input.Name),
		Role:            strings.TrimSpace(input.Role),
		Description:     strings.TrimSpace(input.Description),
		ImageURL:        strings.TrimSpace(input.ImageURL),
		YearsExperience: input.YearsExperience,
		SortOrder:       input.SortOrder,
		CreatedAt:       existing.CreatedAt,
	}

	if err := s.memberRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repositories.ErrTeamMemberNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to update team member %d: %w", id, err)
	}

	if existing.ImageURL != updated.ImageURL {
		if err := deleteAssetByURL(ctx, s.uploader, s.bucket, existing.ImageURL); err != nil {
			s.logger.Warn("failed to delete replaced team member image",
				slog.Int("team_member_id", id),
				slog.String("image_url", existing.ImageURL),
				slog.Any("error", err))
		}
	}

	return updated, nil
}

func (s *teamMemberService) DeleteTeamMember(ctx context.Context, id int) error {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamMemberNotFound) {
			return ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to get team member %d: %w", id, err)
	}

	if err := s.memberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamMemberNotFound) {
			return ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to delete team member %d: %w", id, err)
	}

	if err := deleteAssetByURL(ctx, s.uploader, s.bucket, member.ImageURL); err != nil {
		return err
	}

	return nil
}
