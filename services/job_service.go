package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/darshan1301/psfa-landing-page-sub001/repositories"
)

var (
	ErrJobPositionFieldsRequired = errors.New("title, description, location and type are required")
	ErrApplicationFieldsRequired = errors.New("position, name, email and phone are required")
	ErrPositionClosed            = errors.New("job position is not open for applications")
)

type JobService interface {
	CreatePosition(ctx context.Context, input JobPositionInput) (*models.JobPosition, error)
	GetAllPositions(ctx context.Context) ([]models.JobPosition, error)
	UpdatePosition(ctx context.Context, id int, input JobPositionInput) (*models.JobPosition, error)
	DeletePosition(ctx context.Context, id int) error

	ApplyForPosition(ctx context.Context, input JobApplicationInput) (*models.JobApplication, error)
	GetAllApplications(ctx context.Context) ([]models.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, id int, status string) (*models.JobApplication, error)
}

type JobPositionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	IsOpen      *bool  `json:"is_open"`
}

type JobApplicationInput struct {
	PositionID int     `json:"position_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	ResumeURL  *string `json:"resume_url"`
}

type jobService struct {
	positionRepo    repositories.JobPositionRepository
	applicationRepo repositories.JobApplicationRepository
}

func NewJobService(positionRepo repositories.JobPositionRepository, applicationRepo repositories.JobApplicationRepository) JobService {
	return &jobService{
		positionRepo:    positionRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *jobService) CreatePosition(ctx context.Context, input JobPositionInput) (*models.JobPosition, error) {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Location) == "" ||
		strings.TrimSpace(input.Type) == "" {
		return nil, ErrJobPositionFieldsRequired
	}

	open := true
	if input.IsOpen != nil {
		open = *input.IsOpen
	}

	position := &models.JobPosition{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		Type:        strings.TrimSpace(input.Type),
		IsOpen:      open,
	}

	if err := s.positionRepo.Create(ctx, position); err != nil {
		return nil, fmt.Errorf("failed to create job position: %w", err)
	}

	return position, nil
}

func (s *jobService) GetAllPositions(ctx context.Context) ([]models.JobPosition, error) {
	positions, err := s.positionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all job positions: %w", err)
	}
	return positions, nil
}

func (s *jobService) UpdatePosition(ctx context.Context, id int, input JobPositionInput) (*models.JobPosition, error) {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Location) == "" ||
		strings.TrimSpace(input.Type) == "" {
		return nil, ErrJobPositionFieldsRequired
	}

	existing, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPositionNotFound) {
			return nil, ErrJobPositionNotFound
		}
		return nil, fmt.Errorf("failed to get job position %d: %w", id, err)
	}

	updated := &models.JobPosition{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		Type:        strings.TrimSpace(input.Type),
		IsOpen:      existing.IsOpen,
		CreatedAt:   existing.CreatedAt,
	}
	if input.IsOpen != nil {
		updated.IsOpen = *input.IsOpen
	}

	if err := s.positionRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repositories.ErrJobPositionNotFound) {
			return nil, ErrJobPositionNotFound
		}
		return nil, fmt.Errorf("failed to update job position %d: %w", id, err)
	}

	return updated, nil
}

func (s *jobService) DeletePosition(ctx context.Context, id int) error {
	err := s.positionRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrJobPositionNotFound):
			return ErrJobPositionNotFound
		case errors.Is(err, repositories.ErrJobPositionInUse):
			return ErrJobPositionInUse
		default:
			return fmt.Errorf("failed to delete job position %d: %w", id, err)
		}
	}
	return nil
}

func (s *jobService) ApplyForPosition(ctx context.Context, input JobApplicationInput) (*models.JobApplication, error) {
	if input.PositionID <= 0 ||
		strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Phone) == "" {
		return nil, ErrApplicationFieldsRequired
	}

	email := normalizeEmail(input.Email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	phone := strings.TrimSpace(input.Phone)
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	position, err := s.positionRepo.GetByID(ctx, input.PositionID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPositionNotFound) {
			return nil, ErrJobPositionNotFound
		}
		return nil, fmt.Errorf("failed to get job position %d: %w", input.PositionID, err)
	}
	if !position.IsOpen {
		return nil, ErrPositionClosed
	}

	application := &models.JobApplication{
		PositionID: input.PositionID,
		Name:       strings.TrimSpace(input.Name),
		Email:      email,
		Phone:      phone,
		ResumeURL:  input.ResumeURL,
		Status:     models.ApplicationApplied,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, repositories.ErrJobPositionNotFound) {
			return nil, ErrJobPositionNotFound
		}
		return nil, fmt.Errorf("failed to create job application: %w", err)
	}

	return application, nil
}

func (s *jobService) GetAllApplications(ctx context.Context) ([]models.JobApplication, error) {
	applications, err := s.applicationRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all job applications: %w", err)
	}
	return applications, nil
}

// UpdateApplicationStatus sets any recognized status; transitions are not
// constrained, but the application must exist.
func (s *jobService) UpdateApplicationStatus(ctx context.Context, id int, status string) (*models.JobApplication, error) {
	newStatus := models.ApplicationStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, repositories.ErrJobApplicationNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to update application %d status: %w", id, err)
	}

	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobApplicationNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application %d: %w", id, err)
	}

	return application, nil
}
