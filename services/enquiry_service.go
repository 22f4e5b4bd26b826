package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/darshan1301/psfa-landing-page-sub001/repositories"
)

var ErrEnquiryFieldsRequired = errors.New("name, email and message are required")

type EnquiryService interface {
	CreateEnquiry(ctx context.Context, input EnquiryInput) (*models.Enquiry, error)
	GetAllEnquiries(ctx context.Context) ([]models.Enquiry, error)
	UpdateEnquiryStatus(ctx context.Context, id int, status string) (*models.Enquiry, error)
	DeleteEnquiry(ctx context.Context, id int) error
}

type EnquiryInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}

type enquiryService struct {
	enquiryRepo repositories.EnquiryRepository
}

func NewEnquiryService(enquiryRepo repositories.EnquiryRepository) EnquiryService {
	return &enquiryService{enquiryRepo: enquiryRepo}
}

func (s *enquiryService) CreateEnquiry(ctx context.Context, input EnquiryInput) (*models.Enquiry, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return nil, ErrEnquiryFieldsRequired
	}

	email := normalizeEmail(input.Email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	var phone *string
	if input.Phone != nil && strings.TrimSpace(*input.Phone) != "" {
		p := strings.TrimSpace(*input.Phone)
		if !isValidPhone(p) {
			return nil, ErrInvalidPhone
		}
		phone = &p
	}

	enquiry := &models.Enquiry{
		Name:    strings.TrimSpace(input.Name),
		Email:   email,
		Phone:   phone,
		Message: strings.TrimSpace(input.Message),
		Status:  models.EnquiryNew,
	}

	if err := s.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}

	return enquiry, nil
}

func (s *enquiryService) GetAllEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	enquiries, err := s.enquiryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all enquiries: %w", err)
	}
	return enquiries, nil
}

func (s *enquiryService) UpdateEnquiryStatus(ctx context.Context, id int, status string) (*models.Enquiry, error) {
	newStatus := models.EnquiryStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.enquiryRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, repositories.ErrEnquiryNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to update enquiry %d status: %w", id, err)
	}

	enquiry, err := s.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEnquiryNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to get enquiry %d: %w", id, err)
	}

	return enquiry, nil
}

func (s *enquiryService) DeleteEnquiry(ctx context.Context, id int) error {
	if err := s.enquiryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEnquiryNotFound) {
			return ErrEnquiryNotFound
		}
		return fmt.Errorf("failed to delete enquiry %d: %w", id, err)
	}
	return nil
}
