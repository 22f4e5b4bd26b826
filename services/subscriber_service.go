package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/darshan1301/psfa-landing-page-sub001/repositories"
)

var ErrContactRequired = errors.New("contact is required")

type SubscriberService interface {
	Subscribe(ctx context.Context, contact string) (*models.Subscriber, error)
	GetAllSubscribers(ctx context.Context) ([]models.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id int) error
}

type subscriberService struct {
	subscriberRepo repositories.SubscriberRepository
}

func NewSubscriberService(subscriberRepo repositories.SubscriberRepository) SubscriberService {
	return &subscriberService{subscriberRepo: subscriberRepo}
}

// Subscribe classifies a single contact string as an email or a phone number
// (email wins when both could match), lowercases emails, and rejects a
// contact already present in either column.
func (s *subscriberService) Subscribe(ctx context.Context, contact string) (*models.Subscriber, error) {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return nil, ErrContactRequired
	}

	subscriber := &models.Subscriber{}
	switch {
	case isValidEmail(contact):
		email := normalizeEmail(contact)
		subscriber.Email = &email
	case isValidPhone(contact):
		phone := contact
		subscriber.Phone = &phone
	default:
		return nil, ErrInvalidContact
	}

	exists, err := s.subscriberRepo.ExistsByContact(ctx, subscriber.Email, subscriber.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing subscriber: %w", err)
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	if err := s.subscriberRepo.Create(ctx, subscriber); err != nil {
		// Гонка двух одновременных подписок: уникальный индекс решает.
		if errors.Is(err, repositories.ErrSubscriberConflict) {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return subscriber, nil
}

func (s *subscriberService) GetAllSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	subscribers, err := s.subscriberRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all subscribers: %w", err)
	}
	return subscribers, nil
}

func (s *subscriberService) DeleteSubscriber(ctx context.Context, id int) error {
	if err := s.subscriberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSubscriberNotFound) {
			return ErrSubscriberNotFound
		}
		return fmt.Errorf("failed to delete subscriber %d: %w", id, err)
	}
	return nil
}
