package services

import (
	"context"
	"errors"
	"testing"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/darshan1301/psfa-landing-page-sub001/repositories"
)

func TestApplyForPosition(t *testing.T) {
	positions := map[int]*models.JobPosition{
		1: {ID: 1, Title: "Тренер", IsOpen: true},
		2: {ID: 2, Title: "Менеджер", IsOpen: false},
	}
	positionRepo := &fakeJobPositionRepo{
		getByIDFunc: func(ctx context.Context, id int) (*models.JobPosition, error) {
			p, ok := positions[id]
			if !ok {
				return nil, repositories.ErrJobPositionNotFound
			}
			return p, nil
		},
	}

	validInput := func(positionID int) JobApplicationInput {
		return JobApplicationInput{
			PositionID: positionID,
			Name:       "Равиль",
			Email:      "Ravi@Example.com",
			Phone:      "+919876543210",
		}
	}

	t.Run("open position", func(t *testing.T) {
		applicationRepo := &fakeJobApplicationRepo{
			createFunc: func(ctx context.Context, a *models.JobApplication) error {
				a.ID = 10
				return nil
			},
		}
		svc := NewJobService(positionRepo, applicationRepo)

		app, err := svc.ApplyForPosition(context.Background(), validInput(1))
		if err != nil {
			t.Fatalf("ApplyForPosition: %v", err)
		}
		if app.Status != models.ApplicationApplied {
			t.Errorf("status = %q, want %q", app.Status, models.ApplicationApplied)
		}
		if app.Email != "ravi@example.com" {
			t.Errorf("email = %q, want lowercased %q", app.Email, "ravi@example.com")
		}
	})

	t.Run("closed position", func(t *testing.T) {
		svc := NewJobService(positionRepo, &fakeJobApplicationRepo{})

		_, err := svc.ApplyForPosition(context.Background(), validInput(2))
		if !errors.Is(err, ErrPositionClosed) {
			t.Fatalf("error = %v, want ErrPositionClosed", err)
		}
	})

	t.Run("missing position", func(t *testing.T) {
		svc := NewJobService(positionRepo, &fakeJobApplicationRepo{})

		_, err := svc.ApplyForPosition(context.Background(), validInput(404))
		if !errors.Is(err, ErrJobPositionNotFound) {
			t.Fatalf("error = %v, want ErrJobPositionNotFound", err)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		svc := NewJobService(positionRepo, &fakeJobApplicationRepo{})

		input := validInput(1)
		input.Phone = "not-a-phone"
		_, err := svc.ApplyForPosition(context.Background(), input)
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("error = %v, want ErrInvalidPhone", err)
		}
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	stored := &models.JobApplication{ID: 10, Status: models.ApplicationApplied}
	applicationRepo := &fakeJobApplicationRepo{
		updateStatusFunc: func(ctx context.Context, id int, status models.ApplicationStatus) error {
			if id != 10 {
				return repositories.ErrJobApplicationNotFound
			}
			stored.Status = status
			return nil
		},
		getByIDFunc: func(ctx context.Context, id int) (*models.JobApplication, error) {
			if id != 10 {
				return nil, repositories.ErrJobApplicationNotFound
			}
			return stored, nil
		},
	}
	svc := NewJobService(&fakeJobPositionRepo{}, applicationRepo)

	t.Run("valid status is uppercased", func(t *testing.T) {
		app, err := svc.UpdateApplicationStatus(context.Background(), 10, "accepted")
		if err != nil {
			t.Fatalf("UpdateApplicationStatus: %v", err)
		}
		if app.Status != models.ApplicationAccepted {
			t.Errorf("status = %q, want %q", app.Status, models.ApplicationAccepted)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := svc.UpdateApplicationStatus(context.Background(), 10, "SHORTLISTED")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("missing application", func(t *testing.T) {
		_, err := svc.UpdateApplicationStatus(context.Background(), 404, "REJECTED")
		if !errors.Is(err, ErrApplicationNotFound) {
			t.Fatalf("error = %v, want ErrApplicationNotFound", err)
		}
	})
}
