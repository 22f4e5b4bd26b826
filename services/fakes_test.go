package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/darshan1301/psfa-landing-page-sub001/storage"
)

const testBucket = "psfa-assets"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUploader записывает все вызовы Delete и может имитировать сбой.
type fakeUploader struct {
	mu          sync.Mutex
	deletedKeys []string
	deleteErr   error
}

func (f *fakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	return &storage.UploadResult{Key: key, Location: "https://" + testBucket + ".s3.amazonaws.com/" + key}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedKeys = append(f.deletedKeys, key)
	return nil
}

func (f *fakeUploader) GetPublicURL(key string) string {
	return "https://" + testBucket + ".s3.amazonaws.com/" + key
}

func (f *fakeUploader) deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deletedKeys...)
}

type fakeSportRepo struct {
	createFunc  func(ctx context.Context, sport *models.Sport) error
	getByIDFunc func(ctx context.Context, id int) (*models.Sport, error)
	getAllFunc  func(ctx context.Context) ([]models.Sport, error)
	updateFunc  func(ctx context.Context, sport *models.Sport) error
	deleteFunc  func(ctx context.Context, id int) error

	deletedIDs []int
}

func (f *fakeSportRepo) Create(ctx context.Context, sport *models.Sport) error {
	return f.createFunc(ctx, sport)
}

func (f *fakeSportRepo) GetByID(ctx context.Context, id int) (*models.Sport, error) {
	return f.getByIDFunc(ctx, id)
}

func (f *fakeSportRepo) GetAll(ctx context.Context) ([]models.Sport, error) {
	return f.getAllFunc(ctx)
}

func (f *fakeSportRepo) Update(ctx context.Context, sport *models.Sport) error {
	return f.updateFunc(ctx, sport)
}

func (f *fakeSportRepo) Delete(ctx context.Context, id int) error {
	if err := f.deleteFunc(ctx, id); err != nil {
		return err
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeTestimonialRepo struct {
	createFunc  func(ctx context.Context, t *models.Testimonial) error
	getByIDFunc func(ctx context.Context, id int) (*models.Testimonial, error)
	getAllFunc  func(ctx context.Context) ([]models.Testimonial, error)
	updateFunc  func(ctx context.Context, t *models.Testimonial) error
	deleteFunc  func(ctx context.Context, id int) error

	updated *models.Testimonial
}

func (f *fakeTestimonialRepo) Create(ctx context.Context, t *models.Testimonial) error {
	return f.createFunc(ctx, t)
}

func (f *fakeTestimonialRepo) GetByID(ctx context.Context, id int) (*models.Testimonial, error) {
	return f.getByIDFunc(ctx, id)
}

func (f *fakeTestimonialRepo) GetAll(ctx context.Context) ([]models.Testimonial, error) {
	return f.getAllFunc(ctx)
}

func (f *fakeTestimonialRepo) Update(ctx context.Context, t *models.Testimonial) error {
	if err := f.updateFunc(ctx, t); err != nil {
		return err
	}
	f.updated = t
	return nil
}

func (f *fakeTestimonialRepo) Delete(ctx context.Context, id int) error {
	return f.deleteFunc(ctx, id)
}

type fakeMilestoneRepo struct {
	getByIDFunc func(ctx context.Context, id int) (*models.Milestone, error)
	deleteFunc  func(ctx context.Context, id int) error

	deletedIDs []int
}

func (f *fakeMilestoneRepo) Create(ctx context.Context, m *models.Milestone) error { return nil }

func (f *fakeMilestoneRepo) GetByID(ctx context.Context, id int) (*models.Milestone, error) {
	return f.getByIDFunc(ctx, id)
}

func (f *fakeMilestoneRepo) GetAll(ctx context.Context) ([]models.Milestone, error) {
	return nil, nil
}

func (f *fakeMilestoneRepo) Update(ctx context.Context, m *models.Milestone) error { return nil }

func (f *fakeMilestoneRepo) Delete(ctx context.Context, id int) error {
	if err := f.deleteFunc(ctx, id); err != nil {
		return err
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeInfrastructureRepo struct {
	getByIDFunc func(ctx context.Context, id int) (*models.SportsInfrastructure, error)
	deleteFunc  func(ctx context.Context, id int) error
}

func (f *fakeInfrastructureRepo) Create(ctx context.Context, i *models.SportsInfrastructure) error {
	return nil
}

func (f *fakeInfrastructureRepo) GetByID(ctx context.Context, id int) (*models.SportsInfrastructure, error) {
	return f.getByIDFunc(ctx, id)
}

func (f *fakeInfrastructureRepo) GetAll(ctx context.Context) ([]models.SportsInfrastructure, error) {
	return nil, nil
}

func (f *fakeInfrastructureRepo) Update(ctx context.Context, i *models.SportsInfrastructure) error {
	return nil
}

func (f *fakeInfrastructureRepo) Delete(ctx context.Context, id int) error {
	return f.deleteFunc(ctx, id)
}

type fakeSubscriberRepo struct {
	createFunc func(ctx context.Context, s *models.Subscriber) error
	existsFunc func(ctx context.Context, email, phone *string) (bool, error)

	created []*models.Subscriber
}

func (f *fakeSubscriberRepo) Create(ctx context.Context, s *models.Subscriber) error {
	if err := f.createFunc(ctx, s); err != nil {
		return err
	}
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSubscriberRepo) GetAll(ctx context.Context) ([]models.Subscriber, error) {
	return nil, nil
}

func (f *fakeSubscriberRepo) ExistsByContact(ctx context.Context, email, phone *string) (bool, error) {
	return f.existsFunc(ctx, email, phone)
}

func (f *fakeSubscriberRepo) Delete(ctx context.Context, id int) error { return nil }

type fakeJobPositionRepo struct {
	getByIDFunc func(ctx context.Context, id int) (*models.JobPosition, error)
}

func (f *fakeJobPositionRepo) Create(ctx context.Context, p *models.JobPosition) error { return nil }

func (f *fakeJobPositionRepo) GetByID(ctx context.Context, id int) (*models.JobPosition, error) {
	return f.getByIDFunc(ctx, id)
}

func (f *fakeJobPositionRepo) GetAll(ctx context.Context) ([]models.JobPosition, error) {
	return nil, nil
}

func (f *fakeJobPositionRepo) Update(ctx context.Context, p *models.JobPosition) error { return nil }

func (f *fakeJobPositionRepo) Delete(ctx context.Context, id int) error { return nil }

type fakeJobApplicationRepo struct {
	createFunc       func(ctx context.Context, a *models.JobApplication) error
	getByIDFunc      func(ctx context.Context, id int) (*models.JobApplication, error)
	updateStatusFunc func(ctx context.Context, id int, status models.ApplicationStatus) error

	statusUpdates []models.ApplicationStatus
}

func (f *fakeJobApplicationRepo) Create(ctx context.Context, a *models.JobApplication) error {
	return f.createFunc(ctx, a)
}

func (f *fakeJobApplicationRepo) GetByID(ctx context.Context, id int) (*models.JobApplication, error) {
	return f.getByIDFunc(ctx, id)
}

func (f *fakeJobApplicationRepo) GetAll(ctx context.Context) ([]models.JobApplication, error) {
	return nil, nil
}

func (f *fakeJobApplicationRepo) UpdateStatus(ctx context.Context, id int, status models.ApplicationStatus) error {
	if err := f.updateStatusFunc(ctx, id, status); err != nil {
		return err
	}
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

type fakeAdminUserRepo struct {
	createFunc     func(ctx context.Context, u *models.AdminUser) error
	getByEmailFunc func(ctx context.Context, email string) (*models.AdminUser, error)
}

func (f *fakeAdminUserRepo) Create(ctx context.Context, u *models.AdminUser) error {
	return f.createFunc(ctx, u)
}

func (f *fakeAdminUserRepo) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return f.getByEmailFunc(ctx, email)
}

func (f *fakeAdminUserRepo) GetByID(ctx context.Context, id int) (*models.AdminUser, error) {
	return nil, nil
}
