package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
)

var ErrEnquiryNotFound = errors.New("enquiry not found")

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *models.Enquiry) error
	GetByID(ctx context.Context, id int) (*models.Enquiry, error)
	GetAll(ctx context.Context) ([]models.Enquiry, error)
	UpdateStatus(ctx context.Context, id int, status models.EnquiryStatus) error
	Delete(ctx context.Context, id int) error
}

type postgresEnquiryRepository struct {
	db *sql.DB
}

func NewPostgresEnquiryRepository(db *sql.DB) EnquiryRepository {
	return &postgresEnquiryRepository{db: db}
}

func (r *postgresEnquiryRepository) Create(ctx context.Context, enquiry *models.Enquiry) error {
	query := `INSERT INTO enquiries (name, email, phone, message, status)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		enquiry.Name, enquiry.Email, enquiry.Phone, enquiry.Message, enquiry.Status).
		Scan(&enquiry.ID, &enquiry.CreatedAt)
}

func (r *postgresEnquiryRepository) GetByID(ctx context.Context, id int) (*models.Enquiry, error) {
	query := `SELECT id, name, email, phone, message, status, created_at
	          FROM enquiries WHERE id = $1`

	var e models.Enquiry
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Message, &e.Status, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *postgresEnquiryRepository) GetAll(ctx context.Context) ([]models.Enquiry, error) {
	query := `SELECT id, name, email, phone, message, status, created_at
	          FROM enquiries ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enquiries := make([]models.Enquiry, 0)
	for rows.Next() {
		var e models.Enquiry
		if scanErr := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Message, &e.Status, &e.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		enquiries = append(enquiries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return enquiries, nil
}

func (r *postgresEnquiryRepository) UpdateStatus(ctx context.Context, id int, status models.EnquiryStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE enquiries SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEnquiryNotFound)
}

func (r *postgresEnquiryRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM enquiries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEnquiryNotFound)
}
