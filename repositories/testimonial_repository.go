package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, id int) (*models.Testimonial, error)
	GetAll(ctx context.Context) ([]models.Testimonial, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id int) error
}

type postgresTestimonialRepository struct {
	db *sql.DB
}

func NewPostgresTestimonialRepository(db *sql.DB) TestimonialRepository {
	return &postgresTestimonialRepository{db: db}
}

func (r *postgresTestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	query := `INSERT INTO testimonials (name, membership, comment, image_url)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		testimonial.Name, testimonial.Membership, testimonial.Comment, testimonial.ImageURL).
		Scan(&testimonial.ID, &testimonial.CreatedAt)
}

func (r *postgresTestimonialRepository) GetByID(ctx context.Context, id int) (*models.Testimonial, error) {
	query := `SELECT id, name, membership, comment, image_url, created_at
	          FROM testimonials WHERE id = $1`

	var t models.Testimonial
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Name, &t.Membership, &t.Comment, &t.ImageURL, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresTestimonialRepository) GetAll(ctx context.Context) ([]models.Testimonial, error) {
	query := `SELECT id, name, membership, comment, image_url, created_at
	          FROM testimonials ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := make([]models.Testimonial, 0)
	for rows.Next() {
		var t models.Testimonial
		if scanErr := rows.Scan(&t.ID, &t.Name, &t.Membership, &t.Comment, &t.ImageURL, &t.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		testimonials = append(testimonials, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return testimonials, nil
}

func (r *postgresTestimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) error {
	query := `UPDATE testimonials SET name = $1, membership = $2, comment = $3, image_url = $4
	          WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		testimonial.Name, testimonial.Membership, testimonial.Comment, testimonial.ImageURL, testimonial.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTestimonialNotFound)
}

func (r *postgresTestimonialRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTestimonialNotFound)
}
