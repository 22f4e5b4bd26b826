package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
)

var ErrMilestoneNotFound = errors.New("milestone not found")

type MilestoneRepository interface {
	Create(ctx context.Context, milestone *models.Milestone) error
	GetByID(ctx context.Context, id int) (*models.Milestone, error)
	GetAll(ctx context.Context) ([]models.Milestone, error)
	Update(ctx context.Context, milestone *models.Milestone) error
	Delete(ctx context.Context, id int) error
}

type postgresMilestoneRepository struct {
	db *sql.DB
}

func NewPostgresMilestoneRepository(db *sql.DB) MilestoneRepository {
	return &postgresMilestoneRepository{db: db}
}

func (r *postgresMilestoneRepository) Create(ctx context.Context, milestone *models.Milestone) error {
	query := `INSERT INTO milestones (title, description, image_url, year)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		milestone.Title, milestone.Description, milestone.ImageURL, milestone.Year).
		Scan(&milestone.ID, &milestone.CreatedAt)
}

func (r *postgresMilestoneRepository) GetByID(ctx context.Context, id int) (*models.Milestone, error) {
	query := `SELECT id, title, description, image_url, year, created_at
	          FROM milestones WHERE id = $1`

	var m models.Milestone
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.Title, &m.Description, &m.ImageURL, &m.Year, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMilestoneNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresMilestoneRepository) GetAll(ctx context.Context) ([]models.Milestone, error) {
	query := `SELECT id, title, description, image_url, year, created_at
	          FROM milestones ORDER BY year ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	milestones := make([]models.Milestone, 0)
	for rows.Next() {
		var m models.Milestone
		if scanErr := rows.Scan(&m.ID, &m.Title, &m.Description, &m.ImageURL, &m.Year, &m.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		milestones = append(milestones, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return milestones, nil
}

func (r *postgresMilestoneRepository) Update(ctx context.Context, milestone *models.Milestone) error {
	query := `UPDATE milestones SET title = $1, description = $2, image_url = $3, year = $4
	          WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		milestone.Title, milestone.Description, milestone.ImageURL, milestone.Year, milestone.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMilestoneNotFound)
}

func (r *postgresMilestoneRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMilestoneNotFound)
}
