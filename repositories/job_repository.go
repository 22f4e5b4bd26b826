package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
)

var (
	ErrJobPositionNotFound    = errors.New("job position not found")
	ErrJobApplicationNotFound = errors.New("job application not found")
	ErrJobPositionInUse       = errors.New("job position has applications and cannot be deleted")
)

type JobPositionRepository interface {
	Create(ctx context.Context, position *models.JobPosition) error
	GetByID(ctx context.Context, id int) (*models.JobPosition, error)
	GetAll(ctx context.Context) ([]models.JobPosition, error)
	Update(ctx context.Context, position *models.JobPosition) error
	Delete(ctx context.Context, id int) error
}

type JobApplicationRepository interface {
	Create(ctx context.Context, application *models.JobApplication) error
	GetByID(ctx context.Context, id int) (*models.JobApplication, error)
	GetAll(ctx context.Context) ([]models.JobApplication, error)
	UpdateStatus(ctx context.Context, id int, status models.ApplicationStatus) error
}

type postgresJobPositionRepository struct {
	db *sql.DB
}

func NewPostgresJobPositionRepository(db *sql.DB) JobPositionRepository {
	return &postgresJobPositionRepository{db: db}
}

func (r *postgresJobPositionRepository) Create(ctx context.Context, position *models.JobPosition) error {
	query := `INSERT INTO job_positions (title, description, location, type, is_open)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		position.Title, position.Description, position.Location, position.Type, position.IsOpen).
		Scan(&position.ID, &position.CreatedAt)
}

func (r *postgresJobPositionRepository) GetByID(ctx context.Context, id int) (*models.JobPosition, error) {
	query := `SELECT id, title, description, location, type, is_open, created_at
	          FROM job_positions WHERE id = $1`

	var p models.JobPosition
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Location, &p.Type, &p.IsOpen, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobPositionNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresJobPositionRepository) GetAll(ctx context.Context) ([]models.JobPosition, error) {
	query := `SELECT id, title, description, location, type, is_open, created_at
	          FROM job_positions ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make([]models.JobPosition, 0)
	for rows.Next() {
		var p models.JobPosition
		if scanErr := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Location, &p.Type, &p.IsOpen, &p.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		positions = append(positions, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

func (r *postgresJobPositionRepository) Update(ctx context.Context, position *models.JobPosition) error {
	query := `UPDATE job_positions
	          SET title = $1, description = $2, location = $3, type = $4, is_open = $5
	          WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		position.Title, position.Description, position.Location, position.Type, position.IsOpen, position.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrJobPositionNotFound)
}

func (r *postgresJobPositionRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM job_positions WHERE id = $1`, id)
	if err != nil {
		// ON DELETE RESTRICT со стороны job_applications.
		if isForeignKeyViolation(err) {
			return ErrJobPositionInUse
		}
		return err
	}
	return checkAffectedRows(result, ErrJobPositionNotFound)
}

type postgresJobApplicationRepository struct {
	db *sql.DB
}

func NewPostgresJobApplicationRepository(db *sql.DB) JobApplicationRepository {
	return &postgresJobApplicationRepository{db: db}
}

func (r *postgresJobApplicationRepository) Create(ctx context.Context, application *models.JobApplication) error {
	query := `INSERT INTO job_applications (position_id, name, email, phone, resume_url, status)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		application.PositionID, application.Name, application.Email,
		application.Phone, application.ResumeURL, application.Status).
		Scan(&application.ID, &application.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrJobPositionNotFound
		}
		return err
	}
	return nil
}

func (r *postgresJobApplicationRepository) GetByID(ctx context.Context, id int) (*models.JobApplication, error) {
	query := `SELECT id, position_id, name, email, phone, resume_url, status, created_at
	          FROM job_applications WHERE id = $1`

	var a models.JobApplication
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.PositionID, &a.Name, &a.Email, &a.Phone, &a.ResumeURL, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobApplicationNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresJobApplicationRepository) GetAll(ctx context.Context) ([]models.JobApplication, error) {
	query := `SELECT a.id, a.position_id, a.name, a.email, a.phone, a.resume_url, a.status, a.created_at,
	                 p.id, p.title, p.description, p.location, p.type, p.is_open, p.created_at
	          FROM job_applications a
	          JOIN job_positions p ON p.id = a.position_id
	          ORDER BY a.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := make([]models.JobApplication, 0)
	for rows.Next() {
		var a models.JobApplication
		var p models.JobPosition
		if scanErr := rows.Scan(&a.ID, &a.PositionID, &a.Name, &a.Email, &a.Phone, &a.ResumeURL, &a.Status, &a.CreatedAt,
			&p.ID, &p.Title, &p.Description, &p.Location, &p.Type, &p.IsOpen, &p.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		a.Position = &p
		applications = append(applications, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *postgresJobApplicationRepository) UpdateStatus(ctx context.Context, id int, status models.ApplicationStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE job_applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrJobApplicationNotFound)
}
