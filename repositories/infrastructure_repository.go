package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
	"github.com/lib/pq"
)

var ErrInfrastructureNotFound = errors.New("sports infrastructure not found")

type InfrastructureRepository interface {
	Create(ctx context.Context, infra *models.SportsInfrastructure) error
	GetByID(ctx context.Context, id int) (*models.SportsInfrastructure, error)
	GetAll(ctx context.Context) ([]models.SportsInfrastructure, error)
	Update(ctx context.Context, infra *models.SportsInfrastructure) error
	Delete(ctx context.Context, id int) error
}

type postgresInfrastructureRepository struct {
	db *sql.DB
}

func NewPostgresInfrastructureRepository(db *sql.DB) InfrastructureRepository {
	return &postgresInfrastructureRepository{db: db}
}

func (r *postgresInfrastructureRepository) Create(ctx context.Context, infra *models.SportsInfrastructure) error {
	query := `INSERT INTO sports_infrastructure (name, location, area, images, amenities)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		infra.Name, infra.Location, infra.Area,
		pq.Array(infra.Images), pq.Array(infra.Amenities)).
		Scan(&infra.ID, &infra.CreatedAt)
}

func (r *postgresInfrastructureRepository) GetByID(ctx context.Context, id int) (*models.SportsInfrastructure, error) {
	query := `SELECT id, name, location, area, images, amenities, created_at
	          FROM sports_infrastructure WHERE id = $1`

	var infra models.SportsInfrastructure
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&infra.ID, &infra.Name, &infra.Location, &infra.Area,
			pq.Array(&infra.Images), pq.Array(&infra.Amenities), &infra.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInfrastructureNotFound
		}
		return nil, err
	}
	return &infra, nil
}

func (r *postgresInfrastructureRepository) GetAll(ctx context.Context) ([]models.SportsInfrastructure, error) {
	query := `SELECT id, name, location, area, images, amenities, created_at
	          FROM sports_infrastructure ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.SportsInfrastructure, 0)
	for rows.Next() {
		var infra models.SportsInfrastructure
		if scanErr := rows.Scan(&infra.ID, &infra.Name, &infra.Location, &infra.Area,
			pq.Array(&infra.Images), pq.Array(&infra.Amenities), &infra.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		items = append(items, infra)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *postgresInfrastructureRepository) Update(ctx context.Context, infra *models.SportsInfrastructure) error {
	query := `UPDATE sports_infrastructure
	          SET name = $1, location = $2, area = $3, images = $4, amenities = $5
	          WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		infra.Name, infra.Location, infra.Area,
		pq.Array(infra.Images), pq.Array(infra.Amenities), infra.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrInfrastructureNotFound)
}

func (r *postgresInfrastructureRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sports_infrastructure WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrInfrastructureNotFound)
}
