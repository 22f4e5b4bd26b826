package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
)

var (
	ErrAdminUserNotFound      = errors.New("admin user not found")
	ErrAdminUserEmailConflict = errors.New("admin user email conflict")
)

type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id int) (*models.AdminUser, error)
}

type postgresAdminUserRepository struct {
	db *sql.DB
}

func NewPostgresAdminUserRepository(db *sql.DB) AdminUserRepository {
	return &postgresAdminUserRepository{db: db}
}

func (r *postgresAdminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	query := `INSERT INTO admin_users (email, password_hash)
	          VALUES ($1, $2)
	          RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAdminUserEmailConflict
		}
		return err
	}
	return nil
}

func (r *postgresAdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := `SELECT id, email, password_hash, created_at FROM admin_users WHERE email = $1`

	var user models.AdminUser
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *postgresAdminUserRepository) GetByID(ctx context.Context, id int) (*models.AdminUser, error) {
	query := `SELECT id, email, password_hash, created_at FROM admin_users WHERE id = $1`

	var user models.AdminUser
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
