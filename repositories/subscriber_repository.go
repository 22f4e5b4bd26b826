package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
)

var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrSubscriberConflict = errors.New("subscriber already exists")
)

type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *models.Subscriber) error
	GetAll(ctx context.Context) ([]models.Subscriber, error)
	// ExistsByContact проверяет оба поля одним запросом: совпадение email
	// или телефона считается дубликатом.
	ExistsByContact(ctx context.Context, email, phone *string) (bool, error)
	Delete(ctx context.Context, id int) error
}

type postgresSubscriberRepository struct {
	db *sql.DB
}

func NewPostgresSubscriberRepository(db *sql.DB) SubscriberRepository {
	return &postgresSubscriberRepository{db: db}
}

func (r *postgresSubscriberRepository) Create(ctx context.Context, subscriber *models.Subscriber) error {
	query := `INSERT INTO subscribers (email, phone)
	          VALUES ($1, $2)
	          RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, subscriber.Email, subscriber.Phone).
		Scan(&subscriber.ID, &subscriber.CreatedAt)
	if err != nil {
		// Уникальные индексы по email и phone — второй рубеж после ExistsByContact.
		if isUniqueViolation(err) {
			return ErrSubscriberConflict
		}
		return err
	}
	return nil
}

func (r *postgresSubscriberRepository) GetAll(ctx context.Context) ([]models.Subscriber, error) {
	query := `SELECT id, email, phone, created_at FROM subscribers ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscribers := make([]models.Subscriber, 0)
	for rows.Next() {
		var s models.Subscriber
		if scanErr := rows.Scan(&s.ID, &s.Email, &s.Phone, &s.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		subscribers = append(subscribers, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return subscribers, nil
}

func (r *postgresSubscriberRepository) ExistsByContact(ctx context.Context, email, phone *string) (bool, error) {
	query := `SELECT EXISTS (
	            SELECT 1 FROM subscribers
	            WHERE ($1::text IS NOT NULL AND email = $1)
	               OR ($2::text IS NOT NULL AND phone = $2)
	          )`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email, phone).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresSubscriberRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSubscriberNotFound)
}
