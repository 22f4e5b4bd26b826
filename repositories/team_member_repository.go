package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/darshan1301/psfa-landing-page-sub001/models"
)

var ErrTeamMemberNotFound = errors.New("team member not found")

type TeamMemberRepository interface {
	Create(ctx context.Context, member *models.TeamMember) error
	GetByID(ctx context.Context, id int) (*models.TeamMember, error)
	GetAll(ctx context.Context) ([]models.TeamMember, error)
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id int) error
}

type postgresTeamMemberRepository struct {
	db *sql.DB
}

func NewPostgresTeamMemberRepository(db *sql.DB) TeamMemberRepository {
	return &postgresTeamMemberRepository{db: db}
}

func (r *postgresTeamMemberRepository) Create(ctx context.Context, member *models.TeamMember) error {
	query := `INSERT INTO team_members (name, role, description, image_url, years_experience, sort_order)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		member.Name, member.Role, member.Description, member.ImageURL,
		member.YearsExperience, member.SortOrder).
		Scan(&member.ID, &member.CreatedAt)
}

func (r *postgresTeamMemberRepository) GetByID(ctx context.Context, id int) (*models.TeamMember, error) {
	query := `SELECT id, name, role, description, image_url, years_experience, sort_order, created_at
	          FROM team_members WHERE id = $1`

	var m models.TeamMember
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.Name, &m.Role, &m.Description, &m.ImageURL, &m.YearsExperience, &m.SortOrder, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresTeamMemberRepository) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	// Порядок вывода на странице задаётся полем sort_order.
	query := `SELECT id, name, role, description, image_url, years_experience, sort_order, created_at
	          FROM team_members ORDER BY sort_order ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]models.TeamMember, 0)
	for rows.Next() {
		var m models.TeamMember
		if scanErr := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Description, &m.ImageURL,
			&m.YearsExperience, &m.SortOrder, &m.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *postgresTeamMemberRepository) Update(ctx context.Context, member *models.TeamMember) error {
	query := `UPDATE team_members
	          SET name = $1, role = $2, description = $3, image_url = $4, years_experience = $5, sort_order = $6
	          WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		member.Name, member.Role, member.Description, member.ImageURL,
		member.YearsExperience, member.SortOrder, member.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamMemberNotFound)
}

func (r *postgresTeamMemberRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamMemberNotFound)
}
