package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/frahmantamala/recognition/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

// userRow carries the joined projection; the password hash is never selected.
type userRow struct {
	ID         int64
	Email      string
	Name       string
	AvatarURL  *string
	Birthday   *time.Time
	IsAdmin    bool
	CreatedAt  time.Time
	Team       *string
	Department *string
	Area       *string
	Branch     *string
}

const userSelect = `
	SELECT u.id, u.email, u.name, u.avatar_url, u.birthday, u.is_admin, u.created_at,
	       t.name AS team, d.name AS department, a.name AS area, b.name AS branch
	FROM users u
	LEFT JOIN teams t ON u.team_id = t.id
	LEFT JOIN departments d ON t.department_id = d.id
	LEFT JOIN areas a ON d.area_id = a.id
	LEFT JOIN branches b ON a.branch_id = b.id`

func (r *UserRepository) GetAll() ([]*user.User, error) {
	var rows []userRow
	if err := r.db.Raw(userSelect + " ORDER BY u.name ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, len(rows))
	for i := range rows {
		users[i] = rows[i].toDomain()
	}
	return users, nil
}

func (r *UserRepository) GetByID(id int64) (*user.User, error) {
	var row userRow
	result := r.db.Raw(userSelect+" WHERE u.id = ?", id).Scan(&row)
	if result.Error != nil {
		if errors.Is(result.Error, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, user.ErrNotFound
	}
	return row.toDomain(), nil
}

func (row *userRow) toDomain() *user.User {
	u := &user.User{
		ID:         row.ID,
		Email:      row.Email,
		Name:       row.Name,
		AvatarURL:  row.AvatarURL,
		Team:       row.Team,
		Department: row.Department,
		Area:       row.Area,
		Branch:     row.Branch,
		IsAdmin:    row.IsAdmin,
		CreatedAt:  row.CreatedAt,
	}
	if row.Birthday != nil {
		b := row.Birthday.Format(user.BirthdayLayout)
		u.Birthday = &b
	}
	return u
}
