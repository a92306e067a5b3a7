package repositories

import (
	"database/sql"
	"errors"

	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB { return sharedDB(r.DB) }

const userColumns = `id,
       COALESCE(name,''),
       COALESCE(username,''),
       COALESCE(email,''),
       COALESCE(phone,''),
       COALESCE(password_hash,''),
       COALESCE(role,'user'),
       COALESCE(status,'active'),
       created_at`

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.CreatedAt,
	)
	return u, err
}

// Create inserts a new user and returns its id.
func (r UserRepository) Create(u models.User) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Name, u.Username, u.Email, u.Phone, u.PasswordHash, u.Role, u.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID fetches a user by primary key.
func (r UserRepository) GetByID(id int64) (models.User, error) {
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id=? LIMIT 1`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

// GetByLogin matches either email or username, as login forms accept both.
func (r UserRepository) GetByLogin(login string) (models.User, error) {
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE email=? OR username=? LIMIT 1`, login, login)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

// ExistsByEmailOrUsername reports whether either identifier is taken.
func (r UserRepository) ExistsByEmailOrUsername(email, username string) (bool, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email=? OR username=?`, email, username).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
