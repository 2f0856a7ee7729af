package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	intconfig "navetteclub/internal/config"
	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `id, name, username, email, COALESCE(phone,''), password_hash, role, status`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.Status)
	return u, err
}

func (r UserRepo) GetByID(id int64) (models.User, error) {
	u, err := scanUser(r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "utilisateur"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	return u, nil
}

func (r UserRepo) GetByEmail(email string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := scanUser(r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE email=?`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "utilisateur"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	return u, nil
}

func (r UserRepo) Create(u models.User) (models.User, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, strings.TrimSpace(u.Name), strings.TrimSpace(u.Username),
		strings.ToLower(strings.TrimSpace(u.Email)), strings.TrimSpace(u.Phone),
		u.PasswordHash, u.Role, u.Status)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return models.User{}, domain.ConflictError{Msg: "email ou nom d'utilisateur déjà utilisé"}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}
