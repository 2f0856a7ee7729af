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

type CustomerRepo struct {
	DB *sql.DB
}

func (r CustomerRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const customerColumns = `id, first_name, last_name, email, phone, COALESCE(country,''), created_at`

func scanCustomer(row interface{ Scan(...any) error }) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Country, &c.CreatedAt)
	return c, err
}

func (r CustomerRepo) GetByID(id int64) (models.Customer, error) {
	c, err := scanCustomer(r.db().QueryRow(`SELECT `+customerColumns+` FROM customers WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, domain.NotFoundError{Resource: "client"}
	}
	if err != nil {
		return models.Customer{}, domain.InternalError{Err: err}
	}
	return c, nil
}

func (r CustomerRepo) GetByEmail(email string) (models.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	c, err := scanCustomer(r.db().QueryRow(`SELECT `+customerColumns+` FROM customers WHERE email=?`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, domain.NotFoundError{Resource: "client"}
	}
	if err != nil {
		return models.Customer{}, domain.InternalError{Err: err}
	}
	return c, nil
}

func (r CustomerRepo) GetAll() ([]models.Customer, error) {
	rows, err := r.db().Query(`SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// UpsertByEmail resolves a customer by email, creating the row only on a
// miss. A duplicate-key race between the lookup and the insert falls back to
// the row the concurrent writer created, so the same email never yields two
// customers.
func (r CustomerRepo) UpsertByEmail(in models.CustomerInput) (models.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if existing, err := r.GetByEmail(email); err == nil {
		return existing, nil
	} else if !domain.IsNotFound(err) {
		return models.Customer{}, err
	}

	res, err := r.db().Exec(`
		INSERT INTO customers (first_name, last_name, email, phone, country)
		VALUES (?, ?, ?, ?, ?)
	`, strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName), email,
		strings.TrimSpace(in.Phone), strings.TrimSpace(in.Country))
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return r.GetByEmail(email)
		}
		return models.Customer{}, domain.InternalError{Err: err}
	}

	id, _ := res.LastInsertId()
	return r.GetByID(id)
}
