package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "navetteclub/internal/config"
	intdb "navetteclub/internal/db"
	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/utils"
)

type ProviderRepo struct {
	DB *sql.DB
}

func (r ProviderRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const providerColumns = `id, name, type, COALESCE(contact_name,''), COALESCE(email,''),
	COALESCE(phone,''), COALESCE(address,''), COALESCE(city,''), COALESCE(country,''),
	COALESCE(service_zones,''), COALESCE(notes,''), is_active, created_at, updated_at`

func scanProvider(row interface{ Scan(...any) error }) (models.Provider, error) {
	var p models.Provider
	var zonesCSV string
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.ContactName, &p.Email, &p.Phone,
		&p.Address, &p.City, &p.Country, &zonesCSV, &p.Notes, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Provider{}, err
	}
	p.ServiceZones = utils.SplitCSV(zonesCSV)
	return p, nil
}

func (r ProviderRepo) GetAll() ([]models.Provider, error) {
	rows, err := r.db().Query(`SELECT ` + providerColumns + ` FROM providers ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Provider{}
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r ProviderRepo) GetByID(id int64) (models.Provider, error) {
	p, err := scanProvider(r.db().QueryRow(`SELECT `+providerColumns+` FROM providers WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Provider{}, domain.NotFoundError{Resource: "fournisseur"}
	}
	if err != nil {
		return models.Provider{}, domain.InternalError{Err: err}
	}
	return p, nil
}

func (r ProviderRepo) Exists(id int64) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM providers WHERE id=?`, id).Scan(&n); err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}

func (r ProviderRepo) Create(p models.Provider) (models.Provider, error) {
	res, err := r.db().Exec(`
		INSERT INTO providers (name, type, contact_name, email, phone, address, city, country, service_zones, notes, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, strings.TrimSpace(p.Name), p.Type, intdb.NullIfEmpty(p.ContactName), intdb.NullIfEmpty(p.Email),
		intdb.NullIfEmpty(p.Phone), intdb.NullIfEmpty(p.Address), intdb.NullIfEmpty(p.City),
		p.Country, intdb.NullIfEmpty(utils.JoinCSV(p.ServiceZones)), intdb.NullIfEmpty(p.Notes), p.IsActive)
	if err != nil {
		return models.Provider{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r ProviderRepo) Update(id int64, upd models.ProviderUpdate) (models.Provider, error) {
	sets := []string{}
	args := []any{}

	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, strings.TrimSpace(*upd.Name))
	}
	if upd.Type != nil {
		sets = append(sets, "type=?")
		args = append(args, *upd.Type)
	}
	if upd.ContactName != nil {
		sets = append(sets, "contact_name=?")
		args = append(args, intdb.NullIfEmpty(*upd.ContactName))
	}
	if upd.Email != nil {
		sets = append(sets, "email=?")
		args = append(args, intdb.NullIfEmpty(*upd.Email))
	}
	if upd.Phone != nil {
		sets = append(sets, "phone=?")
		args = append(args, intdb.NullIfEmpty(*upd.Phone))
	}
	if upd.Address != nil {
		sets = append(sets, "address=?")
		args = append(args, intdb.NullIfEmpty(*upd.Address))
	}
	if upd.City != nil {
		sets = append(sets, "city=?")
		args = append(args, intdb.NullIfEmpty(*upd.City))
	}
	if upd.Country != nil {
		sets = append(sets, "country=?")
		args = append(args, *upd.Country)
	}
	if upd.ServiceZones != nil {
		sets = append(sets, "service_zones=?")
		args = append(args, intdb.NullIfEmpty(utils.JoinCSV(*upd.ServiceZones)))
	}
	if upd.Notes != nil {
		sets = append(sets, "notes=?")
		args = append(args, intdb.NullIfEmpty(*upd.Notes))
	}
	if upd.IsActive != nil {
		sets = append(sets, "is_active=?")
		args = append(args, *upd.IsActive)
	}

	if len(sets) == 0 {
		return r.GetByID(id)
	}
	args = append(args, id)

	if _, err := r.db().Exec(`UPDATE providers SET `+strings.Join(sets, ",")+` WHERE id=?`, args...); err != nil {
		return models.Provider{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

func (r ProviderRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM providers WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "fournisseur"}
	}
	return nil
}
