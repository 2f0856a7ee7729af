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

type VehicleRepo struct {
	DB *sql.DB
}

func (r VehicleRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleColumns = `id, provider_id, name, type, capacity, luggage,
	COALESCE(description,''), COALESCE(features,''), COALESCE(image_url,''),
	base_price_cents, price_per_km_cents, COALESCE(license_plate,''),
	COALESCE(driver_name,''), is_available, created_at, updated_at`

func scanVehicle(row interface{ Scan(...any) error }) (models.Vehicle, error) {
	var v models.Vehicle
	var providerID, perKm sql.NullInt64
	var featuresCSV string
	err := row.Scan(&v.ID, &providerID, &v.Name, &v.Type, &v.Capacity, &v.Luggage,
		&v.Description, &featuresCSV, &v.ImageURL, &v.BasePriceCents, &perKm,
		&v.LicensePlate, &v.DriverName, &v.IsAvailable, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return models.Vehicle{}, err
	}
	if providerID.Valid {
		v.ProviderID = &providerID.Int64
	}
	if perKm.Valid {
		v.PricePerKmCents = &perKm.Int64
	}
	v.Features = utils.SplitCSV(featuresCSV)
	return v, nil
}

type VehicleFilter struct {
	OnlyAvailable bool
	MinCapacity   int
	ProviderID    int64
}

func (r VehicleRepo) List(f VehicleFilter) ([]models.Vehicle, error) {
	where := []string{}
	args := []any{}
	if f.OnlyAvailable {
		where = append(where, "is_available=1")
	}
	if f.MinCapacity > 0 {
		where = append(where, "capacity >= ?")
		args = append(args, f.MinCapacity)
	}
	if f.ProviderID > 0 {
		where = append(where, "provider_id = ?")
		args = append(args, f.ProviderID)
	}

	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY base_price_cents ASC, id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r VehicleRepo) GetByID(id int64) (models.Vehicle, error) {
	v, err := scanVehicle(r.db().QueryRow(`SELECT `+vehicleColumns+` FROM vehicles WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vehicle{}, domain.NotFoundError{Resource: "véhicule"}
	}
	if err != nil {
		return models.Vehicle{}, domain.InternalError{Err: err}
	}
	return v, nil
}

func (r VehicleRepo) Create(v models.Vehicle) (models.Vehicle, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicles (provider_id, name, type, capacity, luggage, description, features,
			image_url, base_price_cents, price_per_km_cents, license_plate, driver_name, is_available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, intdb.NullID(v.ProviderID), strings.TrimSpace(v.Name), v.Type, v.Capacity, v.Luggage,
		intdb.NullIfEmpty(v.Description), intdb.NullIfEmpty(utils.JoinCSV(v.Features)),
		intdb.NullIfEmpty(v.ImageURL), v.BasePriceCents, nullCents(v.PricePerKmCents),
		intdb.NullIfEmpty(v.LicensePlate), intdb.NullIfEmpty(v.DriverName), v.IsAvailable)
	if err != nil {
		return models.Vehicle{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r VehicleRepo) Update(id int64, upd models.VehicleUpdate) (models.Vehicle, error) {
	sets := []string{}
	args := []any{}

	if upd.ProviderID != nil {
		sets = append(sets, "provider_id=?")
		args = append(args, intdb.NullID(upd.ProviderID))
	}
	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, strings.TrimSpace(*upd.Name))
	}
	if upd.Type != nil {
		sets = append(sets, "type=?")
		args = append(args, *upd.Type)
	}
	if upd.Capacity != nil {
		sets = append(sets, "capacity=?")
		args = append(args, *upd.Capacity)
	}
	if upd.Luggage != nil {
		sets = append(sets, "luggage=?")
		args = append(args, *upd.Luggage)
	}
	if upd.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, intdb.NullIfEmpty(*upd.Description))
	}
	if upd.Features != nil {
		sets = append(sets, "features=?")
		args = append(args, intdb.NullIfEmpty(utils.JoinCSV(*upd.Features)))
	}
	if upd.ImageURL != nil {
		sets = append(sets, "image_url=?")
		args = append(args, intdb.NullIfEmpty(*upd.ImageURL))
	}
	if upd.BasePriceCents != nil {
		sets = append(sets, "base_price_cents=?")
		args = append(args, *upd.BasePriceCents)
	}
	if upd.PricePerKmCents != nil {
		sets = append(sets, "price_per_km_cents=?")
		args = append(args, nullCents(upd.PricePerKmCents))
	}
	if upd.LicensePlate != nil {
		sets = append(sets, "license_plate=?")
		args = append(args, intdb.NullIfEmpty(*upd.LicensePlate))
	}
	if upd.DriverName != nil {
		sets = append(sets, "driver_name=?")
		args = append(args, intdb.NullIfEmpty(*upd.DriverName))
	}
	if upd.IsAvailable != nil {
		sets = append(sets, "is_available=?")
		args = append(args, *upd.IsAvailable)
	}

	if len(sets) == 0 {
		return r.GetByID(id)
	}
	args = append(args, id)

	if _, err := r.db().Exec(`UPDATE vehicles SET `+strings.Join(sets, ",")+` WHERE id=?`, args...); err != nil {
		return models.Vehicle{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

func (r VehicleRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicles WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "véhicule"}
	}
	return nil
}

func nullCents(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

// Seasonal per-km prices.

func (r VehicleRepo) SeasonalPrices(vehicleID int64) ([]models.VehicleSeasonalPrice, error) {
	rows, err := r.db().Query(`
		SELECT id, vehicle_id, season_name, start_date, end_date, price_per_km_cents
		FROM vehicle_seasonal_prices WHERE vehicle_id=? ORDER BY start_date
	`, vehicleID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.VehicleSeasonalPrice{}
	for rows.Next() {
		var p models.VehicleSeasonalPrice
		if err := rows.Scan(&p.ID, &p.VehicleID, &p.SeasonName, &p.StartDate, &p.EndDate, &p.PricePerKmCents); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r VehicleRepo) CreateSeasonalPrice(p models.VehicleSeasonalPrice) (models.VehicleSeasonalPrice, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicle_seasonal_prices (vehicle_id, season_name, start_date, end_date, price_per_km_cents)
		VALUES (?, ?, ?, ?, ?)
	`, p.VehicleID, p.SeasonName, p.StartDate, p.EndDate, p.PricePerKmCents)
	if err != nil {
		return models.VehicleSeasonalPrice{}, domain.InternalError{Err: err}
	}
	p.ID, _ = res.LastInsertId()
	return p, nil
}

func (r VehicleRepo) DeleteSeasonalPrice(id int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicle_seasonal_prices WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "tarif saisonnier"}
	}
	return nil
}

// Hourly disposal prices.

func (r VehicleRepo) HourlyPrices(vehicleID int64) ([]models.VehicleHourlyPrice, error) {
	rows, err := r.db().Query(`
		SELECT id, vehicle_id, season_name, start_date, end_date, price_per_hour_cents
		FROM vehicle_hourly_prices WHERE vehicle_id=? ORDER BY start_date
	`, vehicleID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.VehicleHourlyPrice{}
	for rows.Next() {
		var p models.VehicleHourlyPrice
		if err := rows.Scan(&p.ID, &p.VehicleID, &p.SeasonName, &p.StartDate, &p.EndDate, &p.PricePerHourCents); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r VehicleRepo) CreateHourlyPrice(p models.VehicleHourlyPrice) (models.VehicleHourlyPrice, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicle_hourly_prices (vehicle_id, season_name, start_date, end_date, price_per_hour_cents)
		VALUES (?, ?, ?, ?, ?)
	`, p.VehicleID, p.SeasonName, p.StartDate, p.EndDate, p.PricePerHourCents)
	if err != nil {
		return models.VehicleHourlyPrice{}, domain.InternalError{Err: err}
	}
	p.ID, _ = res.LastInsertId()
	return p, nil
}

func (r VehicleRepo) DeleteHourlyPrice(id int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicle_hourly_prices WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "tarif horaire"}
	}
	return nil
}
