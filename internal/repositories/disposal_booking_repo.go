package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	intconfig "navetteclub/internal/config"
	intdb "navetteclub/internal/db"
	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/utils"
)

type DisposalBookingRepo struct {
	DB *sql.DB
}

func (r DisposalBookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const disposalColumns = `id, reference, customer_id, vehicle_id, provider_id, start_location,
	DATE_FORMAT(date,'%Y-%m-%d'), time, hours, passengers, COALESCE(special_requests,''),
	total_price_cents, status, payment_status, created_at, updated_at`

func scanDisposalBooking(row interface{ Scan(...any) error }) (models.DisposalBooking, error) {
	var b models.DisposalBooking
	var providerID sql.NullInt64
	err := row.Scan(&b.ID, &b.Reference, &b.CustomerID, &b.VehicleID, &providerID,
		&b.StartLocation, &b.Date, &b.Time, &b.Hours, &b.Passengers,
		&b.SpecialRequests, &b.TotalPriceCents, &b.Status, &b.PaymentStatus,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.DisposalBooking{}, err
	}
	if providerID.Valid {
		b.ProviderID = &providerID.Int64
	}
	return b, nil
}

func (r DisposalBookingRepo) List() ([]models.DisposalBooking, error) {
	rows, err := r.db().Query(`SELECT ` + disposalColumns + ` FROM disposal_bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.DisposalBooking{}
	for rows.Next() {
		b, err := scanDisposalBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r DisposalBookingRepo) GetByID(id int64) (models.DisposalBooking, error) {
	b, err := scanDisposalBooking(r.db().QueryRow(`SELECT `+disposalColumns+` FROM disposal_bookings WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DisposalBooking{}, domain.NotFoundError{Resource: "mise à disposition"}
	}
	if err != nil {
		return models.DisposalBooking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r DisposalBookingRepo) GetByReference(ref string) (models.DisposalBooking, error) {
	b, err := scanDisposalBooking(r.db().QueryRow(`SELECT `+disposalColumns+` FROM disposal_bookings WHERE reference=?`, ref))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DisposalBooking{}, domain.NotFoundError{Resource: "mise à disposition"}
	}
	if err != nil {
		return models.DisposalBooking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r DisposalBookingRepo) Create(b models.DisposalBooking) (models.DisposalBooking, error) {
	for attempt := 0; attempt < 2; attempt++ {
		ref := utils.GenerateReference(utils.RefPrefixDisposal, time.Now())
		res, err := r.db().Exec(`
			INSERT INTO disposal_bookings (reference, customer_id, vehicle_id, provider_id, start_location,
				date, time, hours, passengers, special_requests, total_price_cents, status, payment_status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending', 'pending')
		`, ref, b.CustomerID, b.VehicleID, intdb.NullID(b.ProviderID), b.StartLocation,
			b.Date, b.Time, b.Hours, b.Passengers, intdb.NullIfEmpty(b.SpecialRequests), b.TotalPriceCents)
		if err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == 1062 && attempt == 0 {
				continue
			}
			return models.DisposalBooking{}, domain.InternalError{Err: err}
		}
		id, _ := res.LastInsertId()
		return r.GetByID(id)
	}
	return models.DisposalBooking{}, domain.InternalError{Msg: "impossible de générer une référence unique"}
}

func (r DisposalBookingRepo) Update(id int64, upd models.TransferBookingUpdate) (models.DisposalBooking, error) {
	sets := []string{}
	args := []any{}

	if upd.ProviderID != nil {
		sets = append(sets, "provider_id=?")
		args = append(args, intdb.NullID(upd.ProviderID))
	}
	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, *upd.Status)
	}
	if upd.PaymentStatus != nil {
		sets = append(sets, "payment_status=?")
		args = append(args, *upd.PaymentStatus)
	}

	if len(sets) == 0 {
		return r.GetByID(id)
	}
	args = append(args, id)

	if _, err := r.db().Exec(`UPDATE disposal_bookings SET `+strings.Join(sets, ",")+` WHERE id=?`, args...); err != nil {
		return models.DisposalBooking{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

func (r DisposalBookingRepo) SetPaymentStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE disposal_bookings SET payment_status=? WHERE id=?`, status, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "mise à disposition"}
	}
	return nil
}

func (r DisposalBookingRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM disposal_bookings WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "mise à disposition"}
	}
	return nil
}
