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

type TransferBookingRepo struct {
	DB *sql.DB
}

func (r TransferBookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const transferColumns = `id, reference, customer_id, vehicle_id, provider_id, transfer_type,
	pickup_location, dropoff_location, DATE_FORMAT(pickup_date,'%Y-%m-%d'), pickup_time,
	COALESCE(DATE_FORMAT(return_date,'%Y-%m-%d'),''), COALESCE(return_time,''),
	passengers, luggage, COALESCE(flight_number,''), COALESCE(special_requests,''),
	total_price_cents, status, payment_status, created_at, updated_at`

func scanTransferBooking(row interface{ Scan(...any) error }) (models.TransferBooking, error) {
	var b models.TransferBooking
	var providerID sql.NullInt64
	err := row.Scan(&b.ID, &b.Reference, &b.CustomerID, &b.VehicleID, &providerID,
		&b.TransferType, &b.PickupLocation, &b.DropoffLocation, &b.PickupDate, &b.PickupTime,
		&b.ReturnDate, &b.ReturnTime, &b.Passengers, &b.Luggage, &b.FlightNumber,
		&b.SpecialRequests, &b.TotalPriceCents, &b.Status, &b.PaymentStatus,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.TransferBooking{}, err
	}
	if providerID.Valid {
		b.ProviderID = &providerID.Int64
	}
	return b, nil
}

func (r TransferBookingRepo) List() ([]models.TransferBooking, error) {
	rows, err := r.db().Query(`SELECT ` + transferColumns + ` FROM transfer_bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.TransferBooking{}
	for rows.Next() {
		b, err := scanTransferBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r TransferBookingRepo) ListByCustomer(customerID int64) ([]models.TransferBooking, error) {
	rows, err := r.db().Query(`SELECT `+transferColumns+` FROM transfer_bookings WHERE customer_id=? ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.TransferBooking{}
	for rows.Next() {
		b, err := scanTransferBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r TransferBookingRepo) GetByID(id int64) (models.TransferBooking, error) {
	b, err := scanTransferBooking(r.db().QueryRow(`SELECT `+transferColumns+` FROM transfer_bookings WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TransferBooking{}, domain.NotFoundError{Resource: "réservation de transfert"}
	}
	if err != nil {
		return models.TransferBooking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r TransferBookingRepo) GetByReference(ref string) (models.TransferBooking, error) {
	b, err := scanTransferBooking(r.db().QueryRow(`SELECT `+transferColumns+` FROM transfer_bookings WHERE reference=?`, ref))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TransferBooking{}, domain.NotFoundError{Resource: "réservation de transfert"}
	}
	if err != nil {
		return models.TransferBooking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// Create inserts a pending booking with a fresh reference. A duplicate-key
// collision on the reference gets one retry with a new value.
func (r TransferBookingRepo) Create(b models.TransferBooking) (models.TransferBooking, error) {
	for attempt := 0; attempt < 2; attempt++ {
		ref := utils.GenerateReference(utils.RefPrefixTransfer, time.Now())
		res, err := r.db().Exec(`
			INSERT INTO transfer_bookings (reference, customer_id, vehicle_id, provider_id, transfer_type,
				pickup_location, dropoff_location, pickup_date, pickup_time, return_date, return_time,
				passengers, luggage, flight_number, special_requests, total_price_cents, status, payment_status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending', 'pending')
		`, ref, b.CustomerID, b.VehicleID, intdb.NullID(b.ProviderID), b.TransferType,
			b.PickupLocation, b.DropoffLocation, b.PickupDate, b.PickupTime,
			intdb.NullIfEmpty(b.ReturnDate), intdb.NullIfEmpty(b.ReturnTime),
			b.Passengers, b.Luggage, intdb.NullIfEmpty(b.FlightNumber),
			intdb.NullIfEmpty(b.SpecialRequests), b.TotalPriceCents)
		if err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == 1062 && attempt == 0 {
				continue
			}
			return models.TransferBooking{}, domain.InternalError{Err: err}
		}
		id, _ := res.LastInsertId()
		return r.GetByID(id)
	}
	return models.TransferBooking{}, domain.InternalError{Msg: "impossible de générer une référence unique"}
}

func (r TransferBookingRepo) Update(id int64, upd models.TransferBookingUpdate) (models.TransferBooking, error) {
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

	if _, err := r.db().Exec(`UPDATE transfer_bookings SET `+strings.Join(sets, ",")+` WHERE id=?`, args...); err != nil {
		return models.TransferBooking{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

func (r TransferBookingRepo) SetPaymentStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE transfer_bookings SET payment_status=? WHERE id=?`, status, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "réservation de transfert"}
	}
	return nil
}

func (r TransferBookingRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM transfer_bookings WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "réservation de transfert"}
	}
	return nil
}
