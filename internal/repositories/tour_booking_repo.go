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

type TourBookingRepo struct {
	DB *sql.DB
}

func (r TourBookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tourBookingColumns = `id, reference, customer_id, tour_id, DATE_FORMAT(tour_date,'%Y-%m-%d'),
	adults, children, total_price_cents, COALESCE(special_requests,''),
	status, payment_status, created_at, updated_at`

func scanTourBooking(row interface{ Scan(...any) error }) (models.TourBooking, error) {
	var b models.TourBooking
	err := row.Scan(&b.ID, &b.Reference, &b.CustomerID, &b.TourID, &b.TourDate,
		&b.Adults, &b.Children, &b.TotalPriceCents, &b.SpecialRequests,
		&b.Status, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r TourBookingRepo) List() ([]models.TourBooking, error) {
	rows, err := r.db().Query(`SELECT ` + tourBookingColumns + ` FROM tour_bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.TourBooking{}
	for rows.Next() {
		b, err := scanTourBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r TourBookingRepo) GetByID(id int64) (models.TourBooking, error) {
	b, err := scanTourBooking(r.db().QueryRow(`SELECT `+tourBookingColumns+` FROM tour_bookings WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TourBooking{}, domain.NotFoundError{Resource: "réservation d'excursion"}
	}
	if err != nil {
		return models.TourBooking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

func (r TourBookingRepo) GetByReference(ref string) (models.TourBooking, error) {
	b, err := scanTourBooking(r.db().QueryRow(`SELECT `+tourBookingColumns+` FROM tour_bookings WHERE reference=?`, ref))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TourBooking{}, domain.NotFoundError{Resource: "réservation d'excursion"}
	}
	if err != nil {
		return models.TourBooking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// BookedSeats sums confirmed and pending participants for a tour on a date.
// Used for the advisory capacity check before taking a new booking.
func (r TourBookingRepo) BookedSeats(tourID int64, tourDate string) (int, error) {
	var n sql.NullInt64
	err := r.db().QueryRow(`
		SELECT SUM(adults + children) FROM tour_bookings
		WHERE tour_id=? AND tour_date=? AND status IN ('pending','confirmed')
	`, tourID, tourDate).Scan(&n)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return int(n.Int64), nil
}

func (r TourBookingRepo) Create(b models.TourBooking) (models.TourBooking, error) {
	for attempt := 0; attempt < 2; attempt++ {
		ref := utils.GenerateReference(utils.RefPrefixTour, time.Now())
		res, err := r.db().Exec(`
			INSERT INTO tour_bookings (reference, customer_id, tour_id, tour_date, adults, children,
				total_price_cents, special_requests, status, payment_status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'pending', 'pending')
		`, ref, b.CustomerID, b.TourID, b.TourDate, b.Adults, b.Children,
			b.TotalPriceCents, intdb.NullIfEmpty(b.SpecialRequests))
		if err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == 1062 && attempt == 0 {
				continue
			}
			return models.TourBooking{}, domain.InternalError{Err: err}
		}
		id, _ := res.LastInsertId()
		return r.GetByID(id)
	}
	return models.TourBooking{}, domain.InternalError{Msg: "impossible de générer une référence unique"}
}

func (r TourBookingRepo) Update(id int64, upd models.TourBookingUpdate) (models.TourBooking, error) {
	sets := []string{}
	args := []any{}

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

	if _, err := r.db().Exec(`UPDATE tour_bookings SET `+strings.Join(sets, ",")+` WHERE id=?`, args...); err != nil {
		return models.TourBooking{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

func (r TourBookingRepo) SetPaymentStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE tour_bookings SET payment_status=? WHERE id=?`, status, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "réservation d'excursion"}
	}
	return nil
}

func (r TourBookingRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM tour_bookings WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "réservation d'excursion"}
	}
	return nil
}
