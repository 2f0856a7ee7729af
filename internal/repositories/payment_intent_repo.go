package repositories

import (
	"database/sql"
	"errors"

	intconfig "navetteclub/internal/config"
	intdb "navetteclub/internal/db"
	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
)

type PaymentIntentRepo struct {
	DB *sql.DB
}

func (r PaymentIntentRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const intentColumns = `id, order_id, payment_ref, booking_type, booking_id, amount_cents,
	currency, status, COALESCE(pay_url,''), expires_at, created_at, updated_at`

func scanIntent(row interface{ Scan(...any) error }) (models.PaymentIntent, error) {
	var p models.PaymentIntent
	var expires sql.NullTime
	err := row.Scan(&p.ID, &p.OrderID, &p.PaymentRef, &p.BookingType, &p.BookingID,
		&p.AmountCents, &p.Currency, &p.Status, &p.PayURL, &expires, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.PaymentIntent{}, err
	}
	if expires.Valid {
		p.ExpiresAt = expires.Time
	}
	return p, nil
}

func (r PaymentIntentRepo) Create(p models.PaymentIntent) (models.PaymentIntent, error) {
	res, err := r.db().Exec(`
		INSERT INTO payment_intents (order_id, payment_ref, booking_type, booking_id, amount_cents, currency, status, pay_url, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.OrderID, p.PaymentRef, p.BookingType, p.BookingID, p.AmountCents,
		p.Currency, p.Status, intdb.NullIfEmpty(p.PayURL), p.ExpiresAt)
	if err != nil {
		return models.PaymentIntent{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r PaymentIntentRepo) GetByID(id int64) (models.PaymentIntent, error) {
	p, err := scanIntent(r.db().QueryRow(`SELECT `+intentColumns+` FROM payment_intents WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PaymentIntent{}, domain.NotFoundError{Resource: "intention de paiement"}
	}
	if err != nil {
		return models.PaymentIntent{}, domain.InternalError{Err: err}
	}
	return p, nil
}

func (r PaymentIntentRepo) GetByOrderID(orderID string) (models.PaymentIntent, error) {
	p, err := scanIntent(r.db().QueryRow(`SELECT `+intentColumns+` FROM payment_intents WHERE order_id=?`, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PaymentIntent{}, domain.NotFoundError{Resource: "intention de paiement"}
	}
	if err != nil {
		return models.PaymentIntent{}, domain.InternalError{Err: err}
	}
	return p, nil
}

func (r PaymentIntentRepo) GetByPaymentRef(ref string) (models.PaymentIntent, error) {
	p, err := scanIntent(r.db().QueryRow(`SELECT `+intentColumns+` FROM payment_intents WHERE payment_ref=?`, ref))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PaymentIntent{}, domain.NotFoundError{Resource: "intention de paiement"}
	}
	if err != nil {
		return models.PaymentIntent{}, domain.InternalError{Err: err}
	}
	return p, nil
}

func (r PaymentIntentRepo) SetPaymentRef(id int64, ref, payURL string) error {
	if _, err := r.db().Exec(`UPDATE payment_intents SET payment_ref=?, pay_url=? WHERE id=?`, ref, intdb.NullIfEmpty(payURL), id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r PaymentIntentRepo) UpdateStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE payment_intents SET status=? WHERE id=?`, status, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "intention de paiement"}
	}
	return nil
}

// ExpireStale marks pending intents past their deadline as expired and
// returns them so bookings can be flagged too.
func (r PaymentIntentRepo) ExpireStale() ([]models.PaymentIntent, error) {
	rows, err := r.db().Query(`SELECT ` + intentColumns + ` FROM payment_intents WHERE status='pending' AND expires_at < NOW()`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	stale := []models.PaymentIntent{}
	for rows.Next() {
		p, err := scanIntent(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		stale = append(stale, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}

	if len(stale) > 0 {
		if _, err := r.db().Exec(`UPDATE payment_intents SET status='expired' WHERE status='pending' AND expires_at < NOW()`); err != nil {
			return nil, domain.InternalError{Err: err}
		}
	}
	return stale, nil
}
