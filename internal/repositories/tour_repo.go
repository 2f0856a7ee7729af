package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	intconfig "navetteclub/internal/config"
	intdb "navetteclub/internal/db"
	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/utils"
)

type TourRepo struct {
	DB *sql.DB
}

func (r TourRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tourColumns = `id, provider_id, name, slug, description, COALESCE(full_description,''),
	category, duration, difficulty, max_capacity, min_participants,
	price_cents, price_child_cents, COALESCE(included,''), COALESCE(excluded,''),
	COALESCE(highlights,''), meeting_point, COALESCE(meeting_time,''),
	COALESCE(image_url,''), is_active, featured, created_at, updated_at`

func scanTour(row interface{ Scan(...any) error }) (models.CityTour, error) {
	var t models.CityTour
	var providerID, childPrice sql.NullInt64
	var included, excluded, highlights string
	err := row.Scan(&t.ID, &providerID, &t.Name, &t.Slug, &t.Description, &t.FullDescription,
		&t.Category, &t.Duration, &t.Difficulty, &t.MaxCapacity, &t.MinParticipants,
		&t.PriceCents, &childPrice, &included, &excluded, &highlights,
		&t.MeetingPoint, &t.MeetingTime, &t.ImageURL, &t.IsActive, &t.Featured,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return models.CityTour{}, err
	}
	if providerID.Valid {
		t.ProviderID = &providerID.Int64
	}
	if childPrice.Valid {
		t.PriceChildCents = &childPrice.Int64
	}
	t.Included = utils.SplitCSV(included)
	t.Excluded = utils.SplitCSV(excluded)
	t.Highlights = utils.SplitCSV(highlights)
	return t, nil
}

type TourFilter struct {
	OnlyActive   bool
	OnlyFeatured bool
	Category     string
}

func (r TourRepo) List(f TourFilter) ([]models.CityTour, error) {
	where := []string{}
	args := []any{}
	if f.OnlyActive {
		where = append(where, "is_active=1")
	}
	if f.OnlyFeatured {
		where = append(where, "featured=1")
	}
	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, f.Category)
	}

	query := `SELECT ` + tourColumns + ` FROM city_tours`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY featured DESC, created_at DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.CityTour{}
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r TourRepo) GetByID(id int64) (models.CityTour, error) {
	t, err := scanTour(r.db().QueryRow(`SELECT `+tourColumns+` FROM city_tours WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CityTour{}, domain.NotFoundError{Resource: "excursion"}
	}
	if err != nil {
		return models.CityTour{}, domain.InternalError{Err: err}
	}
	return t, nil
}

func (r TourRepo) GetBySlug(slug string) (models.CityTour, error) {
	t, err := scanTour(r.db().QueryRow(`SELECT `+tourColumns+` FROM city_tours WHERE slug=?`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CityTour{}, domain.NotFoundError{Resource: "excursion"}
	}
	if err != nil {
		return models.CityTour{}, domain.InternalError{Err: err}
	}
	return t, nil
}

func (r TourRepo) Create(t models.CityTour) (models.CityTour, error) {
	slug := t.Slug
	if slug == "" {
		slug = utils.Slugify(t.Name)
	}
	res, err := r.db().Exec(`
		INSERT INTO city_tours (provider_id, name, slug, description, full_description, category,
			duration, difficulty, max_capacity, min_participants, price_cents, price_child_cents,
			included, excluded, highlights, meeting_point, meeting_time, image_url, is_active, featured)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, intdb.NullID(t.ProviderID), strings.TrimSpace(t.Name), slug, t.Description,
		intdb.NullIfEmpty(t.FullDescription), t.Category, t.Duration, t.Difficulty,
		t.MaxCapacity, t.MinParticipants, t.PriceCents, nullCents(t.PriceChildCents),
		intdb.NullIfEmpty(utils.JoinCSV(t.Included)), intdb.NullIfEmpty(utils.JoinCSV(t.Excluded)),
		intdb.NullIfEmpty(utils.JoinCSV(t.Highlights)), t.MeetingPoint,
		intdb.NullIfEmpty(t.MeetingTime), intdb.NullIfEmpty(t.ImageURL), t.IsActive, t.Featured)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return models.CityTour{}, domain.ConflictError{Msg: "une excursion avec ce slug existe déjà"}
		}
		return models.CityTour{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r TourRepo) Update(id int64, upd models.CityTourUpdate) (models.CityTour, error) {
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
	if upd.Slug != nil {
		sets = append(sets, "slug=?")
		args = append(args, utils.Slugify(*upd.Slug))
	}
	if upd.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *upd.Description)
	}
	if upd.FullDescription != nil {
		sets = append(sets, "full_description=?")
		args = append(args, intdb.NullIfEmpty(*upd.FullDescription))
	}
	if upd.Category != nil {
		sets = append(sets, "category=?")
		args = append(args, *upd.Category)
	}
	if upd.Duration != nil {
		sets = append(sets, "duration=?")
		args = append(args, *upd.Duration)
	}
	if upd.Difficulty != nil {
		sets = append(sets, "difficulty=?")
		args = append(args, *upd.Difficulty)
	}
	if upd.MaxCapacity != nil {
		sets = append(sets, "max_capacity=?")
		args = append(args, *upd.MaxCapacity)
	}
	if upd.MinParticipants != nil {
		sets = append(sets, "min_participants=?")
		args = append(args, *upd.MinParticipants)
	}
	if upd.PriceCents != nil {
		sets = append(sets, "price_cents=?")
		args = append(args, *upd.PriceCents)
	}
	if upd.PriceChildCents != nil {
		sets = append(sets, "price_child_cents=?")
		args = append(args, nullCents(upd.PriceChildCents))
	}
	if upd.Included != nil {
		sets = append(sets, "included=?")
		args = append(args, intdb.NullIfEmpty(utils.JoinCSV(*upd.Included)))
	}
	if upd.Excluded != nil {
		sets = append(sets, "excluded=?")
		args = append(args, intdb.NullIfEmpty(utils.JoinCSV(*upd.Excluded)))
	}
	if upd.Highlights != nil {
		sets = append(sets, "highlights=?")
		args = append(args, intdb.NullIfEmpty(utils.JoinCSV(*upd.Highlights)))
	}
	if upd.MeetingPoint != nil {
		sets = append(sets, "meeting_point=?")
		args = append(args, *upd.MeetingPoint)
	}
	if upd.MeetingTime != nil {
		sets = append(sets, "meeting_time=?")
		args = append(args, intdb.NullIfEmpty(*upd.MeetingTime))
	}
	if upd.ImageURL != nil {
		sets = append(sets, "image_url=?")
		args = append(args, intdb.NullIfEmpty(*upd.ImageURL))
	}
	if upd.IsActive != nil {
		sets = append(sets, "is_active=?")
		args = append(args, *upd.IsActive)
	}
	if upd.Featured != nil {
		sets = append(sets, "featured=?")
		args = append(args, *upd.Featured)
	}

	if len(sets) == 0 {
		return r.GetByID(id)
	}
	args = append(args, id)

	if _, err := r.db().Exec(`UPDATE city_tours SET `+strings.Join(sets, ",")+` WHERE id=?`, args...); err != nil {
		return models.CityTour{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

func (r TourRepo) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM city_tours WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "excursion"}
	}
	return nil
}

// Itinerary stops, ordered by position.

func (r TourRepo) Stops(tourID int64) ([]models.TourStop, error) {
	rows, err := r.db().Query(`
		SELECT id, tour_id, position, name, COALESCE(description,''), COALESCE(duration_minutes,0), COALESCE(activity,'')
		FROM tour_stops WHERE tour_id=? ORDER BY position
	`, tourID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.TourStop{}
	for rows.Next() {
		var s models.TourStop
		if err := rows.Scan(&s.ID, &s.TourID, &s.Position, &s.Name, &s.Description, &s.DurationMinutes, &s.Activity); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r TourRepo) CreateStop(s models.TourStop) (models.TourStop, error) {
	res, err := r.db().Exec(`
		INSERT INTO tour_stops (tour_id, position, name, description, duration_minutes, activity)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.TourID, s.Position, strings.TrimSpace(s.Name), intdb.NullIfEmpty(s.Description),
		s.DurationMinutes, intdb.NullIfEmpty(s.Activity))
	if err != nil {
		return models.TourStop{}, domain.InternalError{Err: err}
	}
	s.ID, _ = res.LastInsertId()
	return s, nil
}

// ReplaceStops rewrites a tour itinerary in one transaction.
func (r TourRepo) ReplaceStops(tourID int64, stops []models.TourStop) error {
	tx, err := r.db().Begin()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tour_stops WHERE tour_id=?`, tourID); err != nil {
		return domain.InternalError{Err: err}
	}
	for i, s := range stops {
		if _, err := tx.Exec(`
			INSERT INTO tour_stops (tour_id, position, name, description, duration_minutes, activity)
			VALUES (?, ?, ?, ?, ?, ?)
		`, tourID, i+1, strings.TrimSpace(s.Name), intdb.NullIfEmpty(s.Description),
			s.DurationMinutes, intdb.NullIfEmpty(s.Activity)); err != nil {
			return domain.InternalError{Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r TourRepo) DeleteStop(id int64) error {
	res, err := r.db().Exec(`DELETE FROM tour_stops WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "étape"}
	}
	return nil
}
