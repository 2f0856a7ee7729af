package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "navetteclub/internal/config"
	intdb "navetteclub/internal/db"
	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
)

type ContentRepo struct {
	DB *sql.DB
}

func (r ContentRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Homepage blocks.

const homepageColumns = `id, section, title, COALESCE(subtitle,''), COALESCE(content,''),
	COALESCE(image_url,''), position, is_active, updated_at`

func scanHomepage(row interface{ Scan(...any) error }) (models.HomePageContent, error) {
	var h models.HomePageContent
	err := row.Scan(&h.ID, &h.Section, &h.Title, &h.Subtitle, &h.Content,
		&h.ImageURL, &h.Position, &h.IsActive, &h.UpdatedAt)
	return h, err
}

func (r ContentRepo) HomepageSections(onlyActive bool) ([]models.HomePageContent, error) {
	query := `SELECT ` + homepageColumns + ` FROM homepage_content`
	if onlyActive {
		query += ` WHERE is_active=1`
	}
	query += ` ORDER BY position, id`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.HomePageContent{}
	for rows.Next() {
		h, err := scanHomepage(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

func (r ContentRepo) GetHomepageSection(id int64) (models.HomePageContent, error) {
	h, err := scanHomepage(r.db().QueryRow(`SELECT `+homepageColumns+` FROM homepage_content WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.HomePageContent{}, domain.NotFoundError{Resource: "section"}
	}
	if err != nil {
		return models.HomePageContent{}, domain.InternalError{Err: err}
	}
	return h, nil
}

func (r ContentRepo) UpsertHomepageSection(h models.HomePageContent) (models.HomePageContent, error) {
	if h.ID > 0 {
		if _, err := r.db().Exec(`
			UPDATE homepage_content SET section=?, title=?, subtitle=?, content=?, image_url=?, position=?, is_active=?
			WHERE id=?
		`, h.Section, h.Title, intdb.NullIfEmpty(h.Subtitle), intdb.NullIfEmpty(h.Content),
			intdb.NullIfEmpty(h.ImageURL), h.Position, h.IsActive, h.ID); err != nil {
			return models.HomePageContent{}, domain.InternalError{Err: err}
		}
		return r.GetHomepageSection(h.ID)
	}

	res, err := r.db().Exec(`
		INSERT INTO homepage_content (section, title, subtitle, content, image_url, position, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, h.Section, h.Title, intdb.NullIfEmpty(h.Subtitle), intdb.NullIfEmpty(h.Content),
		intdb.NullIfEmpty(h.ImageURL), h.Position, h.IsActive)
	if err != nil {
		return models.HomePageContent{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetHomepageSection(id)
}

func (r ContentRepo) DeleteHomepageSection(id int64) error {
	res, err := r.db().Exec(`DELETE FROM homepage_content WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "section"}
	}
	return nil
}

// Contact info is a single row, created lazily on first read.

const contactColumns = `id, address, phone1, COALESCE(phone2,''), email, COALESCE(about_text,''), updated_at`

func (r ContentRepo) GetContactInfo() (models.ContactInfo, error) {
	var c models.ContactInfo
	err := r.db().QueryRow(`SELECT `+contactColumns+` FROM contact_info ORDER BY id LIMIT 1`).
		Scan(&c.ID, &c.Address, &c.Phone1, &c.Phone2, &c.Email, &c.AboutText, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		res, err := r.db().Exec(`INSERT INTO contact_info (address, phone1, email) VALUES ('', '', '')`)
		if err != nil {
			return models.ContactInfo{}, domain.InternalError{Err: err}
		}
		c.ID, _ = res.LastInsertId()
		return r.GetContactInfo()
	}
	if err != nil {
		return models.ContactInfo{}, domain.InternalError{Err: err}
	}
	return c, nil
}

func (r ContentRepo) UpdateContactInfo(upd models.ContactInfoUpdate) (models.ContactInfo, error) {
	current, err := r.GetContactInfo()
	if err != nil {
		return models.ContactInfo{}, err
	}

	sets := []string{}
	args := []any{}
	if upd.Address != nil {
		sets = append(sets, "address=?")
		args = append(args, *upd.Address)
	}
	if upd.Phone1 != nil {
		sets = append(sets, "phone1=?")
		args = append(args, *upd.Phone1)
	}
	if upd.Phone2 != nil {
		sets = append(sets, "phone2=?")
		args = append(args, intdb.NullIfEmpty(*upd.Phone2))
	}
	if upd.Email != nil {
		sets = append(sets, "email=?")
		args = append(args, *upd.Email)
	}
	if upd.AboutText != nil {
		sets = append(sets, "about_text=?")
		args = append(args, intdb.NullIfEmpty(*upd.AboutText))
	}

	if len(sets) == 0 {
		return current, nil
	}
	args = append(args, current.ID)

	if _, err := r.db().Exec(`UPDATE contact_info SET `+strings.Join(sets, ",")+` WHERE id=?`, args...); err != nil {
		return models.ContactInfo{}, domain.InternalError{Err: err}
	}
	return r.GetContactInfo()
}

// Social media links.

func (r ContentRepo) SocialLinks(onlyActive bool) ([]models.SocialMediaLink, error) {
	query := `SELECT id, platform, url, COALESCE(icon,''), position, is_active FROM social_media_links`
	if onlyActive {
		query += ` WHERE is_active=1`
	}
	query += ` ORDER BY position, id`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.SocialMediaLink{}
	for rows.Next() {
		var l models.SocialMediaLink
		if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &l.Icon, &l.Position, &l.IsActive); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r ContentRepo) CreateSocialLink(l models.SocialMediaLink) (models.SocialMediaLink, error) {
	res, err := r.db().Exec(`
		INSERT INTO social_media_links (platform, url, icon, position, is_active)
		VALUES (?, ?, ?, ?, ?)
	`, l.Platform, l.URL, intdb.NullIfEmpty(l.Icon), l.Position, l.IsActive)
	if err != nil {
		return models.SocialMediaLink{}, domain.InternalError{Err: err}
	}
	l.ID, _ = res.LastInsertId()
	return l, nil
}

func (r ContentRepo) UpdateSocialLink(l models.SocialMediaLink) (models.SocialMediaLink, error) {
	res, err := r.db().Exec(`
		UPDATE social_media_links SET platform=?, url=?, icon=?, position=?, is_active=? WHERE id=?
	`, l.Platform, l.URL, intdb.NullIfEmpty(l.Icon), l.Position, l.IsActive, l.ID)
	if err != nil {
		return models.SocialMediaLink{}, domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.SocialMediaLink{}, domain.NotFoundError{Resource: "lien"}
	}
	return l, nil
}

func (r ContentRepo) DeleteSocialLink(id int64) error {
	res, err := r.db().Exec(`DELETE FROM social_media_links WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "lien"}
	}
	return nil
}
