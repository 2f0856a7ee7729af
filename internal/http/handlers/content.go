package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/http/middleware"
	"navetteclub/internal/repositories"
	"navetteclub/internal/utils"
)

// GET /api/content/homepage
func GetHomepageContent(c *gin.Context) {
	sections, err := repositories.ContentRepo{}.HomepageSections(true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

// GET /api/admin/content/homepage
func GetAllHomepageContent(c *gin.Context) {
	sections, err := repositories.ContentRepo{}.HomepageSections(false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

// PUT /api/admin/content/homepage
// Creates when id is absent, updates otherwise.
func UpsertHomepageContent(c *gin.Context) {
	var h models.HomePageContent
	if !BindJSONOrError(c, &h) {
		return
	}
	if strings.TrimSpace(h.Section) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "section", Msg: "la section est requise"})
		return
	}

	saved, err := repositories.ContentRepo{}.UpsertHomepageSection(h)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DELETE /api/admin/content/homepage/:id
func DeleteHomepageContent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.ContentRepo{}).DeleteHomepageSection(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "section supprimée"})
}

// GET /api/content/contact
func GetContactInfo(c *gin.Context) {
	info, err := repositories.ContentRepo{}.GetContactInfo()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// PATCH /api/admin/content/contact
func UpdateContactInfo(c *gin.Context) {
	var upd models.ContactInfoUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	info, err := repositories.ContentRepo{}.UpdateContactInfo(upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GET /api/content/social
func GetSocialLinks(c *gin.Context) {
	links, err := repositories.ContentRepo{}.SocialLinks(true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// GET /api/admin/content/social
func GetAllSocialLinks(c *gin.Context) {
	links, err := repositories.ContentRepo{}.SocialLinks(false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func validateSocialLink(l models.SocialMediaLink) error {
	var errs domain.FieldErrors
	if strings.TrimSpace(l.Platform) == "" {
		errs.Add("platform", "la plateforme est requise")
	}
	if strings.TrimSpace(l.URL) == "" {
		errs.Add("url", "l'URL est requise")
	}
	if errs.Empty() {
		return nil
	}
	return errs
}

// POST /api/admin/content/social
func CreateSocialLink(c *gin.Context) {
	var l models.SocialMediaLink
	if !BindJSONOrError(c, &l) {
		return
	}
	if err := validateSocialLink(l); err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := repositories.ContentRepo{}.CreateSocialLink(l)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/admin/content/social/:id
func UpdateSocialLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var l models.SocialMediaLink
	if !BindJSONOrError(c, &l) {
		return
	}
	l.ID = id
	if err := validateSocialLink(l); err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, err := repositories.ContentRepo{}.UpdateSocialLink(l)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/admin/content/social/:id
func DeleteSocialLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := (repositories.ContentRepo{}).DeleteSocialLink(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lien supprimé"})
}

type contactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// POST /api/contact
// Forwards a storefront contact-form message to the company inbox.
func SubmitContactForm(c *gin.Context) {
	var req contactFormRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var errs domain.FieldErrors
	if strings.TrimSpace(req.Name) == "" {
		errs.Add("name", "le nom est requis")
	}
	if !strings.Contains(req.Email, "@") {
		errs.Add("email", "adresse e-mail invalide")
	}
	if strings.TrimSpace(req.Message) == "" {
		errs.Add("message", "le message est requis")
	}
	if !errs.Empty() {
		RespondDomainError(c, errs)
		return
	}

	info, err := repositories.ContentRepo{}.GetContactInfo()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if info.Email == "" {
		RespondError(c, http.StatusServiceUnavailable, "aucune adresse de contact n'est configurée", nil)
		return
	}

	if err := mailer(c).SendContactNotification(info.Email, req.Name, req.Email, req.Message); err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "mail", "contact_failed", err.Error())
		RespondError(c, http.StatusBadGateway, "impossible d'envoyer le message, réessayez plus tard", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "votre message a bien été envoyé"})
}
