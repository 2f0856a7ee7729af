package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/repositories"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := repositories.UserRepo{}.GetByEmail(req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "email ou mot de passe incorrect", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	if user.Status != "active" {
		RespondError(c, http.StatusForbidden, "ce compte est désactivé", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "email ou mot de passe incorrect", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "échec de la création du token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed, "user": user})
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var errs domain.FieldErrors
	if strings.TrimSpace(req.Name) == "" {
		errs.Add("name", "le nom est requis")
	}
	if strings.TrimSpace(req.Username) == "" {
		errs.Add("username", "le nom d'utilisateur est requis")
	}
	if !strings.Contains(req.Email, "@") {
		errs.Add("email", "email invalide")
	}
	if len(req.Password) < 8 {
		errs.Add("password", "le mot de passe doit contenir au moins 8 caractères")
	}
	if !errs.Empty() {
		RespondDomainError(c, errs)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "échec du hachage du mot de passe", err)
		return
	}

	user, err := repositories.UserRepo{}.Create(models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         "user",
		Status:       "active",
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "inscription réussie", "user": user})
}

// POST /api/auth/logout
// Tokens are stateless, the client just drops its copy.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "déconnexion réussie"})
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

// POST /api/admin/login
// The back office opens with a single shared password; the session is a JWT
// carrying is_admin, stored in a cookie.
func AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if adminPassword == "" {
		RespondError(c, http.StatusServiceUnavailable, "accès administrateur non configuré", nil)
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(adminPassword)) != 1 {
		RespondError(c, http.StatusUnauthorized, "mot de passe incorrect", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"is_admin": true,
		"exp":      time.Now().Add(12 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "échec de la création du token", err)
		return
	}

	c.SetCookie("admin_token", signed, int(12*time.Hour/time.Second), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": signed, "isAdmin": true})
}

// GET /api/admin/status (behind AdminRequired)
func AdminStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"isAdmin": true})
}

// POST /api/admin/logout
func AdminLogout(c *gin.Context) {
	c.SetCookie("admin_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "déconnexion réussie"})
}
