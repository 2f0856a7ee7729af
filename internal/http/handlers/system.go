package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "navetteclub/internal/config"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "navetteclub-api"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		RespondError(c, http.StatusInternalServerError, "base de données non connectée", nil)
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM customers").Scan(&count); err != nil {
		RespondError(c, http.StatusInternalServerError, "échec de la requête de contrôle", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "connexion base de données OK", "customers": count})
}
