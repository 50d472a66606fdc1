package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algowalk/steptrace/internal/catalog"
)

// Algorithms handles GET /api/v1/algorithms: the catalog UI dropdowns and
// CLI listings are built from.
func Algorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"algorithms": catalog.Entries()})
}
