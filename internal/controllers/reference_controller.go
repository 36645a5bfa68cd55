package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tidsreg-be/internal/service"
)

type ReferenceController struct {
	referenceService service.ReferenceService
}

func NewReferenceController(referenceService service.ReferenceService) *ReferenceController {
	return &ReferenceController{referenceService: referenceService}
}

// ListUsers handles GET /api/users
func (rc *ReferenceController) ListUsers(c *gin.Context) {
	users, err := rc.referenceService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, msgDBError)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListProjects handles GET /api/projects
func (rc *ReferenceController) ListProjects(c *gin.Context) {
	projects, err := rc.referenceService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err, msgDBError)
		return
	}
	c.JSON(http.StatusOK, projects)
}
