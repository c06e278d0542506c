package handlers

import (
	"errors"
	"net/http"

	"link-admin/pkg/db"
	"link-admin/pkg/models"
	"link-admin/pkg/services"

	"github.com/gin-gonic/gin"
)

// linkUpdateRequest is the body of an update. enabled must always be sent.
type linkUpdateRequest struct {
	Name    *string `json:"name"`
	Link    *string `json:"link"`
	Enabled *bool   `json:"enabled" binding:"required"`
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, models.Envelope[any]{Success: false, Message: message})
}

// failWith maps a service error to its status code
func failWith(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrDuplicateName):
		fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, db.ErrRecordNotFound):
		fail(c, http.StatusNotFound, err.Error())
	default:
		fail(c, http.StatusInternalServerError, err.Error())
	}
}

func parseID(c *gin.Context) (models.LinkID, bool) {
	id, err := models.ParseLinkID(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid link ID")
		return 0, false
	}
	return id, true
}

// HealthCheck reports that the server is up
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListLinks lists all links
func ListLinks(service *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := service.ListLinks(c.Request.Context())
		if err != nil {
			failWith(c, err)
			return
		}

		c.JSON(http.StatusOK, models.Envelope[[]models.Link]{Success: true, Data: links})
	}
}

// CreateLink creates a new link
func CreateLink(service *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var linkCreate models.LinkCreate
		if err := c.ShouldBindJSON(&linkCreate); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		link, err := service.CreateLink(c.Request.Context(), linkCreate)
		if err != nil {
			failWith(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.Envelope[*models.Link]{Success: true, Data: link})
	}
}

// UpdateLink updates an existing link
func UpdateLink(service *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var req linkUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		_, err := service.UpdateLink(c.Request.Context(), id, services.LinkUpdate{
			Name:    req.Name,
			Link:    req.Link,
			Enabled: *req.Enabled,
		})
		if err != nil {
			failWith(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// DeleteLink deletes a link
func DeleteLink(service *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		if err := service.DeleteLink(c.Request.Context(), id); err != nil {
			failWith(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// Redirect sends the caller to the target of an enabled link
func Redirect(service *services.LinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		target, err := service.Resolve(c.Request.Context(), c.Param("name"))
		if err != nil {
			if errors.Is(err, services.ErrLinkDisabled) || errors.Is(err, db.ErrRecordNotFound) {
				c.String(http.StatusNotFound, "not found")
				return
			}
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		c.Redirect(http.StatusFound, target)
	}
}
