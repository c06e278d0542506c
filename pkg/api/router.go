package api

import (
	"strings"

	"link-admin/pkg/api/handlers"
	"link-admin/pkg/api/middleware"
	"link-admin/pkg/db"
	"link-admin/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DefaultLinksPath is where the link collection is mounted
const DefaultLinksPath = "/ui/api"

func NewRouter(database *db.DB, linksPath string, log *logrus.Logger) *gin.Engine {
	router := gin.New()

	linkService := services.NewLinkService(database)

	// Middleware
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(cors.Default())

	// Health check
	router.GET("/health", handlers.HealthCheck)

	linksPath = "/" + strings.Trim(linksPath, "/")
	if linksPath == "/" {
		linksPath = DefaultLinksPath
	}

	links := router.Group(linksPath)
	{
		links.GET("", handlers.ListLinks(linkService))
		links.POST("", handlers.CreateLink(linkService))
		links.PUT("/:id", handlers.UpdateLink(linkService))
		links.DELETE("/:id", handlers.DeleteLink(linkService))
	}

	// Short link resolution
	router.GET("/:name", handlers.Redirect(linkService))

	return router
}
