package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/repo-surfer/repo-surfer/internal/auth"
	"github.com/repo-surfer/repo-surfer/internal/web"
)

// SetupRouter configures all routes: the server-rendered pages, the OAuth
// flow, and the JSON API the pages are backed by.
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login page. Already-authenticated users go straight to the dashboard.
	r.GET("/", auth.RedirectIfAuthenticated(), h.ShowLogin)

	// OAuth flow
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/login", h.Login)
		authGroup.GET("/callback", h.Callback)
		authGroup.GET("/logout", h.Logout)
	}

	// Protected pages: cookie presence required, validity checked by the
	// data fetch behind each page.
	dashboard := r.Group("/dashboard", auth.RequireSession())
	{
		dashboard.GET("", h.Dashboard)
		dashboard.GET("/repo/:owner/:repo", h.RepoDetail)
	}

	// JSON API
	v1 := r.Group("/api/v1")
	v1.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: false,
	}))
	v1.Use(auth.RequireSessionAPI())
	{
		v1.GET("/user", h.GetUserAPI)
		v1.GET("/repos", h.ListReposAPI)
		v1.GET("/repos/:owner/:repo/stats", h.GetRepoStatsAPI)
	}

	return r
}
