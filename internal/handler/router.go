package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/handler/api"
	reqdto "halisaha-api/internal/handler/dto/request"
	"halisaha-api/internal/handler/middleware"
	"halisaha-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine      *gin.Engine
	Config      config.Config
	Logger      *middleware.Logger
	Auth        *middleware.AuthMiddleware
	Limiter     *middleware.RateLimiter
	AuthAPI     *api.AuthHandler
	UserAPI     *api.UserHandler
	VenueAPI    *api.VenueHandler
	Reservation *api.ReservationHandler
	Review      *api.ReviewHandler
}

func NewRouter(p RouterParams) {
	reqdto.RegisterValidators()
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine, authMw := p.Engine, p.Auth

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(p.Limiter.Global())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/register", Handler: p.AuthAPI.Register, Mw: []gin.HandlerFunc{p.Limiter.Auth()}},
			{Method: http.MethodPost, Path: "/login", Handler: p.AuthAPI.Login, Mw: []gin.HandlerFunc{p.Limiter.Auth()}},
		})

		users := apiGroup.Group("/users")
		users.Use(authMw.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "/add", Handler: p.UserAPI.Create, Mw: []gin.HandlerFunc{authMw.RequireRoles(user.RoleAdmin)}},
				{Method: http.MethodGet, Path: "", Handler: p.UserAPI.List},
			})
		}

		venues := apiGroup.Group("/halisaha")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: p.VenueAPI.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.VenueAPI.Get},
				{Method: http.MethodGet, Path: "/:id/rating-stats", Handler: p.VenueAPI.RatingStats},
				{Method: http.MethodPost, Path: "/create", Handler: p.VenueAPI.Create,
					Mw: []gin.HandlerFunc{authMw.RequireAuth(), authMw.RequireRoles(user.RoleOwner, user.RoleAdmin)}},
				{Method: http.MethodPut, Path: "/update/:id", Handler: p.VenueAPI.Update, Mw: []gin.HandlerFunc{authMw.RequireAuth()}},
				{Method: http.MethodDelete, Path: "/delete/:id", Handler: p.VenueAPI.Delete, Mw: []gin.HandlerFunc{authMw.RequireAuth()}},
			})
		}

		reservations := apiGroup.Group("/reservation")
		reservations.Use(authMw.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "/create", Handler: p.Reservation.Create,
					Mw: []gin.HandlerFunc{authMw.RequireRoles(user.RoleUser, user.RoleOwner, user.RoleAdmin), p.Limiter.Reservation()}},
				{Method: http.MethodGet, Path: "", Handler: p.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Reservation.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: p.Reservation.Update},
				{Method: http.MethodPut, Path: "/update/:id", Handler: p.Reservation.Update},
				{Method: http.MethodDelete, Path: "/delete/:id", Handler: p.Reservation.Delete, Mw: []gin.HandlerFunc{authMw.RequireRoles(user.RoleAdmin)}},
			})
		}

		reviews := apiGroup.Group("/review")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Review.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Review.Get},
				{Method: http.MethodPost, Path: "/create", Handler: p.Review.Create, Mw: []gin.HandlerFunc{authMw.RequireAuth()}},
				{Method: http.MethodPut, Path: "/update/:id", Handler: p.Review.Update, Mw: []gin.HandlerFunc{authMw.RequireAuth()}},
				{Method: http.MethodDelete, Path: "/delete/:id", Handler: p.Review.Delete, Mw: []gin.HandlerFunc{authMw.RequireAuth()}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
