// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"tuition/config"
	"tuition/internal/delivery/api/middleware"
	"tuition/internal/delivery/api/router/handler"
	"tuition/internal/domain/entity"
	"tuition/internal/infra/metrics"
)

type RouterParams struct {
	fx.In

	ConfigHandler         *handler.ConfigHandler
	DynamicProfileHandler *handler.DynamicProfileHandler
	TeacherHandler        *handler.TeacherHandler
	AuthHandler           *handler.AuthHandler
	ActivityHandler       *handler.ActivityHandler
	AuthMiddleware        *middleware.AuthMiddleware
	Metrics               *metrics.Metrics `optional:"true"`
	Config                *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	configHandler         *handler.ConfigHandler
	dynamicProfileHandler *handler.DynamicProfileHandler
	teacherHandler        *handler.TeacherHandler
	authHandler           *handler.AuthHandler
	activityHandler       *handler.ActivityHandler
	authMiddleware        *middleware.AuthMiddleware
	metrics               *metrics.Metrics
	config                *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		configHandler:         params.ConfigHandler,
		dynamicProfileHandler: params.DynamicProfileHandler,
		teacherHandler:        params.TeacherHandler,
		authHandler:           params.AuthHandler,
		activityHandler:       params.ActivityHandler,
		authMiddleware:        params.AuthMiddleware,
		metrics:               params.Metrics,
		config:                params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	r.registerMetrics(e)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public routes
	e.GET("/admin/dynamic-config/public", r.configHandler.GetPublicConfig)
	e.GET("/teachers/:userId/qr", r.teacherHandler.GetShareQRCode)
	e.POST("/teachers/qr/resolve", r.teacherHandler.ResolveShareQRCode)

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	r.registerConfigRoutes(adminGroup.Group("/dynamic-config"))
	{
		adminGroup.GET("/teachers", r.teacherHandler.ListProfiles)
		adminGroup.PUT("/teachers/:userId/approve", r.teacherHandler.ApproveProfile)
		adminGroup.PUT("/teachers/:userId/reject", r.teacherHandler.RejectProfile)
		adminGroup.GET("/activity-logs", r.activityHandler.ListActivity)
	}

	teacherGroup := e.Group("/teacher")
	teacherGroup.Use(r.authMiddleware.Authenticate)
	teacherGroup.Use(r.authMiddleware.RequireRole(entity.RoleTeacher))
	{
		teacherGroup.POST("/profile", r.teacherHandler.CreateProfile)
		teacherGroup.GET("/profile", r.teacherHandler.GetProfile)
	}

	dynamicGroup := teacherGroup.Group("/dynamic-profile")
	{
		dynamicGroup.GET("", r.dynamicProfileHandler.GetDynamicProfile)
		dynamicGroup.PUT("", r.dynamicProfileHandler.UpdateDynamicProfile)
		dynamicGroup.POST("/enable", r.dynamicProfileHandler.EnableDynamicProfile)
		dynamicGroup.POST("/disable", r.dynamicProfileHandler.DisableDynamicProfile)
		dynamicGroup.PUT("/layout", r.dynamicProfileHandler.UpdateProfileLayout)
		dynamicGroup.GET("/templates/:templateId", r.dynamicProfileHandler.GetProfileTemplate)
		dynamicGroup.POST("/apply-template/:templateId", r.dynamicProfileHandler.ApplyProfileTemplate)
		dynamicGroup.GET("/form", r.dynamicProfileHandler.GetProfileForm)
		dynamicGroup.GET("/completeness", r.dynamicProfileHandler.GetProfileCompleteness)
	}

	notificationsGroup := e.Group("/notifications")
	notificationsGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationsGroup.GET("", r.activityHandler.ListNotifications)
		notificationsGroup.PUT("/:id/read", r.activityHandler.MarkNotificationRead)
	}
}

func (r *router) registerConfigRoutes(g *echo.Group) {
	g.GET("", r.configHandler.GetConfig)
	g.PUT("", r.configHandler.UpdateConfig)

	for _, kind := range entity.TaxonomyKinds {
		path := "/" + kind.Path()
		g.POST(path, r.configHandler.AddTaxonomyItem(kind))
		g.PUT(path+"/:code", r.configHandler.UpdateTaxonomyItem(kind))
		g.DELETE(path+"/:code", r.configHandler.RemoveTaxonomyItem(kind))
	}

	// Static segment first so "reorder" never reaches the :id routes.
	g.PUT("/profile-sections/reorder", r.configHandler.ReorderProfileSections)
	g.POST("/profile-sections", r.configHandler.AddProfileSection)
	g.PUT("/profile-sections/:id", r.configHandler.UpdateProfileSection)
	g.DELETE("/profile-sections/:id", r.configHandler.RemoveProfileSection)

	g.POST("/profile-templates", r.configHandler.AddProfileTemplate)
	g.GET("/profile-templates/:id", r.configHandler.GetProfileTemplate)
	g.PUT("/profile-templates/:id", r.configHandler.UpdateProfileTemplate)
	g.DELETE("/profile-templates/:id", r.configHandler.RemoveProfileTemplate)
}

func (r *router) registerMetrics(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.Use(r.metrics.Middleware())
	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
