package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"taskmarket.com/taskmarket/internal/constants"
	middleware "taskmarket.com/taskmarket/internal/http/middlewares"
	"taskmarket.com/taskmarket/internal/ratelimit"
)

type Options struct {
	Limiter    ratelimit.Limiter
	CORSOrigin string
	Logger     *slog.Logger
}

func Register(e *echo.Echo, h *Handler, opts Options) {
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(opts.Logger)

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(requestLogger(opts.Logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{opts.CORSOrigin},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if opts.Limiter != nil {
		e.Use(middleware.RateLimiter(opts.Limiter, opts.Logger))
	}

	e.GET("/healthz", h.Health)

	authenticated := middleware.Authenticate(h.authService)
	users := middleware.Authorize(constants.RoleUser)
	providers := middleware.Authorize(constants.RoleProvider)

	api := e.Group("/api")

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.GET("/auth/me", h.Me, authenticated)

	api.POST("/tasks", h.CreateTask, authenticated, users)
	api.GET("/tasks", h.ListTasks, authenticated)
	api.GET("/tasks/:id", h.GetTask, authenticated)
	api.PUT("/tasks/:id", h.UpdateTask, authenticated, users)
	api.GET("/tasks/:id/offers", h.ListTaskOffers, authenticated, users)
	api.POST("/tasks/:id/progress", h.SubmitProgress, authenticated, providers)
	api.PUT("/tasks/:id/complete", h.CompleteTask, authenticated, providers)
	api.PUT("/tasks/:id/acceptance", h.ResolveCompletion, authenticated, users)

	api.POST("/offers", h.CreateOffer, authenticated, providers)
	api.GET("/offers/provider", h.ListProviderOffers, authenticated, providers)
	api.PUT("/offers/:id/status", h.DecideOffer, authenticated, users)

	api.POST("/skills", h.CreateSkill, authenticated, providers)
	api.GET("/skills", h.ListSkills, authenticated, providers)
	api.PUT("/skills/:id", h.UpdateSkill, authenticated, providers)
	api.DELETE("/skills/:id", h.DeleteSkill, authenticated, providers)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}
