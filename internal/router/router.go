package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"disasterhub/docs"
	"disasterhub/internal/config"
	"disasterhub/internal/handler"
	"disasterhub/internal/metrics"
	"disasterhub/internal/validator"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log logrus.FieldLogger,
	userHandler *handler.UserHandler,
	incidentHandler *handler.IncidentHandler,
	resourceHandler *handler.ResourceHandler,
	volunteerHandler *handler.VolunteerHandler,
) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(metrics.Middleware())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.Validator = validator.New()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Registration and login keep their plain-text contract
	api.POST("/users/create", userHandler.CreateUser)
	api.POST("/users/login", userHandler.Login)
	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUser)

	// Incident routes
	api.POST("/incidents", incidentHandler.ReportIncident)
	api.GET("/incidents", incidentHandler.ListIncidents)
	api.GET("/incidents/:id", incidentHandler.GetIncident)
	api.PATCH("/incidents/:id/status", incidentHandler.UpdateStatus)
	api.POST("/incidents/:id/logs", incidentHandler.LogUpdate)
	api.GET("/incidents/:id/logs", incidentHandler.History)

	// Resource routes
	api.POST("/resources", resourceHandler.AddResource)
	api.GET("/resources", resourceHandler.ListResources)
	api.GET("/resources/:id", resourceHandler.GetResource)
	api.PATCH("/resources/:id", resourceHandler.UpdateResource)

	// Volunteer routes
	api.POST("/volunteers", volunteerHandler.CreateProfile)
	api.GET("/volunteers", volunteerHandler.ListProfiles)
	api.GET("/volunteers/:userId", volunteerHandler.GetProfile)
	api.PATCH("/volunteers/:userId/availability", volunteerHandler.UpdateAvailability)
	api.POST("/volunteers/:userId/tasks/complete", volunteerHandler.CompleteTask)
}

// requestLogger emits one structured log line per request.
func requestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": v.Latency.Milliseconds(),
				"request_id": v.RequestID,
				"remote_ip":  v.RemoteIP,
			})
			switch {
			case v.Status >= http.StatusInternalServerError:
				entry.WithError(v.Error).Error("request failed")
			case v.Error != nil:
				entry.WithError(v.Error).Warn("request rejected")
			default:
				entry.Info("request handled")
			}
			return nil
		},
	})
}
