package router

import (
	"github.com/labstack/echo/v4"

	"farmlog/pkg/middleware"
)

func New(
	e *echo.Echo,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
	},
	taskCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
	jwtSecret string,
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	a := e.Group("/api/auth")
	a.POST("/register", authCtrl.Register)
	a.POST("/login", authCtrl.Login)

	// every task route sits behind the token check
	t := e.Group("/api/tasks", middleware.Auth(jwtSecret))
	t.GET("", taskCtrl.List)
	t.POST("", taskCtrl.Create)
	t.PUT("/:id", taskCtrl.Update)
	t.DELETE("/:id", taskCtrl.Delete)

	return e
}
