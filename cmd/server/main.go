package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmlog/config"
	"farmlog/database"
	"farmlog/router"

	authCtrlImp "farmlog/pkg/auth/controllerImp"
	authRepoImp "farmlog/pkg/auth/repositoryImp"

	taskCtrlImp "farmlog/pkg/task/controllerImp"
	taskRepoImp "farmlog/pkg/task/repositoryImp"

	healthCtrlImp "farmlog/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// 4) Repos/Controllers
	uRepo := authRepoImp.New(db)
	tRepo := taskRepoImp.New(db)
	authCtrl := authCtrlImp.New(uRepo, cfg.JWTSecret, cfg.TokenTTL)
	taskCtrl := taskCtrlImp.New(tRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 5) Router
	r := router.New(e, authCtrl, taskCtrl, hCtrl, cfg.JWTSecret)

	// 6) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
