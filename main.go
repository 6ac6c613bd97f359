package main

import (
	"os"
	"os/signal"
	"syscall"

	"smart-recipes-backend/cmd/config"
	migration "smart-recipes-backend/cmd/database/migrate"
	"smart-recipes-backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "3001"
	}

	// close the shared connection handle on shutdown; components never
	// manage the store lifecycle themselves
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
