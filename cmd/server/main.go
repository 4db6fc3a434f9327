package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/Dharmub376/Digital-Chunab/internal/config"
	"github.com/Dharmub376/Digital-Chunab/internal/db"
	"github.com/Dharmub376/Digital-Chunab/internal/handler"
	"github.com/Dharmub376/Digital-Chunab/internal/middleware"
	"github.com/Dharmub376/Digital-Chunab/internal/repository"
	"github.com/Dharmub376/Digital-Chunab/internal/router"
	"github.com/Dharmub376/Digital-Chunab/internal/service"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "digital-chunab")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	admins := repository.NewAdminRepo(pool)
	students := repository.NewStudentRepo(pool)
	positions := repository.NewPositionRepo(pool)
	candidates := repository.NewCandidateRepo(pool)
	votes := repository.NewVoteRepo(pool)
	activity := repository.NewActivityRepo(pool)

	authSvc := service.NewAuthService(admins, students, activity, cfg.JWTSecret, cfg.JWTExpiry)
	votingSvc := service.NewVotingService(votes, positions, candidates, cache)
	studentSvc := service.NewStudentService(students, positions, votes)
	adminSvc := service.NewAdminService(students, positions, candidates, votes, activity, cache)
	resultsSvc := service.NewResultsService(votes, cache)

	if err := authSvc.SeedAdmin(ctx, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	handler.InitMetrics(pool)

	app := fiber.New(fiber.Config{
		AppName:      "Digital Chunab API",
		ServerHeader: "DigitalChunab",
	})

	h := &router.Handlers{
		Auth:    handler.NewAuthHandler(authSvc),
		Voting:  handler.NewVotingHandler(votingSvc),
		Student: handler.NewStudentHandler(studentSvc),
		Admin:   handler.NewAdminHandler(adminSvc),
		Results: handler.NewResultsHandler(resultsSvc),
		Export:  handler.NewExportHandler(resultsSvc),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}
	router.Setup(app, h, router.Deps{
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		Admins:      admins,
		Students:    students,
	})

	go func() {
		log.Printf("Digital Chunab backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
