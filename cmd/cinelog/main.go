package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cinelog/internal/api"
	"cinelog/internal/config"
	"cinelog/internal/db"
	"cinelog/internal/jobs"
	"cinelog/internal/version"
)

func main() {
	ver := version.Load()
	log.Printf("CineLog %s starting...", ver.Version)

	cfg := config.Load()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	var jobQueue *jobs.Queue
	if cfg.JobsEnabled() {
		jobQueue = jobs.NewQueue(cfg.RedisAddr)
	} else {
		log.Println("REDIS_ADDR not set, background ingest disabled")
	}

	srv := api.NewServer(cfg, database, jobQueue)

	if jobQueue != nil {
		jobQueue.RegisterHandler(jobs.TaskIngestTitle, jobs.NewIngestHandler(srv.Movies()))
		if err := jobQueue.Start(); err != nil {
			log.Fatalf("job queue failed to start: %v", err)
		}
		defer jobQueue.Stop()
	}

	httpServer := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%d", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	httpServer.Shutdown(ctx)
}
