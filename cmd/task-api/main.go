package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/joho/godotenv"

	"nexa-task-service/internal/task-api/api"
	taskDB "nexa-task-service/internal/task-api/db"
	tmKafka "nexa-task-service/internal/task-api/kafka"
	"nexa-task-service/internal/task-api/services"
	gorm_db "nexa-task-service/pkg/db"
)

func main() {
	stdlog.Println("Nexa Task API starting...")

	if err := godotenv.Load(); err != nil {
		stdlog.Printf("No .env file loaded: %v", err)
	}

	gormDB, err := gorm_db.NewGormDB()
	if err != nil {
		stdlog.Fatalf("Failed to initialize database: %v", err)
	}
	stdlog.Println("Database initialized successfully.")

	stdlog.Println("Running database migrations...")
	if err := gorm_db.AutoMigrate(gormDB, &taskDB.Task{}); err != nil {
		stdlog.Fatalf("Failed to migrate database: %v", err)
	}
	stdlog.Println("Database migration successful.")

	eventProducer := tmKafka.NewTaskEventProducer()

	taskService := services.NewTaskService(gormDB)

	statsService, err := services.NewStatsService(gormDB)
	if err != nil {
		stdlog.Fatalf("Failed to create stats service: %v", err)
	}
	statsService.Start()

	serverAddr := os.Getenv("SERVER_ADDR")
	if serverAddr == "" {
		serverAddr = ":8080"
	}

	hlog.SetOutput(os.Stdout)
	hlog.SetLevel(hlog.LevelInfo)

	h := server.Default(server.WithHostPorts(serverAddr), server.WithExitWaitTime(5*time.Second))

	taskHandler := api.NewTaskHandler(taskService, eventProducer)

	v1 := h.Group("/api/v1")
	{
		v1.POST("/tasks", taskHandler.CreateTask)
		v1.GET("/tasks", taskHandler.GetTasks)
		v1.GET("/tasks/:id", taskHandler.GetTaskByID)
		v1.GET("/health", api.Health)
	}
	h.GET("/", api.Root)

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
		sig := <-signals
		hlog.Infof("Received signal: %s. Initiating graceful shutdown...", sig)

		shutdownCtx, httpShutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer httpShutdownCancel()
		if err := h.Shutdown(shutdownCtx); err != nil {
			hlog.Errorf("Hertz server shutdown error: %v", err)
		} else {
			hlog.Info("Hertz server gracefully stopped.")
		}

		statsService.Stop()

		if eventProducer != nil {
			if err := eventProducer.Close(); err != nil {
				hlog.Errorf("Kafka producer close error: %v", err)
			} else {
				hlog.Info("Kafka producer closed.")
			}
		}
		hlog.Info("Nexa Task API gracefully shut down.")
	}()

	hlog.Infof("Nexa Task API fully initialized and starting Hertz server on %s...", serverAddr)
	h.Spin()

	stdlog.Println("Nexa Task API has been shut down.")
}
