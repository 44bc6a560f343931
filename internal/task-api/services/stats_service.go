package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"

	taskDB "nexa-task-service/internal/task-api/db"
)

const DefaultStatsInterval = time.Minute

// StatsService periodically logs how many tasks are stored per status. It is
// purely observational and never mutates tasks.
type StatsService struct {
	DB        *gorm.DB
	Scheduler gocron.Scheduler
}

func NewStatsService(db *gorm.DB) (*StatsService, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	return &StatsService{DB: db, Scheduler: s}, nil
}

func (s *StatsService) Start() {
	interval := DefaultStatsInterval
	if raw := os.Getenv("TASK_STATS_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			interval = parsed
		} else {
			log.Printf("StatsService: invalid TASK_STATS_INTERVAL '%s', using default %s", raw, interval)
		}
	}

	_, err := s.Scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.reportTaskCounts),
		gocron.WithName("task_stats"),
		gocron.WithTags("stats"),
	)
	if err != nil {
		log.Printf("StatsService: error scheduling stats job: %v", err)
		return
	}
	s.Scheduler.Start()
	log.Printf("StatsService started, reporting task counts every %s.", interval)
}

func (s *StatsService) Stop() {
	log.Println("StatsService stopping...")
	if err := s.Scheduler.Shutdown(); err != nil {
		log.Printf("Error shutting down stats scheduler: %v", err)
	}
}

type statusCount struct {
	Status string
	Count  int64
}

// CountTasksByStatus returns the number of stored tasks per status label.
func (s *StatsService) CountTasksByStatus() (map[string]int64, error) {
	var rows []statusCount
	err := s.DB.Model(&taskDB.Task{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (s *StatsService) reportTaskCounts() {
	counts, err := s.CountTasksByStatus()
	if err != nil {
		log.Printf("StatsService: error counting tasks: %v", err)
		return
	}
	var total int64
	for _, c := range counts {
		total += c
	}
	log.Printf("StatsService: %d tasks stored, by status: %v", total, counts)
}
