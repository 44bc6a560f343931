package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountTasksByStatus(t *testing.T) {
	dbFilePath := "test_stats_service_counts_" + strconv.FormatInt(time.Now().UnixNano(), 10) + ".db"
	gormDB := setupServiceTestDB(t, dbFilePath)
	defer teardownServiceTestDB(gormDB, t, dbFilePath)

	taskService := NewTaskService(gormDB)
	_, err := taskService.CreateTask("optimize_route", `{}`)
	assert.NoError(t, err)
	_, err = taskService.CreateTask("generate_report", `{}`)
	assert.NoError(t, err)

	statsService, err := NewStatsService(gormDB)
	assert.NoError(t, err)
	defer statsService.Stop()

	counts, err := statsService.CountTasksByStatus()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), counts[StatusPending])
}

func TestCountTasksByStatus_Empty(t *testing.T) {
	dbFilePath := "test_stats_service_empty_" + strconv.FormatInt(time.Now().UnixNano(), 10) + ".db"
	gormDB := setupServiceTestDB(t, dbFilePath)
	defer teardownServiceTestDB(gormDB, t, dbFilePath)

	statsService, err := NewStatsService(gormDB)
	assert.NoError(t, err)
	defer statsService.Stop()

	counts, err := statsService.CountTasksByStatus()
	assert.NoError(t, err)
	assert.Empty(t, counts)
}
