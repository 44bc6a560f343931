package db

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, dbFilePath string) *gorm.DB {
	_ = os.Remove(dbFilePath)

	gormDB, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database '%s': %v", dbFilePath, err)
	}

	if err := gormDB.AutoMigrate(&Task{}); err != nil {
		t.Fatalf("Failed to migrate test database '%s': %v", dbFilePath, err)
	}
	return gormDB
}

func teardownTestDB(gormDB *gorm.DB, t *testing.T, dbFilePath string) {
	if gormDB != nil {
		sqlDB, err := gormDB.DB()
		if err == nil && sqlDB != nil {
			if err := sqlDB.Close(); err != nil {
				t.Logf("Warning: could not close test DB: %v", err)
			}
		}
	}
	if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
		t.Logf("Warning: could not remove test DB file '%s': %v", dbFilePath, err)
	}
}

func TestTaskCreateAssignsIDAndDefaults(t *testing.T) {
	dbFilePath := "test_task_model_create_" + strconv.FormatInt(time.Now().UnixNano(), 10) + ".db"
	gormDB := setupTestDB(t, dbFilePath)
	defer teardownTestDB(gormDB, t, dbFilePath)

	task := Task{
		Type:    "generate_report",
		Payload: `{"report":"monthly"}`,
	}
	result := gormDB.Create(&task)
	assert.NoError(t, result.Error)
	assert.Len(t, task.ID, 36)
	assert.Equal(t, "pending", task.Status)
	assert.False(t, task.CreatedAt.IsZero())
	assert.False(t, task.UpdatedAt.IsZero())

	var fetched Task
	result = gormDB.First(&fetched, "id = ?", task.ID)
	assert.NoError(t, result.Error)
	assert.Equal(t, task.Type, fetched.Type)
	assert.Equal(t, task.Payload, fetched.Payload)
}

func TestTaskCreateGeneratesUniqueIDs(t *testing.T) {
	dbFilePath := "test_task_model_unique_" + strconv.FormatInt(time.Now().UnixNano(), 10) + ".db"
	gormDB := setupTestDB(t, dbFilePath)
	defer teardownTestDB(gormDB, t, dbFilePath)

	first := Task{Type: "analyze_data", Payload: `{}`}
	second := Task{Type: "analyze_data", Payload: `{}`}
	assert.NoError(t, gormDB.Create(&first).Error)
	assert.NoError(t, gormDB.Create(&second).Error)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestTaskCreateKeepsCallerID(t *testing.T) {
	dbFilePath := "test_task_model_caller_id_" + strconv.FormatInt(time.Now().UnixNano(), 10) + ".db"
	gormDB := setupTestDB(t, dbFilePath)
	defer teardownTestDB(gormDB, t, dbFilePath)

	task := Task{
		ID:      "11111111-2222-3333-4444-555555555555",
		Type:    "optimize_route",
		Payload: `{"locations":["A","B"]}`,
	}
	assert.NoError(t, gormDB.Create(&task).Error)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", task.ID)
}
