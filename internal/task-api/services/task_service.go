package services

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	taskDB "nexa-task-service/internal/task-api/db"
)

const (
	StatusPending = "pending"

	// TaskTypeOptimizeRoute is the one task type with a non-CRUD retrieval
	// path: its representation carries a mock optimization result block.
	TaskTypeOptimizeRoute = "optimize_route"
)

// TaskService is the layer between the HTTP handlers and the task store.
type TaskService struct {
	DB *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{DB: db}
}

// CreateTask stores a new task with status "pending". The payload is an
// opaque JSON object supplied by the caller.
func (s *TaskService) CreateTask(taskType string, payloadJSON string) (*taskDB.Task, error) {
	task := taskDB.Task{
		Type:    taskType,
		Payload: payloadJSON,
		Status:  StatusPending,
	}
	if result := s.DB.Create(&task); result.Error != nil {
		return nil, result.Error
	}
	return &task, nil
}

// GetTaskByID fetches a stored task. Returns gorm.ErrRecordNotFound when no
// task has the given id.
func (s *TaskService) GetTaskByID(id string) (*taskDB.Task, error) {
	var task taskDB.Task
	if result := s.DB.First(&task, "id = ?", id); result.Error != nil {
		return nil, result.Error
	}
	return &task, nil
}

// ListTasks returns stored tasks, optionally filtered by status and type.
func (s *TaskService) ListTasks(status, taskType string) ([]taskDB.Task, error) {
	var tasks []taskDB.Task
	query := s.DB.Model(&taskDB.Task{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if taskType != "" {
		query = query.Where("type = ?", taskType)
	}
	if result := query.Find(&tasks); result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// TaskView is the client-facing representation of a task. Payload is emitted
// as the JSON object the caller submitted; Result is only present for
// optimize_route tasks and is never persisted.
type TaskView struct {
	ID        string                   `json:"id"`
	Type      string                   `json:"type"`
	Payload   json.RawMessage          `json:"payload"`
	Status    string                   `json:"status"`
	CreatedAt string                   `json:"created_at"`
	UpdatedAt string                   `json:"updated_at"`
	Result    *RouteOptimizationResult `json:"result,omitempty"`
}

// NewTaskView builds the response representation of a task, attaching the
// mock optimization block for optimize_route tasks.
func NewTaskView(task *taskDB.Task) TaskView {
	view := TaskView{
		ID:        task.ID,
		Type:      task.Type,
		Payload:   json.RawMessage(task.Payload),
		Status:    task.Status,
		CreatedAt: task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if task.Type == TaskTypeOptimizeRoute {
		result := BuildRouteOptimizationResult(task.Payload)
		view.Result = &result
	}
	return view
}

// NewTaskViews maps a slice of stored tasks to their representations.
func NewTaskViews(tasks []taskDB.Task) []TaskView {
	views := make([]TaskView, len(tasks))
	for i := range tasks {
		views[i] = NewTaskView(&tasks[i])
	}
	return views
}
