package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"

	"nexa-task-service/internal/task-api/events"
	"nexa-task-service/internal/task-api/services"
	"nexa-task-service/pkg/validation"
)

type TaskHandler struct {
	Tasks    *services.TaskService
	Producer *kafka.Writer // nil when event publishing is disabled
}

func NewTaskHandler(tasks *services.TaskService, producer *kafka.Writer) *TaskHandler {
	return &TaskHandler{Tasks: tasks, Producer: producer}
}

type CreateTaskRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (h *TaskHandler) CreateTask(ctx context.Context, c *app.RequestContext) {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	if req.Type == "" {
		c.JSON(http.StatusBadRequest, utils.H{"error": "Field 'type' is required"})
		return
	}
	if len(req.Payload) == 0 {
		c.JSON(http.StatusBadRequest, utils.H{"error": "Field 'payload' is required"})
		return
	}
	if err := validation.ValidateJSONObject(string(req.Payload)); err != nil {
		c.JSON(http.StatusBadRequest, utils.H{
			"error":             "Field 'payload' must be a JSON object",
			"validation_errors": err.Error(),
		})
		return
	}

	task, err := h.Tasks.CreateTask(req.Type, string(req.Payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.H{"error": "Failed to create task: " + err.Error()})
		return
	}

	h.publishTaskCreated(task.ID, task.Type, task.Status, task.CreatedAt.UTC().Format(time.RFC3339))

	c.JSON(http.StatusCreated, utils.H{
		"message": "Task created successfully",
		"task":    services.NewTaskView(task),
	})
}

func (h *TaskHandler) GetTaskByID(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	task, err := h.Tasks.GetTaskByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, utils.H{"detail": fmt.Sprintf("Task with id '%s' not found", id)})
		} else {
			c.JSON(http.StatusInternalServerError, utils.H{"error": "Failed to fetch task: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, services.NewTaskView(task))
}

func (h *TaskHandler) GetTasks(ctx context.Context, c *app.RequestContext) {
	tasks, err := h.Tasks.ListTasks(c.Query("status"), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.H{"error": "Failed to fetch tasks: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.NewTaskViews(tasks))
}

// publishTaskCreated fire-and-forgets an audit event. Publish failures are
// logged and never affect the HTTP response.
func (h *TaskHandler) publishTaskCreated(taskID, taskType, status, createdAt string) {
	if h.Producer == nil {
		return
	}
	payload := events.TaskCreatedPayload{
		TaskID:    taskID,
		Type:      taskType,
		Status:    status,
		CreatedAt: createdAt,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling TaskCreatedPayload for task ID %s: %v", taskID, err)
		return
	}
	go func() {
		writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		msg := kafka.Message{Key: []byte(taskID), Value: payloadBytes}
		if err := h.Producer.WriteMessages(writeCtx, msg); err != nil {
			log.Printf("Error publishing created event for task ID %s: %v", taskID, err)
			return
		}
		log.Printf("Task ID %s created event published to topic %s", taskID, h.Producer.Stats().Topic)
	}()
}
