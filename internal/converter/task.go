package converter

import (
	"tasknotes-service/internal/model"
	"tasknotes-service/internal/projection"
	todov1 "tasknotes-service/pkg/api/todo/v1"
)

// TaskToAPI конвертирует domain модель Task в сообщение API
func TaskToAPI(task model.Task) *todov1.Task {
	return &todov1.Task{
		Id:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		CompletedAt: task.CompletedAt,
	}
}

// TasksToAPI конвертирует слайс задач
func TasksToAPI(tasks []model.Task) []*todov1.Task {
	out := make([]*todov1.Task, len(tasks))
	for i, task := range tasks {
		out[i] = TaskToAPI(task)
	}
	return out
}

// StatsToAPI конвертирует счетчики задач
func StatsToAPI(stats projection.TaskStats) *todov1.TaskStats {
	return &todov1.TaskStats{
		Total:     int32(stats.Total),
		Pending:   int32(stats.Pending),
		Completed: int32(stats.Completed),
	}
}
