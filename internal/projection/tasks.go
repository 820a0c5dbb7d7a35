// Package projection строит отфильтрованные и отсортированные представления коллекций.
// Все функции чистые: входной срез не изменяется, результат всегда новый срез.
package projection

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"tasknotes-service/internal/model"
)

// TaskFilter фильтр задач по статусу
type TaskFilter string

const (
	TaskFilterAll       TaskFilter = "all"
	TaskFilterPending   TaskFilter = "pending"
	TaskFilterCompleted TaskFilter = "completed"
)

// TaskSort порядок сортировки задач
type TaskSort string

const (
	TaskSortNewest   TaskSort = "newest"
	TaskSortOldest   TaskSort = "oldest"
	TaskSortPriority TaskSort = "priority"
)

// TaskQuery параметры представления задач
type TaskQuery struct {
	Filter TaskFilter
	Sort   TaskSort
}

// TaskStats счетчики задач по статусам
type TaskStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// ParseTaskFilter разбирает фильтр; пустая строка означает all
func ParseTaskFilter(s string) (TaskFilter, error) {
	f := TaskFilter(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return TaskFilterAll, nil
	case TaskFilterAll, TaskFilterPending, TaskFilterCompleted:
		return f, nil
	}
	return "", model.NewValidationError("filter", fmt.Sprintf("unknown task filter %q", s))
}

// ParseTaskSort разбирает порядок сортировки; пустая строка означает newest
func ParseTaskSort(s string) (TaskSort, error) {
	o := TaskSort(strings.ToLower(strings.TrimSpace(s)))
	switch o {
	case "":
		return TaskSortNewest, nil
	case TaskSortNewest, TaskSortOldest, TaskSortPriority:
		return o, nil
	}
	return "", model.NewValidationError("sort", fmt.Sprintf("unknown task sort %q", s))
}

// Tasks применяет фильтр, затем устойчивую сортировку.
// Задачи с равным ключом сохраняют исходный относительный порядок.
func Tasks(tasks []model.Task, q TaskQuery) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if matchTask(t, q.Filter) {
			out = append(out, t)
		}
	}

	switch q.Sort {
	case TaskSortNewest, "":
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case TaskSortOldest:
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case TaskSortPriority:
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return cmp.Compare(b.Priority.Rank(), a.Priority.Rank())
		})
	}
	return out
}

func matchTask(t model.Task, f TaskFilter) bool {
	switch f {
	case TaskFilterPending:
		return t.Status == model.StatusPending
	case TaskFilterCompleted:
		return t.Status == model.StatusCompleted
	}
	return true
}

// Stats считает задачи по статусам
func Stats(tasks []model.Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
