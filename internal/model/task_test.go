package model

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{in: "", want: PriorityMedium},
		{in: "low", want: PriorityLow},
		{in: " HIGH ", want: PriorityHigh},
		{in: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePriority(tt.in)
			if tt.wantErr {
				var ve *ValidationError
				require.True(t, errors.As(err, &ve))
				assert.Equal(t, "priority", ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriority_Rank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Zero(t, Priority("bogus").Rank())
}

func TestTask_Toggled(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	task := Task{ID: "1", Title: "Buy milk", Priority: PriorityMedium, Status: StatusPending}

	done := task.Toggled(now)
	assert.Equal(t, StatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	assert.True(t, done.CompletedAt.Equal(now))
	assert.NoError(t, done.Validate())

	back := done.Toggled(now.Add(time.Hour))
	assert.Equal(t, StatusPending, back.Status)
	assert.Nil(t, back.CompletedAt)
	assert.NoError(t, back.Validate())

	// исходная задача не изменилась
	assert.Equal(t, StatusPending, task.Status)
}

func TestTask_Validate(t *testing.T) {
	now := time.Now()
	valid := Task{ID: "1", Title: "t", Priority: PriorityLow, Status: StatusPending}

	tests := []struct {
		name   string
		modify func(*Task)
	}{
		{"empty id", func(tk *Task) { tk.ID = "" }},
		{"blank title", func(tk *Task) { tk.Title = "  " }},
		{"bad priority", func(tk *Task) { tk.Priority = "urgent" }},
		{"bad status", func(tk *Task) { tk.Status = "Done" }},
		{"pending with completedAt", func(tk *Task) { tk.CompletedAt = &now }},
		{"completed without completedAt", func(tk *Task) { tk.Status = StatusCompleted }},
	}

	require.NoError(t, valid.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			tt.modify(&task)
			assert.Error(t, task.Validate())
		})
	}
}

func TestValidateTaskTitle(t *testing.T) {
	title, err := ValidateTaskTitle("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", title)

	_, err = ValidateTaskTitle(" \t ")
	assert.True(t, IsValidation(err))

	// длина считается в символах, а не в байтах
	_, err = ValidateTaskTitle(strings.Repeat("ж", TitleMaxLength))
	assert.NoError(t, err)
	_, err = ValidateTaskTitle(strings.Repeat("ж", TitleMaxLength+1))
	assert.True(t, IsValidation(err))

	// пробелы по краям входят в лимит
	_, err = ValidateTaskTitle("  " + strings.Repeat("b", TitleMaxLength))
	assert.True(t, IsValidation(err))
}

func TestValidateTaskDescription(t *testing.T) {
	desc, err := ValidateTaskDescription("")
	require.NoError(t, err)
	assert.Empty(t, desc)

	_, err = ValidateTaskDescription(strings.Repeat("a", DescriptionMaxLength+1))
	assert.True(t, IsValidation(err))

	_, err = ValidateTaskDescription(strings.Repeat("a", DescriptionMaxLength) + "   ")
	assert.True(t, IsValidation(err))

	desc, err = ValidateTaskDescription("  fits  ")
	require.NoError(t, err)
	assert.Equal(t, "fits", desc)
}
