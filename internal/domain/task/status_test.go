package task_test

import (
	"testing"

	"github.com/minne100/ViduUI/internal/domain/task"
)

func TestStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		status   task.Status
		expected bool
	}{
		{"created is not terminal", task.StatusCreated, false},
		{"queueing is not terminal", task.StatusQueueing, false},
		{"processing is not terminal", task.StatusProcessing, false},
		{"success is terminal", task.StatusSuccess, true},
		{"failed is terminal", task.StatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsTerminal(); got != tt.expected {
				t.Errorf("Status.IsTerminal() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStatus_IsActive(t *testing.T) {
	tests := []struct {
		name     string
		status   task.Status
		expected bool
	}{
		{"created is active", task.StatusCreated, true},
		{"queueing is active", task.StatusQueueing, true},
		{"processing is active", task.StatusProcessing, true},
		{"success is not active", task.StatusSuccess, false},
		{"failed is not active", task.StatusFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsActive(); got != tt.expected {
				t.Errorf("Status.IsActive() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		status   task.Status
		expected bool
	}{
		{"created is valid", task.StatusCreated, true},
		{"queueing is valid", task.StatusQueueing, true},
		{"processing is valid", task.StatusProcessing, true},
		{"success is valid", task.StatusSuccess, true},
		{"failed is valid", task.StatusFailed, true},
		{"empty is not valid", task.Status(""), false},
		{"unknown is not valid", task.Status("cancelled"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.expected {
				t.Errorf("Status.IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTask_URLHelpers(t *testing.T) {
	withCreations := &task.Task{
		ID:    "task-1",
		State: task.StatusSuccess,
		Creations: []task.Creation{
			{ID: "c-1", URL: "https://cdn.example.com/c-1.mp4", CoverURL: "https://cdn.example.com/c-1.jpg"},
			{ID: "c-2", URL: "https://cdn.example.com/c-2.mp4"},
		},
	}
	if got := withCreations.VideoURL(); got != "https://cdn.example.com/c-1.mp4" {
		t.Errorf("Task.VideoURL() = %q, want first creation URL", got)
	}
	if got := withCreations.CoverURL(); got != "https://cdn.example.com/c-1.jpg" {
		t.Errorf("Task.CoverURL() = %q, want first creation cover URL", got)
	}

	empty := &task.Task{ID: "task-2", State: task.StatusProcessing}
	if got := empty.VideoURL(); got != "" {
		t.Errorf("Task.VideoURL() = %q, want empty for task without creations", got)
	}
	if got := empty.CoverURL(); got != "" {
		t.Errorf("Task.CoverURL() = %q, want empty for task without creations", got)
	}
}

func TestTask_TerminalGuards(t *testing.T) {
	tests := []struct {
		name      string
		state     task.Status
		succeeded bool
		failed    bool
	}{
		{"processing task", task.StatusProcessing, false, false},
		{"successful task", task.StatusSuccess, true, false},
		{"failed task", task.StatusFailed, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := &task.Task{ID: "t", State: tt.state}
			if got := tk.Succeeded(); got != tt.succeeded {
				t.Errorf("Task.Succeeded() = %v, want %v", got, tt.succeeded)
			}
			if got := tk.Failed(); got != tt.failed {
				t.Errorf("Task.Failed() = %v, want %v", got, tt.failed)
			}
		})
	}
}
