package domain

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    TaskStatus
		to      TaskStatus
		allowed bool
	}{
		{"assigned to completed", TaskAssigned, TaskCompleted, true},
		{"assigned to verified skips completion", TaskAssigned, TaskVerified, false},
		{"assigned to rejected skips completion", TaskAssigned, TaskRejected, false},
		{"completed to verified", TaskCompleted, TaskVerified, true},
		{"completed to rejected", TaskCompleted, TaskRejected, true},
		{"completed reopened", TaskCompleted, TaskAssigned, true},
		{"verified reopened", TaskVerified, TaskAssigned, true},
		{"rejected reopened", TaskRejected, TaskAssigned, true},
		{"verified to completed", TaskVerified, TaskCompleted, false},
		{"rejected to verified", TaskRejected, TaskVerified, false},
		{"self transition", TaskAssigned, TaskAssigned, false},
		{"unknown target", TaskCompleted, TaskStatus("In Progress"), false},
		{"unknown source", TaskStatus("At Location"), TaskCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.allowed {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestKnownTaskStatus(t *testing.T) {
	for _, s := range []TaskStatus{TaskAssigned, TaskCompleted, TaskVerified, TaskRejected} {
		if !KnownTaskStatus(s) {
			t.Errorf("expected %q to be a known status", s)
		}
	}
	for _, s := range []TaskStatus{"", "In Progress", "At Location", "Photos Uploaded", "assigned"} {
		if KnownTaskStatus(s) {
			t.Errorf("expected %q to be unknown", s)
		}
	}
}

func TestCoordinateValid(t *testing.T) {
	valid := []Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 26.7428378, Longitude: 83.3797713},
		{Latitude: -90, Longitude: -180},
		{Latitude: 90, Longitude: 180},
	}
	for _, c := range valid {
		if !c.Valid() {
			t.Errorf("expected %+v to be valid", c)
		}
	}

	invalid := []Coordinate{
		{Latitude: 90.0001, Longitude: 0},
		{Latitude: -91, Longitude: 0},
		{Latitude: 0, Longitude: 180.5},
		{Latitude: 0, Longitude: -181},
	}
	for _, c := range invalid {
		if c.Valid() {
			t.Errorf("expected %+v to be invalid", c)
		}
	}
}
