package factotum

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvents_NewEvent(t *testing.T) {
	err := errors.New("Test error")

	tests := []struct {
		level    Level
		expected Level
	}{
		{LevelDefault, DefaultLevel},
		{LevelDebug, LevelDebug},
		{LevelInfo, LevelInfo},
		{LevelWarning, LevelWarning},
		{LevelError, LevelError},
		{LevelCritical, LevelCritical},
	}

	for _, tt := range tests {
		event := NewEvent(tt.level, err, "Pia", 3*time.Millisecond)
		assert.Equal(t, tt.expected, event.Level, "Expected level to match")
		assert.Equal(t, "Pia", event.Worker, "Expected worker to match")
		assert.Equal(t, err, event.Err, "Expected error to match")
		assert.Equal(t, 3*time.Millisecond, event.Took, "Expected duration to match")
		assert.NotZero(t, event.ID, "Expected a fresh invocation ID")
	}
}

func TestEvents_Error(t *testing.T) {
	err := errors.New("Test error")
	event := NewEvent(LevelError, err, "Pia", 0)

	expected := fmt.Sprintf("[%s] %s: %v", event.Level, event.Worker, err)
	assert.Equal(t, expected, event.Error(), "Expected error string to match")

	eventNoError := NewEvent(LevelInfo, nil, "Pia", 0)
	expectedNoError := fmt.Sprintf("[%s] %s", eventNoError.Level, eventNoError.Worker)
	assert.Equal(t, expectedNoError, eventNoError.Error(), "Expected error string without an error")

	var nilEvent *Event
	assert.Equal(t, "<nil>", nilEvent.Error(), "Expected the nil event string form")
}

func TestEvents_Unwrap(t *testing.T) {
	err := errors.New("Test error")
	event := NewEvent(LevelError, err, "Pia", 0)

	assert.Equal(t, err, event.Unwrap(), "Expected the underlying error back")
	assert.ErrorIs(t, event, err, "Expected errors.Is to see through the event")
}

func TestEvents_Levels(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarning, "WARNING"},
		{LevelError, "ERROR"},
		{LevelCritical, "CRITICAL"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.String(), "Expected level string to match")
	}
}
