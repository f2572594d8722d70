package logger

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONEntry(t *testing.T) {
	var buf strings.Builder
	log := New(Options{Output: &buf, Level: LevelInfo, Format: FormatJSON})

	log.Info("grade recorded", StudentID("s1"), GradeValue(4.5), Period(2))

	var entry struct {
		Level   string         `json:"level"`
		Message string         `json:"message"`
		Fields  map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))

	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "grade recorded", entry.Message)
	assert.Equal(t, "s1", entry.Fields["student_id"])
	assert.Equal(t, 4.5, entry.Fields["grade_value"])
	assert.Equal(t, float64(2), entry.Fields["period"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf strings.Builder
	log := New(Options{Output: &buf, Level: LevelWarn, Format: FormatText})

	log.Debug("dropped")
	log.Info("dropped too")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestLogger_WithCarriesFields(t *testing.T) {
	var buf strings.Builder
	base := New(Options{Output: &buf, Level: LevelInfo, Format: FormatText})
	log := base.With(Component("http")).WithRequestID("req-42")

	log.Info("http request", GroupID("g1"))

	line := buf.String()
	assert.Contains(t, line, "component=http")
	assert.Contains(t, line, "request_id=req-42")
	assert.Contains(t, line, "group_id=g1")

	// The parent logger is unchanged.
	buf.Reset()
	base.Info("plain")
	assert.NotContains(t, buf.String(), "component")
}

func TestLogger_ErrField(t *testing.T) {
	var buf strings.Builder
	log := New(Options{Output: &buf, Level: LevelInfo, Format: FormatText})

	log.Error("request failed", Err(errors.New("boom")))
	assert.Contains(t, buf.String(), "error=boom")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARNING "))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}
