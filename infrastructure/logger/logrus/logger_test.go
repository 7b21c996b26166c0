package logrus

import (
	"bytes"
	"strings"
	"testing"

	sirupsen "github.com/sirupsen/logrus"
)

func TestNewLogrusLogger(t *testing.T) {
	logger := NewLogrusLogger("debug")

	if logger == nil {
		t.Fatal("NewLogrusLogger returned nil")
	}
	if logger.log.GetLevel() != sirupsen.DebugLevel {
		t.Errorf("level = %v, want debug", logger.log.GetLevel())
	}
}

func TestNewLogrusLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := NewLogrusLogger("loud")

	if logger.log.GetLevel() != sirupsen.InfoLevel {
		t.Errorf("level = %v, want info", logger.log.GetLevel())
	}
}

func TestLogrusLogger_IncludesFields(t *testing.T) {
	logger := NewLogrusLogger("info")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Info("article saved", map[string]interface{}{
		"article_id": "abc-123",
	})

	out := buf.String()
	if !strings.Contains(out, "article saved") {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, "abc-123") {
		t.Errorf("output missing field value: %s", out)
	}
}

func TestLogrusLogger_DebugSuppressedAtInfo(t *testing.T) {
	logger := NewLogrusLogger("info")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Debug("noisy detail", nil)

	if buf.Len() != 0 {
		t.Errorf("debug output should be suppressed at info level, got: %s", buf.String())
	}
}

func TestLogrusLogger_NilFields(t *testing.T) {
	logger := NewLogrusLogger("info")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Warn("no fields", nil)

	if !strings.Contains(buf.String(), "no fields") {
		t.Errorf("output missing message: %s", buf.String())
	}
}
