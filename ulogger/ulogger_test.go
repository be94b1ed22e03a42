package ulogger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/josephnicholas/VerusCoin/ulogger"
)

func captureStdout(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()

	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	r.Close()

	return buf.String()
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level           string
		expectedOutputs map[string]bool
	}{
		{
			level: "DEBUG",
			expectedOutputs: map[string]bool{
				"DEBUG": true,
				"INFO":  true,
				"WARN":  true,
				"ERROR": true,
			},
		},
		{
			level: "INFO",
			expectedOutputs: map[string]bool{
				"DEBUG": false,
				"INFO":  true,
				"WARN":  true,
				"ERROR": true,
			},
		},
		{
			level: "WARN",
			expectedOutputs: map[string]bool{
				"DEBUG": false,
				"INFO":  false,
				"WARN":  true,
				"ERROR": true,
			},
		},
		{
			level: "ERROR",
			expectedOutputs: map[string]bool{
				"DEBUG": false,
				"INFO":  false,
				"WARN":  false,
				"ERROR": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			output := captureStdout(func() {
				logger := ulogger.New("test-service", ulogger.WithLevel(tt.level))

				logger.Debugf("DEBUG message")
				logger.Infof("INFO message")
				logger.Warnf("WARN message")
				logger.Errorf("ERROR message")
			})

			for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
				if got := strings.Contains(output, level+" message"); got != tt.expectedOutputs[level] {
					t.Errorf("expected %s output: %v, got: %v", level, tt.expectedOutputs[level], got)
				}
			}
		})
	}
}

func TestNewChildLogger(t *testing.T) {
	_ = captureStdout(func() {
		logger := ulogger.New("parent", ulogger.WithLevel("ERROR"))

		child := logger.New("child")
		if child == nil {
			t.Fatal("expected child logger")
		}

		if child.LogLevel() != logger.LogLevel() {
			t.Errorf("expected child to inherit level %d, got %d", logger.LogLevel(), child.LogLevel())
		}
	})
}

func TestDuplicateOverridesLevel(t *testing.T) {
	_ = captureStdout(func() {
		logger := ulogger.New("test-service", ulogger.WithLevel("INFO"))

		dup := logger.Duplicate(ulogger.WithLevel("ERROR"))
		if dup == nil {
			t.Fatal("expected duplicate logger")
		}

		if dup.LogLevel() == logger.LogLevel() {
			t.Error("expected duplicate to have a different level than the original")
		}
	})
}
