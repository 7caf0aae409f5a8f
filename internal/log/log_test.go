package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	cases := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"empty keeps info", "", false},
		{"debug", "debug", false},
		{"mixed case", " Warn ", false},
		{"error", "error", false},
		{"unknown rejected", "verbose", true},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := SetLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetLevel(%q) error = %v, wantErr %t", tt.level, err, tt.wantErr)
			}
		})
	}

	if err := SetLevel("info"); err != nil {
		t.Fatalf("restore info level: %v", err)
	}
}

func TestReplaceLoggerRoutesOutput(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	t.Cleanup(func() { ReplaceLogger(original) })

	ReplaceLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Info(context.Background(), "hello", "key", "value")

	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "key=value") {
		t.Fatalf("expected structured entry, got %q", buf.String())
	}
}

func TestReplaceLoggerRejectsNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil logger")
		}
	}()
	ReplaceLogger(nil)
}

func TestNilContextIsTolerated(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	t.Cleanup(func() { ReplaceLogger(original) })

	ReplaceLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Error(nil, "boom") //nolint:staticcheck // nil context is part of the contract

	if !strings.Contains(buf.String(), "boom") {
		t.Fatalf("expected entry despite nil context, got %q", buf.String())
	}
}
