package log

import (
	"errors"
	"slices"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"TRACE", LevelTrace, false},
		{"debug", LevelDebug, false},
		{" Info ", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"warn+2", LevelWarn + 2, false},
		{"loud", DefaultLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}

			if err != nil && !errors.Is(err, ErrUnknownLevel) {
				t.Errorf("error %v is not ErrUnknownLevel", err)
			}

			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelNames(t *testing.T) {
	want := []string{"trace", "debug", "info", "warn", "error"}

	if got := LevelNames(); !slices.Equal(got, want) {
		t.Errorf("LevelNames() = %v, want %v", got, want)
	}

	for _, name := range want {
		l, err := ParseLevel(name)
		if err != nil || l.String() != name {
			t.Errorf("round trip of %q = %v, %v", name, l, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range FormatNames() {
		f, err := ParseFormat(name)
		if err != nil || f.String() != name {
			t.Errorf("ParseFormat(%q) = %v, %v", name, f, err)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
}
