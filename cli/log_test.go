package cli

import (
	"testing"

	"github.com/ardnew/genex/log"
)

func restoreLogger(t *testing.T) {
	t.Helper()

	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })
}

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name string
		args []string
		init logConfig
		want logConfig
	}{
		{
			name: "separate_operand",
			args: []string{"--log-level", "debug", "parse"},
			init: logConfig{Level: "info", Format: "text"},
			want: logConfig{Level: "debug", Format: "text"},
		},
		{
			name: "assigned_operand",
			args: []string{"parse", "--log-format=json"},
			init: logConfig{Level: "info", Format: "text"},
			want: logConfig{Level: "info", Format: "json"},
		},
		{
			name: "unknown_level_ignored",
			args: []string{"--log-level=loud"},
			init: logConfig{Level: "info"},
			want: logConfig{Level: "info"},
		},
		{
			name: "negated_bool",
			args: []string{"--no-log-pretty"},
			init: logConfig{Pretty: true},
			want: logConfig{Pretty: false},
		},
		{
			name: "assigned_bool",
			args: []string{"--log-caller=false", "--log-pretty"},
			init: logConfig{Caller: true},
			want: logConfig{Caller: false, Pretty: true},
		},
		{
			name: "after_terminator",
			args: []string{"--", "--log-level=warn"},
			init: logConfig{Level: "info"},
			want: logConfig{Level: "info"},
		},
		{
			name: "operand_looks_like_flag",
			args: []string{"--log-level", "--log-caller"},
			init: logConfig{Level: "info"},
			want: logConfig{Level: "info", Caller: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreLogger(t)

			got := tt.init
			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestLogConfig_ScanConfiguresDefault(t *testing.T) {
	restoreLogger(t)

	var f logConfig

	f.scan([]string{"--log-level=warn", "--log-format=json"})

	if got := log.Default().Level(); got != log.LevelWarn {
		t.Errorf("default level = %v, want %v", got, log.LevelWarn)
	}

	if got := log.Default().Format(); got != log.FormatJSON {
		t.Errorf("default format = %v, want %v", got, log.FormatJSON)
	}
}

func TestBoolFlag(t *testing.T) {
	tests := []struct {
		value    string
		assigned bool
		negated  bool
		wantOn   bool
		wantOK   bool
	}{
		{"", false, false, true, true},
		{"", false, true, false, true},
		{"false", true, false, false, true},
		{"false", true, true, true, true},
		{"maybe", true, false, false, false},
	}

	for _, tt := range tests {
		on, ok := boolFlag(tt.value, tt.assigned, tt.negated)
		if on != tt.wantOn || ok != tt.wantOK {
			t.Errorf("boolFlag(%q, %v, %v) = (%v, %v), want (%v, %v)",
				tt.value, tt.assigned, tt.negated, on, ok, tt.wantOn, tt.wantOK)
		}
	}
}
