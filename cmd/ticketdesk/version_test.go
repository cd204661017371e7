package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintVersion(t *testing.T) {
	tests := []struct {
		name          string
		version       string
		build         string
		buildTime     string
		expectContain []string
		expectAbsent  []string
	}{
		{
			name:          "dev build",
			version:       "dev",
			build:         "unknown",
			expectContain: []string{"ticketdesk version dev", "Go version:", "OS/Arch:"},
			expectAbsent:  []string{"(build:"},
		},
		{
			name:          "release build",
			version:       "0.3.0",
			build:         "abc1234",
			buildTime:     "2025-11-22_12:00:00",
			expectContain: []string{"ticketdesk version 0.3.0", "(build: abc1234)", "[2025-11-22_12:00:00]"},
			expectAbsent:  []string{"Commit:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origBuild, origTime := Version, Build, BuildTime
			defer func() { Version, Build, BuildTime = origVersion, origBuild, origTime }()
			Version, Build, BuildTime = tt.version, tt.build, tt.buildTime

			var buf bytes.Buffer
			printVersion(&buf)
			out := buf.String()
			for _, want := range tt.expectContain {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, absent := range tt.expectAbsent {
				if strings.Contains(out, absent) {
					t.Errorf("output should not contain %q:\n%s", absent, out)
				}
			}
		})
	}
}

func TestVersionVariablesDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default")
	}
	if Build == "" {
		t.Error("Build should have a default")
	}
}
