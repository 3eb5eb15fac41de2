package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfigCmdOmitsSecrets(t *testing.T) {
	t.Setenv("API_USER", "svc-user")
	t.Setenv("API_PASS", "hunter2")

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"config"})
	if err := root.Execute(); err != nil {
		t.Fatalf("config command error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "hunter2") || strings.Contains(out, "svc-user") {
		t.Fatalf("config dump leaked credentials:\n%s", out)
	}
	if !strings.Contains(out, "DayCount") {
		t.Fatalf("config dump missing expected settings:\n%s", out)
	}
}
