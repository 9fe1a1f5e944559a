package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSelectedProfile(t *testing.T) {
	var out, errb bytes.Buffer
	if code := run(nil, &out, &errb); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errb.String())
	}
	s := out.String()
	for _, want := range []string{"profile proyecto_final on arduino_mega2560", "DHT11", "A11", "low 26 high 29", "measures temperature,humidity", "measures light"} {
		if !strings.Contains(s, want) {
			t.Fatalf("output missing %q:\n%s", want, s)
		}
	}
}

func TestRunList(t *testing.T) {
	var out, errb bytes.Buffer
	if code := run([]string{"-list"}, &out, &errb); code != 0 || strings.TrimSpace(out.String()) != "proyecto_final" {
		t.Fatalf("exit %d, out %q", code, out.String())
	}
}

func TestRunJSON(t *testing.T) {
	var out, errb bytes.Buffer
	if code := run([]string{"-json"}, &out, &errb); code != 0 {
		t.Fatalf("exit %d", code)
	}
	var cfg struct {
		Board   string           `json:"board"`
		Devices []map[string]any `json:"devices"`
	}
	if err := json.Unmarshal(out.Bytes(), &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Board != "arduino_mega2560" || len(cfg.Devices) != 8 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestRunOverridesWithCollision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v2.yaml")
	if err := os.WriteFile(path, []byte("pins:\n  D4: D22\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out, errb bytes.Buffer
	if code := run([]string{"-overrides", path}, &out, &errb); code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(errb.String(), "pin_in_use") || !strings.Contains(errb.String(), "share pin 22") {
		t.Fatalf("stderr = %q", errb.String())
	}
}

func TestRunBadInputs(t *testing.T) {
	var out, errb bytes.Buffer
	if code := run([]string{"-profile", "nope"}, &out, &errb); code != 2 {
		t.Fatalf("unknown profile exit %d", code)
	}
	if code := run([]string{"-overrides", filepath.Join(t.TempDir(), "missing.yaml")}, &out, &errb); code != 2 {
		t.Fatalf("missing file exit %d", code)
	}
	if code := run([]string{"-bogus"}, &out, &errb); code != 2 {
		t.Fatalf("bad flag exit %d", code)
	}
}

func TestRunOverridesUnknownRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("pins:\n  LED_WHITE: D7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out, errb bytes.Buffer
	if code := run([]string{"-overrides", path}, &out, &errb); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errb.String(), "unknown pin role LED_WHITE") {
		t.Fatalf("stderr = %q", errb.String())
	}
}
