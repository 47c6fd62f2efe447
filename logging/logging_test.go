package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Output: &buf})

	log.Debug(context.Background(), "hidden")
	log.With(String("path", "userdata0000")).Info(context.Background(), "validated", Hex("coords", 162), Int("size", 4096))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line leaked at info level: %q", out)
	}
	for _, want := range []string{"validated", "path=userdata0000", "coords=0xA2", "size=4096"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf})
	log.Error(context.Background(), "teleport failed", Err(errors.New("boom")))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("not json: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "teleport failed" || rec["level"] != "ERROR" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"":        "INFO",
		"chatty":  "INFO",
	}
	for in, want := range tests {
		if got := parseLevel(in).Level().String(); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	log, closer, err := OpenFile("", Config{})
	if err != nil {
		t.Fatal(err)
	}
	log.Info(context.Background(), "dropped")
	closer.Close()

	path := filepath.Join(t.TempDir(), "lantern.log")
	log, closer, err = OpenFile(path, Config{Level: "info"})
	if err != nil {
		t.Fatal(err)
	}
	log.Info(context.Background(), "written")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written") {
		t.Errorf("log file contents %q", data)
	}
}
