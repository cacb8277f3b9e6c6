package log

import (
	"bytes"
	"encoding/json"
	"testing"
)

// Configure is once-per-process, so a single test exercises the whole
// surface in order.
func TestConfigureAndWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})

	tracker := WithComponent("tracker")
	tracker.Info().Str("slug", "two_sum").Msg("solve logged")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["service"] != "grind" {
		t.Errorf("service = %v, want grind", entry["service"])
	}
	if entry["component"] != "tracker" {
		t.Errorf("component = %v, want tracker", entry["component"])
	}
	if entry["slug"] != "two_sum" {
		t.Errorf("slug = %v, want two_sum", entry["slug"])
	}
	if entry["message"] != "solve logged" {
		t.Errorf("message = %v", entry["message"])
	}

	// A second Configure must not rebind the output.
	var other bytes.Buffer
	Configure(Config{Output: &other})
	baseLogger := Base()
	baseLogger.Info().Msg("still here")
	if other.Len() != 0 {
		t.Error("second Configure rebound the logger output")
	}
	if buf.Len() == 0 {
		t.Error("first writer lost after second Configure")
	}
}
