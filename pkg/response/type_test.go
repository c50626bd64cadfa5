package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"rima-workspace/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	// Marshaling uses Local() time, so only check shape, not the value,
	// to keep the test independent of the runner timezone.
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) < 15 {
		t.Errorf("marshaled string too short: %s", str)
	}
}
