package amqp

import (
	"testing"
	"time"
)

func TestSummaryRequestMessageRoundTrip(t *testing.T) {
	msg := NewSummaryRequestMessage(42, "2024-03")

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := SummaryRequestMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.RequestID != 42 || got.Period != "2024-03" {
		t.Fatalf("unexpected message %+v", got)
	}
	if got.Timestamp.IsZero() || time.Since(got.Timestamp) > time.Minute {
		t.Fatalf("timestamp not preserved: %v", got.Timestamp)
	}
}

func TestSummaryRequestMessageFromJSONInvalid(t *testing.T) {
	if _, err := SummaryRequestMessageFromJSON([]byte("not json")); err == nil {
		t.Fatalf("expected error for malformed body")
	}
}
