package amqp

import (
	"encoding/json"
	"time"
)

// SummaryRequestMessage asks the worker to build and email a monthly summary.
// It carries only the durable request's ID and period; the worker re-reads
// the request row and the expense snapshot from the store.
type SummaryRequestMessage struct {
	RequestID int64     `json:"request_id"`
	Period    string    `json:"period"` // YYYY-MM
	Timestamp time.Time `json:"timestamp"`
}

// NewSummaryRequestMessage creates a message for a recorded summary request.
func NewSummaryRequestMessage(requestID int64, period string) *SummaryRequestMessage {
	return &SummaryRequestMessage{
		RequestID: requestID,
		Period:    period,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *SummaryRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SummaryRequestMessageFromJSON creates a message from JSON bytes
func SummaryRequestMessageFromJSON(data []byte) (*SummaryRequestMessage, error) {
	var msg SummaryRequestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
