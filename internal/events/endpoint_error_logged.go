package events

import "time"

const (
	EndpointErrorLoggedTopic = "salary.endpoint.error_logged.v1"
	EndpointErrorLoggedType  = "endpoint.error_logged"
)

type EndpointErrorLoggedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LogID      int64     `json:"log_id"`
	Endpoint   string    `json:"endpoint"`
	Info       string    `json:"info"`
	ErrorCode  string    `json:"error_code,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
