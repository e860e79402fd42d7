package errorlog

import "time"

// EndpointErrorLog is one failed request as kept in log_err_endpoint_access.
// Request holds the JSON request body, Response the JSON-encoded info
// message returned to the client.
type EndpointErrorLog struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Endpoint string    `json:"endpoint"`
	Request  string    `json:"request"`
	Response string    `json:"response"`
	Date     time.Time `json:"date"`
}

func (EndpointErrorLog) TableName() string {
	return "log_err_endpoint_access"
}
