package dto

import "time"

// LogEntryResponse forma de salida de una entrada de bitácora.
type LogEntryResponse struct {
	User   string    `json:"user"`
	Action string    `json:"action"`
	Time   time.Time `json:"time"`
}
