package models

import "time"

// Mission is a unit of audit/survey work requested by an account.
type Mission struct {
	ID            int64     `json:"id"`
	AccountID     int64     `json:"account_id"`
	MissionType   string    `json:"mission_type"`
	Details       string    `json:"details"`
	RequestedDate string    `json:"requested_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
