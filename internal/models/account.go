package models

import "time"

// Account captures a business's stored identity and plan/score state.
// The credential hash never leaves the server.
type Account struct {
	ID                int64     `json:"id"`
	LoginKey          string    `json:"login_key"`
	CredentialHash    string    `json:"-"`
	Name              string    `json:"name"`
	Plan              string    `json:"plan"`
	Score             float64   `json:"score"`
	AvailableMissions int       `json:"available_missions"`
	Initials          string    `json:"initials"`
	CreatedAt         time.Time `json:"created_at"`
}
