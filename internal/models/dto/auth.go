package dto

import "github.com/forfeolab/forfeo-be/internal/models"

type LoginRequest struct {
	LoginKey   string `json:"login_key"`
	Credential string `json:"credential"`
}

type LoginResponse struct {
	Token   string         `json:"token"`
	Account models.Account `json:"account"`
}

type MissionRequest struct {
	MissionType   string `json:"mission_type"`
	Details       string `json:"details"`
	RequestedDate string `json:"requested_date"`
}
