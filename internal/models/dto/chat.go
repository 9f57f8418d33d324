package dto

// ChatContext is the caller-supplied state used to personalize replies.
// It is provided by the client, not fetched server-side.
type ChatContext struct {
	Name     string   `json:"name,omitempty"`
	Missions []string `json:"missions,omitempty"`
	Earnings *float64 `json:"earnings,omitempty"`
}

type ChatRequest struct {
	Message string       `json:"message"`
	Context *ChatContext `json:"context,omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
