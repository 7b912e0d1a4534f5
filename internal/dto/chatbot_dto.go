package dto

// ChatRequest is the /chat request body. SessionId falls back to "default"
// when omitted, matching the public API contract.
type ChatRequest struct {
	Question  string `json:"question" validate:"max=8000"`
	SessionId string `json:"session_id" validate:"max=128"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

type PingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ChatTurnRecordedMessage is the payload published on the internal bus after
// a successful turn.
type ChatTurnRecordedMessage struct {
	SessionId  string `json:"session_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	DurationMs int64  `json:"duration_ms"`
}
