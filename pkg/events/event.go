package events

// Event is the envelope contract for everything published to the external bus
type Event interface {
	EventType() string
	Payload() interface{}
}

// ChatTurnRecorded is emitted after a question/answer pair lands in session
// memory; external consumers (analytics, QA review) subscribe to it.
type ChatTurnRecorded struct {
	SessionId  string `json:"session_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	DurationMs int64  `json:"duration_ms"`
}

func (e ChatTurnRecorded) EventType() string {
	return "chat.turn_recorded"
}

func (e ChatTurnRecorded) Payload() interface{} {
	return e
}
