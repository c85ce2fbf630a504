package models

// Engagement event types reported by the front end
const (
	EventChooserOpened = "chooser_opened"
	EventWebChosen     = "web_chosen"
	EventAppChosen     = "app_chosen"
	EventAppFallback   = "app_fallback"
	EventEmailOpened   = "email_opened"
)

// EngagementEvent is a single interaction with a mentor's contact affordances
type EngagementEvent struct {
	Type      string `json:"type" binding:"required,oneof=chooser_opened web_chosen app_chosen app_fallback email_opened"`
	MentorID  int    `json:"mentorId" binding:"required,min=1"`
	Timestamp string `json:"timestamp" binding:"omitempty,max=64"`
}

// EngagementEventBatch is the payload of POST /engagement/events
type EngagementEventBatch struct {
	Events []EngagementEvent `json:"events" binding:"required,min=1,max=50,dive"`
}
