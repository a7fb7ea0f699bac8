package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/job-board/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventCompanyRegistered EventType = "company_registered"
	EventJobPosted         EventType = "job_posted"
)

// Actor identifies who caused an event.
type Actor struct {
	ID   uuid.UUID   `json:"id"`
	Role domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps a new event with an id and the current time.
func NewEvent(eventType EventType, actor Actor, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// AccountRegisteredPayload payload.
type AccountRegisteredPayload struct {
	Login string `json:"login"`
	Email string `json:"email"`
}

// JobPostedPayload payload.
type JobPostedPayload struct {
	JobID        int64               `json:"job_id"`
	ContractType domain.ContractType `json:"contract_type"`
	Mode         domain.JobMode      `json:"mode"`
	Hours        domain.JobHours     `json:"hours"`
	Tags         []string            `json:"tags"`
}
