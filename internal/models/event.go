package models

import "time"

// Event categories.
const (
	EventCategoryImage = "IMAGE"
	EventCategoryUser  = "USER"
)

// Event types.
const (
	EventImageUploaded   = "IMAGE_UPLOADED"
	EventImageDeleted    = "IMAGE_DELETED"
	EventUserRegistered  = "USER_REGISTERED"
	EventUserUpdated     = "USER_UPDATED"
	EventUserDeactivated = "USER_DEACTIVATED"
)

// Event is the JSON value of every published message. The message key is Username.
type Event struct {
	Username      string    `json:"username"`
	EventType     string    `json:"eventType"`
	EventCategory string    `json:"eventCategory"`
	ImageName     string    `json:"imageName,omitempty"`
	Backend       Backend   `json:"backend,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Source        string    `json:"source"`
	Version       string    `json:"version"`
}
