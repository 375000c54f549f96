package event

import "time"

type CategoryChangedEvent struct {
	Action     Action    `json:"action"`
	CategoryID string    `json:"category_id"`
	At         time.Time `json:"at"`
}

func (e *CategoryChangedEvent) EventType() string {
	return "CategoryChanged"
}

func (e *CategoryChangedEvent) EventValue() ([]byte, error) {
	return DefaultEventValue(e)
}
