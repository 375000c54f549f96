package event

import "time"

type ProductChangedEvent struct {
	Action    Action    `json:"action"`
	ProductID string    `json:"product_id"`
	Slug      string    `json:"slug,omitempty"`
	At        time.Time `json:"at"`
}

func (e *ProductChangedEvent) EventType() string {
	return "ProductChanged"
}

func (e *ProductChangedEvent) EventValue() ([]byte, error) {
	return DefaultEventValue(e)
}
