package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the uniform error body for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatusInfo describes one catalog entry for UI rendering.
type StatusInfo struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// TransitionOption is one legal destination from a given status, with the
// business rule that justifies the edge.
type TransitionOption struct {
	To   string `json:"to"`
	Rule string `json:"rule"`
}

// NewParcel is the request body for registering a parcel.
type NewParcel struct {
	OwnerID        uuid.UUID `json:"owner_id"`
	TrackingNumber string    `json:"tracking_number"`
}

// NewShipment is the request body for opening a shipment.
type NewShipment struct {
	OwnerID   uuid.UUID `json:"owner_id"`
	Reference string    `json:"reference"`
}

// Created reports the identifier assigned to a newly registered entity.
type Created struct {
	ID uuid.UUID `json:"id"`
}

// ChangeStatus is the request body for a status change. The actor is carried
// in the X-Actor-Role and X-Actor-Id headers, not the body.
type ChangeStatus struct {
	NewStatus string `json:"new_status"`
	Notes     string `json:"notes,omitempty"`
}

// StatusChanged is the success body for an applied status change.
type StatusChanged struct {
	NewStatus       string   `json:"new_status"`
	Rule            string   `json:"rule"`
	ActionsExecuted []string `json:"actions_executed"`
	ActionsFailed   []string `json:"actions_failed,omitempty"`
	Notifications   []string `json:"notifications"`
}

// StatusRejected is the 422 body for a rejected status change. ValidNext and
// RequiredCurrent are populated depending on the rejection reason so the
// portal can render an actionable message.
type StatusRejected struct {
	Reason          string   `json:"reason"`
	Message         string   `json:"message"`
	ValidNext       []string `json:"valid_next,omitempty"`
	RequiredCurrent []string `json:"required_current,omitempty"`
}

// OverdueEntity describes one entity stuck past its expected dwell time.
type OverdueEntity struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	Label           string    `json:"label"`
	Status          string    `json:"status"`
	StatusChangedAt time.Time `json:"status_changed_at"`
	ExpectedHours   float64   `json:"expected_hours"`
	OverdueHours    float64   `json:"overdue_hours"`
}
