package models

import "time"

type Registration struct {
	ID                  string    `json:"id"`
	EventID             string    `json:"eventId"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Organization        string    `json:"organization,omitempty"`
	DietaryRestrictions string    `json:"dietaryRestrictions,omitempty"`
	AccessibilityNeeds  string    `json:"accessibilityNeeds,omitempty"`
	Status              Status    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// RegistrationFilter narrows registration listings and exports.
// Zero values are not applied; From and To bound CreatedAt inclusively.
type RegistrationFilter struct {
	EventID string
	Status  Status
	From    time.Time
	To      time.Time
}
