package models

import "time"

type Category string

const (
	CategoryWorship    Category = "WORSHIP"
	CategoryConference Category = "CONFERENCE"
	CategoryRetreat    Category = "RETREAT"
	CategoryYouth      Category = "YOUTH"
	CategoryChildren   Category = "CHILDREN"
	CategoryCommunity  Category = "COMMUNITY"
)

var Categories = []Category{
	CategoryWorship,
	CategoryConference,
	CategoryRetreat,
	CategoryYouth,
	CategoryChildren,
	CategoryCommunity,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Event struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Slug                 string    `json:"slug"`
	Description          string    `json:"description"`
	Date                 time.Time `json:"date"`
	Location             string    `json:"location"`
	Category             Category  `json:"category"`
	ImageURL             string    `json:"imageUrl,omitempty"`
	Capacity             int       `json:"capacity"`
	CurrentRegistrations int       `json:"currentRegistrations"`
	IsActive             bool      `json:"isActive"`
	IsFeatured           bool      `json:"isFeatured"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// EventFilter narrows event listings. Nil fields are not applied.
type EventFilter struct {
	Active   *bool
	Featured *bool
	Category Category
}
