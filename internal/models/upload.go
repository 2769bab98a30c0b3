package models

import "time"

type Upload struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Mimetype     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	Path         string    `json:"-"`
	URL          string    `json:"url"`
	Category     string    `json:"category"`
	IsUsed       bool      `json:"isUsed"`
	CreatedAt    time.Time `json:"createdAt"`
}
