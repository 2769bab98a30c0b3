package models

import "time"

type ConfigType string

const (
	ConfigText    ConfigType = "TEXT"
	ConfigNumber  ConfigType = "NUMBER"
	ConfigBoolean ConfigType = "BOOLEAN"
	ConfigJSON    ConfigType = "JSON"
	ConfigColor   ConfigType = "COLOR"
	ConfigImage   ConfigType = "IMAGE"
	ConfigURL     ConfigType = "URL"
)

var ConfigTypes = []ConfigType{
	ConfigText,
	ConfigNumber,
	ConfigBoolean,
	ConfigJSON,
	ConfigColor,
	ConfigImage,
	ConfigURL,
}

func (t ConfigType) Valid() bool {
	for _, known := range ConfigTypes {
		if t == known {
			return true
		}
	}
	return false
}

type SiteConfig struct {
	Key         string     `json:"key"`
	Value       string     `json:"value"`
	Type        ConfigType `json:"type"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	IsPublic    bool       `json:"isPublic"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
