package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DefaultPushTime and friends seed the singleton push config on first read.
const (
	DefaultPushTime = "09:00"
	DefaultTimezone = "Asia/Shanghai"
)

var pushTimeRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// PushConfig is the singleton schedule for automated brief generation.
type PushConfig struct {
	ID        string    `json:"id"`
	PushTime  string    `json:"pushTime"`
	Timezone  string    `json:"timezone"`
	IsEnabled bool      `json:"isEnabled"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultPushConfig returns the config used before an admin ever saved one.
func DefaultPushConfig(now time.Time) PushConfig {
	return PushConfig{
		ID:        "default",
		PushTime:  DefaultPushTime,
		Timezone:  DefaultTimezone,
		IsEnabled: true,
		UpdatedAt: now,
	}
}

// ValidatePushTime checks the HH:mm 24-hour clock format.
func ValidatePushTime(s string) error {
	if !pushTimeRe.MatchString(s) {
		return fmt.Errorf("push time %q is not in HH:mm format", s)
	}
	return nil
}

// ValidateTimezone checks the name against the runtime's IANA zone database.
func ValidateTimezone(name string) error {
	if name == "" || name == "Local" {
		return fmt.Errorf("timezone must be a named IANA zone")
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown timezone %q", name)
	}
	return nil
}

// Location resolves the configured zone, falling back to UTC if the
// stored value no longer resolves.
func (c PushConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
