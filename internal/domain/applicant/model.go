package applicant

import (
	"fmt"
	"strings"
	"time"
)

// Applicant is a join-form submission stored for the club officers.
type Applicant struct {
	ID            int64
	FirstName     string
	LastName      string
	Email         string
	DiscordHandle string
	PhoneNumber   string
	IsOver18      bool
	CreatedAt     time.Time
}

func (a Applicant) Validate() error {
	required := []struct {
		field string
		value string
		max   int
	}{
		{"first name", a.FirstName, 100},
		{"last name", a.LastName, 100},
		{"email", a.Email, 255},
		{"discord handle", a.DiscordHandle, 100},
		{"phone number", a.PhoneNumber, 20},
	}
	for _, item := range required {
		if strings.TrimSpace(item.value) == "" {
			return fmt.Errorf("%s is required", item.field)
		}
		if len(item.value) > item.max {
			return fmt.Errorf("%s must be at most %d characters", item.field, item.max)
		}
	}

	return nil
}
