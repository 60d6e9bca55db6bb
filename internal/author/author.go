package author

import (
	"strconv"
	"time"
)

// Author is a stored author record.
type Author struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	FamilyName  string     `json:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
}

// Name is the display name "family, first". It is empty unless both parts are set.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan returns the birth and death years. A missing date yields an empty year.
func (a Author) Lifespan() (birth, death string) {
	return year(a.DateOfBirth), year(a.DateOfDeath)
}

func year(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return strconv.Itoa(t.UTC().Year())
}
