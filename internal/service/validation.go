package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/errors"
)

const (
	dateLayout        = "2006-01-02"
	maxReasonLength   = 500
	maxNotesLength    = 2000
	defaultSlipPrefix = "/storage/slips/"
)

func validateID(field, v string) error {
	if _, err := uuid.Parse(v); err != nil {
		return errors.InvalidInput(field, "must be a valid UUID")
	}
	return nil
}

func validateActor(a Actor) error {
	if a.ID == "" {
		return errors.Unauthorized("missing caller identity")
	}
	return validateID("actor_id", a.ID)
}

func requireAdmin(a Actor) error {
	if err := validateActor(a); err != nil {
		return err
	}
	if !a.IsAdmin() {
		return errors.Forbidden("admin role required")
	}
	return nil
}

// requireText trims s and checks it is non-empty and within max runes.
func requireText(field, s string, max int) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.InvalidInput(field, "is required")
	}
	if utf8.RuneCountInString(s) > max {
		return "", errors.InvalidInput(field, "is too long")
	}
	return s, nil
}

// optionalText trims s and returns nil for an empty value.
func optionalText(field string, s *string, max int) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(v) > max {
		return nil, errors.InvalidInput(field, "is too long")
	}
	return &v, nil
}

func validateSlipURL(prefix, url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", errors.InvalidInput("slip_url", "is required")
	}
	if !strings.HasPrefix(url, prefix) || len(url) == len(prefix) {
		return "", errors.InvalidInput("slip_url", "must reference an uploaded slip under "+prefix)
	}
	if strings.Contains(url, "..") {
		return "", errors.InvalidInput("slip_url", "must not contain path traversal")
	}
	return url, nil
}

// truncateDay returns t's calendar date as UTC midnight, the form DATE
// columns and parsed request dates take.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(field, v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, errors.InvalidInput(field, "invalid date format, expected YYYY-MM-DD")
	}
	return t, nil
}

func strPtr(s string) *string { return &s }

func derefString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
