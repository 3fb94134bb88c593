package recap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidInput = errors.New("invalid input")

// ParseRequest checks a date (YYYY-MM-DD) and team id before anything is fetched.
func ParseRequest(date, teamID string) (string, int, error) {
	date = strings.TrimSpace(date)
	teamID = strings.TrimSpace(teamID)

	if date == "" || teamID == "" {
		return "", 0, fmt.Errorf("%w: date and team_id are required", ErrInvalidInput)
	}

	if err := ValidateDate(date); err != nil {
		return "", 0, err
	}

	id, err := strconv.Atoi(teamID)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("%w: team_id must be a positive integer", ErrInvalidInput)
	}

	return date, id, nil
}

func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: date must use YYYY-MM-DD format", ErrInvalidInput)
	}
	return nil
}
