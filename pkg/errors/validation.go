package errors

import (
	"strings"
	"unicode"
)

// Limits for user-supplied habit fields.
const (
	MaxHabitIDLength = 128
	MaxTitleLength   = 256
	maxPathLength    = 500
)

// ValidateHabitID validates a habit identifier.
//
// The rules are conservative because ids are echoed into terminal output,
// DOT graphs and cache keys:
//   - No empty ids
//   - No control characters
//   - No surrounding whitespace
//   - Maximum length of 128 characters
func ValidateHabitID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidHabit, "habit id cannot be empty")
	}

	if len(id) > MaxHabitIDLength {
		return New(ErrCodeInvalidHabit, "habit id too long (max %d characters)", MaxHabitIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidHabit, "habit id contains invalid control characters")
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidHabit, "habit id %q has leading or trailing whitespace", id)
	}

	return nil
}

// ValidateTitle validates a habit title. Titles may be empty (the id is
// shown instead) but must not contain control characters.
func ValidateTitle(title string) error {
	if len(title) > MaxTitleLength {
		return New(ErrCodeInvalidHabit, "habit title too long (max %d characters)", MaxTitleLength)
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidHabit, "habit title contains invalid control characters")
		}
	}
	return nil
}

// ValidateFrequency validates a recurrence rule supplied on the command line.
//
// Habit files are not validated with this function: the scheduling core
// treats unknown modes as never due, so stored data may carry them.
func ValidateFrequency(mode string, days []int) error {
	switch strings.ToLower(mode) {
	case "daily":
		return nil
	case "weekly", "custom":
		for _, d := range days {
			if d < 0 || d > 6 {
				return New(ErrCodeInvalidFrequency, "weekday %d out of range (0=Sunday..6=Saturday)", d)
			}
		}
		return nil
	case "":
		return New(ErrCodeInvalidFrequency, "frequency mode cannot be empty")
	default:
		return New(ErrCodeInvalidFrequency, "unknown frequency mode %q (want daily, weekly or custom)", mode)
	}
}

// ValidatePath validates a habit or config file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
