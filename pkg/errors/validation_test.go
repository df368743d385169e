package errors

import (
	"strings"
	"testing"
)

func TestValidateHabitID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "stretch", false},
		{"valid uuid", "3f1c2b0e-8d1a-4a8e-9c55-0f1b7f6f7e21", false},
		{"valid with spaces inside", "morning run", false},
		{"valid numeric", "42", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", MaxHabitIDLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"leading space", " foo", true},
		{"trailing space", "foo ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHabitID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHabitID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidHabit) {
				t.Errorf("ValidateHabitID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidHabit)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Drink water", false},
		{"empty", "", false},
		{"unicode", "Méditer 🧘", false},

		{"too long", strings.Repeat("t", MaxTitleLength+1), true},
		{"control char", "bad\x07title", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFrequency(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		days    []int
		wantErr bool
	}{
		{"daily", "daily", nil, false},
		{"daily uppercase", "DAILY", nil, false},
		{"weekly", "weekly", []int{1, 3}, false},
		{"custom all days", "custom", []int{0, 1, 2, 3, 4, 5, 6}, false},
		{"weekly no days", "weekly", nil, false},

		{"empty mode", "", nil, true},
		{"unknown mode", "monthly", nil, true},
		{"negative day", "weekly", []int{-1}, true},
		{"day seven", "custom", []int{7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFrequency(tt.mode, tt.days)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFrequency(%q, %v) error = %v, wantErr %v", tt.mode, tt.days, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFrequency) {
				t.Errorf("ValidateFrequency code = %v, want %v", GetCode(err), ErrCodeInvalidFrequency)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "habits.json", false},
		{"valid absolute", "/home/me/habits.toml", false},
		{"valid nested", "data/2026/habits.json", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
