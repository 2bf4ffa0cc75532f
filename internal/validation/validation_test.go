package validation

import (
	"strings"
	"testing"
)

func TestValidateThemeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid name",
			input:   "The Vault",
			wantErr: false,
		},
		{
			name:    "single character",
			input:   "X",
			wantErr: false,
		},
		{
			name:    "fifty characters",
			input:   strings.Repeat("a", 50),
			wantErr: false,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "only whitespace",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   strings.Repeat("a", 51),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThemeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateThemeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePlayTime(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		wantErr bool
	}{
		{"lower bound", 10, false},
		{"upper bound", 180, false},
		{"typical", 60, false},
		{"below range", 9, true},
		{"above range", 181, true},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlayTime(tt.minutes)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePlayTime(%d) error = %v, wantErr %v", tt.minutes, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHintCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{
			name:    "uppercase alphanumeric",
			code:    "KEY1",
			wantErr: false,
		},
		{
			name:    "lowercase passes after normalization",
			code:    "key1",
			wantErr: false,
		},
		{
			name:    "digits only",
			code:    "1234",
			wantErr: false,
		},
		{
			name:    "twenty characters",
			code:    strings.Repeat("A", 20),
			wantErr: false,
		},
		{
			name:    "empty",
			code:    "",
			wantErr: true,
		},
		{
			name:    "too long",
			code:    strings.Repeat("A", 21),
			wantErr: true,
		},
		{
			name:    "punctuation",
			code:    "KEY-1",
			wantErr: true,
		},
		{
			name:    "inner whitespace",
			code:    "KEY 1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHintCode(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHintCode(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHintContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", "look under the rug", false},
		{"empty", "", true},
		{"only whitespace", "  \t ", true},
		{"max length", strings.Repeat("x", 500), false},
		{"too long", strings.Repeat("x", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHintContent(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHintContent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHintAnswer(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		wantErr bool
	}{
		{"empty answer is allowed", "", false},
		{"valid", "1234", false},
		{"max length", strings.Repeat("x", 200), false},
		{"too long", strings.Repeat("x", 201), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHintAnswer(tt.answer)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHintAnswer() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProgressRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    int
		wantErr bool
	}{
		{"zero", 0, false},
		{"hundred", 100, false},
		{"typical", 25, false},
		{"negative", -1, true},
		{"above hundred", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProgressRate(tt.rate)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProgressRate(%d) error = %v, wantErr %v", tt.rate, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Field: "code", Message: "code is required"}
	if err.Error() != "code: code is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}
