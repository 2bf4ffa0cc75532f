package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Hint codes are short uppercase tokens entered by players on a keypad
var codeRegex = regexp.MustCompile(`^[A-Z0-9]+$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateThemeName checks if a theme name is valid
func ValidateThemeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) > 50 {
		return ValidationError{Field: "name", Message: "name must be at most 50 characters"}
	}
	return nil
}

// ValidatePlayTime checks if a play time in minutes is valid
func ValidatePlayTime(minutes int) error {
	if minutes < 10 || minutes > 180 {
		return ValidationError{Field: "playTime", Message: "playTime must be between 10 and 180 minutes"}
	}
	return nil
}

// ValidateHintCode checks if a hint code is valid. Codes are compared
// uppercase so the check runs on the normalized form.
func ValidateHintCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ValidationError{Field: "code", Message: "code is required"}
	}
	if len(code) > 20 {
		return ValidationError{Field: "code", Message: "code must be at most 20 characters"}
	}
	if !codeRegex.MatchString(strings.ToUpper(code)) {
		return ValidationError{Field: "code", Message: "code must contain only letters and digits"}
	}
	return nil
}

// ValidateHintContent checks if hint content is valid
func ValidateHintContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ValidationError{Field: "content", Message: "content is required"}
	}
	if len(content) > 500 {
		return ValidationError{Field: "content", Message: "content must be at most 500 characters"}
	}
	return nil
}

// ValidateHintAnswer checks if a hint answer is valid. Answers are
// optional.
func ValidateHintAnswer(answer string) error {
	if len(answer) > 200 {
		return ValidationError{Field: "answer", Message: "answer must be at most 200 characters"}
	}
	return nil
}

// ValidateProgressRate checks if a progress rate percentage is valid
func ValidateProgressRate(rate int) error {
	if rate < 0 || rate > 100 {
		return ValidationError{Field: "progressRate", Message: "progressRate must be between 0 and 100"}
	}
	return nil
}
