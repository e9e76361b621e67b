package form

import (
	"strconv"
	"strings"
)

// Required returns a validator that rejects empty strings.
func Required(message string) func(string) string {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// MinLength returns a validator that rejects strings shorter than n runes.
func MinLength(n int, message string) func(string) string {
	return func(value string) string {
		if len([]rune(value)) < n {
			return message
		}
		return ""
	}
}

// Numeric returns a validator that rejects strings that do not parse as a
// base-10 integer.
func Numeric(message string) func(string) string {
	return func(value string) string {
		if _, err := strconv.Atoi(value); err != nil {
			return message
		}
		return ""
	}
}

// Compose chains validators, returning the first non-empty message.
func Compose[T any](validators ...func(T) string) func(T) string {
	return func(value T) string {
		for _, validate := range validators {
			if validate == nil {
				continue
			}
			if message := validate(value); message != "" {
				return message
			}
		}
		return ""
	}
}
