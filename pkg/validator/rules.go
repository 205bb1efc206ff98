package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Numeric covers the numeric types rules operate on.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// MinLen validates a minimum string length.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return len(value) >= min },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

// MaxLen validates a maximum string length.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return len(value) <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// Email validates an email address. Empty values fail; combine with
// Optional for optional fields.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}
			parts := strings.SplitN(value, "@", 2)
			return len(parts) == 2 && strings.Contains(parts[1], ".")
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// Positive validates that a numeric value is greater than zero.
func Positive[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool { return value > 0 },
		Error: ValidationError{Field: field, Message: "must be positive"},
	}
}

// Between validates an inclusive numeric range.
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		},
	}
}

// InList validates membership in a closed set of allowed values.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowed),
		},
	}
}

// Future validates that a time lies after now.
func Future(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool { return value.After(time.Now()) },
		Error: ValidationError{Field: field, Message: "must be in the future"},
	}
}

// Optional skips the wrapped rule when the value is empty. Use for fields
// that are allowed to be absent but must be valid when present.
func Optional(value string, rule Rule) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return true
			}
			return rule.Check()
		},
		Error: rule.Error,
	}
}
