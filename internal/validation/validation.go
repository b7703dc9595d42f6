package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sonex-on/beta1-portfolio/internal/apperrors"
)

// Error collects per-field validation messages.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}

// NormalizeSymbol trims, upper-cases and sanitizes a ticker symbol, keeping
// alphanumerics plus '.' and '-'. Returns an error when nothing valid remains
// or the result exceeds 20 characters.
func NormalizeSymbol(symbol string) (string, error) {
	var b strings.Builder
	for _, c := range strings.ToUpper(strings.TrimSpace(symbol)) {
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '.' || c == '-' {
			b.WriteRune(c)
		}
	}
	cleaned := b.String()
	if len(cleaned) < 1 || len(cleaned) > 20 {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidSymbol, symbol)
	}
	return cleaned, nil
}
