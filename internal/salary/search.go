package salary

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

type Search struct {
	Text     string
	IsNumber bool
	Number   decimal.Decimal
}

func (s Search) Valid() bool {
	return s.Text != ""
}

// ParseSearch trims the free-text input. A digits-only search also
// matches shipment costs of exactly that amount.
func ParseSearch(raw *string) Search {
	if raw == nil {
		return Search{}
	}
	text := strings.TrimSpace(*raw)
	if text == "" {
		return Search{}
	}

	s := Search{Text: text}
	if digitsOnly.MatchString(text) {
		if n, err := decimal.NewFromString(text); err == nil {
			s.IsNumber = true
			s.Number = n
		}
	}
	return s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}
