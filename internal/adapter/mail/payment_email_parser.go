package mail

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"imoveis_xpto/internal/usecase"
	"imoveis_xpto/pkg"
)

// Heuristic extraction from Brazilian bank payment-confirmation
// emails. The messages are free-form HTML-ish text; we look for the
// unit code, the amount in R$ notation and an optional payment date,
// and leave the matching against open payments to the payment
// usecase.

var (
	unitCodePattern = regexp.MustCompile(`(?i)(?:apartamento|unidade|apto\.?|ap\.?)[:\s#]*([A-Za-z]{0,4}-?\d{1,5}[A-Za-z]?)`)
	amountPattern   = regexp.MustCompile(`R\$\s*((?:\d{1,3}(?:\.\d{3})*|\d+),\d{2})`)
	datePattern     = regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`)
	tagPattern      = regexp.MustCompile(`<[^>]+>`)
)

type ConfirmationEmail struct {
	MessageID  string
	Subject    string
	Body       string
	ReceivedAt time.Time
}

// Parse pulls the payment facts out of a confirmation email. The unit
// code and the amount are mandatory; when no date is found, the
// message arrival time stands in for the payment date.
func Parse(msg ConfirmationEmail) (usecase.ConfirmationEmailInput, error) {
	text := msg.Subject + "\n" + stripTags(msg.Body)

	unitCode := extractUnitCode(text)
	if unitCode == "" {
		return usecase.ConfirmationEmailInput{}, pkg.NewValidationError("email: no apartment unit code found")
	}

	amount, ok := extractAmount(text)
	if !ok {
		return usecase.ConfirmationEmailInput{}, pkg.NewValidationError("email: no amount found")
	}

	paidAt := extractDate(text)
	if paidAt.IsZero() {
		paidAt = msg.ReceivedAt
	}
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	return usecase.ConfirmationEmailInput{
		ApartmentUnitCode: unitCode,
		Amount:            amount,
		PaidAt:            paidAt,
		MessageID:         strings.TrimSpace(msg.MessageID),
	}, nil
}

func extractUnitCode(text string) string {
	m := unitCodePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1])
}

// extractAmount returns the largest R$ value in the message: receipts
// often list fees or partial figures next to the total.
func extractAmount(text string) (float64, bool) {
	var best float64
	found := false
	for _, m := range amountPattern.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value <= 0 {
			continue
		}
		if value > best {
			best = value
		}
		found = true
	}
	return best, found
}

func extractDate(text string) time.Time {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}
	}
	t, err := time.Parse("02/01/2006", m[1])
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func stripTags(body string) string {
	return tagPattern.ReplaceAllString(body, " ")
}
