package service

import (
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
)

// PhoneNormalizer converts customer phone numbers to the MSISDN format the
// payment provider expects: country code followed by the 9-digit subscriber number.
type PhoneNormalizer struct {
	countryCode string
	prefixes    map[string]struct{}
}

func NewPhoneNormalizer(countryCode string, carrierPrefixes []string) PhoneNormalizer {
	prefixes := make(map[string]struct{}, len(carrierPrefixes))
	for _, p := range carrierPrefixes {
		prefixes[strings.TrimSpace(p)] = struct{}{}
	}
	return PhoneNormalizer{countryCode: countryCode, prefixes: prefixes}
}

func (n PhoneNormalizer) Normalize(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimPrefix(b.String(), "0")

	switch {
	case len(digits) == 9:
		if _, ok := n.prefixes[digits[:2]]; ok {
			return n.countryCode + digits, nil
		}
	case len(digits) == 9+len(n.countryCode) && strings.HasPrefix(digits, n.countryCode):
		return digits, nil
	}

	return "", fmt.Errorf("%w: %q", entities.ErrInvalidPhoneNumber, raw)
}
