package service

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

const defaultPhoneRegion = "US"

// normalizePhone formats a parseable phone number as E.164. Input that does
// not parse as a valid number is stored verbatim: phone has always been a
// free-text field and a create must never fail on it.
func normalizePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	number, err := phonenumbers.Parse(trimmed, defaultPhoneRegion)
	if err != nil {
		return trimmed
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// normalizeEmail lowercases the address and punycode-normalizes its domain.
// Values that do not look like an address pass through untouched; the only
// hard requirement on email is that it is non-empty.
func normalizeEmail(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	at := strings.LastIndex(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return trimmed
	}
	local, domain := trimmed[:at], trimmed[at+1:]
	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil || ascii == "" {
		return trimmed
	}
	return local + "@" + ascii
}
