// Package phone turns human-entered phone numbers into digits-only
// international dial strings (E.164 without the leading plus).
package phone

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalizer normalizes numbers against one region's numbering plan.
// It is safe for concurrent use.
type Normalizer struct {
	region      string
	countryCode string
}

// NewNormalizer creates a normalizer for an ISO 3166-1 alpha-2 region such as "IL"
func NewNormalizer(region string) (*Normalizer, error) {
	region = strings.ToUpper(strings.TrimSpace(region))
	code := phonenumbers.GetCountryCodeForRegion(region)
	if code == 0 {
		return nil, fmt.Errorf("unknown phone region %q", region)
	}

	return &Normalizer{
		region:      region,
		countryCode: strconv.Itoa(code),
	}, nil
}

// Region returns the region code the normalizer was built for
func (n *Normalizer) Region() string {
	return n.region
}

// CountryCode returns the calling code of the region, e.g. "972"
func (n *Normalizer) CountryCode() string {
	return n.countryCode
}

// Normalize returns the canonical dial string for raw, or "" when raw
// is empty or is not a valid number of the normalizer's region.
//
// Non-digits are stripped. A leading "00" international access prefix is
// dropped and a leading trunk "0" is replaced with the country code. Digits
// written in international form ("+" or "00") must carry the region's
// country code; any other digits are read as a national number.
func (n *Normalizer) Normalize(raw string) string {
	digits := DigitsOnly(raw)
	if digits == "" {
		return ""
	}
	international := strings.HasPrefix(strings.TrimSpace(raw), "+")

	switch {
	case strings.HasPrefix(digits, "00"):
		digits = digits[2:]
		international = true
	case strings.HasPrefix(digits, "0"):
		digits = n.countryCode + digits[1:]
	}

	if !strings.HasPrefix(digits, n.countryCode) {
		if international {
			return ""
		}
		digits = n.countryCode + digits
	}

	if !n.valid(digits) {
		return ""
	}
	return digits
}

// Available reports whether raw normalizes to a dialable number
func (n *Normalizer) Available(raw string) bool {
	return n.Normalize(raw) != ""
}

// DigitsOnly keeps the ASCII digits of s
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// valid checks digits against the numbering plan of the normalizer's region
func (n *Normalizer) valid(digits string) bool {
	if len(digits) <= len(n.countryCode) {
		return false
	}

	num, err := phonenumbers.Parse("+"+digits, n.region)
	if err != nil {
		return false
	}
	if !phonenumbers.IsValidNumberForRegion(num, n.region) {
		return false
	}

	// Parsing may drop characters it treats as extensions or a stray
	// national prefix; the canonical form must round-trip exactly.
	canonical := strings.TrimPrefix(phonenumbers.Format(num, phonenumbers.E164), "+")
	return canonical == digits
}
