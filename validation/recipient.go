// SPDX-License-Identifier: GPL-3.0-only

package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
)

// RecipientRule decides whether an address is an acceptable recipient.
type RecipientRule interface {
	Valid(addr string) bool
	// Hint is shown to users when asking for an address.
	Hint() string
}

// PrefixRule accepts Prefix followed by exactly Digits ASCII digits.
type PrefixRule struct {
	Prefix string
	Digits int
}

// E164Rule is the default: "+" and 11 digits, e.g. +27838968976.
var E164Rule = PrefixRule{Prefix: "+", Digits: 11}

func (r PrefixRule) Valid(addr string) bool {
	rest, ok := strings.CutPrefix(addr, r.Prefix)
	if !ok || len(rest) != r.Digits {
		return false
	}
	return allDigits(rest)
}

func (r PrefixRule) Hint() string {
	return fmt.Sprintf("%s followed by %d digits", r.Prefix, r.Digits)
}

// LocalRule accepts numbers starting with Prefix that are at most MaxLength
// characters long, e.g. 0712345678.
type LocalRule struct {
	Prefix    string
	MaxLength int
}

var SouthAfricanLocalRule = LocalRule{Prefix: "07", MaxLength: 10}

func (r LocalRule) Valid(addr string) bool {
	return strings.HasPrefix(addr, r.Prefix) && utf8.RuneCountInString(addr) <= r.MaxLength
}

func (r LocalRule) Hint() string {
	return fmt.Sprintf("starting with %s, at most %d characters", r.Prefix, r.MaxLength)
}

// CarrierRule accepts any number libphonenumber considers valid. Numbers
// without a leading "+" are parsed in DefaultRegion.
type CarrierRule struct {
	DefaultRegion string
}

func (r CarrierRule) Valid(addr string) bool {
	if addr == "" {
		return false
	}
	num, err := phonenumbers.Parse(addr, r.DefaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

func (r CarrierRule) Hint() string {
	return "a valid international phone number, e.g. +27838968976"
}

// RuleForProfile maps a RECIPIENT_PROFILE value onto a rule.
func RuleForProfile(profile string) (RecipientRule, error) {
	switch strings.ToLower(profile) {
	case "", "international":
		return E164Rule, nil
	case "local":
		return SouthAfricanLocalRule, nil
	case "carrier":
		return CarrierRule{DefaultRegion: "ZA"}, nil
	default:
		return nil, fmt.Errorf("unknown recipient profile: %s", profile)
	}
}

// ValidRecipient checks addr against the default rule.
func ValidRecipient(addr string) bool {
	return E164Rule.Valid(addr)
}

// DescribeRecipient returns the region code and carrier name for addr when
// libphonenumber knows them.
func DescribeRecipient(addr string) (region, carrier string) {
	num, err := phonenumbers.Parse(addr, "")
	if err != nil {
		return "", ""
	}
	region = phonenumbers.GetRegionCodeForNumber(num)
	carrier, err = phonenumbers.GetCarrierForNumber(num, "en")
	if err != nil {
		carrier = ""
	}
	return region, carrier
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
