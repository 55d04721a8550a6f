// SPDX-License-Identifier: GPL-3.0-only

package passwordcheck

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"quickchat/commons"
	"strings"
)

var (
	ErrTooShort      = errors.New("password must be at least 8 characters long")
	ErrNoUppercase   = errors.New("password must contain at least one uppercase letter")
	ErrNoDigit       = errors.New("password must contain at least one digit")
	ErrNoSpecialChar = errors.New("password must contain at least one special character (e.g., !@#$%)")
	ErrPwned         = errors.New("password has been found in data breaches (pwned); choose a different one")
)

var pwnedRangeURL = "https://api.pwnedpasswords.com/range/%s"

// Check applies the complexity rules and returns the first one that fails.
func Check(password string) error {
	if len([]rune(password)) < 8 {
		return ErrTooShort
	}
	if !hasUppercase(password) {
		return ErrNoUppercase
	}
	if !hasDigit(password) {
		return ErrNoDigit
	}
	if !hasSpecialChar(password) {
		return ErrNoSpecialChar
	}
	return nil
}

// ValidatePassword runs Check and, when PWNED_PASSWORDS_ENABLED is "true",
// looks the password up in the HIBP range API.
func ValidatePassword(ctx context.Context, password string) error {
	if err := Check(password); err != nil {
		return err
	}

	if commons.GetEnv("PWNED_PASSWORDS_ENABLED", "false") == "true" {
		pwned, err := checkPasswordPwned(ctx, password)
		if err != nil {
			commons.Logger.Error("Error checking pwned passwords:", err)
		}
		if pwned {
			return ErrPwned
		}
	}

	return nil
}

func checkPasswordPwned(ctx context.Context, password string) (bool, error) {
	hasher := sha1.New()
	hasher.Write([]byte(password))
	hash := strings.ToUpper(hex.EncodeToString(hasher.Sum(nil)))

	prefix, suffix := hash[:5], hash[5:]
	url := fmt.Sprintf(pwnedRangeURL, prefix)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("HIBP API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read HIBP response: %w", err)
	}

	for _, line := range strings.Split(string(body), "\n") {
		if parts := strings.Split(line, ":"); len(parts) == 2 {
			if strings.TrimSpace(parts[0]) == suffix {
				return true, nil
			}
		}
	}
	return false, nil
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// hasSpecialChar reports whether s has a character outside [A-Za-z0-9].
func hasSpecialChar(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return true
		}
	}
	return false
}
