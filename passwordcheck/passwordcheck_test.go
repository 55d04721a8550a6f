// SPDX-License-Identifier: GPL-3.0-only

package passwordcheck

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		password string
		want     error
	}{
		{"Nathan1!", nil},
		{"Ch&&sec@ke99!", nil},
		{"Ab1!", ErrTooShort},
		{"password1!", ErrNoUppercase},
		{"Password!!", ErrNoDigit},
		{"Password11", ErrNoSpecialChar},
		{"Passw0rd with space", nil},
	}

	for _, tc := range cases {
		err := Check(tc.password)
		if !errors.Is(err, tc.want) {
			t.Errorf("Check(%q) = %v, want %v", tc.password, err, tc.want)
		}
	}
}

func TestValidatePasswordSkipsPwnedLookupByDefault(t *testing.T) {
	t.Setenv("PWNED_PASSWORDS_ENABLED", "")
	if err := ValidatePassword(context.Background(), "Nathan1!"); err != nil {
		t.Fatalf("ValidatePassword failed: %v", err)
	}
}

func TestValidatePasswordRejectsPwned(t *testing.T) {
	password := "Nathan1!"
	sum := sha1.Sum([]byte(password))
	hash := strings.ToUpper(hex.EncodeToString(sum[:]))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, hash[:5]) {
			t.Errorf("unexpected range prefix in %s", r.URL.Path)
		}
		fmt.Fprintf(w, "0000000000000000000000000000000000A:1\n%s:42\n", hash[5:])
	}))
	defer srv.Close()

	old := pwnedRangeURL
	pwnedRangeURL = srv.URL + "/range/%s"
	defer func() { pwnedRangeURL = old }()

	t.Setenv("PWNED_PASSWORDS_ENABLED", "true")
	if err := ValidatePassword(context.Background(), password); !errors.Is(err, ErrPwned) {
		t.Fatalf("expected ErrPwned, got %v", err)
	}
}
