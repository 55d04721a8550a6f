// SPDX-License-Identifier: GPL-3.0-only

// Package auth is the credential check in front of the message client: a
// single configured account, an argon2id password hash, and signed login
// tokens for the HTTP surface.
package auth

import (
	"errors"
	"fmt"

	"quickchat/crypto"
	"quickchat/passwordcheck"
	"quickchat/validation"
)

var (
	ErrUsernameFormat = errors.New("username is not correctly formatted; please ensure that your username contains an underscore and is no more than five characters in length")
	ErrPasswordFormat = errors.New("password is not correctly formatted; please ensure that the password contains at least eight characters, a capital letter, a number, and a special character")
)

// VerifyCredentials compares the entered credentials with the stored ones.
func VerifyCredentials(username, password, storedUsername, storedPassword string) bool {
	return username == storedUsername && password == storedPassword
}

type Account struct {
	Username     string
	PasswordHash string
}

// NewAccount checks the username and password rules and stores the password
// as an argon2id hash.
func NewAccount(username, password string) (*Account, error) {
	if !validation.ValidUsername(username) {
		return nil, ErrUsernameFormat
	}
	if err := passwordcheck.Check(password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPasswordFormat, err)
	}

	hash, err := crypto.NewCrypto().HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &Account{Username: username, PasswordHash: hash}, nil
}

func (a *Account) Login(username, password string) bool {
	if username != a.Username {
		return false
	}
	return crypto.NewCrypto().VerifyPassword(password, a.PasswordHash) == nil
}

func LoginStatus(ok bool) string {
	if ok {
		return "Login successful."
	}
	return "Login failed."
}
