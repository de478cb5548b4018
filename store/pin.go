package store

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// The PIN is never stored in clear: only a PBKDF2-SHA256 hash in the form
// "salt$hash", both parts base64 encoded.

const pbkdf2Iterations = 100_000

// hashPIN derives a salted hash for the given PIN.
func hashPIN(pin string) (string, error) {
	if pin == "" {
		return "", errors.New("pin is empty")
	}
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("could not generate salt: %w", err)
	}
	hash := pbkdf2.Key([]byte(pin), salt, pbkdf2Iterations, 32, sha256.New)
	return base64.RawStdEncoding.EncodeToString(salt) + "$" + base64.RawStdEncoding.EncodeToString(hash), nil
}

// checkPIN verifies a PIN against a stored "salt$hash" value in constant time.
func checkPIN(pin, stored string) bool {
	if pin == "" || stored == "" {
		return false
	}
	saltStr, hashStr, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(saltStr)
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(hashStr)
	if err != nil {
		return false
	}
	hash := pbkdf2.Key([]byte(pin), salt, pbkdf2Iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(hash, expected) == 1
}

// HasPIN reports whether a PIN credential is set.
func (s *Store) HasPIN() bool {
	var v string
	err := s.db.QueryRow(`SELECT value FROM auth WHERE key = ?`, keyPIN).Scan(&v)
	return err == nil && v != ""
}

// VerifyPIN reports whether the given PIN matches the stored credential.
func (s *Store) VerifyPIN(pin string) bool {
	var stored string
	if err := s.db.QueryRow(`SELECT value FROM auth WHERE key = ?`, keyPIN).Scan(&stored); err != nil {
		return false
	}
	return checkPIN(pin, stored)
}

// SetPIN stores (or replaces) the PIN credential.
func (s *Store) SetPIN(pin string) error {
	hashed, err := hashPIN(pin)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO auth (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		keyPIN, hashed,
	)
	if err != nil {
		return fmt.Errorf("could not store pin: %w", err)
	}
	return nil
}

// RemovePIN deletes the PIN credential. Removing an absent PIN is a no-op.
func (s *Store) RemovePIN() error {
	if _, err := s.db.Exec(`DELETE FROM auth WHERE key = ?`, keyPIN); err != nil {
		return fmt.Errorf("could not remove pin: %w", err)
	}
	return nil
}
