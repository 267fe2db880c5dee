// Package vault provides password-based authenticated encryption for the
// configuration sync blob.
//
// A sealed blob is fully self-contained: everything needed to decrypt it
// except the password travels inside the blob itself.
//
// Layout: | version (1) | salt (16) | nonce (12) | AES-256-GCM ciphertext+tag |
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// FormatVersion is the current blob format version.
	FormatVersion = 1

	saltSize  = 16
	nonceSize = 12
	keySize   = 32

	// argon2id parameters. Deliberately slow and memory-hard so that an
	// attacker with the blob cannot cheaply brute-force the password.
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
)

// ErrWrongPasswordOrCorrupt is returned when a blob fails to decrypt.
// It deliberately does not distinguish a wrong password from tampered or
// truncated ciphertext; both look identical to the caller.
var ErrWrongPasswordOrCorrupt = errors.New("wrong password or corrupt data")

// ErrUnsupportedFormat is returned when the blob declares a format version
// newer than this build understands.
var ErrUnsupportedFormat = errors.New("unsupported blob format version")

// deriveKey stretches a password into an AES-256 key using argon2id.
func deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, keySize)
}

// Seal encrypts plaintext under a password. Each call uses a fresh random
// salt and nonce, so sealing the same plaintext twice yields different blobs.
//
// Parameters:
//   - plaintext: The data to encrypt.
//   - password: The user passphrase. Must be non-empty.
//
// Returns:
//   - []byte: The sealed blob.
//   - error: Error if the password is empty or the OS RNG fails.
func Seal(plaintext []byte, password string) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("password must not be empty")
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCM: %w", err)
	}

	blob := make([]byte, 0, 1+saltSize+nonceSize+len(plaintext)+gcm.Overhead())
	blob = append(blob, FormatVersion)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)
	return blob, nil
}

// Open decrypts a blob produced by Seal.
//
// Parameters:
//   - blob: The sealed blob.
//   - password: The user passphrase.
//
// Returns:
//   - []byte: The decrypted plaintext.
//   - error: ErrUnsupportedFormat for a newer format version,
//     ErrWrongPasswordOrCorrupt for any decryption failure.
func Open(blob []byte, password string) ([]byte, error) {
	// Minimum: header + an empty GCM message (16-byte tag).
	if len(blob) < 1+saltSize+nonceSize+16 {
		return nil, ErrWrongPasswordOrCorrupt
	}
	if blob[0] > FormatVersion {
		return nil, ErrUnsupportedFormat
	}

	salt := blob[1 : 1+saltSize]
	nonce := blob[1+saltSize : 1+saltSize+nonceSize]
	ciphertext := blob[1+saltSize+nonceSize:]

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, ErrWrongPasswordOrCorrupt
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrWrongPasswordOrCorrupt
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPasswordOrCorrupt
	}
	return plaintext, nil
}
