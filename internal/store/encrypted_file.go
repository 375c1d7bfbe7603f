// Package store persists sweep results as a password-encrypted artifact.
package store

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/scrypt"
)

const (
	envelopeVersion = 1
	kdfScrypt       = "scrypt"

	// DefaultScryptN is the scrypt cost parameter for new artifacts.
	DefaultScryptN = 1 << 15
	scryptR        = 8
	scryptP        = 1
	keyLen         = 32
	saltLen        = 32
	nonceLen       = 12

	filePerm = 0o600
)

var (
	// ErrDecrypt is returned when the password is wrong or the artifact was tampered with.
	ErrDecrypt = errors.New("decrypt artifact: wrong password or corrupted data")
	// ErrEmptyPassword is returned when no password is configured.
	ErrEmptyPassword = errors.New("empty password")
)

type envelope struct {
	Version    int    `json:"version"`
	KDF        string `json:"kdf"`
	N          int    `json:"n"`
	R          int    `json:"r"`
	P          int    `json:"p"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"ciphertext"`
}

// EncryptedFile writes artifacts to a single file, replacing the previous content.
type EncryptedFile struct {
	path     string
	password []byte
	scryptN  int
}

// Option customizes an EncryptedFile.
type Option func(*EncryptedFile)

// WithScryptN overrides the scrypt cost parameter; it must be a power of two above 1.
func WithScryptN(n int) Option {
	return func(f *EncryptedFile) {
		f.scryptN = n
	}
}

// NewEncryptedFile constructs a writer for path. The password is copied.
func NewEncryptedFile(path string, password []byte, opts ...Option) (*EncryptedFile, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	f := &EncryptedFile{
		path:     path,
		password: append([]byte(nil), password...),
		scryptN:  DefaultScryptN,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Path returns the artifact location.
func (f *EncryptedFile) Path() string {
	return f.path
}

// Write encrypts data and atomically replaces the artifact.
func (f *EncryptedFile) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sealed, err := Seal(data, f.password, f.scryptN)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp artifact: %w", err)
	}
	if _, err := tmp.Write(sealed); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace artifact: %w", err)
	}
	return nil
}

// Seal encrypts plaintext with a key derived from password and returns the JSON envelope.
func Seal(plaintext, password []byte, scryptN int) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	aead, err := newAEAD(password, salt, scryptN, scryptR, scryptP)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(envelope{
		Version:    envelopeVersion,
		KDF:        kdfScrypt,
		N:          scryptN,
		R:          scryptR,
		P:          scryptP,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(aead.Seal(nil, nonce, plaintext, nil)),
	}, "", "  ")
}

// Open decrypts an envelope produced by Seal.
func Open(data, password []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if env.Version != envelopeVersion || env.KDF != kdfScrypt {
		return nil, fmt.Errorf("unsupported artifact version %d kdf %q", env.Version, env.KDF)
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.CipherText)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}

	aead, err := newAEAD(password, salt, env.N, env.R, env.P)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("invalid nonce length %d", len(nonce))
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}

// Decrypt reads and decrypts the artifact at path.
func Decrypt(path string, password []byte) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return Open(data, password)
}

func newAEAD(password, salt []byte, n, r, p int) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, n, r, p, keyLen)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return aead, nil
}
