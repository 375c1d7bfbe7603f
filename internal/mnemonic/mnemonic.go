// Package mnemonic validates BIP-39 mnemonics and expands them into word-order candidates.
package mnemonic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidMnemonic is returned for phrases failing word count or checksum validation.
var ErrInvalidMnemonic = errors.New("invalid seed phrase format (BIP-39)")

// MinWords is the shortest mnemonic accepted by BIP-39.
const MinWords = 12

var validWordCounts = map[int]struct{}{12: {}, 15: {}, 18: {}, 21: {}, 24: {}}

// Normalize lowercases the phrase and collapses whitespace to single spaces.
func Normalize(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// Validate checks word count and checksum.
func Validate(phrase string) error {
	words := strings.Fields(phrase)
	if _, ok := validWordCounts[len(words)]; !ok {
		return fmt.Errorf("%w: %d words", ErrInvalidMnemonic, len(words))
	}
	if !bip39.IsMnemonicValid(strings.Join(words, " ")) {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidMnemonic)
	}
	return nil
}

// Seed derives the BIP-39 seed with an empty passphrase, rejecting checksum-invalid phrases.
func Seed(phrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(strings.Join(strings.Fields(phrase), " "), "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}
