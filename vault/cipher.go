package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"go-sniper/models"
)

// Cipher encrypts and decrypts credential plaintext with AES-256-GCM.
// Blobs are self-describing, `<nonceHex>:<cipherHex>`, so decryption is
// stateless. The AES key is derived from the configured secret.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives a 256-bit key from secret and builds the AEAD.
func NewCipher(secret string) (*Cipher, error) {
	sum := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(sum[:])
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce. Two encryptions of
// the same plaintext never produce the same blob.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(nonce) + ":" + hex.EncodeToString(sealed), nil
}

// Decrypt opens a blob produced by Encrypt. A malformed nonce segment or
// ciphertext sealed under a different key fails with models.ErrDecryption.
func (c *Cipher) Decrypt(blob string) (string, error) {
	nonceHex, cipherHex, ok := strings.Cut(blob, ":")
	if !ok {
		return "", models.ErrDecryption
	}

	nonce, err := hex.DecodeString(nonceHex)
	if err != nil || len(nonce) != c.aead.NonceSize() {
		return "", models.ErrDecryption
	}

	sealed, err := hex.DecodeString(cipherHex)
	if err != nil {
		return "", models.ErrDecryption
	}

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", models.ErrDecryption
	}
	return string(plaintext), nil
}
