package config_test

import (
	"os"
	"testing"

	"github.com/hsinghweb/eag-v2-s2/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCryptoShortKey(t *testing.T) {
	os.Setenv("CRYPTO_KEY", "short-key")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("InitCrypto should panic on a key shorter than 32 bytes")
		}
	}()

	config.InitCrypto()
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "AIzaSyTestGeminiKey_1234"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("decrypted text %q does not match original %q", decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("encryption is not randomized, two ciphertexts should differ")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("decrypted empty text is incorrect: %q", decrypted)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := config.Decrypt("not-base64!!!"); err == nil {
			t.Error("Decrypt should fail on invalid input")
		}
	})
}
