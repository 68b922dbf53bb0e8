package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
)

// deriveKey выводит 256-битный ключ AES из строки секрета.
func deriveKey(secret string) []byte {
	key := sha256.Sum256([]byte(secret))
	return key[:]
}

// seal сериализует значение в JSON и шифрует его AES-GCM.
// Для каждой записи генерируется новый случайный nonce,
// результат: nonce || ciphertext.
func seal(value any, key []byte) ([]byte, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// open расшифровывает данные, полученные из seal, и раскладывает JSON в v.
func open(payload, key []byte, v any) error {
	aesgcm, err := newGCM(key)
	if err != nil {
		return err
	}

	if len(payload) < aesgcm.NonceSize() {
		return errors.New("payload too short")
	}
	nonce, ciphertext := payload[:aesgcm.NonceSize()], payload[aesgcm.NonceSize():]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("decrypt session payload: %w", err)
	}
	return json.Unmarshal(plaintext, v)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
