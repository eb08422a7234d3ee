package apikey

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

var (
	ErrEmptySecret    = errors.New("secret key is empty")
	ErrInvalidPadding = errors.New("invalid ciphertext padding")
)

// Cipher детерминированно шифрует API ключи: одинаковый ключ всегда даёт
// одинаковый шифротекст, поэтому по нему можно искать в базе на равенство.
// Режим ECB с фиксированным ключом: одинаковые ключи видны как одинаковые
// записи, конфиденциальности против читателя базы это не даёт.
type Cipher struct {
	block cipher.Block
}

// NewCipher строит шифр из секрета процесса. Ключ AES — SHA-256 от секрета.
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return &Cipher{block: block}, nil
}

// Encrypt возвращает base64 от AES-ECB шифротекста ключа с PKCS7-паддингом.
func (c *Cipher) Encrypt(token string) string {
	data := pkcs7Pad([]byte(token), aes.BlockSize)
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += aes.BlockSize {
		c.block.Encrypt(out[i:i+aes.BlockSize], data[i:i+aes.BlockSize])
	}
	return base64.StdEncoding.EncodeToString(out)
}

// Decrypt восстанавливает исходный ключ из значения, созданного Encrypt.
func (c *Cipher) Decrypt(encrypted string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", err
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", ErrInvalidPadding
	}
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += aes.BlockSize {
		c.block.Decrypt(out[i:i+aes.BlockSize], data[i:i+aes.BlockSize])
	}
	return pkcs7Unpad(out)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	pad := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(pad)}, pad)...)
}

func pkcs7Unpad(data []byte) (string, error) {
	pad := int(data[len(data)-1])
	if pad == 0 || pad > aes.BlockSize || pad > len(data) {
		return "", ErrInvalidPadding
	}
	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return "", ErrInvalidPadding
		}
	}
	return string(data[:len(data)-pad]), nil
}
