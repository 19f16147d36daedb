// avsg-go: Axiom Verge save game inspector
// Copyright (C) 2018  Yishen Miao
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package savecrypt encrypts and decrypts the Steam release's save files.
//
// The Steam build writes its XML save data through AES-128 in CBC mode with
// PKCS#7 padding. The key and IV are compiled into the game.
package savecrypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mys721tx/avsg-go/internal/fileio"
)

// BlockSize is the cipher block size in bytes.
const BlockSize = aes.BlockSize

var (
	key = [16]byte{
		0xba, 0xad, 0xf0, 0x0d,
		0x00, 0x00, 0x00, 0x00,
		0x20, 0x30, 0x44, 0xc2,
		0x13, 0xe4, 0x1f, 0xff,
	}
	iv = [16]byte{
		0xe5, 0xff, 0xff, 0xff,
		0xe5, 0xba, 0x07, 0x00,
		0xba, 0xad, 0xf0, 0x0d,
		0xff, 0x00, 0xff, 0x00,
	}
)

var (
	// ErrCiphertextLength is returned when the ciphertext is empty or not a
	// whole number of blocks.
	ErrCiphertextLength = errors.New("ciphertext is not a whole number of blocks")
	// ErrPadding is returned when the last block does not carry valid
	// padding, usually because the file was not encrypted with the game key.
	ErrPadding = errors.New("invalid padding")
	// ErrNotText is returned by DecryptFile when the padding checked out but
	// the plaintext is not UTF-8, which means a different key was used.
	ErrNotText = errors.New("decrypted data is not UTF-8 text")
)

// Key returns the save game encryption key.
func Key() [16]byte {
	return key
}

// IV returns the save game initialization vector.
func IV() [16]byte {
	return iv
}

func block() cipher.Block {
	b, err := aes.NewCipher(key[:])
	if err != nil {
		// key has a fixed valid length.
		panic(err)
	}

	return b
}

// Decrypt decrypts a save file and strips its padding.
func Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrCiphertextLength, len(ciphertext))
	}

	plain := make([]byte, len(ciphertext))

	cipher.NewCBCDecrypter(block(), iv[:]).CryptBlocks(plain, ciphertext)

	return unpad(plain)
}

// Encrypt pads and encrypts plaintext. The output is always one byte to one
// block longer than the input.
func Encrypt(plaintext []byte) []byte {
	buf := pad(plaintext)

	cipher.NewCBCEncrypter(block(), iv[:]).CryptBlocks(buf, buf)

	return buf
}

// pad returns a copy of b with PKCS#7 padding appended.
func pad(b []byte) []byte {
	n := BlockSize - len(b)%BlockSize

	buf := make([]byte, len(b), len(b)+n)
	copy(buf, b)

	return append(buf, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	n := int(b[len(b)-1])

	if n == 0 || n > BlockSize {
		return nil, fmt.Errorf("%w: pad length %d", ErrPadding, n)
	}

	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", ErrPadding)
		}
	}

	return b[:len(b)-n], nil
}

// DecryptFile reads and decrypts a save file. Save files are XML, so a
// plaintext that is not UTF-8 is an error even when its padding is valid.
func DecryptFile(fn string) ([]byte, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	plain, err := Decrypt(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decrypt %s: %w", fn, err)
	}

	if !utf8.Valid(plain) {
		return nil, fmt.Errorf("unable to decrypt %s: %w", fn, ErrNotText)
	}

	return plain, nil
}

// EncryptFile encrypts the file in and writes it to out. EncryptFile will not
// overwrite an existing out.
func EncryptFile(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	return fileio.WriteNew(out, Encrypt(data))
}
