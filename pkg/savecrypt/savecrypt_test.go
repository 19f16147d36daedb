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

package savecrypt_test

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mys721tx/avsg-go/pkg/savecrypt"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

func TestKeyAndIV(t *testing.T) {
	key, iv := savecrypt.Key(), savecrypt.IV()

	assert.Equal(t, mustHex(t, "baadf00d00000000203044c213e41fff"), key[:])
	assert.Equal(t, mustHex(t, "e5ffffffe5ba0700baadf00dff00ff00"), iv[:])

	// Callers get copies.
	key[0], iv[0] = 0, 0
	key, iv = savecrypt.Key(), savecrypt.IV()
	assert.Equal(t, byte(0xba), key[0])
	assert.Equal(t, byte(0xe5), iv[0])
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", []byte{}},
		{"one byte", []byte{0x42}},
		{"fifteen bytes", bytes.Repeat([]byte{0x01}, 15)},
		{"one block", bytes.Repeat([]byte{0x10}, 16)},
		{"seventeen bytes", bytes.Repeat([]byte{0xff}, 17)},
		{"xml", []byte(`<?xml version="1.0" encoding="utf-8"?><THSaveData />`)},
		{"binary", []byte{0x00, 0x10, 0x0f, 0x01, 0x02, 0x03, 0x10, 0x10}},
		{"large", bytes.Repeat([]byte("Axiom Verge "), 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := savecrypt.Encrypt(tt.input)

			dec, err := savecrypt.Decrypt(enc)

			require.NoError(t, err)
			assert.Equal(t, tt.input, dec)
		})
	}
}

func TestEncryptLength(t *testing.T) {
	tests := []struct {
		in  int
		out int
	}{
		{0, 16},
		{1, 16},
		{15, 16},
		{16, 32},
		{17, 32},
		{31, 32},
		{32, 48},
	}

	for _, tt := range tests {
		enc := savecrypt.Encrypt(make([]byte, tt.in))

		assert.Len(t, enc, tt.out, "input of %d bytes", tt.in)
	}
}

func TestEncryptDoesNotModifyInput(t *testing.T) {
	in := []byte("0123456789abcdef")
	orig := append([]byte(nil), in...)

	savecrypt.Encrypt(in)

	assert.Equal(t, orig, in)
}

// The output must be plain AES-128-CBC/PKCS#7 so the game can read it.
func TestEncryptMatchesReferenceCBC(t *testing.T) {
	key := mustHex(t, "baadf00d00000000203044c213e41fff")
	iv := mustHex(t, "e5ffffffe5ba0700baadf00dff00ff00")
	plain := []byte("<THSaveData><mNumDeaths>0</mNumDeaths></THSaveData>")

	enc := savecrypt.Encrypt(plain)

	b, err := aes.NewCipher(key)
	require.NoError(t, err)

	out := make([]byte, len(enc))
	cipher.NewCBCDecrypter(b, iv).CryptBlocks(out, enc)

	n := int(out[len(out)-1])
	assert.Equal(t, len(enc)-len(plain), n)
	assert.Equal(t, plain, out[:len(out)-n])
}

func TestDecryptLength(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 33} {
		_, err := savecrypt.Decrypt(make([]byte, n))

		assert.ErrorIs(t, err, savecrypt.ErrCiphertextLength, "%d bytes", n)
	}
}

func TestDecryptBadPadding(t *testing.T) {
	// A full block of plaintext gets a full block of 0x10 padding. Flipping
	// bits in the first ciphertext block flips the same bits in the padding.
	enc := savecrypt.Encrypt(bytes.Repeat([]byte{'a'}, 16))
	require.Len(t, enc, 32)

	t.Run("pad length too large", func(t *testing.T) {
		c := append([]byte(nil), enc...)
		c[15] ^= 0x01 // 0x10 -> 0x11

		_, err := savecrypt.Decrypt(c)

		assert.ErrorIs(t, err, savecrypt.ErrPadding)
	})

	t.Run("pad length zero", func(t *testing.T) {
		c := append([]byte(nil), enc...)
		c[15] ^= 0x10 // 0x10 -> 0x00

		_, err := savecrypt.Decrypt(c)

		assert.ErrorIs(t, err, savecrypt.ErrPadding)
	})

	t.Run("inconsistent pad bytes", func(t *testing.T) {
		c := append([]byte(nil), enc...)
		c[0] ^= 0x01

		_, err := savecrypt.Decrypt(c)

		assert.ErrorIs(t, err, savecrypt.ErrPadding)
	})
}

// foreignCiphertext encrypts plain with another key, trying IVs until the
// result also has valid padding under the game key.
func foreignCiphertext(t *testing.T, plain []byte) []byte {
	t.Helper()

	b, err := aes.NewCipher([]byte("0123456789abcdef"))
	require.NoError(t, err)

	iv := []byte("fedcba9876543210")
	buf := make([]byte, len(plain)+savecrypt.BlockSize)

	for i := 0; i < 1<<16; i++ {
		iv[0], iv[1] = byte(i), byte(i>>8)

		copy(buf, plain)
		copy(buf[len(plain):], bytes.Repeat([]byte{savecrypt.BlockSize}, savecrypt.BlockSize))
		cipher.NewCBCEncrypter(b, iv).CryptBlocks(buf, buf)

		if _, err := savecrypt.Decrypt(buf); err == nil {
			return buf
		}
	}

	require.FailNow(t, "no ciphertext with valid padding found")

	return nil
}

func TestDecryptForeignKey(t *testing.T) {
	plain := bytes.Repeat([]byte("<mPlayerName>Trace</mPlayerName>"), 2)
	enc := foreignCiphertext(t, plain)

	// The padding checks out by chance, the plaintext is garbage.
	dec, err := savecrypt.Decrypt(enc)
	require.NoError(t, err)
	assert.NotEqual(t, plain, dec)
	assert.False(t, utf8.Valid(dec))

	fn := filepath.Join(t.TempDir(), "foreign.sav")
	require.NoError(t, os.WriteFile(fn, enc, 0644))

	dec, err = savecrypt.DecryptFile(fn)

	assert.ErrorIs(t, err, savecrypt.ErrNotText)
	assert.Nil(t, dec)
}

func TestEncryptFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "plain.xml")
	out := filepath.Join(dir, "save.enc")
	data := []byte("<THSaveData />")

	require.NoError(t, os.WriteFile(in, data, 0644))
	require.NoError(t, savecrypt.EncryptFile(in, out))

	dec, err := savecrypt.DecryptFile(out)
	require.NoError(t, err)
	assert.Equal(t, data, dec)
}

func TestEncryptFileRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "plain.xml")
	out := filepath.Join(dir, "save.enc")

	require.NoError(t, os.WriteFile(in, []byte("new"), 0644))
	require.NoError(t, os.WriteFile(out, []byte("existing"), 0644))

	err := savecrypt.EncryptFile(in, out)

	assert.ErrorIs(t, err, fs.ErrExist)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(got))
}

func TestEncryptFileMissingInput(t *testing.T) {
	dir := t.TempDir()

	err := savecrypt.EncryptFile(filepath.Join(dir, "missing"), filepath.Join(dir, "out"))

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NoFileExists(t, filepath.Join(dir, "out"))
}

func TestDecryptFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		_, err := savecrypt.DecryptFile(filepath.Join(dir, "missing"))

		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("not encrypted", func(t *testing.T) {
		fn := filepath.Join(dir, "plain.xml")
		require.NoError(t, os.WriteFile(fn, []byte("<THSaveData />"), 0644))

		_, err := savecrypt.DecryptFile(fn)

		assert.ErrorIs(t, err, savecrypt.ErrCiphertextLength)
		assert.Contains(t, err.Error(), fn)
	})
}
