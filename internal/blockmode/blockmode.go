// Copyright © 2015 Nik Unger
//
// This file is part of ringsig.
//
// Ringsig is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Ringsig is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Lesser General Public License for more
// details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with ringsig. If not, see <http://www.gnu.org/licenses/>.

// Package blockmode applies AES-128 to every 16-byte block of its input
// independently, with one key for all blocks and no IV or chaining. It is the
// keyed mixing step of the RST combining function and provides neither
// integrity nor any link between blocks.
package blockmode

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/pkg/errors"
)

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = aes.BlockSize
	// KeySize is the key size in bytes (AES-128).
	KeySize = 16
)

// ErrInputNotFullBlocks is returned for input whose length is not a multiple
// of BlockSize. Input is never padded or truncated.
var ErrInputNotFullBlocks = errors.New("input not full blocks")

// Key is a 128-bit symmetric key.
type Key [KeySize]byte

// Cipher is a keyed instance of the block mode. It holds no state besides the
// expanded key and may be shared between goroutines.
type Cipher struct {
	b cipher.Block
}

// New expands key into a Cipher.
func New(key Key) (*Cipher, error) {
	b, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, errors.Wrap(err, "blockmode: key expansion")
	}
	return &Cipher{b: b}, nil
}

func checkBlocks(dst, src []byte) error {
	if len(src)%BlockSize != 0 {
		return errors.Wrapf(ErrInputNotFullBlocks, "blockmode: length %d", len(src))
	}
	if len(dst) < len(src) {
		return errors.Errorf("blockmode: output of %d bytes is smaller than input of %d", len(dst), len(src))
	}
	return nil
}

// Encrypt encrypts src block by block into dst. dst and src may overlap
// entirely.
func (c *Cipher) Encrypt(dst, src []byte) error {
	if err := checkBlocks(dst, src); err != nil {
		return err
	}
	for i := 0; i < len(src); i += BlockSize {
		c.b.Encrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
	return nil
}

// Decrypt is the inverse of Encrypt.
func (c *Cipher) Decrypt(dst, src []byte) error {
	if err := checkBlocks(dst, src); err != nil {
		return err
	}
	for i := 0; i < len(src); i += BlockSize {
		c.b.Decrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
	return nil
}

// Encrypt encrypts data under key and returns the result in a new slice.
func Encrypt(key Key, data []byte) ([]byte, error) {
	return oneShot(key, data, (*Cipher).Encrypt)
}

// Decrypt decrypts data under key and returns the result in a new slice.
func Decrypt(key Key, data []byte) ([]byte, error) {
	return oneShot(key, data, (*Cipher).Decrypt)
}

func oneShot(key Key, data []byte, op func(*Cipher, []byte, []byte) error) ([]byte, error) {
	if len(data)%BlockSize != 0 {
		return nil, errors.Wrapf(ErrInputNotFullBlocks, "blockmode: length %d", len(data))
	}
	c, err := New(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	if err = op(c, out, data); err != nil {
		return nil, err
	}
	return out, nil
}
