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

package blockmode_test

import (
	"bytes"
	"encoding/hex"
	mrand "math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nik-U/ringsig-rsa/internal/blockmode"
)

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestKnownAnswer(t *testing.T) {
	// FIPS-197 appendix C.1
	var key blockmode.Key
	copy(key[:], mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	block := mustHex(t, "00112233445566778899aabbccddeeff")
	want := mustHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a")

	// Three identical blocks encrypt to three identical blocks
	data := bytes.Repeat(block, 3)
	out, err := blockmode.Encrypt(key, data)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat(want, 3), out)

	back, err := blockmode.Decrypt(key, out)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestRoundTrip(t *testing.T) {
	r := mrand.New(mrand.NewSource(1))
	for blocks := 0; blocks <= 20; blocks++ {
		var key blockmode.Key
		r.Read(key[:])
		data := make([]byte, blocks*blockmode.BlockSize)
		r.Read(data)

		enc, err := blockmode.Encrypt(key, data)
		require.NoError(t, err)
		require.Len(t, enc, len(data))
		if blocks > 0 {
			assert.NotEqual(t, data, enc, "%d blocks", blocks)
		}

		dec, err := blockmode.Decrypt(key, enc)
		require.NoError(t, err)
		assert.Equal(t, data, dec, "%d blocks", blocks)
	}
}

func TestInPlace(t *testing.T) {
	var key blockmode.Key
	key[0] = 1
	c, err := blockmode.New(key)
	require.NoError(t, err)

	data := bytes.Repeat([]byte{0xa5}, 4*blockmode.BlockSize)
	orig := append([]byte(nil), data...)
	require.NoError(t, c.Encrypt(data, data))
	require.NotEqual(t, orig, data)
	require.NoError(t, c.Decrypt(data, data))
	assert.Equal(t, orig, data)
}

func TestBlocksAreIndependent(t *testing.T) {
	var key blockmode.Key
	data := make([]byte, 2*blockmode.BlockSize)
	first, err := blockmode.Encrypt(key, data)
	require.NoError(t, err)

	// Changing the second block must leave the first block untouched
	data[blockmode.BlockSize] ^= 1
	second, err := blockmode.Encrypt(key, data)
	require.NoError(t, err)
	assert.Equal(t, first[:blockmode.BlockSize], second[:blockmode.BlockSize])
	assert.NotEqual(t, first[blockmode.BlockSize:], second[blockmode.BlockSize:])
}

func TestRejectsPartialBlocks(t *testing.T) {
	var key blockmode.Key
	for _, n := range []int{1, 15, 17, 31, 33} {
		out, err := blockmode.Encrypt(key, make([]byte, n))
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, blockmode.ErrInputNotFullBlocks), "encrypt %d bytes: %v", n, err)

		out, err = blockmode.Decrypt(key, make([]byte, n))
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, blockmode.ErrInputNotFullBlocks), "decrypt %d bytes: %v", n, err)
	}

	c, err := blockmode.New(key)
	require.NoError(t, err)
	assert.Error(t, c.Encrypt(make([]byte, 16), make([]byte, 32)))
}
