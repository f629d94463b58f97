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

package rst

import (
	"bytes"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	k1 := DeriveKey([]byte("abc"))
	assert.Equal(t, k1, DeriveKey([]byte("abc")))
	assert.NotEqual(t, k1, DeriveKey([]byte("abd")))
	assert.NotEqual(t, k1, DeriveKey([]byte("abc\x00")))
	assert.Equal(t, DeriveKey(nil), DeriveKey([]byte{}))

	seen := make(map[SymmetricKey]int)
	for i := 0; i < 1000; i++ {
		k := DeriveKey([]byte{byte(i), byte(i >> 8)})
		prev, dup := seen[k]
		require.False(t, dup, "messages %d and %d share a key", prev, i)
		seen[k] = i
	}
}

func TestCombinerInverse(t *testing.T) {
	d := newDomain(testKeyBits)
	c, err := newCombiner(DeriveKey([]byte("combine")), d)
	require.NoError(t, err)

	r := mrand.New(mrand.NewSource(11))
	randValue := func() []byte {
		b := make([]byte, d.width)
		r.Read(b)
		return b
	}

	v, y := randValue(), randValue()
	out, err := c.step(v, y)
	require.NoError(t, err)
	require.Len(t, out, d.width)
	back, err := c.unstep(out, y)
	require.NoError(t, err)
	assert.Equal(t, v, back)

	ys := [][]byte{randValue(), randValue(), randValue(), randValue()}
	end, err := c.forward(v, ys)
	require.NoError(t, err)
	start, err := c.backward(end, ys)
	require.NoError(t, err)
	assert.Equal(t, v, start)

	// Order matters
	swapped := [][]byte{ys[1], ys[0], ys[2], ys[3]}
	end2, err := c.forward(v, swapped)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(end, end2))

	// An empty chain is the identity
	same, err := c.forward(v, nil)
	require.NoError(t, err)
	assert.Equal(t, v, same)
}

func TestCombinerRejectsWrongWidth(t *testing.T) {
	c, err := newCombiner(DeriveKey(nil), domainOfWidth(17))
	require.NoError(t, err)
	_, err = c.step(make([]byte, 17), make([]byte, 17))
	assert.Error(t, err)
}
