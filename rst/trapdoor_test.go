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
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigInt(x int64) *big.Int { return big.NewInt(x) }

func domainOfWidth(width int) domain {
	return domain{width: width, limit: new(big.Int).Lsh(one, uint(width*8))}
}

func TestDomainWidth(t *testing.T) {
	for _, tc := range []struct{ bits, width int }{
		{0, 16 * 2},
		{1024, 16 * 10},
		{2048, 16 * 18},
		{3072, 16 * 26},
		{4096 - domainSlack, 16 * 32},
	} {
		d := newDomain(tc.bits)
		assert.Equal(t, tc.width, d.width, "modulus of %d bits", tc.bits)
		assert.GreaterOrEqual(t, d.Bits(), tc.bits+domainSlack)
		assert.Zero(t, d.width%16)
		assert.Equal(t, d.Bits()+1, d.limit.BitLen())
	}
}

func TestRingDomainUsesLargestModulus(t *testing.T) {
	ring, _ := testRing(t, 2)
	big1280, err := GenerateKey(rand.Reader, 1280)
	require.NoError(t, err)

	assert.Equal(t, newDomain(testKeyBits), ringDomain(ring))
	mixed := append(ring, big1280.Public())
	assert.Equal(t, newDomain(1280), ringDomain(mixed))
	assert.Equal(t, newDomain(1280), ringDomain(mixed[1:]))
}

func TestToyPermutationIsBijective(t *testing.T) {
	pk, sk := toyKey(t)
	d := domainOfWidth(1)

	seen := make(map[int64]bool)
	for x := int64(0); x < 256; x++ {
		y := d.forward(bigInt(x), pk)
		require.True(t, d.contains(y), "forward(%d) = %v leaves the domain", x, y)
		require.False(t, seen[y.Int64()], "forward(%d) = %v collides", x, y)
		seen[y.Int64()] = true

		require.Equal(t, x, d.inverse(y, sk).Int64(), "inverse(forward(%d))", x)

		// 4*55 = 220 is the last full multiple below 256
		if x >= 220 {
			assert.Equal(t, x, y.Int64(), "tail value %d must pass through", x)
		} else {
			assert.Equal(t, x/55, y.Int64()/55, "quotient of %d must be kept", x)
		}
	}
	assert.Len(t, seen, 256)
}

func TestPermutationRoundTrip(t *testing.T) {
	ring, keys := testRing(t, 1)
	pk, sk := ring[0], keys[0]

	// Values span up to four times the modulus length
	d := domainOfWidth(4 * testKeyBits / 8)
	r := mrand.New(mrand.NewSource(7))
	for i := 0; i < 200; i++ {
		bits := 1 + r.Intn(d.Bits())
		x := new(big.Int).Rand(r, new(big.Int).Lsh(one, uint(bits)))

		y := d.forward(x, pk)
		require.True(t, d.contains(y))
		require.Equal(t, 0, x.Cmp(d.inverse(y, sk)), "round trip of %d-bit value", bits)

		q1 := new(big.Int).Quo(x, pk.RSA().N)
		q2 := new(big.Int).Quo(y, pk.RSA().N)
		require.Equal(t, 0, q1.Cmp(q2), "quotient changed for %d-bit value", bits)
	}

	// The inverse is also a right inverse
	for i := 0; i < 20; i++ {
		y, err := d.random(rand.Reader)
		require.NoError(t, err)
		require.Equal(t, 0, y.Cmp(d.forward(d.inverse(y, sk), pk)))
	}
}

func TestPermutationPassThrough(t *testing.T) {
	ring, keys := testRing(t, 1)
	d := newDomain(testKeyBits)

	top := new(big.Int).Sub(d.limit, one)
	assert.Equal(t, 0, top.Cmp(d.forward(top, ring[0])))
	assert.Equal(t, 0, top.Cmp(d.inverse(top, keys[0])))

	// Below n the result is plain RSA
	x := bigInt(12345)
	want := new(big.Int).Exp(x, bigInt(int64(ring[0].RSA().E)), ring[0].RSA().N)
	assert.Equal(t, 0, want.Cmp(d.forward(x, ring[0])))
}

func TestPrivateExponentMatchesBigInt(t *testing.T) {
	_, keys := testRing(t, 1)
	sk := keys[0]
	r := mrand.New(mrand.NewSource(3))
	for i := 0; i < 20; i++ {
		x := new(big.Int).Rand(r, sk.RSA().N)
		want := new(big.Int).Exp(x, sk.RSA().D, sk.RSA().N)
		assert.Equal(t, 0, want.Cmp(sk.decrypt(x)))
	}
}
