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
	"crypto/rsa"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKeyBits = 1024

var (
	testKeysOnce sync.Once
	testKeys     []*PrivateKey
	testKeysErr  error
)

// testRing returns a ring of n members built from a shared pool of keys, and
// the private keys in ring order.
func testRing(t testing.TB, n int) ([]*PublicKey, []*PrivateKey) {
	testKeysOnce.Do(func() {
		for i := 0; i < 6; i++ {
			var sk *PrivateKey
			if sk, testKeysErr = GenerateKey(rand.Reader, testKeyBits); testKeysErr != nil {
				return
			}
			testKeys = append(testKeys, sk)
		}
	})
	require.NoError(t, testKeysErr)
	require.LessOrEqual(t, n, len(testKeys))

	ring := make([]*PublicKey, n)
	for i := range ring {
		ring[i] = testKeys[i].Public()
	}
	return ring, testKeys[:n]
}

// toyKey is RSA with n = 5 * 11, e = 3, d = 27.
func toyKey(t testing.TB) (*PublicKey, *PrivateKey) {
	sk, err := NewPrivateKey(&rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: bigInt(55), E: 3},
		D:         bigInt(27),
	})
	require.NoError(t, err)
	return sk.Public(), sk
}
