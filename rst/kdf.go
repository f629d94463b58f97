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
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"

	"github.com/Nik-U/ringsig-rsa/internal/blockmode"
)

// SymmetricKey is the 128-bit key of the combining function. A fresh key is
// derived for every message and never stored.
type SymmetricKey = blockmode.Key

// DeriveKey maps a message to the key of the combining function. The message
// is hashed with SHA-256 and the digest is compressed to 128 bits with
// BLAKE2b, so a weakness in one hash family alone does not yield colliding
// keys.
func DeriveKey(message []byte) SymmetricKey {
	wide := sha256.Sum256(message)

	h, err := blake2b.New(blockmode.KeySize, nil)
	if err != nil {
		// Only reachable with an invalid digest size
		panic(err)
	}
	h.Write(wide[:])

	var k SymmetricKey
	h.Sum(k[:0])
	return k
}
