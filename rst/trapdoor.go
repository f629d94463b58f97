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
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/Nik-U/ringsig-rsa"
	"github.com/Nik-U/ringsig-rsa/internal/blockmode"
)

// Headroom above the largest modulus. With 160 extra bits, the chance that a
// uniform value falls into the last partial multiple of a modulus is below
// 2^-160.
const domainSlack = 160

var one = big.NewInt(1)

// domain is the common range [0, 2^(8*width)) of every value that enters the
// combining function for one ring. width is a whole number of cipher blocks.
type domain struct {
	width int
	limit *big.Int
}

func newDomain(maxBits int) domain {
	blockBits := blockmode.BlockSize * 8
	blocks := (maxBits + domainSlack + blockBits - 1) / blockBits
	d := domain{width: blocks * blockmode.BlockSize}
	d.limit = new(big.Int).Lsh(one, uint(d.width*8))
	return d
}

// ringDomain returns the domain sized for the largest modulus in ring.
func ringDomain(ring []*PublicKey) domain {
	maxBits := 0
	for _, pk := range ring {
		if b := pk.key.N.BitLen(); b > maxBits {
			maxBits = b
		}
	}
	return newDomain(maxBits)
}

// Bits is the bit-length of the domain.
func (d domain) Bits() int { return d.width * 8 }

func (d domain) contains(x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(d.limit) < 0
}

// encode writes x as a fixed-width big-endian string. x must be in the
// domain.
func (d domain) encode(x *big.Int) []byte {
	return x.FillBytes(make([]byte, d.width))
}

func (d domain) decode(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// random draws a uniform value from the domain.
func (d domain) random(r io.Reader) (*big.Int, error) {
	buf := make([]byte, d.width)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.WithStack(&ringsig.RandomSourceError{Err: err})
	}
	return d.decode(buf), nil
}

// extend applies perm to the remainder of x modulo n, leaving the quotient in
// place. Values in the last, partial multiple of n are passed through so
// that the result stays a bijection on the domain.
func (d domain) extend(x, n *big.Int, perm func(r *big.Int) *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, n, new(big.Int))

	top := new(big.Int).Add(q, one)
	if top.Mul(top, n).Cmp(d.limit) > 0 {
		return new(big.Int).Set(x)
	}

	q.Mul(q, n)
	return q.Add(q, perm(r))
}

// forward is the extended RSA trapdoor permutation under a public key.
func (d domain) forward(x *big.Int, pk *PublicKey) *big.Int {
	return d.extend(x, pk.key.N, pk.encrypt)
}

// inverse undoes forward. It needs the private exponent.
func (d domain) inverse(y *big.Int, sk *PrivateKey) *big.Int {
	return d.extend(y, sk.key.N, sk.decrypt)
}
