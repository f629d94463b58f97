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
	"crypto/subtle"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/Nik-U/ringsig-rsa"
	"github.com/Nik-U/ringsig-rsa/internal/genutil"
)

// Signature is an RST ring signature: one value per ring member, in ring
// order, and the glue value at which the combining chain starts and ends.
type Signature struct {
	Xi   []*big.Int
	Glue *big.Int
}

// Verify reports whether the signature is valid for message under ring.
func (sig *Signature) Verify(ring []*PublicKey, message []byte) (bool, error) {
	return Verify(ring, sig.Xi, sig.Glue, message)
}

// Verify reports whether (xi, glue) is a valid ring signature on message
// under ring. Only malformed input is an error: an empty ring, nil values, or
// a length mismatch between xi and ring. Signatures that merely fail to
// verify, including values outside the ring's domain, return false.
func Verify(ring []*PublicKey, xi []*big.Int, glue *big.Int, message []byte) (bool, error) {
	if err := checkRing(ring); err != nil {
		return false, err
	}
	if len(xi) != len(ring) {
		return false, errors.Wrapf(ringsig.ErrRingSizeMismatch, "rst: %d values for %d members", len(xi), len(ring))
	}
	if glue == nil {
		return false, errors.Wrap(ringsig.ErrMalformedInput, "rst: nil glue")
	}
	for i, x := range xi {
		if x == nil {
			return false, errors.Wrapf(ringsig.ErrMalformedInput, "rst: nil value at %d", i)
		}
	}

	dom := ringDomain(ring)
	if !dom.contains(glue) {
		return false, nil
	}
	c, err := newCombiner(DeriveKey(message), dom)
	if err != nil {
		return false, err
	}

	g := dom.encode(glue)
	v := g
	for j, pk := range ring {
		if !dom.contains(xi[j]) {
			return false, nil
		}
		if v, err = c.step(v, dom.encode(dom.forward(xi[j], pk))); err != nil {
			return false, err
		}
	}
	return subtle.ConstantTimeCompare(v, g) == 1, nil
}

func (s *scheme) LoadSignature(r io.Reader) (ringsig.Signature, error) {
	gr := genutil.NewGobReader(r)

	var ringSize uint32
	gr.Decode(&ringSize)
	sig := &Signature{Glue: gr.DecodeBig()}
	for i := uint32(0); i < ringSize && gr.Err() == nil; i++ {
		sig.Xi = append(sig.Xi, gr.DecodeBig())
	}
	if gr.Err() != nil {
		return nil, gr.Err()
	}
	return sig, nil
}

func (sig *Signature) WriteTo(w io.Writer) (n int64, err error) {
	gw := genutil.NewGobWriter(w)

	var ringSize uint32 = uint32(len(sig.Xi))
	gw.Encode(&ringSize)
	gw.EncodeBig(sig.Glue)
	for _, x := range sig.Xi {
		gw.EncodeBig(x)
	}

	return gw.Count(), gw.Err()
}

func (sig *Signature) Bytes() []byte { return genutil.ConvertToBytes(sig) }
