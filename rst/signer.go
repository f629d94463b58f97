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
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/Nik-U/ringsig-rsa"
)

// Signer signs messages on behalf of a fixed ring. It is immutable once
// created and may be used from several goroutines at once.
type Signer struct {
	ring []*PublicKey
	key  *PrivateKey
	pos  int
	dom  domain
	rand io.Reader
}

// Option configures a Signer.
type Option func(*Signer)

// WithRand sets the source of the random values drawn for every signature.
// It defaults to crypto/rand.Reader. The reader must be safe for concurrent
// use if the Signer is.
func WithRand(r io.Reader) Option {
	return func(s *Signer) { s.rand = r }
}

func checkRing(ring []*PublicKey) error {
	if len(ring) == 0 {
		return ringsig.ErrRingTooSmall
	}
	for i, pk := range ring {
		if pk == nil || pk.key == nil {
			return errors.Wrapf(ringsig.ErrMalformedInput, "rst: ring member %d is nil", i)
		}
	}
	return nil
}

// NewSigner prepares key to sign for ring. The public half of key must occur
// in ring exactly once; its index is the signer's position.
func NewSigner(ring []*PublicKey, key *PrivateKey, opts ...Option) (*Signer, error) {
	if err := checkRing(ring); err != nil {
		return nil, err
	}
	if key == nil {
		return nil, errors.Wrap(ringsig.ErrMalformedInput, "rst: nil private key")
	}

	pos := -1
	for i, pk := range ring {
		if !pk.Equals(key.Public()) {
			continue
		}
		if pos != -1 {
			return nil, errors.Wrapf(ringsig.ErrRingDuplication, "rst: signer at %d and %d", pos, i)
		}
		pos = i
	}
	if pos == -1 {
		return nil, ringsig.ErrNotInRing
	}

	s := &Signer{
		ring: append([]*PublicKey(nil), ring...),
		key:  key,
		pos:  pos,
		dom:  ringDomain(ring),
		rand: rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Position is the index of the signer in the ring.
func (s *Signer) Position() int { return s.pos }

// Ring returns a copy of the ring.
func (s *Signer) Ring() []*PublicKey { return append([]*PublicKey(nil), s.ring...) }

// DomainBits is the bit-length of the values in signatures for this ring.
func (s *Signer) DomainBits() int { return s.dom.Bits() }

// Sign produces a ring signature on message.
//
// Every other member's x is random and its y is computed with that member's
// public key. The chain is then walked from the glue value forwards up to the
// signer and backwards down to the signer, which fixes the one y value that
// closes the loop. The private key inverts the trapdoor on that y.
func (s *Signer) Sign(message []byte) (*Signature, error) {
	c, err := newCombiner(DeriveKey(message), s.dom)
	if err != nil {
		return nil, err
	}

	glue, err := s.dom.random(s.rand)
	if err != nil {
		return nil, err
	}

	xi := make([]*big.Int, len(s.ring))
	ys := make([][]byte, len(s.ring))
	for j, pk := range s.ring {
		if j == s.pos {
			continue
		}
		if xi[j], err = s.dom.random(s.rand); err != nil {
			return nil, err
		}
		ys[j] = s.dom.encode(s.dom.forward(xi[j], pk))
	}

	g := s.dom.encode(glue)
	e, err := c.forward(g, ys[:s.pos])
	if err != nil {
		return nil, err
	}
	v, err := c.backward(g, ys[s.pos+1:])
	if err != nil {
		return nil, err
	}

	// E_k(e ^ y_s) must equal v
	ysig, err := c.unstep(v, e)
	if err != nil {
		return nil, err
	}
	xi[s.pos] = s.dom.inverse(s.dom.decode(ysig), s.key)

	return &Signature{Xi: xi, Glue: glue}, nil
}
