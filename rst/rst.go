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

/*
	Package rst implements the RSA ring signatures of Rivest, Shamir, and
	Tauman, published in "How to Leak a Secret". Any RSA key pair can sign on
	behalf of a ring of RSA public keys; no setup or cooperation from the other
	members is needed. The scheme is secure in the random oracle model under
	the RSA assumption, and it is unconditionally anonymous: a signature
	carries no information about which member produced it.

	Each member's RSA permutation is extended from [0, n) to a common domain
	[0, 2^b) that is at least 160 bits wider than the largest modulus in the
	ring. The values of all members are linked by a combining function that
	XORs them into a running value and encrypts it with AES-128 under a key
	derived from the message. A signature is valid when this chain, started at
	the glue value, returns to the glue value.

	Signers are created with NewSigner and verification is done with Verify.
	The package also provides a ringsig.Scheme through New.
*/
package rst

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"

	"github.com/Nik-U/ringsig-rsa"
	"github.com/Nik-U/ringsig-rsa/internal/genutil"
)

func rsaBits(securityFactor uint8) (int, error) {
	switch securityFactor {
	case 1:
		return 1024, nil
	case 2:
		return 2048, nil
	case 3:
		return 3072, nil
	default:
		return 0, ringsig.ErrUnsupportedLevel
	}
}

type scheme struct {
	secFac  uint8
	rsaBits int
	rand    io.Reader
}

// New creates an RST ring signature scheme. The scheme has no shared
// parameters besides the RSA key size used by KeyGen; keys of any size can
// still be mixed in one ring.
//
// Several levels of security are provided, based on the securityFactor
// parameter. Valid values are 1 to 3, inclusive, selecting 1024, 2048, and
// 3072-bit RSA keys. Level 1 is roughly equivalent to 80 bits of security,
// which is now widely considered to be weak. Levels 2 and 3 are roughly
// equivalent to 112 and 128 bits of security, respectively.
func New(securityFactor uint8) (ringsig.Scheme, error) {
	bits, err := rsaBits(securityFactor)
	if err != nil {
		return nil, err
	}
	return &scheme{secFac: securityFactor, rsaBits: bits, rand: rand.Reader}, nil
}

// Load restores an RST ring signature scheme from a Reader.
func Load(r io.Reader) (ringsig.Scheme, error) {
	gr := genutil.NewGobReader(r)
	var securityFactor uint8
	if !gr.Decode(&securityFactor) {
		return nil, gr.Err()
	}
	return New(securityFactor)
}

func (s *scheme) WriteTo(w io.Writer) (n int64, err error) {
	gw := genutil.NewGobWriter(w)
	gw.Encode(s.secFac)
	return gw.Count(), gw.Err()
}

func (s *scheme) Bytes() []byte { return genutil.ConvertToBytes(s) }

func (s *scheme) KeyGen() (*ringsig.KeyPair, error) {
	sk, err := GenerateKey(s.rand, s.rsaBits)
	if err != nil {
		return nil, err
	}
	return &ringsig.KeyPair{Public: sk.Public(), Private: sk}, nil
}

func (s *scheme) convertRing(ring []ringsig.PublicKey) ([]*PublicKey, error) {
	var ok bool
	ringPk := make([]*PublicKey, len(ring))
	for i, pk := range ring {
		if ringPk[i], ok = pk.(*PublicKey); !ok {
			return nil, ringsig.ErrWrongScheme
		}
	}
	return ringPk, nil
}

func (s *scheme) Sign(message []byte, ring []ringsig.PublicKey, key *ringsig.KeyPair) (ringsig.Signature, error) {
	if key == nil {
		return nil, errors.Wrap(ringsig.ErrMalformedInput, "rst: nil key pair")
	}

	// Type assert our keys
	var ok bool
	var myPk *PublicKey
	var mySk *PrivateKey
	if myPk, ok = key.Public.(*PublicKey); !ok {
		return nil, ringsig.ErrWrongScheme
	}
	if mySk, ok = key.Private.(*PrivateKey); !ok {
		return nil, ringsig.ErrWrongScheme
	}
	if !myPk.Equals(mySk.Public()) {
		return nil, ringsig.ErrInvalidKeyPair
	}

	ringPk, err := s.convertRing(ring)
	if err != nil {
		return nil, err
	}
	signer, err := NewSigner(ringPk, mySk, WithRand(s.rand))
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(message)
	if err != nil {
		return nil, err
	}
	return sig, nil
}

func (s *scheme) Verify(message []byte, signature ringsig.Signature, ring []ringsig.PublicKey) bool {
	sig, ok := signature.(*Signature)
	if !ok || sig == nil {
		return false
	}
	ringPk, err := s.convertRing(ring)
	if err != nil {
		return false
	}
	valid, err := sig.Verify(ringPk, message)
	return err == nil && valid
}
