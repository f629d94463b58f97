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
	"crypto/rsa"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"

	"github.com/Nik-U/ringsig-rsa"
	"github.com/Nik-U/ringsig-rsa/internal/genutil"
	"github.com/Nik-U/ringsig-rsa/internal/rsutil"
)

// PublicKey is an RSA public key taking part in rings. Keys are immutable and
// compared by value.
type PublicKey struct {
	key *rsa.PublicKey
	e   *big.Int
}

// NewPublicKey wraps an RSA public key. The key must not be modified
// afterwards.
func NewPublicKey(pub *rsa.PublicKey) (*PublicKey, error) {
	if pub == nil || pub.N == nil || pub.N.Cmp(big.NewInt(2)) <= 0 || pub.E < 2 {
		return nil, errors.Wrap(ringsig.ErrMalformedInput, "rst: invalid RSA public key")
	}
	return &PublicKey{key: pub, e: big.NewInt(int64(pub.E))}, nil
}

// RSA returns the wrapped key.
func (pk *PublicKey) RSA() *rsa.PublicKey { return pk.key }

func (pk *PublicKey) encrypt(r *big.Int) *big.Int {
	return new(big.Int).Exp(r, pk.e, pk.key.N)
}

func (pk *PublicKey) Equals(other ringsig.PublicKey) bool {
	if pk2, ok := other.(*PublicKey); ok && pk2 != nil {
		return pk.key.E == pk2.key.E && pk.key.N.Cmp(pk2.key.N) == 0
	}
	return false
}

func (s *scheme) LoadPublicKey(r io.Reader) (ringsig.PublicKey, error) {
	pk, err := loadPublicKey(r)
	if err != nil {
		return nil, err
	}
	return pk, nil
}

func loadPublicKey(r io.Reader) (*PublicKey, error) {
	gr := genutil.NewGobReader(r)
	n := gr.DecodeBig()
	var e int
	gr.Decode(&e)
	if gr.Err() != nil {
		return nil, gr.Err()
	}
	return NewPublicKey(&rsa.PublicKey{N: n, E: e})
}

func (pk *PublicKey) WriteTo(w io.Writer) (n int64, err error) {
	gw := genutil.NewGobWriter(w)
	gw.EncodeBig(pk.key.N)
	gw.Encode(pk.key.E)
	return gw.Count(), gw.Err()
}

func (pk *PublicKey) Bytes() []byte { return genutil.ConvertToBytes(pk) }

// PrivateKey is the RSA private key of one ring member. Only the modulus and
// the private exponent are needed for signing; CRT values are kept when
// present so the key round-trips through export.
type PrivateKey struct {
	key *rsa.PrivateKey
	pub *PublicKey

	// Constant-time view of N and D
	mod *saferith.Modulus
	d   *saferith.Nat
}

// NewPrivateKey wraps an RSA private key. Keys carrying their primes are
// validated.
func NewPrivateKey(priv *rsa.PrivateKey) (*PrivateKey, error) {
	if priv == nil || priv.D == nil || priv.D.Sign() <= 0 {
		return nil, errors.Wrap(ringsig.ErrMalformedInput, "rst: invalid RSA private key")
	}
	pub, err := NewPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, err
	}
	if len(priv.Primes) > 0 {
		if err := priv.Validate(); err != nil {
			return nil, errors.Wrap(ringsig.ErrInvalidKeyPair, err.Error())
		}
	}
	return &PrivateKey{
		key: priv,
		pub: pub,
		mod: saferith.ModulusFromBytes(priv.N.Bytes()),
		d:   new(saferith.Nat).SetBig(priv.D, priv.D.BitLen()),
	}, nil
}

// GenerateKey creates a new RSA key pair of the given size. Failures of the
// random source are returned as is; they are not retried.
func GenerateKey(random io.Reader, bits int) (*PrivateKey, error) {
	priv, err := rsa.GenerateKey(random, bits)
	if err != nil {
		return nil, errors.Wrap(err, "rst: key generation")
	}
	return NewPrivateKey(priv)
}

// Public returns the public half of the key.
func (sk *PrivateKey) Public() *PublicKey { return sk.pub }

// RSA returns the wrapped key.
func (sk *PrivateKey) RSA() *rsa.PrivateKey { return sk.key }

// decrypt computes r^d mod n without branching on d.
func (sk *PrivateKey) decrypt(r *big.Int) *big.Int {
	x := new(saferith.Nat).SetBig(r, sk.mod.BitLen())
	x = new(saferith.Nat).Mod(x, sk.mod)
	return new(saferith.Nat).Exp(x, sk.d, sk.mod).Big()
}

func (s *scheme) LoadPrivateKey(r io.Reader) (ringsig.PrivateKey, error) {
	sk, err := loadPrivateKey(r)
	if err != nil {
		return nil, err
	}
	return sk, nil
}

func loadPrivateKey(r io.Reader) (*PrivateKey, error) {
	gr := genutil.NewGobReader(r)
	priv := &rsa.PrivateKey{}
	priv.N = gr.DecodeBig()
	gr.Decode(&priv.E)
	priv.D = gr.DecodeBig()

	var primeCount uint8
	gr.Decode(&primeCount)
	for i := uint8(0); i < primeCount && gr.Err() == nil; i++ {
		priv.Primes = append(priv.Primes, gr.DecodeBig())
	}
	if gr.Err() != nil {
		return nil, gr.Err()
	}
	if len(priv.Primes) > 0 {
		priv.Precompute()
	}
	return NewPrivateKey(priv)
}

func (sk *PrivateKey) WriteTo(w io.Writer) (n int64, err error) {
	gw := genutil.NewGobWriter(w)
	gw.EncodeBig(sk.key.N)
	gw.Encode(sk.key.E)
	gw.EncodeBig(sk.key.D)
	gw.Encode(uint8(len(sk.key.Primes)))
	for _, p := range sk.key.Primes {
		gw.EncodeBig(p)
	}
	return gw.Count(), gw.Err()
}

func (sk *PrivateKey) Bytes() []byte { return genutil.ConvertToBytes(sk) }

func (s *scheme) LoadKeyPair(r io.Reader) (*ringsig.KeyPair, error) {
	return rsutil.LoadKeyPair(s, r, matchKeyPair)
}

func matchKeyPair(pub ringsig.PublicKey, priv ringsig.PrivateKey) bool {
	sk, ok := priv.(*PrivateKey)
	return ok && pub.Equals(sk.Public())
}
