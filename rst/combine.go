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

	"github.com/Nik-U/ringsig-rsa/internal/blockmode"
)

// combiner is the keyed combining function of one message over one ring
// domain. A step XORs the running value with a member's y value and
// encrypts the result; all values have the domain width.
type combiner struct {
	c     *blockmode.Cipher
	width int
}

func newCombiner(key SymmetricKey, d domain) (*combiner, error) {
	c, err := blockmode.New(key)
	if err != nil {
		return nil, err
	}
	return &combiner{c: c, width: d.width}, nil
}

// step computes E_k(v ^ y).
func (c *combiner) step(v, y []byte) ([]byte, error) {
	out := make([]byte, c.width)
	subtle.XORBytes(out, v, y)
	if err := c.c.Encrypt(out, out); err != nil {
		return nil, err
	}
	return out, nil
}

// unstep computes D_k(v) ^ y, the inverse of step.
func (c *combiner) unstep(v, y []byte) ([]byte, error) {
	out := make([]byte, c.width)
	if err := c.c.Decrypt(out, v); err != nil {
		return nil, err
	}
	subtle.XORBytes(out, out, y)
	return out, nil
}

// forward runs step over ys in order, starting from v.
func (c *combiner) forward(v []byte, ys [][]byte) ([]byte, error) {
	var err error
	for _, y := range ys {
		if v, err = c.step(v, y); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// backward runs unstep over ys in reverse order, starting from v.
func (c *combiner) backward(v []byte, ys [][]byte) ([]byte, error) {
	var err error
	for i := len(ys) - 1; i >= 0; i-- {
		if v, err = c.unstep(v, ys[i]); err != nil {
			return nil, err
		}
	}
	return v, nil
}
