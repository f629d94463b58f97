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

package ringsig

import "github.com/pkg/errors"

// Configuration errors are reported when a ring or a key is unusable. They
// are returned before any signing work starts.
var (
	ErrUnsupportedLevel = errors.New("unsupported security level requested")
	ErrWrongScheme      = errors.New("keys used in the wrong scheme")
	ErrNotInRing        = errors.New("public key is not part of the ring")
	ErrInvalidKeyPair   = errors.New("private key does not match public key")
	ErrRingTooSmall     = errors.New("ring is too small")
	ErrRingDuplication  = errors.New("ring contains duplicated key")
)

// Input errors are reported for a single call.
var (
	ErrRingSizeMismatch = errors.New("signature does not match ring size")
	ErrMalformedInput   = errors.New("malformed input")
	ErrRandomSource     = errors.New("random source failure")
)

// RandomSourceError reports a failed read from the random source. It matches
// ErrRandomSource under errors.Is and unwraps to the read error.
type RandomSourceError struct {
	Err error
}

func (e *RandomSourceError) Error() string {
	return ErrRandomSource.Error() + ": " + e.Err.Error()
}

func (e *RandomSourceError) Unwrap() error { return e.Err }

func (e *RandomSourceError) Is(target error) bool { return target == ErrRandomSource }
