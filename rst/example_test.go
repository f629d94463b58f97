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

package rst_test

import (
	"crypto/rand"
	"fmt"

	"github.com/Nik-U/ringsig-rsa/rst"
)

func ExampleNewSigner() {
	keys := make([]*rst.PrivateKey, 3)
	ring := make([]*rst.PublicKey, 3)
	for i := range keys {
		keys[i], _ = rst.GenerateKey(rand.Reader, 1024)
		ring[i] = keys[i].Public()
	}

	// The second member signs
	signer, err := rst.NewSigner(ring, keys[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	sig, _ := signer.Sign([]byte("abc"))

	ok, _ := rst.Verify(ring, sig.Xi, sig.Glue, []byte("abc"))
	fmt.Println(len(sig.Xi), ok)
	ok, _ = rst.Verify(ring, sig.Xi, sig.Glue, []byte("abd"))
	fmt.Println(ok)
	// Output:
	// 3 true
	// false
}
