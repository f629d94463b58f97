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
	Package ringsig implements ring signatures in Go. A ring signature proves
	that a message was signed by one member of a set of public keys (the ring)
	without revealing which member. The construction was introduced by Rivest,
	Shamir, and Tauman in "How to Leak a Secret", and this library implements
	their RSA-based scheme.

	Typical uses are leaking a document while protecting the identity of the
	leaker, or receipts in anonymous voting: the reader learns that someone
	from a known group is behind the message, and nothing more. Because the
	signer can pick any ring, the other members take no part in signing and
	need not even know that their keys were used.

	Overview

	A ring signature scheme consists of key generation, signing, and
	verification, plus an optional setup phase that produces shared
	parameters:

		params ← setup()
		(privKey, pubKey) ← keyGen(params)
		signature ← sign(params, message, ring, privKey)
		ok ← verify(params, message, signature, ring)

	ring is an ordered list of public keys, and privKey must belong to one of
	them. verify accepts if the signature was produced by the private key of
	any ring member. The ring passed to verify must be exactly the ring used
	for signing: same members, same order.

	In this package, the setup phase and its parameters are represented by a
	Scheme value, and keys and signatures are opaque values tied to the scheme
	that created or loaded them. All of them implement Exportable so that they
	can be stored or sent by the application; the package itself defines no
	protocol around them.

	Security Properties

	Every ring signature hides the signer among the ring members. The RST
	scheme does so unconditionally: a signature is distributed identically no
	matter which member produced it, even for an adversary who later learns
	all the private keys. Forging a signature for a ring requires inverting
	RSA for one of its members (in the random oracle model, with the block
	cipher modelled as an ideal cipher).

	RST signatures are not linkable: two signatures by the same member cannot
	be recognized as such. Ring signatures also carry no notion of group
	management; membership changes and revocation are up to the application,
	which simply uses a different ring.

	Implementations

	Currently, the ringsig package includes one ring signature scheme, in the
	rst package. It works over ordinary RSA keys of any size and needs no
	setup. Signing costs one private RSA operation plus one public RSA
	operation per other ring member; verification costs one public RSA
	operation per member.

	The rst package can also be used directly, without the Scheme interface:
	rst.NewSigner binds a private key to a ring once, and rst.Verify checks a
	signature given as its raw values.

	License

	This package is free software: you can redistribute it and/or modify it
	under the terms of the GNU Lesser General Public License as published by
	the Free Software Foundation, either version 3 of the License, or (at your
	option) any later version.

	For additional details, see the COPYING and COPYING.LESSER files.
*/
package ringsig
