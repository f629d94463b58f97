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

// Command ringsig-demo generates a ring of RSA keys, signs a few messages on
// behalf of one member, verifies them, and reports timing statistics.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"

	"github.com/Nik-U/ringsig-rsa"
	"github.com/Nik-U/ringsig-rsa/rst"
)

type config struct {
	level    uint
	ringSize int
	signer   int
	iter     int
	messages []string
}

func parseFlags() (*config, error) {
	c := &config{}
	msg := flag.String("msg", "", "sign only this message instead of the built-in set")
	flag.UintVar(&c.level, "level", 2, "security level (1-3: 1024, 2048 or 3072-bit keys)")
	flag.IntVar(&c.ringSize, "ring", 5, "number of ring members")
	flag.IntVar(&c.signer, "signer", 2, "index of the signing member")
	flag.IntVar(&c.iter, "iter", 10, "sign/verify rounds per message")
	flag.Parse()

	if c.level > 255 {
		return nil, ringsig.ErrUnsupportedLevel
	}
	if c.ringSize < 1 {
		return nil, errors.Errorf("ring size must be at least 1, got %d", c.ringSize)
	}
	if c.signer < 0 || c.signer >= c.ringSize {
		return nil, errors.Errorf("signer index %d outside ring of %d", c.signer, c.ringSize)
	}
	if c.iter < 1 {
		return nil, errors.Errorf("iter must be at least 1, got %d", c.iter)
	}

	if *msg != "" {
		c.messages = []string{*msg}
	} else {
		c.messages = []string{
			"Hello, World!",
			"This is a test message",
			"RSA Ring Signatures are anonymous",
		}
	}
	return c, nil
}

// ringFingerprint identifies a ring by hashing its members in order.
func ringFingerprint(ring []ringsig.PublicKey) string {
	hasher := blake3.New()
	for _, pk := range ring {
		hasher.Write(pk.Bytes())
	}
	return hex.EncodeToString(hasher.Sum(nil)[:8])
}

// printStats prints the mean, median, and standard deviation of durations
// in milliseconds.
func printStats(phaseName string, durations []float64) {
	mean, _ := stats.Mean(durations)
	median, _ := stats.Median(durations)
	stddev, _ := stats.StandardDeviation(durations)

	fmt.Printf("%s over %d runs:\n", phaseName, len(durations))
	fmt.Printf("  Mean: %.3f ms\n", mean)
	fmt.Printf("  Median: %.3f ms\n", median)
	fmt.Printf("  Standard Deviation: %.3f ms\n", stddev)
}

func millis(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }

func run(c *config) error {
	scheme, err := rst.New(uint8(c.level))
	if err != nil {
		return err
	}

	log.Printf("generating %d key pairs at level %d", c.ringSize, c.level)
	start := time.Now()
	pairs := make([]*ringsig.KeyPair, c.ringSize)
	ring := make([]ringsig.PublicKey, c.ringSize)
	for i := range pairs {
		if pairs[i], err = scheme.KeyGen(); err != nil {
			return err
		}
		ring[i] = pairs[i].Public
	}
	fmt.Printf("[TIME] KEYGEN %s for %d keys\n", time.Since(start), c.ringSize)
	fmt.Printf("Ring %s, signer index %d\n", ringFingerprint(ring), c.signer)

	var signTimes, verifyTimes []float64
	for i, text := range c.messages {
		message := []byte(text)
		fmt.Printf("\nTest Case %d: %q\n", i+1, text)

		var sig ringsig.Signature
		for j := 0; j < c.iter; j++ {
			start = time.Now()
			if sig, err = scheme.Sign(message, ring, pairs[c.signer]); err != nil {
				return err
			}
			signTimes = append(signTimes, millis(time.Since(start)))

			start = time.Now()
			ok := scheme.Verify(message, sig, ring)
			verifyTimes = append(verifyTimes, millis(time.Since(start)))
			if !ok {
				return errors.Errorf("signature on message %d did not verify", i+1)
			}
		}
		fmt.Printf("  Signature: %d bytes, verified %d times\n", len(sig.Bytes()), c.iter)

		tampered := append([]byte(text), '!')
		if scheme.Verify(tampered, sig, ring) {
			return errors.Errorf("tampered message %d verified", i+1)
		}
		fmt.Println("  Tampered message rejected")
	}

	fmt.Println()
	printStats("Sign", signTimes)
	printStats("Verify", verifyTimes)
	return nil
}

func main() {
	c, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	if err := run(c); err != nil {
		log.Fatalf("ringsig-demo: %v", err)
	}
}
