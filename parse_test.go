// Copyright 2024 The Bintree Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bintree

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	datadriven.RunTest(t, "testdata/parse", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "parse":
			var out strings.Builder
			for _, line := range strings.Split(d.Input, "\n") {
				n, err := Parse(line)
				if err != nil {
					fmt.Fprintf(&out, "error: %v\n", err)
					continue
				}
				fmt.Fprintf(&out, "%s\n", n)
			}
			return out.String()
		default:
			d.Fatalf(t, "unknown command: %s", d.Cmd)
			return ""
		}
	})
}

// TestParseRoundTrip checks that String and Parse are inverses on
// random trees.
func TestParseRoundTrip(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed))

	for i := 0; i < 100; i++ {
		root := randomTree(rng, rng.IntN(40))
		parsed, err := Parse(root.String())
		require.NoError(t, err)
		require.Equal(t, root, parsed)
		require.Equal(t, root.String(), parsed.String())
	}
}
