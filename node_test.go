// Copyright 2024 The Bintree Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bintree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeight(t *testing.T) {
	require.Equal(t, 0, Height(nil))
	require.Equal(t, 1, Height(&Node{Value: 7}))

	root, err := Parse("(1 (2 4 5) 3)")
	require.NoError(t, err)
	require.Equal(t, 3, Height(root))

	// A left spine of four nodes.
	spine, err := Parse("(1 (2 (3 4 .) .) .)")
	require.NoError(t, err)
	require.Equal(t, 4, Height(spine))
	require.Equal(t, 1+max(Height(spine.Left), Height(spine.Right)), Height(spine))
}

func TestCount(t *testing.T) {
	require.Equal(t, 0, Count(nil))
	require.Equal(t, 1, Count(&Node{Value: 7}))

	root, err := Parse("(1 (2 4 5) 3)")
	require.NoError(t, err)
	require.Equal(t, 5, Count(root))
}
