// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clipboard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52WriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OSC52{W: &buf}.WriteText("0xFF"))
	assert.Equal(t, "\x1b]52;c;MHhGRg==\a", buf.String())
}

func TestOSC52NoWriter(t *testing.T) {
	err := OSC52{}.WriteText("0xFF")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no terminal writer")
}
