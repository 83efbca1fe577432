// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package installables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_DependencyOrder(t *testing.T) {
	t.Parallel()

	// The JDK comes first: the devstudio installer needs java available.
	assert.Equal(t, []string{"jdk", "virtualbox", "cygwin", "vagrant", "cdk", "devstudio"}, CatalogKeys())
}

func TestCatalog_EntriesComplete(t *testing.T) {
	t.Parallel()

	for _, component := range Catalog() {
		assert.NotEmpty(t, component.Key)
		assert.NotEmpty(t, component.Name)
		assert.NotEmpty(t, component.Version)
		assert.NotEmpty(t, component.URL)
		assert.Positive(t, component.Size)
	}
}

func TestComponent_InstallerFileName(t *testing.T) {
	t.Parallel()

	component, ok := Lookup("vagrant")
	require.True(t, ok)
	assert.Equal(t, "vagrant_1.9.5.msi", component.InstallerFileName())
}

func TestLookup_UnknownKey(t *testing.T) {
	t.Parallel()

	_, ok := Lookup("emacs")
	assert.False(t, ok)
}
