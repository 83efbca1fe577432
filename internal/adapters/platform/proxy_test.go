// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProxyEnv_NormalizesBothCases(t *testing.T) {
	t.Setenv("http_proxy", "")
	t.Setenv("HTTP_PROXY", "http://proxy.corp:3128")
	t.Setenv("https_proxy", "")
	t.Setenv("HTTPS_PROXY", "")
	t.Setenv("no_proxy", "localhost,.internal")
	t.Setenv("NO_PROXY", "")

	env := ProxyEnv()

	assert.Contains(t, env, "http_proxy=http://proxy.corp:3128")
	assert.Contains(t, env, "HTTP_PROXY=http://proxy.corp:3128")
	assert.Contains(t, env, "no_proxy=localhost,.internal")
	assert.Contains(t, env, "NO_PROXY=localhost,.internal")
	assert.NotContains(t, env, "https_proxy=")
}

func TestProxyEnv_LowercaseTakesPrecedence(t *testing.T) {
	t.Setenv("http_proxy", "http://lower:3128")
	t.Setenv("HTTP_PROXY", "http://upper:3128")
	t.Setenv("https_proxy", "")
	t.Setenv("HTTPS_PROXY", "")
	t.Setenv("no_proxy", "")
	t.Setenv("NO_PROXY", "")

	env := ProxyEnv()

	assert.Contains(t, env, "http_proxy=http://lower:3128")
	assert.Contains(t, env, "HTTP_PROXY=http://lower:3128")
	assert.NotContains(t, env, "HTTP_PROXY=http://upper:3128")
}

func TestProxyEnv_EmptyWithoutConfiguration(t *testing.T) {
	for _, name := range []string{"http_proxy", "HTTP_PROXY", "https_proxy", "HTTPS_PROXY", "no_proxy", "NO_PROXY"} {
		t.Setenv(name, "")
	}

	assert.Empty(t, ProxyEnv())
}
