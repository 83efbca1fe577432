// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
	"strings"
)

// ProxyEnv returns proxy-related environment variables normalized to both
// cases, so child installer processes pick them up regardless of which
// convention they read. Lowercase takes precedence when both are set.
func ProxyEnv() []string {
	var proxyEnv []string

	for _, name := range []string{"http_proxy", "https_proxy", "no_proxy"} {
		value := os.Getenv(name)
		if value == "" {
			value = os.Getenv(strings.ToUpper(name))
		}

		if value != "" {
			proxyEnv = append(proxyEnv, name+"="+value)
			proxyEnv = append(proxyEnv, strings.ToUpper(name)+"="+value)
		}
	}

	return proxyEnv
}
