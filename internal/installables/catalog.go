// SPDX-FileCopyrightText: 2026 The Developer Platform Install Authors
// SPDX-License-Identifier: EUPL-1.2

// Package installables defines the component catalog and the production
// installable unit backed by the network and platform adapters.
package installables

import "path"

// Component describes one installable entry of the developer platform.
type Component struct {
	Key         string
	Name        string
	Version     string
	Description string

	// URL locates the installer artifact; SHA256 is its expected hex
	// digest, empty to skip verification. Size is the advertised
	// artifact size in bytes, used for progress totals before the
	// download reveals the real size.
	URL    string
	SHA256 string
	Size   int64

	// Command, when set, is the program that consumes the installer
	// (for example java for a jar installer); otherwise the artifact
	// itself is executed. The "{installer}" placeholder in Args is
	// replaced with the staged installer path.
	Command string
	Args    []string
}

// InstallerFileName returns the artifact file name derived from the URL.
func (c Component) InstallerFileName() string {
	return path.Base(c.URL)
}

// Catalog lists the platform components in dependency/display order.
// The orchestration engine dispatches them in exactly this order.
func Catalog() []Component {
	return []Component{
		{
			Key:         "jdk",
			Name:        "OpenJDK",
			Version:     "8u131",
			Description: "Java Development Kit used by the IDE and jar-based installers",
			URL:         "https://developers.redhat.com/download-manager/jdf/file/openjdk-8u131-installer.exe",
			Size:        203 * 1024 * 1024,
			Args:        []string{"/qn"},
		},
		{
			Key:         "virtualbox",
			Name:        "Oracle VirtualBox",
			Version:     "5.1.22",
			Description: "Hypervisor backing the container development environment",
			URL:         "https://download.virtualbox.org/virtualbox/5.1.22/VirtualBox-5.1.22-115126-Win.exe",
			Size:        119 * 1024 * 1024,
			Args:        []string{"--silent", "--ignore-reboot"},
		},
		{
			Key:         "cygwin",
			Name:        "Cygwin",
			Version:     "2.8.0",
			Description: "POSIX tooling required by the container toolchain",
			URL:         "https://cygwin.com/setup-x86_64.exe",
			Size:        1 * 1024 * 1024,
			Args:        []string{"--quiet-mode", "--no-admin"},
		},
		{
			Key:         "vagrant",
			Name:        "Vagrant",
			Version:     "1.9.5",
			Description: "Virtual machine lifecycle manager",
			URL:         "https://releases.hashicorp.com/vagrant/1.9.5/vagrant_1.9.5.msi",
			Size:        87 * 1024 * 1024,
			Command:     "msiexec",
			Args:        []string{"/i", "{installer}", "/qn"},
		},
		{
			Key:         "cdk",
			Name:        "Container Development Kit",
			Version:     "3.0",
			Description: "Local OpenShift cluster for container development",
			URL:         "https://developers.redhat.com/download-manager/jdf/file/cdk-3.0-minishift-windows-amd64.exe",
			Size:        20 * 1024 * 1024,
			Args:        []string{"setup-cdk"},
		},
		{
			Key:         "devstudio",
			Name:        "Red Hat JBoss Developer Studio",
			Version:     "11.0",
			Description: "Eclipse-based integrated development environment",
			URL:         "https://developers.redhat.com/download-manager/jdf/file/devstudio-11.0.0-installer-standalone.jar",
			Size:        501 * 1024 * 1024,
			Command:     "java",
			Args:        []string{"-jar", "{installer}", "-options-auto"},
		},
	}
}

// CatalogKeys returns the catalog keys in dependency order.
func CatalogKeys() []string {
	catalog := Catalog()
	keys := make([]string, 0, len(catalog))

	for _, component := range catalog {
		keys = append(keys, component.Key)
	}

	return keys
}

// Lookup returns the catalog component registered under key.
func Lookup(key string) (Component, bool) {
	for _, component := range Catalog() {
		if component.Key == key {
			return component, true
		}
	}

	return Component{}, false
}
