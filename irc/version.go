// Copyright (c) 2020 Shivaram Lingamneni
// Copyright (c) 2026 The raistlin authors
// Released under the MIT license

package irc

import "fmt"

const (
	// SemVer is the semantic version of raistlin.
	SemVer = "0.3.0-unreleased"
)

var (
	// Ver is the full version of raistlin, shown by --version and logged at startup.
	Ver = fmt.Sprintf("raistlin-%s", SemVer)
	// Commit is the full git hash, if available
	Commit string
)

// initialize version strings (these are set in package main via linker flags)
func SetVersionString(version, commit string) {
	Commit = commit
	if version != "" {
		Ver = fmt.Sprintf("raistlin-%s", version)
	} else if len(Commit) == 40 {
		Ver = fmt.Sprintf("raistlin-%s-%s", SemVer, Commit[:16])
	}
}
