// Package sandbox materializes one package in an ephemeral, isolated install
// environment and yields the lockfile or artifact the scanner needs. Every
// handle is exclusively owned by one job and destroyed at job end on every
// exit path.
package sandbox

import (
	"fmt"
	"strings"

	"github.com/dchest/siphash"

	"github.com/sbomweld/sbomweld/spdx"
)

// PackageRequest is one row of the input set. Identity is the
// (ecosystem, name, version) triple; rows are processed independently even
// when duplicated.
type PackageRequest struct {
	Index     int
	Ecosystem string
	Name      string
	Version   string
	SourceUrl string
}

const (
	tagKeyLow  = uint64(0x7361_6e64_626f_7831)
	tagKeyHigh = uint64(0x7362_6f6d_7765_6c64)
)

func (it PackageRequest) Identity() string {
	return fmt.Sprintf("%s/%s@%s", it.Ecosystem, it.Name, it.Version)
}

// Tag is a short stable identifier derived from the package identity, used
// to name sandbox directories and journal entries.
func (it PackageRequest) Tag() string {
	return fmt.Sprintf("%016x", siphash.Hash(tagKeyLow, tagKeyHigh, []byte(it.Identity())))
}

// SafeName is the package name with path separators flattened, usable in
// output file names (scoped npm packages contain slashes).
func (it PackageRequest) SafeName() string {
	return strings.ReplaceAll(it.Name, "/", "_")
}

// Filename is the per-package output document name. The embedded ecosystem
// tag is what the merge engine matches on.
func (it PackageRequest) Filename() string {
	return fmt.Sprintf("sbom_%05d_%s_%s@%s.json", it.Index, it.Ecosystem, it.SafeName(), it.Version)
}

// Supported tells whether the ecosystem has an install pathway.
func Supported(ecosystem string) bool {
	switch Normalize(ecosystem) {
	case spdx.EcosystemPython, spdx.EcosystemNodejs, spdx.EcosystemJava:
		return true
	}
	return false
}

// GraphSupported tells whether the ecosystem has a dependency graph query.
// Java has none: the jar pathway scans a downloaded artifact and there is no
// package manager to ask, so that gap is reported instead of papered over.
func GraphSupported(ecosystem string) bool {
	switch Normalize(ecosystem) {
	case spdx.EcosystemPython, spdx.EcosystemNodejs:
		return true
	}
	return false
}

// Normalize maps the free-form CSV ecosystem column onto the known tags.
func Normalize(ecosystem string) string {
	return strings.ToLower(strings.TrimSpace(ecosystem))
}

// UnsupportedError marks a request whose ecosystem has no install pathway.
// It is logged and skipped, not treated as a failure.
type UnsupportedError struct {
	Ecosystem string
}

func (it *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported ecosystem: %s", it.Ecosystem)
}

// InstallError wraps a failed environment setup or package install.
type InstallError struct {
	Identity string
	Reason   error
}

func (it *InstallError) Error() string {
	return fmt.Sprintf("install of %s failed: %v", it.Identity, it.Reason)
}

func (it *InstallError) Unwrap() error {
	return it.Reason
}
