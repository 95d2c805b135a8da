package spdx

import (
	"strings"

	"github.com/sbomweld/sbomweld/common"
)

// SelfNoise tells whether a package entry is the package manager's
// self-description (the lockfile/manifest pseudo-package, or for java the
// downloaded jar and sandbox path) rather than a real dependency.
func SelfNoise(ecosystem, name string) bool {
	if len(name) == 0 {
		return false
	}
	switch ecosystem {
	case EcosystemPython:
		return strings.Contains(name, "Pipfile.lock")
	case EcosystemNodejs:
		return strings.Contains(name, "package-lock.json")
	case EcosystemJava:
		return strings.HasSuffix(name, ".jar") ||
			strings.Contains(name, "tmp") ||
			strings.Contains(name, "Temp")
	}
	return false
}

// Sanitize strips self-noise packages and their relationships from the
// document. Running it twice is a no-op. Returns how many packages went.
func Sanitize(document *Document, ecosystem string) int {
	excluded := make(map[string]bool)
	for _, pkg := range document.Packages {
		if SelfNoise(ecosystem, pkg.Name) {
			excluded[pkg.SPDXID] = true
		}
	}
	return document.RemovePackages(excluded)
}

// SanitizeFile rewrites the document at path in place.
func SanitizeFile(path, ecosystem string) error {
	document, err := Read(path)
	if err != nil {
		return err
	}
	removed := Sanitize(document, ecosystem)
	common.Debug("Sanitized %q, removed %d self-noise packages.", path, removed)
	return document.Write(path)
}
