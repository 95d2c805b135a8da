package spdx

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sbomweld/sbomweld/common"
)

// MergedFilename is the consolidated document name for one ecosystem.
func MergedFilename(ecosystem string) string {
	return fmt.Sprintf("%s_packages.json", ecosystem)
}

func matchingDocuments(outputDir, ecosystem string) ([]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, &ReadError{Path: outputDir, Reason: err}
	}
	tag := fmt.Sprintf("_%s_", ecosystem)
	found := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		if strings.Contains(name, tag) {
			found = append(found, name)
		}
	}
	// Lexicographic order keeps the "first document wins" envelope rule
	// reproducible between runs.
	sort.Strings(found)
	return found, nil
}

// Merge consolidates every per-package document tagged for one ecosystem in
// outputDir into a single document at mergedPath. Two passes: first collect
// the envelope and any residual self-noise identifiers, then combine the
// package and relationship arrays minus the excluded entries. Unreadable
// inputs are skipped with a warning, never fatal.
func Merge(outputDir, ecosystem, mergedPath string) error {
	names, err := matchingDocuments(outputDir, ecosystem)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		common.Debug("No %q documents under %q, nothing to merge.", ecosystem, outputDir)
		return nil
	}

	merged := &Document{
		Packages:      []Package{},
		Relationships: []Relationship{},
	}
	excluded := make(map[string]bool)
	unreadable := make(map[string]bool)
	envelopeDone := false

	for _, name := range names {
		path := filepath.Join(outputDir, name)
		document, err := Read(path)
		if err != nil {
			common.Log("Warning: skipping %q in merge: %v", name, err)
			unreadable[name] = true
			continue
		}
		if !envelopeDone {
			merged.SPDXVersion = document.SPDXVersion
			merged.DataLicense = document.DataLicense
			merged.SPDXID = document.SPDXID
			merged.Name = document.Name
			merged.DocumentNamespace = document.DocumentNamespace
			merged.CreationInfo = document.CreationInfo
			envelopeDone = true
		}
		for _, pkg := range document.Packages {
			if SelfNoise(ecosystem, pkg.Name) {
				excluded[pkg.SPDXID] = true
			}
		}
	}

	seenPackages := make(map[string]bool)
	seenRelationships := make(map[Relationship]bool)
	for _, name := range names {
		if unreadable[name] {
			continue
		}
		document, err := Read(filepath.Join(outputDir, name))
		if err != nil {
			common.Log("Warning: skipping %q in merge: %v", name, err)
			continue
		}
		for _, pkg := range document.Packages {
			if excluded[pkg.SPDXID] || seenPackages[pkg.SPDXID] {
				continue
			}
			seenPackages[pkg.SPDXID] = true
			merged.Packages = append(merged.Packages, pkg)
		}
		for _, relationship := range document.Relationships {
			if excluded[relationship.SpdxElementId] || excluded[relationship.RelatedSpdxElement] {
				continue
			}
			if seenRelationships[relationship] {
				continue
			}
			seenRelationships[relationship] = true
			merged.Relationships = append(merged.Relationships, relationship)
		}
	}

	if !envelopeDone {
		common.Log("Warning: no readable %q documents under %q, nothing to merge.", ecosystem, outputDir)
		return nil
	}

	common.Log("Merged %d %q documents into %q (%d packages, %d relationships).",
		len(names)-len(unreadable), ecosystem, mergedPath, len(merged.Packages), len(merged.Relationships))
	return merged.Write(mergedPath)
}
