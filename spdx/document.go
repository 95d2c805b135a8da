package spdx

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadError marks a missing or corrupt SBOM/graph file. The merge engine
// skips these inputs instead of failing the whole run.
type ReadError struct {
	Path   string
	Reason error
}

func (it *ReadError) Error() string {
	return fmt.Sprintf("cannot read %q: %v", it.Path, it.Reason)
}

func (it *ReadError) Unwrap() error {
	return it.Reason
}

// Read loads and validates one SPDX document.
func Read(path string) (*Document, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Reason: err}
	}
	document := &Document{}
	if err := json.Unmarshal(blob, document); err != nil {
		return nil, &ReadError{Path: path, Reason: err}
	}
	if len(document.SPDXVersion) == 0 || len(document.SPDXID) == 0 {
		return nil, &ReadError{Path: path, Reason: fmt.Errorf("not an SPDX document envelope")}
	}
	return document, nil
}

// Write stores the document as indented JSON, the same form trivy emits.
func (it *Document) Write(path string) error {
	blob, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, blob, 0o644)
}

// NameToSPDXID builds the lookup used for dependency graph mapping.
func (it *Document) NameToSPDXID() map[string]string {
	lookup := make(map[string]string, len(it.Packages))
	for _, pkg := range it.Packages {
		if len(pkg.Name) > 0 && len(pkg.SPDXID) > 0 {
			lookup[pkg.Name] = pkg.SPDXID
		}
	}
	return lookup
}

// RemovePackages drops the identified packages and every relationship that
// touches one of them, keeping the no-dangling-references invariant.
func (it *Document) RemovePackages(excluded map[string]bool) int {
	if len(excluded) == 0 {
		return 0
	}
	kept := make([]Package, 0, len(it.Packages))
	removed := 0
	for _, pkg := range it.Packages {
		if excluded[pkg.SPDXID] {
			removed += 1
			continue
		}
		kept = append(kept, pkg)
	}
	it.Packages = kept

	relationships := make([]Relationship, 0, len(it.Relationships))
	for _, relationship := range it.Relationships {
		if excluded[relationship.SpdxElementId] || excluded[relationship.RelatedSpdxElement] {
			continue
		}
		relationships = append(relationships, relationship)
	}
	it.Relationships = relationships
	return removed
}
