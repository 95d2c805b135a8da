package depgraph

import (
	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/spdx"
)

// Apply appends a DEPENDS_ON relationship for every edge whose endpoints
// both resolve to packages in the document. The scanner's package
// enumeration is ground truth: edges naming packages it did not surface are
// silently dropped. Returns the number of relationships appended.
func Apply(document *spdx.Document, edges []Edge) int {
	lookup := document.NameToSPDXID()
	appended := 0
	for _, edge := range edges {
		parent, ok := lookup[edge.Parent]
		if !ok {
			continue
		}
		child, ok := lookup[edge.Child]
		if !ok {
			continue
		}
		document.Relationships = append(document.Relationships, spdx.Relationship{
			SpdxElementId:      parent,
			RelationshipType:   spdx.RelationshipDependsOn,
			RelatedSpdxElement: child,
		})
		appended += 1
	}
	return appended
}

// ApplyToFile maps the edges into the document at path, in place.
func ApplyToFile(path string, edges []Edge) error {
	document, err := spdx.Read(path)
	if err != nil {
		return err
	}
	appended := Apply(document, edges)
	common.Debug("Mapped %d of %d dependency edges into %q.", appended, len(edges), path)
	return document.Write(path)
}
