package depgraph_test

import (
	"path/filepath"
	"testing"

	"github.com/sbomweld/sbomweld/depgraph"
	"github.com/sbomweld/sbomweld/hamlet"
	"github.com/sbomweld/sbomweld/spdx"
)

func scannedDocument() *spdx.Document {
	return &spdx.Document{
		SPDXVersion: "SPDX-2.3",
		SPDXID:      "SPDXRef-DOCUMENT",
		Name:        "Pipfile.lock",
		Packages: []spdx.Package{
			{SPDXID: "SPDXRef-Package-flask", Name: "flask", VersionInfo: "2.0.1"},
			{SPDXID: "SPDXRef-Package-werkzeug", Name: "werkzeug", VersionInfo: "2.0.3"},
		},
	}
}

func TestApplyMapsResolvableEdgesOnly(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	document := scannedDocument()
	appended := depgraph.Apply(document, []depgraph.Edge{
		{Parent: "flask", Child: "werkzeug"},
		{Parent: "flask", Child: "not-scanned"},
		{Parent: "ghost", Child: "werkzeug"},
	})
	must.Equal(1, appended)
	must.Equal(1, len(document.Relationships))
	must.Equal(spdx.Relationship{
		SpdxElementId:      "SPDXRef-Package-flask",
		RelationshipType:   spdx.RelationshipDependsOn,
		RelatedSpdxElement: "SPDXRef-Package-werkzeug",
	}, document.Relationships[0])
}

func TestApplyToFileRewritesDocumentInPlace(t *testing.T) {
	must, _ := hamlet.Specifications(t)
	location := filepath.Join(t.TempDir(), "sbom.json")

	must.Nil(scannedDocument().Write(location))
	must.Nil(depgraph.ApplyToFile(location, []depgraph.Edge{{Parent: "flask", Child: "werkzeug"}}))

	document, err := spdx.Read(location)
	must.Nil(err)
	must.Equal(1, len(document.Relationships))
	must.Equal(spdx.RelationshipDependsOn, document.Relationships[0].RelationshipType)
}
