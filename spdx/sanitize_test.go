package spdx_test

import (
	"testing"

	"github.com/sbomweld/sbomweld/hamlet"
	"github.com/sbomweld/sbomweld/spdx"
)

func TestSelfNoiseDetection(t *testing.T) {
	for _, scenario := range []struct {
		ecosystem string
		name      string
		noise     bool
	}{
		{"python", "Pipfile.lock", true},
		{"python", "var/task/Pipfile.lock", true},
		{"python", "flask", false},
		{"nodejs", "package-lock.json", true},
		{"nodejs", "express", false},
		{"java", "guava-31.1.jar", true},
		{"java", "/tmp/sbomweld-abc123", true},
		{"java", `C:\Users\dev\Temp\sandbox`, true},
		{"java", "guava", false},
		{"python", "", false},
		{"rust", "Cargo.lock", false},
	} {
		if spdx.SelfNoise(scenario.ecosystem, scenario.name) != scenario.noise {
			t.Errorf("SelfNoise(%q, %q) = %v, wanted %v",
				scenario.ecosystem, scenario.name, !scenario.noise, scenario.noise)
		}
	}
}

func noisyPythonDocument() *spdx.Document {
	return &spdx.Document{
		SPDXVersion: "SPDX-2.3",
		DataLicense: "CC0-1.0",
		SPDXID:      "SPDXRef-DOCUMENT",
		Name:        "Pipfile.lock",
		Packages: []spdx.Package{
			{SPDXID: "SPDXRef-Application-lock", Name: "Pipfile.lock"},
			{SPDXID: "SPDXRef-Package-flask", Name: "flask", VersionInfo: "2.0.1"},
			{SPDXID: "SPDXRef-Package-werkzeug", Name: "werkzeug", VersionInfo: "2.0.3"},
		},
		Relationships: []spdx.Relationship{
			{SpdxElementId: "SPDXRef-DOCUMENT", RelationshipType: "DESCRIBES", RelatedSpdxElement: "SPDXRef-Application-lock"},
			{SpdxElementId: "SPDXRef-Application-lock", RelationshipType: "CONTAINS", RelatedSpdxElement: "SPDXRef-Package-flask"},
			{SpdxElementId: "SPDXRef-Package-flask", RelationshipType: "DEPENDS_ON", RelatedSpdxElement: "SPDXRef-Package-werkzeug"},
		},
	}
}

func TestSanitizeStripsLockfileNoiseAndDanglingRelationships(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	document := noisyPythonDocument()
	must.Equal(1, spdx.Sanitize(document, spdx.EcosystemPython))
	must.Equal(2, len(document.Packages))
	must.Equal("flask", document.Packages[0].Name)
	must.Equal("werkzeug", document.Packages[1].Name)
	must.Equal(1, len(document.Relationships))
	must.Equal("SPDXRef-Package-flask", document.Relationships[0].SpdxElementId)
}

func TestSanitizeIsIdempotent(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	document := noisyPythonDocument()
	spdx.Sanitize(document, spdx.EcosystemPython)
	must.Equal(0, spdx.Sanitize(document, spdx.EcosystemPython))
	must.Equal(2, len(document.Packages))
	must.Equal(1, len(document.Relationships))
}

func TestSanitizeLeavesOtherEcosystemsAlone(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	document := noisyPythonDocument()
	must.Equal(0, spdx.Sanitize(document, spdx.EcosystemJava))
	must.Equal(3, len(document.Packages))
}
