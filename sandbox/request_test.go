package sandbox_test

import (
	"testing"

	"github.com/sbomweld/sbomweld/hamlet"
	"github.com/sbomweld/sbomweld/sandbox"
)

func TestRequestIdentityAndFilename(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	request := sandbox.PackageRequest{Index: 3, Ecosystem: "python", Name: "flask", Version: "2.0.1"}
	must.Equal("python/flask@2.0.1", request.Identity())
	must.Equal("sbom_00003_python_flask@2.0.1.json", request.Filename())

	scoped := sandbox.PackageRequest{Index: 12, Ecosystem: "nodejs", Name: "@babel/core", Version: "7.23.0"}
	must.Equal("@babel_core", scoped.SafeName())
	must.Equal("sbom_00012_nodejs_@babel_core@7.23.0.json", scoped.Filename())
	wont.Equal(request.Filename(), scoped.Filename())
}

func TestRequestTagIsStableAndDistinct(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	first := sandbox.PackageRequest{Ecosystem: "python", Name: "flask", Version: "2.0.1"}
	again := sandbox.PackageRequest{Ecosystem: "python", Name: "flask", Version: "2.0.1"}
	other := sandbox.PackageRequest{Ecosystem: "python", Name: "flask", Version: "2.0.2"}

	must.Equal(first.Tag(), again.Tag())
	must.Equal(16, len(first.Tag()))
	wont.Equal(first.Tag(), other.Tag())
}

func TestEcosystemSupport(t *testing.T) {
	for _, scenario := range []struct {
		ecosystem string
		installs  bool
		graphs    bool
	}{
		{"python", true, true},
		{"nodejs", true, true},
		{"java", true, false},
		{" Python ", true, true},
		{"NODEJS", true, true},
		{"rust", false, false},
		{"", false, false},
	} {
		if sandbox.Supported(scenario.ecosystem) != scenario.installs {
			t.Errorf("Supported(%q) = %v, wanted %v", scenario.ecosystem, !scenario.installs, scenario.installs)
		}
		if sandbox.GraphSupported(scenario.ecosystem) != scenario.graphs {
			t.Errorf("GraphSupported(%q) = %v, wanted %v", scenario.ecosystem, !scenario.graphs, scenario.graphs)
		}
	}
}

func TestNormalizeFoldsCaseAndSpace(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal("python", sandbox.Normalize("  Python "))
	must.Equal("nodejs", sandbox.Normalize("NodeJS"))
	must.Equal("java", sandbox.Normalize("java"))
}
