package scanner_test

import (
	"testing"

	"github.com/sbomweld/sbomweld/hamlet"
	"github.com/sbomweld/sbomweld/scanner"
)

func TestCommandBuildsScannerArguments(t *testing.T) {
	must, _ := hamlet.Specifications(t)
	t.Setenv("TRIVY_PATH", "trivy")

	command, err := scanner.Command(scanner.Filesystem, "Pipfile.lock", "out/sbom.json")
	must.Nil(err)
	must.Equal([]string{"trivy", "fs", "Pipfile.lock", "--format", "spdx-json", "--output", "out/sbom.json"}, command)

	command, err = scanner.Command(scanner.RootFS, "/sandbox/dir", "out/sbom.json")
	must.Nil(err)
	must.Equal("rootfs", command[1])
	must.Equal("/sandbox/dir", command[2])
}

func TestCommandSplitsOverriddenScanner(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	t.Setenv("TRIVY_PATH", "podman run aquasec/trivy")
	command, err := scanner.Command(scanner.Filesystem, "package-lock.json", "sbom.json")
	must.Nil(err)
	must.Equal([]string{"podman", "run", "aquasec/trivy"}, command[:3])

	t.Setenv("TRIVY_PATH", `"broken quote`)
	_, err = scanner.Command(scanner.Filesystem, "package-lock.json", "sbom.json")
	wont.Nil(err)
}
