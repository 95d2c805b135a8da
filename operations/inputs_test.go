package operations_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbomweld/sbomweld/hamlet"
	"github.com/sbomweld/sbomweld/operations"
	"github.com/sbomweld/sbomweld/sandbox"
)

func storeInput(t *testing.T, content string) string {
	t.Helper()
	location := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(location, []byte(content), 0o644); err != nil {
		t.Fatalf("could not store input: %v", err)
	}
	return location
}

func TestParseInputCSV(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	location := storeInput(t, `1,python,flask,2.0.1
nodejs, express,4.18.2
7,java,guava,31.1,https://repo.example.com/guava-31.1.jar
oops
NodeJS,@babel/core,7.23.0
`)
	requests, err := operations.ParseInputCSV(location)
	must.Nil(err)
	must.Equal(4, len(requests))

	must.Equal(sandbox.PackageRequest{Index: 1, Ecosystem: "python", Name: "flask", Version: "2.0.1"}, requests[0])
	must.Equal(sandbox.PackageRequest{Index: 2, Ecosystem: "nodejs", Name: "express", Version: "4.18.2"}, requests[1])
	must.Equal(sandbox.PackageRequest{
		Index:     7,
		Ecosystem: "java",
		Name:      "guava",
		Version:   "31.1",
		SourceUrl: "https://repo.example.com/guava-31.1.jar",
	}, requests[2])
	must.Equal("nodejs", requests[3].Ecosystem)
	must.Equal("@babel/core", requests[3].Name)
}

func TestParseInputCSVMissingFile(t *testing.T) {
	_, wont := hamlet.Specifications(t)

	_, err := operations.ParseInputCSV(filepath.Join(t.TempDir(), "missing.csv"))
	wont.Nil(err)
}

func TestEcosystemsOfListsDistinctSupportedTags(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	ecosystems := operations.EcosystemsOf([]sandbox.PackageRequest{
		{Ecosystem: "python", Name: "flask"},
		{Ecosystem: "nodejs", Name: "express"},
		{Ecosystem: "python", Name: "requests"},
		{Ecosystem: "rust", Name: "serde"},
	})
	must.Equal([]string{"nodejs", "python"}, ecosystems)

	must.Equal([]string{}, operations.EcosystemsOf(nil))
}
