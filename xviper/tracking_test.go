package xviper_test

import (
	"path/filepath"
	"testing"

	"github.com/sbomweld/sbomweld/hamlet"
	"github.com/sbomweld/sbomweld/xviper"
)

func TestAsGuidShapesBytesIntoGuidForm(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	content := make([]byte, 32)
	for at := range content {
		content[at] = byte(at)
	}
	must.Equal("00010203-0405-0607-0809-0a0b0c0d0e0f", xviper.AsGuid(content))
}

func TestRunIdentityIsCreatedOnceAndPersisted(t *testing.T) {
	must, wont := hamlet.Specifications(t)
	xviper.SetConfigFile(filepath.Join(t.TempDir(), "sbomweld.json"))

	identity := xviper.RunIdentity()
	wont.Equal("", identity)
	must.Equal(36, len(identity))
	must.Equal(identity, xviper.RunIdentity())
}

func TestNextRunCounterAdvances(t *testing.T) {
	must, _ := hamlet.Specifications(t)
	xviper.SetConfigFile(filepath.Join(t.TempDir(), "sbomweld.json"))

	first := xviper.NextRunCounter()
	must.Equal(1, first)
	must.Equal(2, xviper.NextRunCounter())
}
