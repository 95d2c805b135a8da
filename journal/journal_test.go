package journal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbomweld/sbomweld/hamlet"
	"github.com/sbomweld/sbomweld/journal"
	"github.com/sbomweld/sbomweld/xviper"
)

func TestUnifyCollapsesWhitespace(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal("spaced out message", journal.Unify("  spaced \t out\n  message "))
	must.Equal("plain", journal.Unify("plain"))
	must.Equal("", journal.Unify("   "))
}

func TestPostedEventsReadBack(t *testing.T) {
	must, _ := hamlet.Specifications(t)
	xviper.SetConfigFile(filepath.Join(t.TempDir(), "sbomweld.json"))
	journal.SetJournalLocation(filepath.Join(t.TempDir(), "journal.jsonl"))

	must.Nil(journal.Post("install", "python/flask@2.0.1", "install took %ds", 3))
	must.Nil(journal.Post("done", "python/flask@2.0.1", "SBOM   saved as\n%s", "out/sbom.json"))

	events, err := journal.Events()
	must.Nil(err)
	must.Equal(2, len(events))
	must.Equal("install", events[0].Stage)
	must.Equal("python/flask@2.0.1", events[0].Identity)
	must.Equal("install took 3s", events[0].Message)
	must.Equal("SBOM saved as out/sbom.json", events[1].Message)
	must.Equal(events[0].Run, events[1].Run)
	must.True(events[0].When > 0)
}

func TestEventsSkipUnparsableLines(t *testing.T) {
	must, _ := hamlet.Specifications(t)
	xviper.SetConfigFile(filepath.Join(t.TempDir(), "sbomweld.json"))
	location := filepath.Join(t.TempDir(), "journal.jsonl")
	journal.SetJournalLocation(location)

	must.Nil(journal.Post("scan", "nodejs/express@4.18.2", "scanned"))

	sink, err := os.OpenFile(location, os.O_APPEND|os.O_WRONLY, 0o644)
	must.Nil(err)
	_, err = sink.WriteString("this line was never json\n")
	must.Nil(err)
	must.Nil(sink.Close())

	must.Nil(journal.Post("done", "nodejs/express@4.18.2", "finished"))

	events, err := journal.Events()
	must.Nil(err)
	must.Equal(2, len(events))
	must.Equal("scan", events[0].Stage)
	must.Equal("done", events[1].Stage)
}
