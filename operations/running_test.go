package operations

import (
	"path/filepath"
	"testing"

	"github.com/sbomweld/sbomweld/hamlet"
	"github.com/sbomweld/sbomweld/journal"
	"github.com/sbomweld/sbomweld/xviper"
)

func TestParseGraphNormalizesEcosystem(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	pipenvBlob := []byte(`[{"package": {"key": "flask"}, "dependencies": [{"key": "werkzeug"}]}]`)
	edges, err := parseGraph(" Python ", pipenvBlob)
	must.Nil(err)
	must.Equal(1, len(edges))

	npmBlob := []byte(`{"name": "app", "version": "1.0.0", "dependencies": {"left": {"version": "1.0.0"}}}`)
	edges, err = parseGraph("NodeJS", npmBlob)
	must.Nil(err)
	must.Equal(1, len(edges))

	_, err = parseGraph("rust", nil)
	wont.Nil(err)
}

func TestJournalCausesTallyStages(t *testing.T) {
	must, _ := hamlet.Specifications(t)
	xviper.SetConfigFile(filepath.Join(t.TempDir(), "sbomweld.json"))
	journal.SetJournalLocation(filepath.Join(t.TempDir(), "journal.jsonl"))

	must.Nil(journal.Post(StageInstall, "python/flask@2.0.1", "failed: pipenv exited with 1"))
	must.Nil(journal.Post(StageDone, "python/requests@2.31.0", "SBOM saved"))
	must.Nil(journal.Post(StageDone, "nodejs/express@4.18.2", "SBOM saved"))

	causes, err := JournalCauses()
	must.Nil(err)
	must.Equal(1, causes[StageInstall])
	must.Equal(2, causes[StageDone])
	must.Equal(0, causes[StageScan])
}
