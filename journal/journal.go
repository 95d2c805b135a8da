// Package journal keeps an append-only JSONL record of per-package events,
// durable across runs and readable back for the final report.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sbomweld/sbomweld/fail"
	"github.com/sbomweld/sbomweld/xviper"
)

type Event struct {
	When     int64  `json:"when"`
	Run      string `json:"run"`
	Stage    string `json:"stage"`
	Identity string `json:"identity"`
	Message  string `json:"message"`
}

var (
	guard    sync.Mutex
	location string
)

// SetJournalLocation points the journal at an explicit file, typically
// inside the output directory of the current run.
func SetJournalLocation(path string) {
	guard.Lock()
	defer guard.Unlock()
	location = path
}

func journalLocation() string {
	if len(location) > 0 {
		return location
	}
	return filepath.Join(xviper.Home(), "journal.jsonl")
}

// Unify collapses runs of whitespace into single spaces.
func Unify(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// Post appends one event. The journal never blocks a job: callers treat a
// posting error as uncritical.
func Post(stage, identity, form string, details ...interface{}) (err error) {
	defer fail.Around(&err)

	guard.Lock()
	defer guard.Unlock()

	event := Event{
		When:     time.Now().Unix(),
		Run:      xviper.RunIdentity(),
		Stage:    Unify(stage),
		Identity: Unify(identity),
		Message:  Unify(fmt.Sprintf(form, details...)),
	}
	blob, err := json.Marshal(event)
	fail.On(err != nil, "Could not serialize journal event -> %v", err)

	where := journalLocation()
	err = os.MkdirAll(filepath.Dir(where), 0o755)
	fail.On(err != nil, "Could not create journal directory -> %v", err)

	sink, err := os.OpenFile(where, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	fail.On(err != nil, "Could not open journal %q -> %v", where, err)
	defer sink.Close()

	_, err = fmt.Fprintf(sink, "%s\n", blob)
	fail.On(err != nil, "Could not write journal %q -> %v", where, err)
	return nil
}

// Events reads the whole journal back, skipping lines that do not parse.
func Events() ([]Event, error) {
	guard.Lock()
	defer guard.Unlock()

	source, err := os.Open(journalLocation())
	if err != nil {
		return nil, err
	}
	defer source.Close()

	events := []Event{}
	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		event := Event{}
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			continue
		}
		events = append(events, event)
	}
	return events, scanner.Err()
}
