package settings

import (
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v2"

	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/xviper"
)

const scannerPathVariable = `TRIVY_PATH`

type Settings struct {
	Scanner   string  `yaml:"scanner"`
	InputFile string  `yaml:"input"`
	OutputDir string  `yaml:"output"`
	Workers   int     `yaml:"workers"`
	Tools     Tools   `yaml:"tools"`
	Network   Network `yaml:"network"`
}

// Tools are the override command lines for the package managers. Each value
// is shlex-split before execution, so "python3 -m pipenv" works as expected.
type Tools struct {
	Pipenv string `yaml:"pipenv"`
	Python string `yaml:"python"`
	Npm    string `yaml:"npm"`
}

type Network struct {
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

var Global = Defaults()

func Defaults() *Settings {
	return &Settings{
		InputFile: "input.csv",
		OutputDir: "output",
		Tools: Tools{
			Pipenv: "python3 -m pipenv",
			Python: "python3",
			Npm:    "npm",
		},
		Network: Network{
			TimeoutSeconds: 0,
		},
	}
}

func DefaultLocation() string {
	return filepath.Join(xviper.Home(), "sbomweld.yaml")
}

// Initialize loads the settings file over the defaults. A missing file is
// not an error; a corrupt one is.
func Initialize(location string) error {
	if len(location) == 0 {
		location = DefaultLocation()
	}
	blob, err := os.ReadFile(location)
	if os.IsNotExist(err) {
		common.Trace("No settings file at %q, using defaults.", location)
		return nil
	}
	if err != nil {
		return err
	}
	loaded := Defaults()
	if err := yaml.Unmarshal(blob, loaded); err != nil {
		return err
	}
	Global = loaded
	common.Debug("Settings loaded from %q.", location)
	return nil
}

// ScannerPath resolves the trivy binary: TRIVY_PATH environment wins, then
// the settings file, then whatever PATH offers.
func (it *Settings) ScannerPath() string {
	if value := os.Getenv(scannerPathVariable); len(value) > 0 {
		return value
	}
	if len(it.Scanner) > 0 {
		return it.Scanner
	}
	if found, err := exec.LookPath("trivy"); err == nil {
		return found
	}
	return "trivy"
}

func (it *Settings) WorkerCount() int {
	return common.OptimalWorkerCount(it.Workers)
}

func (it *Settings) ConfiguredHttpTransport() *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if it.Network.TimeoutSeconds > 0 {
		transport.ResponseHeaderTimeout = time.Duration(it.Network.TimeoutSeconds) * time.Second
	}
	return transport
}
