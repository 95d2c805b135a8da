package operations

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/sandbox"
)

func allDigits(value string) bool {
	if len(value) == 0 {
		return false
	}
	for _, char := range value {
		if char < '0' || '9' < char {
			return false
		}
	}
	return true
}

// ParseInputCSV reads the package list. Rows are
// `[index,] ecosystem, name, version[, url]`; the leading index column is
// optional and detected by it being numeric. Rows with too few columns are
// skipped, not fatal.
func ParseInputCSV(path string) ([]sandbox.PackageRequest, error) {
	source, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	requests := []sandbox.PackageRequest{}
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line += 1
		if err != nil {
			common.Log("Warning: skipping unparsable input row %d: %v", line, err)
			continue
		}
		index := 0
		if len(row) > 3 && allDigits(row[0]) {
			index, _ = strconv.Atoi(row[0])
			row = row[1:]
		}
		if len(row) < 3 {
			common.Debug("Skipping short input row %d (%d columns).", line, len(row))
			continue
		}
		if index == 0 {
			index = len(requests) + 1
		}
		request := sandbox.PackageRequest{
			Index:     index,
			Ecosystem: sandbox.Normalize(row[0]),
			Name:      row[1],
			Version:   row[2],
		}
		if len(row) > 3 {
			request.SourceUrl = row[3]
		}
		requests = append(requests, request)
	}
	return requests, nil
}
