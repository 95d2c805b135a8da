// Package cloud downloads artifacts over HTTP. The java pathway uses it to
// pull the named jar into a sandbox before scanning.
package cloud

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/fail"
	"github.com/sbomweld/sbomweld/settings"
)

const downloadReportStep = 1 << 20

// progressWriter tracks bytes written and forwards them to a callback.
type progressWriter struct {
	writer  io.Writer
	notify  func(written int64)
	written int64
}

func (it *progressWriter) Write(blob []byte) (int, error) {
	count, err := it.writer.Write(blob)
	it.written += int64(count)
	if it.notify != nil {
		it.notify(it.written)
	}
	return count, err
}

// Download fetches the url into filename. Registry and network failures are
// normal, recoverable errors for the calling job.
func Download(ctx context.Context, url, filename string) (err error) {
	defer fail.Around(&err)

	client := &http.Client{Transport: settings.Global.ConfiguredHttpTransport()}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	fail.On(err != nil, "Invalid download request for %q -> %v", url, err)

	response, err := client.Do(request)
	fail.On(err != nil, "Download of %q failed -> %v", url, err)
	defer response.Body.Close()
	fail.On(response.StatusCode < 200 || 299 < response.StatusCode,
		"Download of %q failed with status %d!", url, response.StatusCode)

	sink, err := os.Create(filename)
	fail.On(err != nil, "Failed to create %q -> %v", filename, err)
	defer sink.Close()

	digest := sha256.New()
	many := io.MultiWriter(sink, digest)
	reported := int64(0)
	total, err := io.Copy(&progressWriter{writer: many, notify: func(written int64) {
		if written-reported >= downloadReportStep {
			reported = written
			common.Debug("Downloading %q, %d bytes so far.", filename, written)
		}
	}}, response.Body)
	fail.On(err != nil, "Failed to copy %q to %q -> %v", url, filename, err)

	err = sink.Sync()
	fail.On(err != nil, "Failed to sync %q -> %v", filename, err)

	common.Debug("Downloaded %d bytes from %q as %q [sha256: %s].",
		total, url, filename, fmt.Sprintf("%02x", digest.Sum(nil)))
	return nil
}
