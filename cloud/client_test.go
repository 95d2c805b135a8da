package cloud_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sbomweld/sbomweld/cloud"
	"github.com/sbomweld/sbomweld/hamlet"
)

func TestDownloadStoresArtifact(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	payload := []byte("not really a jar, but close enough")
	server := httptest.NewServer(http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		response.Write(payload)
	}))
	defer server.Close()

	target := filepath.Join(t.TempDir(), "demo-1.0.jar")
	must.Nil(cloud.Download(context.Background(), server.URL+"/demo-1.0.jar", target))

	stored, err := os.ReadFile(target)
	must.Nil(err)
	must.Equal(payload, stored)
}

func TestDownloadRejectsBadStatus(t *testing.T) {
	_, wont := hamlet.Specifications(t)

	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	target := filepath.Join(t.TempDir(), "missing.jar")
	err := cloud.Download(context.Background(), server.URL+"/missing.jar", target)
	wont.Nil(err)
}

func TestDownloadRejectsBrokenUrl(t *testing.T) {
	_, wont := hamlet.Specifications(t)

	target := filepath.Join(t.TempDir(), "nowhere.jar")
	err := cloud.Download(context.Background(), "http://127.0.0.1:1/nowhere.jar", target)
	wont.Nil(err)
}
