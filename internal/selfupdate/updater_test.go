package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "mentor_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "mentor_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "mentor_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "mentor_Linux_arm64.tar.gz", false},
		{"windows amd64", "windows", "amd64", "mentor_Windows_x86_64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateAvailable(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"v1.0.0", "v1.1.0", true},
		{"1.0.0", "v1.1.0", true},
		{"v1.1.0", "v1.1.0", false},
		{"v2.0.0", "v1.9.9", false},
		{"garbage", "v1.0.0", true},
		{"v1.0.0", "garbage", false},
	}
	for _, tt := range tests {
		t.Run(tt.current+"_"+tt.latest, func(t *testing.T) {
			assert.Equal(t, tt.want, updateAvailable(tt.current, tt.latest))
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := "abc123  mentor_Linux_x86_64.tar.gz\n\ndef456  mentor_Darwin_all.tar.gz\nmalformed line here extra\n"
	got := parseChecksums([]byte(input))
	assert.Equal(t, map[string]string{
		"mentor_Linux_x86_64.tar.gz": "abc123",
		"mentor_Darwin_all.tar.gz":   "def456",
	}, got)
}

func makeTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name, Mode: 0o755, Size: int64(len(content)), Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/abhisek/mentor/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name": "v1.2.0", "html_url": "https://example.com/v1.2.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
	assert.Equal(t, "v1.2.0", res.LatestVersion)
}

func TestUpdateEndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix rename semantics")
	}

	newBinary := []byte("#!/bin/sh\necho new\n")
	asset, err := assetNameFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		t.Skipf("unsupported platform: %v", err)
	}
	archive := makeTarGz(t, "mentor", newBinary)
	sum := sha256.Sum256(archive)

	mux := http.NewServeMux()
	mux.HandleFunc("/abhisek/mentor/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v9.9.9"}`)
	})
	mux.HandleFunc("/abhisek/mentor/releases/download/v9.9.9/"+asset, func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	})
	mux.HandleFunc("/abhisek/mentor/releases/download/v9.9.9/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(sum[:]), asset)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	target := filepath.Join(t.TempDir(), "mentor")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	c.execPath = func() (string, error) { return target, nil }

	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	require.NoError(t, err)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newBinary, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestUpdateRejectsDevBuild(t *testing.T) {
	c := NewChecker()
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestVerifyChecksumMismatch(t *testing.T) {
	err := verifyChecksum([]byte("data"), "deadbeef")
	assert.ErrorIs(t, err, ErrChecksum)
}
