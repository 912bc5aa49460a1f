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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAssetFor(t *testing.T) {
	cases := []struct {
		goos, goarch string
		want         string
	}{
		{"darwin", "amd64", "lingua_Darwin_all.tar.gz"},
		{"darwin", "arm64", "lingua_Darwin_all.tar.gz"},
		{"linux", "amd64", "lingua_Linux_x86_64.tar.gz"},
		{"linux", "arm64", "lingua_Linux_arm64.tar.gz"},
		{"linux", "386", "lingua_Linux_i386.tar.gz"},
		{"windows", "amd64", "lingua_Windows_x86_64.zip"},
		{"windows", "arm64", "lingua_Windows_arm64.zip"},
	}
	for _, c := range cases {
		t.Run(c.goos+"/"+c.goarch, func(t *testing.T) {
			got, err := releaseAssetFor(c.goos, c.goarch)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	t.Run("unsupported targets", func(t *testing.T) {
		_, err := releaseAssetFor("freebsd", "amd64")
		assert.Error(t, err)
		_, err = releaseAssetFor("linux", "mips")
		assert.Error(t, err)
	})
}

func TestChecksumIndex(t *testing.T) {
	t.Run("two entries", func(t *testing.T) {
		idx := checksumIndex([]byte("abc123  lingua_Darwin_all.tar.gz\ndef456  lingua_Linux_x86_64.tar.gz\n"))
		assert.Equal(t, "abc123", idx["lingua_Darwin_all.tar.gz"])
		assert.Equal(t, "def456", idx["lingua_Linux_x86_64.tar.gz"])
		assert.Len(t, idx, 2)
	})

	t.Run("empty file", func(t *testing.T) {
		assert.Empty(t, checksumIndex(nil))
	})

	t.Run("skips malformed lines", func(t *testing.T) {
		idx := checksumIndex([]byte("abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n"))
		assert.Equal(t, map[string]string{
			"file.tar.gz":  "abc123",
			"other.tar.gz": "ghi789",
		}, idx)
	})
}

func TestCheckSHA256(t *testing.T) {
	payload := []byte("estoy aprendiendo")
	sum := sha256.Sum256(payload)

	assert.NoError(t, checkSHA256(payload, hex.EncodeToString(sum[:])))

	err := checkSHA256(payload, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestBinaryFromArchive(t *testing.T) {
	bin := []byte("#!/bin/sh\necho hola")

	t.Run("finds the binary in a tarball", func(t *testing.T) {
		got, err := binaryFromArchive(packTarGz(t, "lingua", bin), "lingua_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, bin, got)
	})

	t.Run("binary absent", func(t *testing.T) {
		_, err := binaryFromArchive(packTarGz(t, "README.md", bin), "lingua_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinaryKeepsPermissions(t *testing.T) {
	target := filepath.Join(t.TempDir(), "lingua")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("fresh-build")
	sum := sha256.Sum256(replacement)
	require.NoError(t, swapBinary(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// releaseMirror serves a fake GitHub release: the latest-release JSON, the
// archive asset, and a checksums.txt with the given contents.
func releaseMirror(t *testing.T, tag, asset string, archive, checksums []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/abhisek/lingua/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
		case fmt.Sprintf("/abhisek/lingua/releases/download/%s/%s", tag, asset):
			_, _ = w.Write(archive)
		case fmt.Sprintf("/abhisek/lingua/releases/download/%s/checksums.txt", tag):
			_, _ = w.Write(checksums)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdate(t *testing.T) {
	asset, err := releaseAsset()
	require.NoError(t, err)
	bin := []byte("next-lingua-release")
	archive := packTarGz(t, "lingua", bin)
	sum := sha256.Sum256(archive)
	goodChecksums := []byte(fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), asset))

	t.Run("replaces the running binary", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "lingua")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		srv := releaseMirror(t, "v2.0.0", asset, archive, goodChecksums)
		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, bin, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("refuses dev builds", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already on the latest tag", func(t *testing.T) {
		srv := releaseMirror(t, "v1.0.0", asset, archive, goodChecksums)
		err := NewChecker(WithBaseURL(srv.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("rejects a tampered archive", func(t *testing.T) {
		bad := []byte(fmt.Sprintf("%064d  %s\n", 0, asset))
		srv := releaseMirror(t, "v2.0.0", asset, archive, bad)
		err := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("surfaces a download failure", func(t *testing.T) {
		srv := releaseMirror(t, "v2.0.0", "some-other-asset.tar.gz", nil, nil)
		err := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func packTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0755}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
