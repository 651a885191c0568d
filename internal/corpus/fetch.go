// Package corpus fetches and unpacks the bAbI tasks archive. The archive
// is downloaded once into the data directory and every later load hits
// the cached copy.
package corpus

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

// ArchiveFileName is the cached archive's name inside the data directory.
const ArchiveFileName = "babi_tasks_1-20_v1-2.tar.gz"

const dataDirPerm = 0755

// ProgressFunc receives the number of bytes fetched so far and the total
// reported by the server (-1 when unknown).
type ProgressFunc func(fetched, total int64)

// EnsureArchive returns the local path of the corpus archive, downloading
// it into dataDir on first use. A failed download is fatal and the error
// names both the URL and the cache path so the archive can be fetched
// manually instead.
func EnsureArchive(dataDir, url string, progress ProgressFunc) (string, error) {
	archivePath := filepath.Join(dataDir, ArchiveFileName)
	if _, err := os.Stat(archivePath); err == nil {
		return archivePath, nil
	}

	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	log.Printf("Downloading bAbI corpus from %s", url)
	resp, err := http.Get(url) // #nosec G107 -- url comes from dataset settings, defaulting to the canonical corpus location
	if err != nil {
		return "", fmt.Errorf("failed to download corpus archive from %s: %w (download it manually and place it at %s)", url, err, archivePath)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Warning: failed to close response body for %s: %v", url, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("corpus archive download from %s returned status %s (download it manually and place it at %s)", url, resp.Status, archivePath)
	}

	// Download into a partial file first so an interrupted transfer never
	// poisons the cache.
	partialPath := archivePath + ".partial"
	out, err := os.Create(partialPath) // #nosec G304 -- path is derived from the configured data directory
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", partialPath, err)
	}

	var reader io.Reader = resp.Body
	if progress != nil {
		reader = &progressReader{reader: resp.Body, total: resp.ContentLength, progress: progress}
	}

	if _, err := io.Copy(out, reader); err != nil {
		_ = out.Close()
		_ = os.Remove(partialPath)
		return "", fmt.Errorf("failed to download corpus archive from %s: %w", url, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(partialPath)
		return "", fmt.Errorf("failed to close file %s: %w", partialPath, err)
	}

	if err := os.Rename(partialPath, archivePath); err != nil {
		return "", fmt.Errorf("failed to move downloaded archive into place at %s: %w", archivePath, err)
	}

	log.Printf("Cached bAbI corpus at %s", archivePath)
	return archivePath, nil
}

// progressReader reports cumulative read progress to a callback.
type progressReader struct {
	reader   io.Reader
	total    int64
	fetched  int64
	progress ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	if n > 0 {
		pr.fetched += int64(n)
		pr.progress(pr.fetched, pr.total)
	}
	return n, err
}
