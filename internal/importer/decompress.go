package importer

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// readMaybeGzip reads a file, transparently decompressing .gz files.
func readMaybeGzip(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return io.ReadAll(f)
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gzip %s: %w", path, err)
	}
	defer gz.Close()

	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	return data, nil
}
