// Package romimage loads a ROM image off disk, transparently
// decompressing the common archive formats ROM dumps circulate in.
package romimage

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"

	"github.com/sighmoe/rgb/internal/config"
)

// Load reads path and, if it's a .gz/.zip/.7z archive, decompresses
// and returns the first entry inside it. Any failure is returned as a
// *config.LoadError carrying the I/O exit code.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, config.NewIOError(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, config.NewIOError(err)
	}

	var decoder io.Reader
	switch filepath.Ext(path) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, config.NewIOError(err)
		}
	case ".zip":
		r, err := zip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, config.NewIOError(err)
		}
		if len(r.File) == 0 {
			return nil, config.NewIOError(io.ErrUnexpectedEOF)
		}
		decoder, err = r.File[0].Open()
		if err != nil {
			return nil, config.NewIOError(err)
		}
	case ".7z":
		r, err := sevenzip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, config.NewIOError(err)
		}
		if len(r.File) == 0 {
			return nil, config.NewIOError(io.ErrUnexpectedEOF)
		}
		decoder, err = r.File[0].Open()
		if err != nil {
			return nil, config.NewIOError(err)
		}
	default:
		return data, nil
	}

	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, config.NewIOError(err)
	}
	return out, nil
}
