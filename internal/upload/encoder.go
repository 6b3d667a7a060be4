// Package upload converts selected files into data URIs for storage.
//
// The pipeline never re-encodes pixels: the original bytes go into the
// URI verbatim. Decoding is only used to sniff that the file really is
// an image and to read its dimensions.
package upload

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"

	"lanagram/internal/models"

	_ "golang.org/x/image/webp"
)

// MaxFileBytes caps a single upload. Data URIs are rewritten into the
// whole-collection snapshot on every mutation, so huge files hurt
// every later write.
const MaxFileBytes = 10 << 20 // 10 MiB

// File is a selected file: its original name and raw contents.
type File struct {
	Name string
	Data []byte
}

// Info describes a sniffed image.
type Info struct {
	MIME   string
	Format string
	Width  int
	Height int
}

// ReadFile loads a file from disk. Read failures are transport errors:
// the action is aborted with no state change.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, models.NewTransportError("could not read the selected file", err)
	}
	return &File{Name: path, Data: data}, nil
}

// Sniff verifies the file holds a supported image (JPEG, PNG, GIF, or
// WebP) and returns its content type and dimensions.
func Sniff(f *File) (*Info, error) {
	if f == nil || len(f.Data) == 0 {
		return nil, models.NewValidationError("Please choose an image file.")
	}
	if len(f.Data) > MaxFileBytes {
		return nil, models.NewValidationError("Image is too large (max 10 MiB).")
	}

	mime := http.DetectContentType(f.Data)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(f.Data))
	if err != nil {
		return nil, models.NewValidationError("The selected file is not a supported image.")
	}
	return &Info{MIME: mime, Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// EncodeDataURI validates the file and returns it as a base64 data URI.
func EncodeDataURI(f *File) (string, error) {
	info, err := Sniff(f)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:%s;base64,%s", info.MIME, base64.StdEncoding.EncodeToString(f.Data)), nil
}
