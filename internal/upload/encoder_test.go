package upload

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"lanagram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFile(t *testing.T, w, h int) *File {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	require.NoError(t, png.Encode(&buf, img))
	return &File{Name: "test.png", Data: buf.Bytes()}
}

func TestSniffPNG(t *testing.T) {
	info, err := Sniff(pngFile(t, 4, 3))
	require.NoError(t, err)
	assert.Equal(t, "image/png", info.MIME)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, 4, info.Width)
	assert.Equal(t, 3, info.Height)
}

func TestSniffRejectsEmptyFile(t *testing.T) {
	_, err := Sniff(nil)
	assert.Equal(t, models.CodeValidation, models.CodeOf(err))

	_, err = Sniff(&File{Name: "empty.png"})
	assert.Equal(t, models.CodeValidation, models.CodeOf(err))
}

func TestSniffRejectsNonImage(t *testing.T) {
	_, err := Sniff(&File{Name: "notes.txt", Data: []byte("hello world")})
	assert.Equal(t, models.CodeValidation, models.CodeOf(err))
}

func TestSniffRejectsOversizedFile(t *testing.T) {
	_, err := Sniff(&File{Name: "big.png", Data: make([]byte, MaxFileBytes+1)})
	assert.Equal(t, models.CodeValidation, models.CodeOf(err))
}

func TestEncodeDataURI(t *testing.T) {
	uri, err := EncodeDataURI(pngFile(t, 2, 2))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("does/not/exist.png")
	assert.Equal(t, models.CodeTransport, models.CodeOf(err))
}
