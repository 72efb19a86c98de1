// Package avatar models a selected avatar image and decodes it into a
// displayable preview.
package avatar

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/initializ/signup/validate"
)

// ErrDecodeFailed is returned when a blob cannot be turned into a preview.
var ErrDecodeFailed = errors.New("avatar decode failed")

// readChunk is the buffer size used while encoding a preview.
const readChunk = 32 * 1024

// Blob is a selected avatar file. Size and MediaType are what the file
// declared at selection time; the contents are read lazily by Decode.
type Blob struct {
	Name      string
	MediaType string
	Size      int64

	open func() (io.ReadCloser, error)
}

// FromFile builds a blob for the file at path. The media type is detected
// from the file contents.
func FromFile(path string) (*Blob, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading avatar %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("reading avatar %s: is a directory", path)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detecting avatar type %s: %w", path, err)
	}

	return &Blob{
		Name:      filepath.Base(path),
		MediaType: mtype.String(),
		Size:      info.Size(),
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// FromBytes builds an in-memory blob. An empty mediaType is detected from data.
func FromBytes(name, mediaType string, data []byte) *Blob {
	if mediaType == "" {
		mediaType = mimetype.Detect(data).String()
	}
	buf := bytes.Clone(data)
	return &Blob{
		Name:      name,
		MediaType: mediaType,
		Size:      int64(len(buf)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(buf)), nil
		},
	}
}

// FromReader builds a blob whose contents come from open. It lets callers
// supply streams that can fail mid-read.
func FromReader(name, mediaType string, size int64, open func() (io.ReadCloser, error)) *Blob {
	return &Blob{Name: name, MediaType: mediaType, Size: size, open: open}
}

// Info returns the metadata the validation rules need.
func (b *Blob) Info() *validate.AvatarInfo {
	if b == nil {
		return nil
	}
	return &validate.AvatarInfo{MediaType: b.MediaType, Size: b.Size}
}

// Bytes reads the whole blob.
func (b *Blob) Bytes() ([]byte, error) {
	if b == nil || b.open == nil {
		return nil, fmt.Errorf("%w: no contents", ErrDecodeFailed)
	}
	rc, err := b.open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	return data, nil
}

// Decode reads b and returns a base64 data URI for it. The context is
// checked between chunks; there is no other way to abandon a decode.
func Decode(ctx context.Context, b *Blob) (string, error) {
	if b == nil || b.open == nil {
		return "", fmt.Errorf("%w: no contents", ErrDecodeFailed)
	}

	rc, err := b.open()
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %w", ErrDecodeFailed, b.Name, err)
	}
	defer func() { _ = rc.Close() }()

	var out bytes.Buffer
	out.WriteString("data:" + b.MediaType + ";base64,")
	enc := base64.NewEncoder(base64.StdEncoding, &out)

	buf := make([]byte, readChunk)
	var n int64
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrDecodeFailed, err)
		}
		m, rerr := rc.Read(buf)
		if m > 0 {
			n += int64(m)
			_, _ = enc.Write(buf[:m])
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return "", fmt.Errorf("%w: reading %s: %w", ErrDecodeFailed, b.Name, rerr)
		}
	}
	_ = enc.Close()

	if n == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrDecodeFailed, b.Name)
	}
	if b.Size > 0 && n != b.Size {
		return "", fmt.Errorf("%w: %s changed while reading (%d of %d bytes)", ErrDecodeFailed, b.Name, n, b.Size)
	}
	return out.String(), nil
}
