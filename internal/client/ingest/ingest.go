// Package ingest turns user supplied image files into data URIs that can be
// stored as a plain string field.
//
// Reading is I/O bound, so besides the blocking Ingest there is Start, which
// runs the read in the background and signals a single completion.
package ingest

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/realverse/internal/common"
)

// DefaultMaxBytes keeps a single image well inside a typical 5 MB browser
// storage quota once base64 encoded.
const DefaultMaxBytes = 2 << 20

// Upload is a file picked by the user.
type Upload struct {
	Name   string
	Reader io.Reader
}

// InlineImage is an image encoded as a data URI.
type InlineImage struct {
	Name      string
	MediaType string
	Size      int64
	DataURI   string
}

// Ingester reads uploads up to a size limit.
type Ingester struct {
	maxBytes int64
}

// New returns an Ingester accepting files up to maxBytes. maxBytes <= 0 means
// DefaultMaxBytes.
func New(maxBytes int64) *Ingester {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Ingester{maxBytes: maxBytes}
}

// Ingest reads the whole upload and encodes it. It fails with
// common.ErrUnsupportedOrUnreadable when there is no file, the read fails, the
// file is empty or too large, or it is not an image.
//
// The media type is sniffed from the content; when sniffing does not find an
// image type, the file extension decides.
func (in *Ingester) Ingest(ctx context.Context, up Upload) (InlineImage, error) {
	if up.Reader == nil {
		return InlineImage{}, fmt.Errorf("%w: no file provided", common.ErrUnsupportedOrUnreadable)
	}
	if err := ctx.Err(); err != nil {
		return InlineImage{}, err
	}

	data, err := io.ReadAll(io.LimitReader(up.Reader, in.maxBytes+1))
	if err != nil {
		return InlineImage{}, fmt.Errorf("%w: read %s: %w", common.ErrUnsupportedOrUnreadable, up.Name, err)
	}
	if len(data) == 0 {
		return InlineImage{}, fmt.Errorf("%w: %s is empty", common.ErrUnsupportedOrUnreadable, up.Name)
	}
	if int64(len(data)) > in.maxBytes {
		return InlineImage{}, fmt.Errorf("%w: %s is larger than %d bytes", common.ErrUnsupportedOrUnreadable, up.Name, in.maxBytes)
	}

	mediaType := detectImageType(up.Name, data)
	if mediaType == "" {
		return InlineImage{}, fmt.Errorf("%w: %s is not an image", common.ErrUnsupportedOrUnreadable, up.Name)
	}

	return InlineImage{
		Name:      up.Name,
		MediaType: mediaType,
		Size:      int64(len(data)),
		DataURI:   EncodeDataURI(mediaType, data),
	}, nil
}

// EncodeDataURI builds a base64 data URI.
func EncodeDataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI is the inverse of EncodeDataURI.
func DecodeDataURI(uri string) (mediaType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errors.New("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("data URI without payload")
	}
	mediaType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, errors.New("data URI is not base64 encoded")
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URI: %w", err)
	}
	return mediaType, data, nil
}

func detectImageType(name string, data []byte) string {
	sniffed, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	if strings.HasPrefix(sniffed, "image/") {
		return sniffed
	}
	byExt, _, _ := mime.ParseMediaType(mime.TypeByExtension(strings.ToLower(filepath.Ext(name))))
	if strings.HasPrefix(byExt, "image/") {
		return byExt
	}
	return ""
}
