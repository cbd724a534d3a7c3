package middleware

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// DecompressResponse replaces a br or deflate resty body with its plain
// content. gzip is already inflated by resty itself.
func DecompressResponse(c *resty.Client, resp *resty.Response) error {
	encoding := strings.ToLower(strings.TrimSpace(resp.Header().Get("Content-Encoding")))
	if encoding == "" || encoding == "identity" || encoding == "gzip" || len(resp.Body()) == 0 {
		return nil
	}

	var reader io.Reader
	switch encoding {
	case "br":
		reader = brotli.NewReader(bytes.NewReader(resp.Body()))
	case "deflate":
		decompressed, err := inflate(resp.Body())
		if err != nil {
			return fmt.Errorf("decompress %s body: %w", encoding, err)
		}
		resp.SetBody(decompressed)
		return nil
	default:
		log.Debug().Str("encoding", encoding).Msg("Unsupported response encoding left as is")
		return nil
	}

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("decompress %s body: %w", encoding, err)
	}

	resp.SetBody(decompressed)
	return nil
}

// inflate reads an HTTP deflate body: zlib framed per RFC 9110, or raw
// DEFLATE as some servers send it.
func inflate(body []byte) ([]byte, error) {
	if zr, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
		out, err := io.ReadAll(zr)
		zr.Close()
		if err == nil {
			return out, nil
		}
	}
	fr := flate.NewReader(bytes.NewReader(body))
	defer fr.Close()
	return io.ReadAll(fr)
}
