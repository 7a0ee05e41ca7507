// Package codec compresses attachment blobs for storage. Attachments are
// held zstd-compressed at rest; the uncompressed size is captured before
// compression so listings never need to decompress.
package codec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

var (
	encoder *zstd.Encoder
	decoder *zstd.Decoder
)

func init() {
	var err error
	encoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Sprintf("failed to initialize zstd encoder: %v", err))
	}
	decoder, err = zstd.NewReader(nil)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize zstd decoder: %v", err))
	}
}

// Compress returns the compressed form of raw together with the
// uncompressed size, which callers must persist alongside the blob.
func Compress(raw []byte) ([]byte, int64) {
	return encoder.EncodeAll(raw, nil), int64(len(raw))
}

// Decompress reverses Compress. Decompress(Compress(b)) == b for every
// byte sequence, including the empty one.
func Decompress(data []byte) ([]byte, error) {
	raw, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress attachment data: %w", err)
	}
	return raw, nil
}
