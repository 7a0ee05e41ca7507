package codec

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"text", []byte("This is test file content that will be compressed")},
		{"binary", []byte{0x00, 0xff, 0x10, 0x80, 0x7f, 0x00, 0x00, 0x01}},
		{"repetitive", bytes.Repeat([]byte("abc123"), 10000)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			compressed, size := Compress(tc.data)
			if size != int64(len(tc.data)) {
				t.Errorf("recorded size %d, want %d", size, len(tc.data))
			}

			raw, err := Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(raw, tc.data) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(raw), len(tc.data))
			}
		})
	}
}

func TestCompressShrinksRepetitiveInput(t *testing.T) {
	data := bytes.Repeat([]byte("osint"), 5000)
	compressed, size := Compress(data)
	if int64(len(compressed)) >= size {
		t.Errorf("expected compression, got %d compressed for %d raw", len(compressed), size)
	}
}

func TestDecompressRejectsGarbage(t *testing.T) {
	if _, err := Decompress([]byte("not a zstd frame")); err == nil {
		t.Error("expected an error decompressing garbage")
	}
}
