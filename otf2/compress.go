package otf2

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// CompressionKind identifies the wire-level chunk compression in effect
// for an archive (spec.md §4.2's "pluggable compression codec"). It is
// chosen once when the archive is created and recorded in the anchor file
// so readers never have to guess.
type CompressionKind uint8

const (
	CompressionNone CompressionKind = iota
	CompressionZlib
)

func (k CompressionKind) String() string {
	switch k {
	case CompressionNone:
		return "none"
	case CompressionZlib:
		return "zlib"
	default:
		return "unknown"
	}
}

// Compressor is the pluggable chunk compression codec. Archive treats it
// as an external collaborator exactly the way the teacher's package
// treats an mmap.MMap or os.File: the chunked buffer never knows which
// concrete codec is behind the interface, only that Compress/Decompress
// round-trip a whole sealed chunk.
type Compressor interface {
	Kind() CompressionKind
	Compress(chunk []byte) ([]byte, error)
	Decompress(compressed []byte, rawSize int) ([]byte, error)
}

// NopCompressor stores chunks uncompressed. It is the zero-configuration
// default (ArchiveOptions.withDefaults).
type NopCompressor struct{}

func (NopCompressor) Kind() CompressionKind { return CompressionNone }

func (NopCompressor) Compress(chunk []byte) ([]byte, error) {
	return chunk, nil
}

func (NopCompressor) Decompress(compressed []byte, rawSize int) ([]byte, error) {
	return compressed, nil
}

// ZlibCompressor compresses each sealed chunk independently with DEFLATE,
// the way distri's installer reaches for klauspost/compress rather than
// the standard library's compress/* for anything throughput-sensitive.
type ZlibCompressor struct {
	// Level is passed to zlib.NewWriterLevel; zero means zlib.DefaultCompression.
	Level int
}

func (ZlibCompressor) Kind() CompressionKind { return CompressionZlib }

func (c ZlibCompressor) Compress(chunk []byte) ([]byte, error) {
	level := c.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, errFileInteraction(err, "zlib writer")
	}
	if _, err := w.Write(chunk); err != nil {
		return nil, errFileInteraction(err, "zlib compress")
	}
	if err := w.Close(); err != nil {
		return nil, errFileInteraction(err, "zlib compress")
	}
	return buf.Bytes(), nil
}

func (c ZlibCompressor) Decompress(compressed []byte, rawSize int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errIntegrityFault("zlib reader: %v", err)
	}
	defer r.Close()
	out := make([]byte, rawSize)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, errIntegrityFault("zlib decompress: %v", err)
	}
	return out, nil
}

func compressorForKind(k CompressionKind) (Compressor, error) {
	switch k {
	case CompressionNone:
		return NopCompressor{}, nil
	case CompressionZlib:
		return ZlibCompressor{}, nil
	default:
		return nil, errInvalidArgument("unknown compression kind %d", k)
	}
}
