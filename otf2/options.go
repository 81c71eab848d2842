package otf2

import (
	"time"

	"go.uber.org/zap"
)

// Default tuning constants, the implicit knobs the original C library
// hard-codes that SPEC_FULL.md §2 asks to surface as configuration,
// grounded on ignite/pkg/options' defaults.go pattern of named constant
// defaults plus an Option-populating constructor.
const (
	// DefaultChunkSize is the default fixed chunk size of a chunked
	// buffer (spec.md §3, "default 1 MiB").
	DefaultChunkSize = 1 << 20

	// DenseMapThreshold is the largest local identifier space for which
	// a dense (array-indexed) mapping table is chosen over a sparse
	// (sorted-pair) one, see SPEC_FULL.md §5.7.
	DenseMapThreshold = 1 << 16
)

// RewindOnFlushPolicy controls what Writer.Rewind does when the stored
// rewind point has been crossed by an intervening flush. See
// SPEC_FULL.md §9.
type RewindOnFlushPolicy int

const (
	// RewindFailOnFlush fails the rewind with ErrorCodePropertyNameInvalid,
	// the spec.md §4.2 default.
	RewindFailOnFlush RewindOnFlushPolicy = iota

	// RewindMarkOnFlush instead emits a Rewind event record (see
	// SPEC_FULL.md §9) and returns nil. Nothing written since the rewind
	// point is discarded: neither the flushed chunks on the substrate nor
	// the records in the current in-memory chunk.
	RewindMarkOnFlush
)

// ArchiveOptions configures an Archive created with Create or opened with
// Open.
type ArchiveOptions struct {
	// ChunkSize is the fixed chunk size used by every per-location
	// buffer in this archive. Zero means DefaultChunkSize.
	ChunkSize int

	// Compressor compresses/decompresses sealed chunks before they
	// reach the substrate. Nil means NopCompressor{} (no compression).
	Compressor Compressor

	// Logger is handed to this archive's writers, which log demoted
	// rewind points, and to its readers, which log nothing. A
	// GlobalMerger takes its own logger (NewGlobalMerger). Nil means
	// zap.NewNop().
	Logger *zap.Logger

	// RewindOnFlush selects the behavior of Writer.Rewind when a flush
	// has crossed the stored rewind point.
	RewindOnFlush RewindOnFlushPolicy

	// Clock returns the current time in the archive's timestamp domain,
	// used to stamp BufferFlush records. Nil means defaultClock (wall
	// clock nanoseconds).
	Clock func() uint64
}

func (o ArchiveOptions) withDefaults() ArchiveOptions {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.Compressor == nil {
		o.Compressor = NopCompressor{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Clock == nil {
		o.Clock = defaultClock
	}
	return o
}

// defaultClock stamps records with wall-clock nanoseconds since the Unix
// epoch, the same timestamp domain SPEC_FULL.md §3 assumes when no
// external clock synchronization definitions are present.
func defaultClock() uint64 {
	return uint64(time.Now().UnixNano())
}
