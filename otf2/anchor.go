package otf2

import (
	"os"
	"path/filepath"
	"strconv"
)

// anchorMagic identifies an otf2 archive anchor file, the entry point a
// reader opens first (spec.md §3's "anchor file"). Chosen independently
// of the original implementation's four-byte magic since this is a
// from-scratch wire format, not a byte-compatible reimplementation.
var anchorMagic = [4]byte{'G', 'O', 'T', '2'}

const anchorFormatVersion = 1

// anchorFileName, globalDefFileName, and locationsDirName are the fixed
// names making up an archive directory's layout (spec.md §3: "an anchor
// file plus one directory of definition and event streams per
// location").
const (
	anchorFileName    = "anchor.otf2"
	globalDefFileName = "global.defs"
	locationsDirName  = "locations"
)

// Anchor is the small fixed-format file that lets a reader open an
// archive without scanning its directory: the chunk size and
// compression codec every stream in the archive shares, plus how many
// locations it has recorded.
type Anchor struct {
	ChunkSize         int
	Compression       CompressionKind
	NumberOfLocations uint64
}

func writeAnchor(dir string, a Anchor) error {
	var be bufEncoder
	be.writeBytes(anchorMagic[:])
	be.u8(anchorFormatVersion)
	be.u64(uint64(a.ChunkSize))
	be.u8(uint8(a.Compression))
	be.u64(a.NumberOfLocations)

	path := filepath.Join(dir, anchorFileName)
	if err := os.WriteFile(path, be.bytes(), 0644); err != nil {
		return errFileInteraction(err, "write anchor %s", path)
	}
	return nil
}

func readAnchor(dir string) (Anchor, error) {
	path := filepath.Join(dir, anchorFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return Anchor{}, errFileInteraction(err, "read anchor %s", path)
	}
	if len(raw) < 4+1+8+1+8 {
		return Anchor{}, errIntegrityFault("anchor file %s truncated", path)
	}
	bd := newBufDecoder(raw)
	var magic [4]byte
	copy(magic[:], bd.bytes(4))
	if magic != anchorMagic {
		return Anchor{}, errIntegrityFault("anchor file %s has wrong magic", path)
	}
	version := bd.u8()
	if version != anchorFormatVersion {
		return Anchor{}, errIntegrityFault("anchor file %s has unsupported version %d", path, version)
	}
	chunkSize := int(bd.u64())
	compression := CompressionKind(bd.u8())
	numberOfLocations := bd.u64()
	return Anchor{ChunkSize: chunkSize, Compression: compression, NumberOfLocations: numberOfLocations}, nil
}

func locationEventsPath(dir string, location LocationRef) string {
	return filepath.Join(dir, locationsDirName, locationFileStem(location)+".events")
}

func locationMappingPath(dir string, location LocationRef, kind MappedKind) string {
	return filepath.Join(dir, locationsDirName, locationFileStem(location)+mappingSuffix(kind))
}

func locationFileStem(location LocationRef) string {
	return strconv.FormatUint(uint64(location), 10)
}

func mappingSuffix(kind MappedKind) string {
	return ".map" + strconv.Itoa(int(kind))
}
