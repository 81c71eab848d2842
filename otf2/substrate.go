package otf2

import (
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// WriteSubstrate is the append-only byte sink a WriteBuffer flushes sealed
// chunks into. Archive treats it as an external collaborator (spec.md
// §4.2's "pluggable file substrate"); the default implementation is a
// plain POSIX file, mirroring how perffile treats the underlying
// io.ReaderAt as swappable with anything that looks like a file.
type WriteSubstrate interface {
	io.Writer
	io.Closer
}

// ReadSubstrate is a random-access byte source a ReadBuffer pulls sealed
// chunks from. The default implementation memory-maps the file read-only,
// the way saferwall/pe's File backs its section reads with an mmap.MMap
// instead of repeated ReadAt calls.
type ReadSubstrate interface {
	io.ReaderAt
	Size() int64
	io.Closer
}

// posixFileSubstrate is the default WriteSubstrate: a plain append-mode
// file.
type posixFileSubstrate struct {
	f *os.File
}

// openPosixFileWrite opens (creating if necessary) path for sequential
// append writes.
func openPosixFileWrite(path string) (*posixFileSubstrate, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errFileInteraction(err, "open %s", path)
	}
	return &posixFileSubstrate{f: f}, nil
}

func (s *posixFileSubstrate) Write(p []byte) (int, error) {
	n, err := s.f.Write(p)
	if err != nil {
		return n, errFileInteraction(err, "write")
	}
	return n, nil
}

func (s *posixFileSubstrate) Close() error {
	return s.f.Close()
}

// mmapFileSubstrate is the default ReadSubstrate: a read-only mapping of
// the whole file, so repeated chunk reads never re-enter the kernel.
type mmapFileSubstrate struct {
	f   *os.File
	m   mmap.MMap
	sz  int64
}

// openMmapFileRead opens path read-only and maps it into memory.
func openMmapFileRead(path string) (*mmapFileSubstrate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errFileInteraction(err, "open %s", path)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errFileInteraction(err, "stat %s", path)
	}
	if info.Size() == 0 {
		// mmap.Map rejects zero-length files; an empty substrate reads as EOF.
		return &mmapFileSubstrate{f: f, m: nil, sz: 0}, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, errFileInteraction(err, "mmap %s", path)
	}
	return &mmapFileSubstrate{f: f, m: m, sz: info.Size()}, nil
}

func (s *mmapFileSubstrate) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= s.sz {
		return 0, io.EOF
	}
	n := copy(p, s.m[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (s *mmapFileSubstrate) Size() int64 { return s.sz }

func (s *mmapFileSubstrate) Close() error {
	if s.m != nil {
		if err := s.m.Unmap(); err != nil {
			s.f.Close()
			return errFileInteraction(err, "munmap")
		}
	}
	return s.f.Close()
}
