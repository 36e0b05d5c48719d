package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/folds"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// File is a text file opened as a sequence of fragments.
//
// Fragments are loaded by a background goroutine in storage order; folding
// the sequence before loading has finished is legal and will block on the
// first fragment not yet loaded.
type File struct {
	path  string
	info  os.FileInfo
	file  *os.File
	cast  *caster.Caster // broadcaster for async load progress
	frags []*fileFragment
	done  sync.WaitGroup

	mx        sync.Mutex
	lastError error
}

// Loaded is the progress event broadcast for every fragment as soon as its
// bytes have arrived.
type Loaded struct {
	Pos int64 // fragment start position within the file
	Len int   // fragment length in bytes
}

// Load opens a text file and returns it as a lazily loaded fragment
// sequence. Clients may indicate a recommended fragment length; a fragSize
// of 0 lets Load use sensible defaults derived from the file size.
//
// Opening of the file is always done synchronously; reading the content is
// not. Use Wait to block until the whole file has been read, or fold the
// sequence right away.
func Load(name string, fragSize int64) (*File, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	size := f.info.Size()
	if fragSize <= 0 || fragSize > tenKb {
		fragSize = defaultFragSize(size)
	}
	for pos := int64(0); pos < size; pos += fragSize {
		length := fragSize
		if size-pos < length {
			length = size - pos
		}
		f.frags = append(f.frags, &fileFragment{
			pos:    pos,
			length: int(length),
			ready:  make(chan struct{}),
		})
	}
	tracer().Debugf("textfile: loading %q as %d fragments", name, len(f.frags))
	f.done.Add(1)
	go f.loadAllFragments()
	return f, nil
}

// Sequence returns the file content as a fragment sequence.
func (f *File) Sequence() folds.Sequence[folds.Fragment] {
	frags := make([]folds.Fragment, len(f.frags))
	for i, frag := range f.frags {
		frags[i] = frag
	}
	return folds.FromSlice(frags)
}

// Wait blocks until all fragments have been loaded and returns the first
// I/O error encountered, if any.
func (f *File) Wait() error {
	f.done.Wait()
	f.mx.Lock()
	defer f.mx.Unlock()
	return f.lastError
}

// Subscribe returns a channel of Loaded events for fragments as they arrive.
// ok is false if loading has already finished.
//
// The channel is closed when loading finishes or ctx is done.
func (f *File) Subscribe(ctx context.Context) (ch <-chan interface{}, ok bool) {
	return f.cast.Sub(ctx, uint(len(f.frags))+1)
}

// Close waits for the loader to finish and closes the underlying file.
func (f *File) Close() error {
	f.done.Wait()
	return f.file.Close()
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %q is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &File{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
	}, nil
}

func defaultFragSize(size int64) int64 {
	switch {
	case size < 64:
		if size == 0 {
			return 64
		}
		return size
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	default:
		return sixKb
	}
}

// loadAllFragments reads every fragment in storage order, releasing each
// fragment's latch and broadcasting its arrival.
func (f *File) loadAllFragments() {
	defer f.done.Done()
	defer f.cast.Close()
	for _, frag := range f.frags {
		buf := make([]byte, frag.length)
		cnt, err := f.file.ReadAt(buf, frag.pos)
		if err != nil && err != io.EOF {
			f.setError(fmt.Errorf("textfile: error loading fragment: %w", err))
		} else if cnt < frag.length {
			f.setError(fmt.Errorf("textfile: not all bytes loaded for fragment at %d", frag.pos))
		}
		frag.content = buf[:cnt]
		close(frag.ready)
		f.cast.Pub(Loaded{Pos: frag.pos, Len: cnt})
	}
}

func (f *File) setError(err error) {
	tracer().Errorf(err.Error())
	f.mx.Lock()
	if f.lastError == nil {
		f.lastError = err
	}
	f.mx.Unlock()
}

// --- fileFragment ----------------------------------------------------------

// fileFragment holds one fragment of a text file's content. Access blocks
// until the loader goroutine has released the fragment's latch.
//
// fileFragment implements folds.Fragment.
type fileFragment struct {
	pos     int64
	length  int
	content []byte
	ready   chan struct{}
}

// Len returns the loaded fragment length in bytes.
func (fr *fileFragment) Len() int {
	<-fr.ready
	return len(fr.content)
}

// AppendTo appends the fragment bytes to buf.
func (fr *fileFragment) AppendTo(buf []byte) []byte {
	<-fr.ready
	return append(buf, fr.content...)
}
