package filesystem

import (
	"errors"
	"fmt"
	"os"

	"iostream/internal/core/domain"
	"iostream/internal/ports"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

var ErrInvalidMode = errors.New("invalid mode")

const defaultFilePerm os.FileMode = 0o666

var _ ports.StreamOpener = (*BillyStreamOpener)(nil)

// BillyStreamOpener opens buffered streams on a go-billy filesystem.
type BillyStreamOpener struct {
	fs billy.Filesystem
}

func NewBillyStreamOpener(fs billy.Filesystem) *BillyStreamOpener {
	return &BillyStreamOpener{fs: fs}
}

func (o *BillyStreamOpener) Open(path string, mode string) (ports.Stream, error) {
	flag, err := openFlags(mode)
	if err != nil {
		return nil, fmt.Errorf("billy: open %q mode=%q: %w", path, mode, err)
	}
	f, err := o.fs.OpenFile(path, flag, defaultFilePerm)
	if err != nil {
		return nil, fmt.Errorf("billy: open %q: %w", path, err)
	}
	return NewBufferedStream(f), nil
}

// Raw returns the underlying go-billy filesystem.
//
//nolint:ireturn // exposes the adapter target.
func (o *BillyStreamOpener) Raw() billy.Filesystem {
	return o.fs
}

// openFlags translates an fopen mode string into os.OpenFile flags. The first
// character selects the base mode; a '+' anywhere after it upgrades to
// read-write. Other trailing characters are ignored.
func openFlags(mode string) (int, error) {
	if mode == "" {
		return 0, ErrInvalidMode
	}
	var flag int
	switch mode[0] {
	case 'r':
		flag = os.O_RDONLY
	case 'w':
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case 'a':
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return 0, fmt.Errorf("%w: unexpected %q", ErrInvalidMode, mode[0])
	}
	for i := 1; i < len(mode); i++ {
		switch mode[i] {
		case '+':
			flag = flag&^os.O_WRONLY | os.O_RDWR
		case 'x':
			flag |= os.O_EXCL
		}
	}
	return flag, nil
}

var _ ports.StreamOpenerFactory = (*BillyStreamOpenerFactory)(nil)

// BillyStreamOpenerFactory hands out openers per backend. All memory-backed
// openers of one factory share a single in-memory filesystem.
type BillyStreamOpenerFactory struct {
	memory billy.Filesystem
}

func ProvideBillyStreamOpenerFactory() *BillyStreamOpenerFactory {
	return &BillyStreamOpenerFactory{}
}

func (f *BillyStreamOpenerFactory) ForBackend(backend domain.Backend) (ports.StreamOpener, error) {
	switch backend.Type {
	case domain.BackendOS, "":
		return NewBillyStreamOpener(osfs.New(backend.Root)), nil
	case domain.BackendMemory:
		if f.memory == nil {
			f.memory = memfs.New()
		}
		if backend.Root == "" {
			return NewBillyStreamOpener(f.memory), nil
		}
		chrooted, err := f.memory.Chroot(backend.Root)
		if err != nil {
			return nil, fmt.Errorf("billy: chroot %q: %w", backend.Root, err)
		}
		return NewBillyStreamOpener(chrooted), nil
	default:
		return nil, fmt.Errorf("unknown backend type '%s'", backend.Type)
	}
}
