package arena

import (
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// New reserves size bytes of anonymous memory in one mmap call. Nothing is
// allocated later, the reservation is the only allocation the arena ever
// makes.
func New(size uint64, useHugePages bool) (*Arena, error) {
	opts := unix.MAP_SHARED | unix.MAP_ANONYMOUS | unix.MAP_POPULATE
	if useHugePages {
		// With hugepages the mapped size must be a multiple of the hugepage
		// size, otherwise munmap fails later.
		opts |= unix.MAP_HUGETLB
	}
	ptr, err := unix.MmapPtr(-1, 0, nil, uintptr(size), unix.PROT_READ|unix.PROT_WRITE, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "reserving %d bytes failed", size)
	}
	return &Arena{
		ptr:          ptr,
		size:         size,
		useHugePages: useHugePages,
	}, nil
}

// Arena is a fixed block of mmapped memory.
type Arena struct {
	ptr          unsafe.Pointer
	size         uint64
	useHugePages bool
}

// Pointer returns the start of the reserved memory.
func (a *Arena) Pointer() unsafe.Pointer {
	return a.ptr
}

// Size returns the number of reserved bytes.
func (a *Arena) Size() uint64 {
	return a.size
}

// Close releases the reservation. Munmap needs the size rounded up to the
// page size backing the mapping. The kernel does not report which hugepage
// size was used, only 2MB and 1GB exist, so both are tried.
func (a *Arena) Close() {
	if a.ptr == nil {
		return
	}
	defer func() {
		a.ptr = nil
	}()

	if a.useHugePages {
		if a.unmap(2*1024*1024) == nil {
			return
		}
		_ = a.unmap(1024 * 1024 * 1024)
		return
	}
	_ = a.unmap(uintptr(os.Getpagesize()))
}

func (a *Arena) unmap(pageSize uintptr) error {
	size := (uintptr(a.size) + pageSize - 1) / pageSize * pageSize
	return unix.MunmapPtr(a.ptr, size)
}
