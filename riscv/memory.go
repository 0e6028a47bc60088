package riscv

import "encoding/binary"

// Page size for the sparse backing store. Chosen to match the minimum
// practical mmap granularity used by comparable RISC-V simulators in this
// corpus; memory below this is allocated lazily, one page at a time.
const (
	pageAddrBits = 12
	pageSize     = 1 << pageAddrBits
	pageAddrMask = pageSize - 1
)

type page = [pageSize]byte

// Memory is a byte-addressable, sparsely-allocated address space. Pages
// are allocated on first write; reads of an unallocated page return
// zeroes, treating un-loaded RAM as zero-filled rather than distinguishing
// it from real MMIO holes.
type Memory struct {
	pages map[uint64]*page

	// small direct-mapped cache of the last page touched, since the fetch
	// path and the load/store path usually hit two different pages.
	lastKey  uint64
	lastPage *page
	lastOK   bool

	// limit bounds the addressable space; addresses >= limit fault with
	// an access-fault exception code instead of reading/writing. Zero
	// means unbounded (the default for a freshly loaded program image).
	limit uint64
}

func NewMemory() *Memory {
	return &Memory{pages: make(map[uint64]*page)}
}

// NewBoundedMemory constructs a Memory that raises a load/store access
// fault for any access at or beyond limit.
func NewBoundedMemory(limit uint64) *Memory {
	return &Memory{pages: make(map[uint64]*page), limit: limit}
}

func (m *Memory) inBounds(addr uint64, n int) bool {
	if m.limit == 0 {
		return true
	}
	return addr+uint64(n) <= m.limit
}

func (m *Memory) pageFor(addr uint64, alloc bool) *page {
	key := addr >> pageAddrBits
	if m.lastOK && key == m.lastKey {
		return m.lastPage
	}
	p, ok := m.pages[key]
	if !ok {
		if !alloc {
			return nil
		}
		p = &page{}
		m.pages[key] = p
	}
	m.lastKey, m.lastPage, m.lastOK = key, p, true
	return p
}

// PageCount reports the number of allocated pages, useful for progress
// logging in the driver loop.
func (m *Memory) PageCount() int {
	return len(m.pages)
}

func (m *Memory) readBytes(addr uint64, n int) uint64 {
	var out [8]byte
	for i := 0; i < n; i++ {
		a := addr + uint64(i)
		if p := m.pageFor(a, false); p != nil {
			out[i] = p[a&pageAddrMask]
		}
	}
	return binary.LittleEndian.Uint64(out[:])
}

func (m *Memory) writeBytes(addr uint64, n int, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	for i := 0; i < n; i++ {
		a := addr + uint64(i)
		p := m.pageFor(a, true)
		p[a&pageAddrMask] = buf[i]
	}
}

// Read8/16/32/64 perform a typed, unaligned-safe read. size is implied by
// the method name; alignment is never required by this backing store, and
// the load/store instructions in riscv/exec do not check it either.
// Addresses beyond a bounded Memory's limit return a *MemoryFault with
// CauseLoadAccess.
func (m *Memory) Read8(addr uint64) (uint64, error)  { return m.read(addr, 1) }
func (m *Memory) Read16(addr uint64) (uint64, error) { return m.read(addr, 2) }
func (m *Memory) Read32(addr uint64) (uint64, error) { return m.read(addr, 4) }
func (m *Memory) Read64(addr uint64) (uint64, error) { return m.read(addr, 8) }

func (m *Memory) Write8(addr uint64, v uint64) error  { return m.write(addr, 1, v) }
func (m *Memory) Write16(addr uint64, v uint64) error { return m.write(addr, 2, v) }
func (m *Memory) Write32(addr uint64, v uint64) error { return m.write(addr, 4, v) }
func (m *Memory) Write64(addr uint64, v uint64) error { return m.write(addr, 8, v) }

func (m *Memory) read(addr uint64, n int) (uint64, error) {
	if !m.inBounds(addr, n) {
		return 0, &MemoryFault{Cause: CauseLoadAccess, Addr: addr}
	}
	return m.readBytes(addr, n), nil
}

func (m *Memory) write(addr uint64, n int, v uint64) error {
	if !m.inBounds(addr, n) {
		return &MemoryFault{Cause: CauseStoreAccess, Addr: addr}
	}
	m.writeBytes(addr, n, v)
	return nil
}

// LoadBytes copies dat into memory starting at addr; used by the hex
// memory-image loader (internal/loader) to seed initial program state.
func (m *Memory) LoadBytes(addr uint64, dat []byte) {
	for i, b := range dat {
		a := addr + uint64(i)
		p := m.pageFor(a, true)
		p[a&pageAddrMask] = b
	}
}
