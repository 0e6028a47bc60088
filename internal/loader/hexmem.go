// Package loader reads a plain hex memory image into a riscv.Memory. It
// is an external collaborator to the core; it never reaches into
// riscv/exec.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rv-core/riscv-sim/riscv"
)

// Load reads a hex memory image from r and writes its contents into mem.
// It returns the address set by the first "@" directive (the entry point
// convention this format uses), or 0 if the image never repositions.
//
// Format, one directive or data line per line:
//   - "@<hex address>"   repositions the cursor; subsequent bytes load there
//   - "<hex bytes>"      whitespace-separated pairs of hex digits, loaded
//     sequentially starting at the cursor, which then advances
//   - "#..."             a comment, ignored
//   - blank lines are ignored
func Load(r io.Reader, mem *riscv.Memory) (entry uint64, err error) {
	scanner := bufio.NewScanner(r)
	var cursor uint64
	var sawDirective bool

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "@") {
			addr, err := strconv.ParseUint(strings.TrimSpace(line[1:]), 16, 64)
			if err != nil {
				return 0, fmt.Errorf("loader: line %d: bad address directive %q: %w", lineNo, line, err)
			}
			cursor = addr
			if !sawDirective {
				entry = addr
				sawDirective = true
			}
			continue
		}

		bytes, err := parseHexBytes(line)
		if err != nil {
			return 0, fmt.Errorf("loader: line %d: %w", lineNo, err)
		}
		mem.LoadBytes(cursor, bytes)
		cursor += uint64(len(bytes))
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("loader: %w", err)
	}
	return entry, nil
}

func parseHexBytes(line string) ([]byte, error) {
	fields := strings.Fields(line)
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad hex byte %q: %w", f, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}
