package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/log"
)

// Logger builds a logfmt logger writing to w at the given level, the same
// handler construction the wider corpus uses for its own CLI tools.
func Logger(w io.Writer, lvl slog.Level) log.Logger {
	return log.NewLogger(log.LogfmtHandlerWithLevel(w, lvl))
}

// HexU64 lazily formats a register/address for structured log fields,
// avoiding an eager fmt.Sprintf on every Info call whose level is
// disabled.
type HexU64 uint64

func (v HexU64) String() string { return fmt.Sprintf("%016x", uint64(v)) }

func (v HexU64) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
