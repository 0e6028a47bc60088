package exec

import (
	"testing"

	"github.com/rv-core/riscv-sim/riscv"
	"github.com/stretchr/testify/require"
)

func TestExecMULLowBits(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 0xFFFFFFFFFFFFFFFF) // -1
	s.WriteGPR(2, 5)
	Execute(s, riscv.Instruction{Op: riscv.OpMUL, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFB), s.ReadGPR(3), "-1 * 5 = -5 in the low 64 bits")
}

func TestExecMULHSigned(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 0xFFFFFFFFFFFFFFFF) // -1
	s.WriteGPR(2, 0xFFFFFFFFFFFFFFFF) // -1
	Execute(s, riscv.Instruction{Op: riscv.OpMULH, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(0), s.ReadGPR(3), "(-1)*(-1) = 1, high 64 bits are zero")
}

func TestExecMULHUUnsigned(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 0xFFFFFFFFFFFFFFFF) // max uint64
	s.WriteGPR(2, 2)
	Execute(s, riscv.Instruction{Op: riscv.OpMULHU, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(1), s.ReadGPR(3), "(2^64-1)*2 = 2^65-2, high 64 bits = 1")
}

func TestExecMULHSUMixed(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 0xFFFFFFFFFFFFFFFF) // -1 signed
	s.WriteGPR(2, 2)                  // unsigned
	Execute(s, riscv.Instruction{Op: riscv.OpMULHSU, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), s.ReadGPR(3), "(-1)*2 = -2, high 64 bits sign-extended")
}

func TestExecMULWTruncatesAndSignExtends(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 0x100000001) // low 32 bits = 1, high garbage discarded
	s.WriteGPR(2, 0xFFFFFFFF)  // low 32 bits = -1
	Execute(s, riscv.Instruction{Op: riscv.OpMULW, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), s.ReadGPR(3), "1 * -1 = -1, sign-extended")
}

func TestExecMULHonRV32(t *testing.T) {
	s := newTestState(riscv.RV32)
	s.WriteGPR(1, 0xFFFFFFFF) // -1 as a 32-bit value
	s.WriteGPR(2, 2)
	Execute(s, riscv.Instruction{Op: riscv.OpMULH, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(0xFFFFFFFF), s.ReadGPR(3), "(-1)*2 = -2, high 32 bits all ones; RV32 registers hold only 32 bits")
}
