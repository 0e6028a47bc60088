package exec

import (
	"testing"

	"github.com/rv-core/riscv-sim/riscv"
	"github.com/stretchr/testify/require"
)

func TestExecDIVBasic(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 10)
	s.WriteGPR(2, 3)
	Execute(s, riscv.Instruction{Op: riscv.OpDIV, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(3), s.ReadGPR(3), "truncates toward zero")
}

func TestExecDIVNegativeTruncatesTowardZero(t *testing.T) {
	s := newTestState(riscv.RV64)
	var negSeven int64 = -7
	s.WriteGPR(1, uint64(negSeven))
	s.WriteGPR(2, 2)
	Execute(s, riscv.Instruction{Op: riscv.OpDIV, Rd: 3, Rs1: 1, Rs2: 2})
	var negThree int64 = -3
	require.Equal(t, uint64(negThree), s.ReadGPR(3), "-7/2 truncates to -3, not -4 (floor)")
}

func TestExecDIVByZero(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 42)
	s.WriteGPR(2, 0)
	Execute(s, riscv.Instruction{Op: riscv.OpDIV, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), s.ReadGPR(3), "DIV by zero yields all-ones")
}

func TestExecDIVUByZero(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 42)
	s.WriteGPR(2, 0)
	Execute(s, riscv.Instruction{Op: riscv.OpDIVU, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), s.ReadGPR(3))
}

func TestExecREMByZeroReturnsDividend(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 42)
	s.WriteGPR(2, 0)
	Execute(s, riscv.Instruction{Op: riscv.OpREM, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(42), s.ReadGPR(3))
}

func TestExecREMUByZeroReturnsDividend(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 42)
	s.WriteGPR(2, 0)
	Execute(s, riscv.Instruction{Op: riscv.OpREMU, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(42), s.ReadGPR(3))
}

func TestExecDIVOverflowINTMinByMinusOne(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 0x8000000000000000) // INT64_MIN
	var negOne int64 = -1
	s.WriteGPR(2, uint64(negOne))
	Execute(s, riscv.Instruction{Op: riscv.OpDIV, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(0x8000000000000000), s.ReadGPR(3), "overflow returns the dividend")
}

func TestExecREMOverflowINTMinByMinusOne(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 0x8000000000000000)
	var negOne int64 = -1
	s.WriteGPR(2, uint64(negOne))
	Execute(s, riscv.Instruction{Op: riscv.OpREM, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(0), s.ReadGPR(3), "overflow returns zero")
}

func TestExecDIVWOverflowINT32MinByMinusOne(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 0xFFFFFFFF80000000) // sign-extended INT32_MIN
	var negOne int64 = -1
	s.WriteGPR(2, uint64(negOne))
	Execute(s, riscv.Instruction{Op: riscv.OpDIVW, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(0xFFFFFFFF80000000), s.ReadGPR(3), "32-bit overflow returns the sign-extended dividend")
}

func TestExecDIVUWTruncatesOperandsTo32Bits(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 0x1_0000_0000+10) // low 32 bits = 10
	s.WriteGPR(2, 3)
	Execute(s, riscv.Instruction{Op: riscv.OpDIVUW, Rd: 3, Rs1: 1, Rs2: 2})
	require.Equal(t, uint64(3), s.ReadGPR(3))
}
