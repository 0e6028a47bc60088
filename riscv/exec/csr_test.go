package exec

import (
	"testing"

	"github.com/rv-core/riscv-sim/riscv"
	"github.com/stretchr/testify/require"
)

func TestExecCSRRWReadsOldWritesNew(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteCSR(riscv.CSRMinstret, 7)
	s.WriteGPR(1, 99)
	Execute(s, riscv.Instruction{Op: riscv.OpCSRRW, Rd: 2, Rs1: 1, Csr: riscv.CSRMinstret})
	require.Equal(t, uint64(7), s.ReadGPR(2))
	require.Equal(t, uint64(100), s.ReadCSR(riscv.CSRMinstret), "99 written, then the common epilogue retires the instruction")
}

func TestExecCSRRSSourceZeroDoesNotWrite(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteCSR(riscv.CSRMinstret, 7)
	Execute(s, riscv.Instruction{Op: riscv.OpCSRRS, Rd: 2, Rs1: 0, Csr: riscv.CSRMinstret})
	require.Equal(t, uint64(7), s.ReadGPR(2))
	require.Equal(t, uint64(8), s.ReadCSR(riscv.CSRMinstret), "rs1=x0 means CSRRS performs no write; only the retire increment lands")
}

func TestExecCSRRSSetsBits(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteCSR(riscv.CSRMinstret, 0x0F)
	s.WriteGPR(1, 0xF0)
	Execute(s, riscv.Instruction{Op: riscv.OpCSRRS, Rd: 2, Rs1: 1, Csr: riscv.CSRMinstret})
	require.Equal(t, uint64(0x0F), s.ReadGPR(2))
	require.Equal(t, uint64(0x100), s.ReadCSR(riscv.CSRMinstret), "0xFF written, then the retire increment")
}

func TestExecCSRRCClearsBits(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteCSR(riscv.CSRMinstret, 0xFF)
	s.WriteGPR(1, 0x0F)
	Execute(s, riscv.Instruction{Op: riscv.OpCSRRC, Rd: 2, Rs1: 1, Csr: riscv.CSRMinstret})
	require.Equal(t, uint64(0xFF), s.ReadGPR(2))
	require.Equal(t, uint64(0xF1), s.ReadCSR(riscv.CSRMinstret), "0xF0 written, then the retire increment")
}

func TestExecCSRRCIZimmZeroDoesNotWrite(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteCSR(riscv.CSRMinstret, 0xFF)
	Execute(s, riscv.Instruction{Op: riscv.OpCSRRCI, Rd: 2, Rs1: 0, Csr: riscv.CSRMinstret})
	require.Equal(t, uint64(0x100), s.ReadCSR(riscv.CSRMinstret), "no write; only the retire increment lands")
}

func TestExecCSRWriteToReadOnlyTraps(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.WriteGPR(1, 1)
	Execute(s, riscv.Instruction{Op: riscv.OpCSRRW, Rd: 2, Rs1: 1, Csr: riscv.CSRCycle})
	require.True(t, s.Stop)
	require.Equal(t, riscv.CauseIllegalInstr, s.LastTrapCause)
}

func TestExecCSRInsufficientPrivilegeTraps(t *testing.T) {
	s := newTestState(riscv.RV64)
	s.Priv = riscv.User
	Execute(s, riscv.Instruction{Op: riscv.OpCSRRS, Rd: 2, Rs1: 0, Csr: riscv.CSRMinstret})
	require.True(t, s.Stop)
	require.Equal(t, riscv.CauseIllegalInstr, s.LastTrapCause)
}

func TestExecCSRRWIUsesImmediate(t *testing.T) {
	s := newTestState(riscv.RV64)
	Execute(s, riscv.Instruction{Op: riscv.OpCSRRWI, Rd: 0, Rs1: 5, Csr: riscv.CSRMinstret})
	require.Equal(t, uint64(6), s.ReadCSR(riscv.CSRMinstret), "5 written, then the retire increment")
}
