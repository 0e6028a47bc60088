package exec

import "github.com/rv-core/riscv-sim/riscv"

// ECALL traps with a cause selected by the current privilege level and
// tval=0.
func execECALL(s *riscv.State, in riscv.Instruction) {
	trap(s, riscv.ECallCause(s.Priv), 0)
}

// EBREAK traps breakpoint with tval=pc.
func execEBREAK(s *riscv.State, in riscv.Instruction) {
	trap(s, riscv.CauseBreakpoint, s.PC)
}

// MRET/SRET/URET return from the trap handler of the named privilege
// level, via the shared ret() epilogue.
func execMRET(s *riscv.State, in riscv.Instruction) { ret(s, riscv.Machine) }
func execSRET(s *riscv.State, in riscv.Instruction) { ret(s, riscv.Supervisor) }
func execURET(s *riscv.State, in riscv.Instruction) { ret(s, riscv.User) }

// FENCE/FENCE.I/SFENCE.VM: this core models a single in-order hart with no
// instruction cache and no MMU, so all three are no-ops beyond the usual
// PC/minstret advance.
func execFENCE(s *riscv.State, in riscv.Instruction)    { common(s, noWrite) }
func execFENCEI(s *riscv.State, in riscv.Instruction)   { common(s, noWrite) }
func execSFENCEVM(s *riscv.State, in riscv.Instruction) { common(s, noWrite) }

// execIllegal traps illegal-instruction with tval=0; no faulting
// instruction bits are recorded.
func execIllegal(s *riscv.State, in riscv.Instruction) {
	trap(s, riscv.CauseIllegalInstr, 0)
}
