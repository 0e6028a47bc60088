// Package exec implements the instruction execution semantics for the
// RV32I/RV64I base integer ISA, the M extension, and the privileged
// subset this simulator supports. Every opcode variant is one function
// here; Execute dispatches a decoded riscv.Instruction to its clause and
// the clause terminates through exactly one of the five epilogue
// transitions in this file. No other code path may write State.PC or the
// minstret CSR.
package exec

import "github.com/rv-core/riscv-sim/riscv"

// regWrite is an optional (rd, value) pair an instruction clause hands to
// common(); noWrite (set == false) means the instruction has no
// destination register (e.g. a store).
type regWrite struct {
	rd    uint32
	value uint64
	set   bool
}

func writeTo(rd uint32, value uint64) regWrite {
	return regWrite{rd: rd, value: value, set: true}
}

var noWrite = regWrite{}

// common is the default instruction epilogue: optionally write rd, then
// advance PC by 4 and retire one instruction.
func common(s *riscv.State, w regWrite) {
	if w.set {
		s.WriteGPR(w.rd, w.value)
	}
	s.PC += 4
	s.IncrMinstret()
}

// jump is JAL/JALR's epilogue: validate the computed target is
// word-aligned, write the link value, then transfer control.
func jump(s *riscv.State, rd uint32, savePC, target uint64) {
	if target%4 != 0 {
		trap(s, riscv.CauseMisalignedFetch, target)
		return
	}
	s.WriteGPR(rd, savePC)
	s.PC = target
	s.IncrMinstret()
}

// branch is the conditional-branch epilogue: if taken, validate alignment
// and jump; otherwise fall through to pc+4.
func branch(s *riscv.State, pc uint64, taken bool, target uint64) {
	if taken && target%4 != 0 {
		trap(s, riscv.CauseMisalignedFetch, target)
		return
	}
	if taken {
		s.PC = target
	} else {
		s.PC = pc + 4
	}
	s.IncrMinstret()
}

// trap delegates to State's trap-entry primitive. This core treats a trap
// as terminal rather than resuming at a handler; PC and minstret are
// deliberately NOT touched here — the common epilogue never runs after a
// trap.
func trap(s *riscv.State, cause riscv.ExceptionCode, tval uint64) {
	s.EnterTrap(false, cause, tval)
}

// ret delegates to State's return-update primitive, then retires the
// instruction.
func ret(s *riscv.State, fromPriv riscv.Privilege) {
	s.EnterReturn(fromPriv)
	s.IncrMinstret()
}
