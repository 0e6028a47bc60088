package exec

import "github.com/rv-core/riscv-sim/riscv"

// execJAL: target <- pc + sign-extend(jimm20 << 1, 21); save <- pc + 4.
// The decoder already folds the implicit low zero bit and the <<1 into
// in.Imm (see riscv/instr.go), so the sign-extension here treats bit 20
// as the sign bit of the 21-bit byte offset.
func execJAL(s *riscv.State, in riscv.Instruction) {
	target := s.PC + riscv.SignExtend(in.Imm, 20)
	jump(s, in.Rd, s.PC+4, target)
}

// execJALR: target <- rs1 + sign-extend(oimm12, 12). The conventional
// "clear the low bit of the target" rule is deliberately NOT applied here;
// see DESIGN.md for the reasoning.
func execJALR(s *riscv.State, in riscv.Instruction) {
	target := s.ReadGPR(in.Rs1) + signExtend12(in.Imm)
	jump(s, in.Rd, s.PC+4, target)
}

// doBranch implements the common tail of BEQ/BNE/BLT[U]/BGE[U]: target <-
// pc + sign-extend(sbimm12 << 1, 13), as folded into in.Imm by the
// decoder.
func doBranch(s *riscv.State, in riscv.Instruction, taken bool) {
	target := s.PC + riscv.SignExtend(in.Imm, 12)
	branch(s, s.PC, taken, target)
}

func execBEQ(s *riscv.State, in riscv.Instruction) {
	doBranch(s, in, s.ReadGPR(in.Rs1) == s.ReadGPR(in.Rs2))
}

func execBNE(s *riscv.State, in riscv.Instruction) {
	doBranch(s, in, s.ReadGPR(in.Rs1) != s.ReadGPR(in.Rs2))
}

func execBLT(s *riscv.State, in riscv.Instruction) {
	doBranch(s, in, signedView(s, s.ReadGPR(in.Rs1)) < signedView(s, s.ReadGPR(in.Rs2)))
}

func execBGE(s *riscv.State, in riscv.Instruction) {
	doBranch(s, in, signedView(s, s.ReadGPR(in.Rs1)) >= signedView(s, s.ReadGPR(in.Rs2)))
}

func execBLTU(s *riscv.State, in riscv.Instruction) {
	doBranch(s, in, s.ReadGPR(in.Rs1) < s.ReadGPR(in.Rs2))
}

func execBGEU(s *riscv.State, in riscv.Instruction) {
	doBranch(s, in, s.ReadGPR(in.Rs1) >= s.ReadGPR(in.Rs2))
}
