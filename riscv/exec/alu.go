package exec

import "github.com/rv-core/riscv-sim/riscv"

// execLUI: rd <- sign-extend(imm20 << 12, 32) to XLEN.
func execLUI(s *riscv.State, in riscv.Instruction) {
	v := signExtend32To64(in.Imm << 12)
	common(s, writeTo(in.Rd, v))
}

// execAUIPC: rd <- pc + sign-extend(imm20 << 12, 32) mod 2^XLEN.
func execAUIPC(s *riscv.State, in riscv.Instruction) {
	v := s.PC + signExtend32To64(in.Imm<<12)
	common(s, writeTo(in.Rd, v))
}

// ALU I-immediate ops: ADDI/SLTI/SLTIU/XORI/ORI/ANDI.

func execADDI(s *riscv.State, in riscv.Instruction) {
	rs1 := s.ReadGPR(in.Rs1)
	imm := signExtend12(in.Imm)
	common(s, writeTo(in.Rd, rs1+imm))
}

func execSLTI(s *riscv.State, in riscv.Instruction) {
	rs1 := signedView(s, s.ReadGPR(in.Rs1))
	imm := int64(signExtend12(in.Imm))
	common(s, writeTo(in.Rd, boolToWord(rs1 < imm)))
}

func execSLTIU(s *riscv.State, in riscv.Instruction) {
	rs1 := s.ReadGPR(in.Rs1)
	imm := signExtend12(in.Imm) // SLTIU compares the sign-extended immediate as unsigned
	common(s, writeTo(in.Rd, boolToWord(rs1 < imm)))
}

func execXORI(s *riscv.State, in riscv.Instruction) {
	common(s, writeTo(in.Rd, s.ReadGPR(in.Rs1)^signExtend12(in.Imm)))
}

func execORI(s *riscv.State, in riscv.Instruction) {
	common(s, writeTo(in.Rd, s.ReadGPR(in.Rs1)|signExtend12(in.Imm)))
}

func execANDI(s *riscv.State, in riscv.Instruction) {
	common(s, writeTo(in.Rd, s.ReadGPR(in.Rs1)&signExtend12(in.Imm)))
}

// SLLI/SRLI/SRAI: shift amount is shamt6 (RV64) or shamt5 (RV32); the
// decoder supplies 6 bits and shamt() masks them to the active XLEN. SRAI
// shifts the signed view.

func execSLLI(s *riscv.State, in riscv.Instruction) {
	rs1 := s.ReadGPR(in.Rs1)
	common(s, writeTo(in.Rd, rs1<<shamt(s, in)))
}

func execSRLI(s *riscv.State, in riscv.Instruction) {
	rs1 := s.ReadGPR(in.Rs1)
	common(s, writeTo(in.Rd, rs1>>shamt(s, in)))
}

func execSRAI(s *riscv.State, in riscv.Instruction) {
	rs1 := signedView(s, s.ReadGPR(in.Rs1))
	common(s, writeTo(in.Rd, uint64(rs1>>shamt(s, in))))
}

// shamt returns the decoded shift amount, masked to the active XLEN's
// shift-amount width. The decoder does not know XLEN, so on RV32 this is
// what drops bit 5. The register-shift forms below mask rs2 themselves.
func shamt(s *riscv.State, in riscv.Instruction) uint64 {
	return uint64(in.Shamt) & riscv.ShiftMask(s.RV)
}

// ALU R-type ops: ADD/SUB/XOR/OR/AND/SLT/SLTU.

func execADD(s *riscv.State, in riscv.Instruction) {
	common(s, writeTo(in.Rd, s.ReadGPR(in.Rs1)+s.ReadGPR(in.Rs2)))
}

func execSUB(s *riscv.State, in riscv.Instruction) {
	common(s, writeTo(in.Rd, s.ReadGPR(in.Rs1)-s.ReadGPR(in.Rs2)))
}

func execXOR(s *riscv.State, in riscv.Instruction) {
	common(s, writeTo(in.Rd, s.ReadGPR(in.Rs1)^s.ReadGPR(in.Rs2)))
}

func execOR(s *riscv.State, in riscv.Instruction) {
	common(s, writeTo(in.Rd, s.ReadGPR(in.Rs1)|s.ReadGPR(in.Rs2)))
}

func execAND(s *riscv.State, in riscv.Instruction) {
	common(s, writeTo(in.Rd, s.ReadGPR(in.Rs1)&s.ReadGPR(in.Rs2)))
}

func execSLT(s *riscv.State, in riscv.Instruction) {
	a := signedView(s, s.ReadGPR(in.Rs1))
	b := signedView(s, s.ReadGPR(in.Rs2))
	common(s, writeTo(in.Rd, boolToWord(a < b)))
}

func execSLTU(s *riscv.State, in riscv.Instruction) {
	a, b := s.ReadGPR(in.Rs1), s.ReadGPR(in.Rs2)
	common(s, writeTo(in.Rd, boolToWord(a < b)))
}

// SLL/SRL/SRA: effective shift = rs2 masked by 0x1F (RV32) or 0x3F (RV64).
// SRA operates on the signed view.

func execSLL(s *riscv.State, in riscv.Instruction) {
	rs1 := s.ReadGPR(in.Rs1)
	sh := s.ReadGPR(in.Rs2) & riscv.ShiftMask(s.RV)
	common(s, writeTo(in.Rd, rs1<<sh))
}

func execSRL(s *riscv.State, in riscv.Instruction) {
	rs1 := s.ReadGPR(in.Rs1)
	sh := s.ReadGPR(in.Rs2) & riscv.ShiftMask(s.RV)
	common(s, writeTo(in.Rd, rs1>>sh))
}

func execSRA(s *riscv.State, in riscv.Instruction) {
	rs1 := signedView(s, s.ReadGPR(in.Rs1))
	sh := s.ReadGPR(in.Rs2) & riscv.ShiftMask(s.RV)
	common(s, writeTo(in.Rd, uint64(rs1>>sh)))
}
