package exec

import "github.com/rv-core/riscv-sim/riscv"

// W-suffix instructions operate on the low 32 bits and always sign-extend
// the 32-bit result to 64 bits, regardless of XLEN. These opcodes only
// exist in the RV64 encoding space; the decoder/driver are expected not
// to fetch 0x1B/0x3B-opcode words on RV32, so this core does not
// specially guard against it.

func execADDIW(s *riscv.State, in riscv.Instruction) {
	rs1 := riscv.Zext32(s.ReadGPR(in.Rs1))
	v := riscv.Sext32(rs1 + signExtend12(in.Imm))
	common(s, writeTo(in.Rd, v))
}

func execSLLIW(s *riscv.State, in riscv.Instruction) {
	rs1 := riscv.Zext32(s.ReadGPR(in.Rs1))
	v := riscv.Sext32(rs1 << (uint64(in.Shamt) & 0x1F))
	common(s, writeTo(in.Rd, v))
}

func execSRLIW(s *riscv.State, in riscv.Instruction) {
	rs1 := riscv.Zext32(s.ReadGPR(in.Rs1))
	v := riscv.Sext32(rs1 >> (uint64(in.Shamt) & 0x1F))
	common(s, writeTo(in.Rd, v))
}

func execSRAIW(s *riscv.State, in riscv.Instruction) {
	rs1 := int32(uint32(s.ReadGPR(in.Rs1)))
	sh := uint(in.Shamt) & 0x1F
	v := riscv.Sext32(uint64(uint32(rs1 >> sh)))
	common(s, writeTo(in.Rd, v))
}

func execADDW(s *riscv.State, in riscv.Instruction) {
	a := riscv.Zext32(s.ReadGPR(in.Rs1))
	b := riscv.Zext32(s.ReadGPR(in.Rs2))
	common(s, writeTo(in.Rd, riscv.Sext32(a+b)))
}

func execSUBW(s *riscv.State, in riscv.Instruction) {
	a := riscv.Zext32(s.ReadGPR(in.Rs1))
	b := riscv.Zext32(s.ReadGPR(in.Rs2))
	common(s, writeTo(in.Rd, riscv.Sext32(a-b)))
}

// SLLW/SRLW/SRAW: shift amount is rs2 masked with 0x1F.

func execSLLW(s *riscv.State, in riscv.Instruction) {
	rs1 := riscv.Zext32(s.ReadGPR(in.Rs1))
	sh := s.ReadGPR(in.Rs2) & 0x1F
	common(s, writeTo(in.Rd, riscv.Sext32(rs1<<sh)))
}

func execSRLW(s *riscv.State, in riscv.Instruction) {
	rs1 := riscv.Zext32(s.ReadGPR(in.Rs1))
	sh := s.ReadGPR(in.Rs2) & 0x1F
	common(s, writeTo(in.Rd, riscv.Sext32(rs1>>sh)))
}

func execSRAW(s *riscv.State, in riscv.Instruction) {
	rs1 := int32(uint32(s.ReadGPR(in.Rs1)))
	sh := uint(s.ReadGPR(in.Rs2) & 0x1F)
	common(s, writeTo(in.Rd, riscv.Sext32(uint64(uint32(rs1>>sh)))))
}
