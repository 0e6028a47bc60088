package exec

import "github.com/rv-core/riscv-sim/riscv"

// signExtend12 sign-extends a 12-bit raw immediate (I/S-type encoding
// width) to 64 bits.
func signExtend12(imm uint64) uint64 {
	return riscv.SignExtend(imm, 11)
}

// signExtend32To64 sign-extends a 32-bit quantity (e.g. LUI/AUIPC's
// imm20<<12 result) to 64 bits.
func signExtend32To64(v uint64) uint64 {
	return riscv.SignExtend(v, 31)
}

// signedView returns the SInt view of v at the state's active XLEN.
func signedView(s *riscv.State, v uint64) int64 {
	return riscv.SignedXLEN(s.RV, v)
}

// boolToWord renders a comparison result as the architectural 0/1 word
// RISC-V's SLT/SLTU/SLTI/SLTIU family writes to rd.
func boolToWord(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
