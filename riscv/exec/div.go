package exec

import "github.com/rv-core/riscv-sim/riscv"

// DIV/DIVU/REM/REMU and their W-suffixed forms. Division truncates toward
// zero (Go's native int64 division already does this); the two edge
// cases that deviate from ordinary arithmetic, divide-by-zero and
// INT_MIN/-1 overflow, are called out explicitly below.

func execDIV(s *riscv.State, in riscv.Instruction) {
	a := signedView(s, s.ReadGPR(in.Rs1))
	b := signedView(s, s.ReadGPR(in.Rs2))
	common(s, writeTo(in.Rd, uint64(divS(a, b))))
}

func execDIVU(s *riscv.State, in riscv.Instruction) {
	a, b := s.ReadGPR(in.Rs1), s.ReadGPR(in.Rs2)
	common(s, writeTo(in.Rd, divU(a, b)))
}

func execREM(s *riscv.State, in riscv.Instruction) {
	a := signedView(s, s.ReadGPR(in.Rs1))
	b := signedView(s, s.ReadGPR(in.Rs2))
	common(s, writeTo(in.Rd, uint64(remS(a, b))))
}

func execREMU(s *riscv.State, in riscv.Instruction) {
	a, b := s.ReadGPR(in.Rs1), s.ReadGPR(in.Rs2)
	common(s, writeTo(in.Rd, remU(a, b)))
}

func execDIVW(s *riscv.State, in riscv.Instruction) {
	a := int64(int32(uint32(s.ReadGPR(in.Rs1))))
	b := int64(int32(uint32(s.ReadGPR(in.Rs2))))
	common(s, writeTo(in.Rd, riscv.Sext32(uint64(uint32(divS32(a, b))))))
}

func execDIVUW(s *riscv.State, in riscv.Instruction) {
	a := riscv.Zext32(s.ReadGPR(in.Rs1))
	b := riscv.Zext32(s.ReadGPR(in.Rs2))
	common(s, writeTo(in.Rd, riscv.Sext32(divU(a, b))))
}

func execREMW(s *riscv.State, in riscv.Instruction) {
	a := int64(int32(uint32(s.ReadGPR(in.Rs1))))
	b := int64(int32(uint32(s.ReadGPR(in.Rs2))))
	common(s, writeTo(in.Rd, riscv.Sext32(uint64(uint32(remS32(a, b))))))
}

func execREMUW(s *riscv.State, in riscv.Instruction) {
	a := riscv.Zext32(s.ReadGPR(in.Rs1))
	b := riscv.Zext32(s.ReadGPR(in.Rs2))
	common(s, writeTo(in.Rd, riscv.Sext32(remU(a, b))))
}

// divS implements signed division-by-zero (-1) and INT_MIN/-1 overflow
// (dividend); all other cases truncate toward zero.
func divS(a, b int64) int64 {
	if b == 0 {
		return -1
	}
	if a == minInt64 && b == -1 {
		return a
	}
	return a / b
}

// remS implements signed division-by-zero (dividend) and INT_MIN/-1
// overflow (0); all other cases follow Go's truncating remainder.
func remS(a, b int64) int64 {
	if b == 0 {
		return a
	}
	if a == minInt64 && b == -1 {
		return 0
	}
	return a % b
}

// divS32/remS32 are the W-form counterparts of divS/remS: the overflow
// case compares against the 32-bit minimum, since W-form operands are
// already sign-extended 32-bit values held in an int64.
func divS32(a, b int64) int64 {
	if b == 0 {
		return -1
	}
	if a == minInt32 && b == -1 {
		return a
	}
	return a / b
}

func remS32(a, b int64) int64 {
	if b == 0 {
		return a
	}
	if a == minInt32 && b == -1 {
		return 0
	}
	return a % b
}

// divU implements unsigned division-by-zero (all-ones).
func divU(a, b uint64) uint64 {
	if b == 0 {
		return ^uint64(0)
	}
	return a / b
}

// remU implements unsigned division-by-zero (dividend).
func remU(a, b uint64) uint64 {
	if b == 0 {
		return a
	}
	return a % b
}

const minInt64 = -1 << 63
const minInt32 = -1 << 31
