package exec

import (
	"github.com/holiman/uint256"
	"github.com/rv-core/riscv-sim/riscv"
)

// MUL: low XLEN bits of (rs1 x rs2); truncation makes the operand
// signedness irrelevant for the low half, so a native wraparound multiply
// suffices regardless of XLEN.
func execMUL(s *riscv.State, in riscv.Instruction) {
	common(s, writeTo(in.Rd, s.ReadGPR(in.Rs1)*s.ReadGPR(in.Rs2)))
}

// MULH/MULHU/MULHSU need the high XLEN bits of the double-width product.
// On RV64 that means a genuine 128-bit product, computed here with
// holiman/uint256's 256-bit integer (wide enough to hold any
// signed/unsigned 64x64 product) rather than synthesized out of four
// 32x32 partial products. On RV32 a native int64/uint64 product already
// holds the full 64-bit result, so no wide type is needed.

func execMULH(s *riscv.State, in riscv.Instruction) {
	v := mulHigh(s.RV, s.ReadGPR(in.Rs1), s.ReadGPR(in.Rs2), true, true)
	common(s, writeTo(in.Rd, v))
}

func execMULHU(s *riscv.State, in riscv.Instruction) {
	v := mulHigh(s.RV, s.ReadGPR(in.Rs1), s.ReadGPR(in.Rs2), false, false)
	common(s, writeTo(in.Rd, v))
}

func execMULHSU(s *riscv.State, in riscv.Instruction) {
	v := mulHigh(s.RV, s.ReadGPR(in.Rs1), s.ReadGPR(in.Rs2), true, false)
	common(s, writeTo(in.Rd, v))
}

// MULW (RV64 only): low 32 bits of signed(rs1[31:0]) x signed(rs2[31:0]),
// sign-extended to 64.
func execMULW(s *riscv.State, in riscv.Instruction) {
	a := int64(int32(uint32(s.ReadGPR(in.Rs1))))
	b := int64(int32(uint32(s.ReadGPR(in.Rs2))))
	common(s, writeTo(in.Rd, riscv.Sext32(uint64(uint32(a*b)))))
}

// mulHigh returns the high rv-width bits of the signedA/signedB-qualified
// product of a and b, both of which are XLEN-width values held in the low
// bits of a uint64.
func mulHigh(rv riscv.RV, a, b uint64, signedA, signedB bool) uint64 {
	if rv == riscv.RV32 {
		av := widen32(a, signedA)
		bv := widen32(b, signedB)
		product := av * bv // an unsigned x unsigned product may wrap int64, but bits 63:32 stay exact
		return riscv.Sext32(uint64(uint32(product >> 32)))
	}
	return mulHigh64(a, b, signedA, signedB)
}

// widen32 reinterprets the low 32 bits of v as signed or unsigned and
// returns it as an int64. Products of two such values are exact in their
// low 64 bits even when an unsigned x unsigned product overflows int64.
func widen32(v uint64, signed bool) int64 {
	if signed {
		return int64(int32(uint32(v)))
	}
	return int64(uint32(v))
}

// mulHigh64 computes the high 64 bits of a 64x64 product using a 256-bit
// intermediate rather than hand-rolling the high half out of four 32x32
// partial products.
func mulHigh64(a, b uint64, signedA, signedB bool) uint64 {
	wa := toWide256(a, signedA)
	wb := toWide256(b, signedB)
	product := new(uint256.Int).Mul(wa, wb)
	product.Rsh(product, 64)
	return product.Uint64()
}

// toWide256 places a 64-bit value into a 256-bit two's-complement field,
// sign-extending the top 192 bits when signed is true and v's sign bit is
// set.
func toWide256(v uint64, signed bool) *uint256.Int {
	w := new(uint256.Int).SetUint64(v)
	if signed && int64(v) < 0 {
		ones := new(uint256.Int).Not(uint256.NewInt(0)) // all 256 bits set
		ones.Lsh(ones, 64)                               // bits [255:64] set, [63:0] clear
		w.Or(w, ones)
	}
	return w
}
