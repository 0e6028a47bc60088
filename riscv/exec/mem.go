package exec

import "github.com/rv-core/riscv-sim/riscv"

// Loads: LB/LH/LW/LBU/LHU (RV32+RV64) and LWU/LD (RV64). ea <- rs1 +
// sign-extend(oimm12, 12); typed read; sign/zero-extend to XLEN. On a
// memory fault, trap with the returned exception code and tval=ea.

func effectiveAddr(s *riscv.State, in riscv.Instruction) uint64 {
	return s.ReadGPR(in.Rs1) + signExtend12(in.Imm)
}

func execLoad(signed bool, width int) func(*riscv.State, riscv.Instruction) {
	return func(s *riscv.State, in riscv.Instruction) {
		ea := effectiveAddr(s, in)
		v, err := readMem(s, ea, width)
		if err != nil {
			trapMemFault(s, err, ea)
			return
		}
		if signed {
			v = riscv.SignExtend(v, uint(width*8-1))
		}
		common(s, writeTo(in.Rd, v))
	}
}

func readMem(s *riscv.State, addr uint64, width int) (uint64, error) {
	switch width {
	case 1:
		return s.Mem.Read8(addr)
	case 2:
		return s.Mem.Read16(addr)
	case 4:
		return s.Mem.Read32(addr)
	default:
		return s.Mem.Read64(addr)
	}
}

func writeMem(s *riscv.State, addr uint64, width int, v uint64) error {
	switch width {
	case 1:
		return s.Mem.Write8(addr, v)
	case 2:
		return s.Mem.Write16(addr, v)
	case 4:
		return s.Mem.Write32(addr, v)
	default:
		return s.Mem.Write64(addr, v)
	}
}

func trapMemFault(s *riscv.State, err error, ea uint64) {
	if mf, ok := err.(*riscv.MemoryFault); ok {
		trap(s, mf.Cause, ea)
		return
	}
	trap(s, riscv.CauseLoadAccess, ea)
}

func execLB(s *riscv.State, in riscv.Instruction)  { execLoad(true, 1)(s, in) }
func execLH(s *riscv.State, in riscv.Instruction)  { execLoad(true, 2)(s, in) }
func execLW(s *riscv.State, in riscv.Instruction)  { execLoad(true, 4)(s, in) }
func execLBU(s *riscv.State, in riscv.Instruction) { execLoad(false, 1)(s, in) }
func execLHU(s *riscv.State, in riscv.Instruction) { execLoad(false, 2)(s, in) }
func execLWU(s *riscv.State, in riscv.Instruction) { execLoad(false, 4)(s, in) }

func execLD(s *riscv.State, in riscv.Instruction) {
	ea := effectiveAddr(s, in)
	v, err := s.Mem.Read64(ea)
	if err != nil {
		trapMemFault(s, err, ea)
		return
	}
	common(s, writeTo(in.Rd, v))
}

// Stores: SB/SH/SW/SD. ea <- rs1 + sign-extend(simm12, 12); rs2 truncated
// to the store width; no rd.

func execStore(width int) func(*riscv.State, riscv.Instruction) {
	return func(s *riscv.State, in riscv.Instruction) {
		ea := effectiveAddr(s, in)
		v := s.ReadGPR(in.Rs2)
		if err := writeMem(s, ea, width, v); err != nil {
			trapMemFault(s, err, ea)
			return
		}
		common(s, noWrite)
	}
}

func execSB(s *riscv.State, in riscv.Instruction) { execStore(1)(s, in) }
func execSH(s *riscv.State, in riscv.Instruction) { execStore(2)(s, in) }
func execSW(s *riscv.State, in riscv.Instruction) { execStore(4)(s, in) }
func execSD(s *riscv.State, in riscv.Instruction) { execStore(8)(s, in) }
