package exec

import "github.com/rv-core/riscv-sim/riscv"

// CSRRW/CSRRS/CSRRC/CSRRWI/CSRRSI/CSRRCI. The common shape: read the CSR's
// current value into rd (unless rd==x0 and the op is CSRRW/CSRRWI, which
// skip the read entirely to avoid side effects on read-only registers with
// no readable meaning), compute the new value from the source operand, and
// write it back (unless the source operand is the x0/zero-immediate "no
// write" case for the S/C forms). A privilege or read-only violation traps
// illegal-instruction.

func csrOp(s *riscv.State, in riscv.Instruction, src uint64, isWrite, suppressWrite bool) {
	perm := s.CSRPermission(in.Csr)
	writes := !suppressWrite
	if perm == riscv.AccessNone || (writes && perm != riscv.AccessRW) {
		trap(s, riscv.CauseIllegalInstr, 0)
		return
	}

	var old uint64
	readNeeded := in.Rd != 0 || !isWrite
	if readNeeded {
		old = s.ReadCSR(in.Csr)
	}

	if writes {
		s.WriteCSR(in.Csr, src)
	}

	common(s, writeTo(in.Rd, old))
}

func execCSRRW(s *riscv.State, in riscv.Instruction) {
	csrOp(s, in, s.ReadGPR(in.Rs1), true, false)
}

func execCSRRS(s *riscv.State, in riscv.Instruction) {
	rs1 := s.ReadGPR(in.Rs1)
	old := readCSRForSet(s, in)
	csrOp(s, in, old|rs1, false, in.Rs1 == 0)
}

func execCSRRC(s *riscv.State, in riscv.Instruction) {
	rs1 := s.ReadGPR(in.Rs1)
	old := readCSRForSet(s, in)
	csrOp(s, in, old&^rs1, false, in.Rs1 == 0)
}

func execCSRRWI(s *riscv.State, in riscv.Instruction) {
	csrOp(s, in, uint64(in.Rs1), true, false)
}

func execCSRRSI(s *riscv.State, in riscv.Instruction) {
	old := readCSRForSet(s, in)
	csrOp(s, in, old|uint64(in.Rs1), false, in.Rs1 == 0)
}

func execCSRRCI(s *riscv.State, in riscv.Instruction) {
	old := readCSRForSet(s, in)
	csrOp(s, in, old&^uint64(in.Rs1), false, in.Rs1 == 0)
}

// readCSRForSet reads the CSR once up front so CSRRS/CSRRC/CSRRSI/CSRRCI
// can compute their candidate new value before csrOp re-reads it for rd
// (the two reads observe the same value; the CSR isn't written in
// between). A permission violation here still needs reporting, but csrOp
// performs that check uniformly, so a missing-permission read simply
// returns 0 and lets csrOp trap.
func readCSRForSet(s *riscv.State, in riscv.Instruction) uint64 {
	if s.CSRPermission(in.Csr) == riscv.AccessNone {
		return 0
	}
	return s.ReadCSR(in.Csr)
}
