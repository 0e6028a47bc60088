package riscv

// StopReason records why the simulation halted. The zero value means
// "still running".
type StopReason uint8

const (
	StopNone StopReason = iota
	StopTrap
	StopReturn
)

// State is the architectural machine state. It is single-writer and owned
// exclusively by the execution loop; the instruction semantics in
// riscv/exec transform it but never construct or destroy it.
type State struct {
	PC uint64

	// gprs holds x0..x31. x0 is hard-wired to zero: WriteGPR silently
	// discards writes to index 0, and ReadGPR always returns 0 for it,
	// centralising the rule here instead of in every instruction clause.
	gprs [32]uint64

	CSR *CSRFile
	Mem *Memory

	Priv Privilege
	RV   RV

	// Stop is set by the trap/ret epilogue paths once this core decides to
	// halt rather than resume at a trap vector.
	Stop       bool
	StopReason StopReason

	// LastTrapCause/LastTrapValue record the most recent trap for the
	// driver loop to report; they are diagnostic only and never read by
	// the instruction semantics themselves.
	LastTrapCause ExceptionCode
	LastTrapValue uint64
}

// NewState constructs a fresh State at PC 0, all GPRs zero, running in
// machine mode. The decoder/loader/driver populate PC and memory before
// execution begins; riscv/exec never constructs a State.
func NewState(rv RV, mem *Memory) *State {
	return &State{
		CSR:  NewCSRFile(),
		Mem:  mem,
		Priv: Machine,
		RV:   rv,
	}
}

// ReadGPR returns the value of general-purpose register i (0..31). Index 0
// always reads as zero.
func (s *State) ReadGPR(i uint32) uint64 {
	if i == 0 {
		return 0
	}
	return trunc64(s.RV, s.gprs[i&0x1F])
}

// WriteGPR writes v to general-purpose register i. Writes to x0 are
// silently discarded.
func (s *State) WriteGPR(i uint32, v uint64) {
	if i == 0 {
		return
	}
	s.gprs[i&0x1F] = trunc64(s.RV, v)
}

// CSRPermission resolves the access policy for a CSR address at the
// state's current privilege level.
func (s *State) CSRPermission(addr uint16) Access {
	return s.CSR.Permission(s.Priv, addr)
}

// ReadCSR / WriteCSR are the unchecked CSR accessors; permission must
// already have been checked by the caller.
func (s *State) ReadCSR(addr uint16) uint64     { return s.CSR.Read(addr) }
func (s *State) WriteCSR(addr uint16, v uint64) { s.CSR.Write(addr, v) }

// IncrMinstret increments the retired-instruction counter. It is called
// exclusively from riscv/exec's epilogue helpers.
func (s *State) IncrMinstret() {
	s.CSR.Write(CSRMinstret, s.CSR.Read(CSRMinstret)+1)
}

// EnterTrap applies trap entry: records the cause/tval for diagnostics and
// halts the simulator. A full privileged-mode implementation would instead
// set PC to the trap vector and switch privilege; this core stops the run
// and lets the driver report the cause.
func (s *State) EnterTrap(isInterrupt bool, cause ExceptionCode, tval uint64) {
	_ = isInterrupt // reserved for when interrupt delivery is modelled
	s.LastTrapCause = cause
	s.LastTrapValue = tval
	s.Stop = true
	s.StopReason = StopTrap
}

// EnterReturn applies an xRET transition originating from fromPriv (the
// privilege implied by MRET/SRET/URET). This simplified core has no
// mstatus.MPP-style saved privilege to restore, so — like EnterTrap — it
// halts rather than resuming the interrupted context.
func (s *State) EnterReturn(fromPriv Privilege) {
	_ = fromPriv // recorded for parity with the xRET(from_priv) signature
	s.Stop = true
	s.StopReason = StopReturn
}
