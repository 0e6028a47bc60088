package riscv

// Opcode tags every decoded instruction variant this core executes: a
// closed enum plus a single struct carrying whichever operand fields the
// tag uses.
type Opcode int

const (
	OpIllegal Opcode = iota

	OpLUI
	OpAUIPC
	OpJAL
	OpJALR

	OpBEQ
	OpBNE
	OpBLT
	OpBGE
	OpBLTU
	OpBGEU

	OpLB
	OpLH
	OpLW
	OpLBU
	OpLHU
	OpLWU
	OpLD

	OpSB
	OpSH
	OpSW
	OpSD

	OpADDI
	OpSLTI
	OpSLTIU
	OpXORI
	OpORI
	OpANDI
	OpSLLI
	OpSRLI
	OpSRAI

	OpADD
	OpSUB
	OpSLL
	OpSLT
	OpSLTU
	OpXOR
	OpSRL
	OpSRA
	OpOR
	OpAND

	OpADDIW
	OpSLLIW
	OpSRLIW
	OpSRAIW

	OpADDW
	OpSUBW
	OpSLLW
	OpSRLW
	OpSRAW

	OpMUL
	OpMULH
	OpMULHSU
	OpMULHU
	OpDIV
	OpDIVU
	OpREM
	OpREMU

	OpMULW
	OpDIVW
	OpDIVUW
	OpREMW
	OpREMUW

	OpCSRRW
	OpCSRRS
	OpCSRRC
	OpCSRRWI
	OpCSRRSI
	OpCSRRCI

	OpECALL
	OpEBREAK
	OpMRET
	OpSRET
	OpURET
	OpFENCE
	OpFENCEI
	OpSFENCEVM
)

// Instruction is the decoded-instruction value the core consumes: one
// constructor-equivalent (Op) plus the narrowest set of operand fields any
// variant needs. Immediates are carried pre-sign-extension, at their
// natural encoded width; sign-extension to XLEN is a responsibility of
// each instruction clause.
type Instruction struct {
	Op  Opcode
	Rd  uint32
	Rs1 uint32
	Rs2 uint32

	// Imm is the raw immediate bit field (natural width depends on Op:
	// 20 bits for U-type, 12 bits for I/S-type). For J- and B-type the
	// decoder stores the byte offset with its implicit zero low bit
	// already in place: 21 bits for J-type, 13 bits for B-type.
	Imm uint64

	// Shamt is the shift amount for SLLI/SRLI/SRAI/SLLIW/SRLIW/SRAIW. The
	// decoder supplies 6 bits for SLLI/SRLI/SRAI and 5 bits for the
	// W-forms; riscv/exec masks the former to the active XLEN.
	Shamt uint32

	// Csr is the 12-bit CSR address for CSRRx instructions.
	Csr uint16

	// Raw is the original 32-bit instruction word, kept for diagnostics;
	// neither riscv/exec nor the driver loop reads it.
	Raw uint32
}
