// Package exec implements the instruction execution transition for every
// instruction this core recognises. Each opcode has exactly one
// exec<NAME> function; Execute is the single dispatch point the driver
// loop calls.
package exec

import "github.com/rv-core/riscv-sim/riscv"

// Execute applies one decoded instruction to s, mutating it in place. It
// is a no-op if the state has already stopped — the driver loop is
// expected to check Stop itself, but Execute stays safe to call
// regardless.
func Execute(s *riscv.State, in riscv.Instruction) {
	if s.Stop {
		return
	}

	fn, ok := dispatchTable[in.Op]
	if !ok {
		execIllegal(s, in)
		return
	}
	fn(s, in)
}

type execFunc func(*riscv.State, riscv.Instruction)

var dispatchTable = map[riscv.Opcode]execFunc{
	riscv.OpLUI:   execLUI,
	riscv.OpAUIPC: execAUIPC,
	riscv.OpJAL:   execJAL,
	riscv.OpJALR:  execJALR,

	riscv.OpBEQ:  execBEQ,
	riscv.OpBNE:  execBNE,
	riscv.OpBLT:  execBLT,
	riscv.OpBGE:  execBGE,
	riscv.OpBLTU: execBLTU,
	riscv.OpBGEU: execBGEU,

	riscv.OpLB:  execLB,
	riscv.OpLH:  execLH,
	riscv.OpLW:  execLW,
	riscv.OpLBU: execLBU,
	riscv.OpLHU: execLHU,
	riscv.OpLWU: execLWU,
	riscv.OpLD:  execLD,

	riscv.OpSB: execSB,
	riscv.OpSH: execSH,
	riscv.OpSW: execSW,
	riscv.OpSD: execSD,

	riscv.OpADDI:  execADDI,
	riscv.OpSLTI:  execSLTI,
	riscv.OpSLTIU: execSLTIU,
	riscv.OpXORI:  execXORI,
	riscv.OpORI:   execORI,
	riscv.OpANDI:  execANDI,
	riscv.OpSLLI:  execSLLI,
	riscv.OpSRLI:  execSRLI,
	riscv.OpSRAI:  execSRAI,

	riscv.OpADD:  execADD,
	riscv.OpSUB:  execSUB,
	riscv.OpSLL:  execSLL,
	riscv.OpSLT:  execSLT,
	riscv.OpSLTU: execSLTU,
	riscv.OpXOR:  execXOR,
	riscv.OpSRL:  execSRL,
	riscv.OpSRA:  execSRA,
	riscv.OpOR:   execOR,
	riscv.OpAND:  execAND,

	riscv.OpADDIW: execADDIW,
	riscv.OpSLLIW: execSLLIW,
	riscv.OpSRLIW: execSRLIW,
	riscv.OpSRAIW: execSRAIW,

	riscv.OpADDW: execADDW,
	riscv.OpSUBW: execSUBW,
	riscv.OpSLLW: execSLLW,
	riscv.OpSRLW: execSRLW,
	riscv.OpSRAW: execSRAW,

	riscv.OpMUL:    execMUL,
	riscv.OpMULH:   execMULH,
	riscv.OpMULHSU: execMULHSU,
	riscv.OpMULHU:  execMULHU,
	riscv.OpDIV:    execDIV,
	riscv.OpDIVU:   execDIVU,
	riscv.OpREM:    execREM,
	riscv.OpREMU:   execREMU,

	riscv.OpMULW:  execMULW,
	riscv.OpDIVW:  execDIVW,
	riscv.OpDIVUW: execDIVUW,
	riscv.OpREMW:  execREMW,
	riscv.OpREMUW: execREMUW,

	riscv.OpCSRRW:  execCSRRW,
	riscv.OpCSRRS:  execCSRRS,
	riscv.OpCSRRC:  execCSRRC,
	riscv.OpCSRRWI: execCSRRWI,
	riscv.OpCSRRSI: execCSRRSI,
	riscv.OpCSRRCI: execCSRRCI,

	riscv.OpECALL:    execECALL,
	riscv.OpEBREAK:   execEBREAK,
	riscv.OpMRET:     execMRET,
	riscv.OpSRET:     execSRET,
	riscv.OpURET:     execURET,
	riscv.OpFENCE:    execFENCE,
	riscv.OpFENCEI:   execFENCEI,
	riscv.OpSFENCEVM: execSFENCEVM,
}
