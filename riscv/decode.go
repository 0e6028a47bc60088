package riscv

// Decode turns a raw fetched instruction word into the tagged Instruction
// value riscv/exec consumes. riscv/exec never imports it back — the core
// only ever receives an already-decoded Instruction.
//
// Field extraction follows the standard RISC-V bit layout: opcode in bits
// 6:0, rd in 11:7, funct3 in 14:12, rs1 in 19:15, rs2 in 24:20, funct7 in
// 31:25.
func Decode(word uint32) Instruction {
	opcode := word & 0x7F
	rd := (word >> 7) & 0x1F
	funct3 := (word >> 12) & 0x7
	rs1 := (word >> 15) & 0x1F
	rs2 := (word >> 20) & 0x1F
	funct7 := (word >> 25) & 0x7F

	in := Instruction{Raw: word, Rd: rd, Rs1: rs1, Rs2: rs2}

	switch opcode {
	case 0x37:
		in.Op = OpLUI
		in.Imm = uint64(word>>12) & 0xFFFFF
	case 0x17:
		in.Op = OpAUIPC
		in.Imm = uint64(word>>12) & 0xFFFFF
	case 0x6F:
		in.Op = OpJAL
		in.Imm = decodeJImm(word)
	case 0x67:
		in.Op = OpJALR
		in.Imm = decodeIImm(word)
	case 0x63:
		in.Imm = decodeBImm(word)
		switch funct3 {
		case 0:
			in.Op = OpBEQ
		case 1:
			in.Op = OpBNE
		case 4:
			in.Op = OpBLT
		case 5:
			in.Op = OpBGE
		case 6:
			in.Op = OpBLTU
		case 7:
			in.Op = OpBGEU
		default:
			in.Op = OpIllegal
		}
	case 0x03:
		in.Imm = decodeIImm(word)
		switch funct3 {
		case 0:
			in.Op = OpLB
		case 1:
			in.Op = OpLH
		case 2:
			in.Op = OpLW
		case 3:
			in.Op = OpLD
		case 4:
			in.Op = OpLBU
		case 5:
			in.Op = OpLHU
		case 6:
			in.Op = OpLWU
		default:
			in.Op = OpIllegal
		}
	case 0x23:
		in.Imm = decodeSImm(word)
		switch funct3 {
		case 0:
			in.Op = OpSB
		case 1:
			in.Op = OpSH
		case 2:
			in.Op = OpSW
		case 3:
			in.Op = OpSD
		default:
			in.Op = OpIllegal
		}
	case 0x13:
		in.Imm = decodeIImm(word)
		switch funct3 {
		case 0:
			in.Op = OpADDI
		case 2:
			in.Op = OpSLTI
		case 3:
			in.Op = OpSLTIU
		case 4:
			in.Op = OpXORI
		case 6:
			in.Op = OpORI
		case 7:
			in.Op = OpANDI
		case 1:
			in.Op = OpSLLI
			in.Shamt = rs2 | (funct7&0x1)<<5 // shamt6: low bit of funct7 extends to bit 5
		case 5:
			in.Shamt = rs2 | (funct7&0x1)<<5
			switch funct7 >> 1 {
			case 0x00:
				in.Op = OpSRLI
			case 0x10:
				in.Op = OpSRAI
			default:
				in.Op = OpIllegal
			}
		default:
			in.Op = OpIllegal
		}
	case 0x1B:
		in.Imm = decodeIImm(word)
		switch funct3 {
		case 0:
			in.Op = OpADDIW
		case 1:
			in.Op = OpSLLIW
			in.Shamt = rs2
		case 5:
			in.Shamt = rs2
			switch funct7 {
			case 0x00:
				in.Op = OpSRLIW
			case 0x20:
				in.Op = OpSRAIW
			default:
				in.Op = OpIllegal
			}
		default:
			in.Op = OpIllegal
		}
	case 0x33:
		in.Op = decodeAluR(funct3, funct7)
	case 0x3B:
		in.Op = decodeAluRW(funct3, funct7)
	case 0x0F:
		switch funct3 {
		case 0:
			in.Op = OpFENCE
		case 1:
			in.Op = OpFENCEI
		default:
			in.Op = OpIllegal
		}
	case 0x73:
		if funct3 == 0 {
			switch funct7 {
			case 0x09:
				in.Op = OpSFENCEVM
			default:
				switch (word >> 20) & 0xFFF {
				case 0x000:
					in.Op = OpECALL
				case 0x001:
					in.Op = OpEBREAK
				case 0x002:
					in.Op = OpURET
				case 0x102:
					in.Op = OpSRET
				case 0x302:
					in.Op = OpMRET
				default:
					in.Op = OpIllegal
				}
			}
		} else {
			in.Csr = uint16((word >> 20) & 0xFFF)
			switch funct3 {
			case 1:
				in.Op = OpCSRRW
			case 2:
				in.Op = OpCSRRS
			case 3:
				in.Op = OpCSRRC
			case 5:
				in.Op = OpCSRRWI
			case 6:
				in.Op = OpCSRRSI
			case 7:
				in.Op = OpCSRRCI
			default:
				in.Op = OpIllegal
			}
		}
	default:
		in.Op = OpIllegal
	}
	return in
}

func decodeAluR(funct3, funct7 uint32) Opcode {
	if funct7 == 0x01 {
		switch funct3 {
		case 0:
			return OpMUL
		case 1:
			return OpMULH
		case 2:
			return OpMULHSU
		case 3:
			return OpMULHU
		case 4:
			return OpDIV
		case 5:
			return OpDIVU
		case 6:
			return OpREM
		case 7:
			return OpREMU
		}
		return OpIllegal
	}
	switch funct3 {
	case 0:
		switch funct7 {
		case 0x00:
			return OpADD
		case 0x20:
			return OpSUB
		}
	case 1:
		return OpSLL
	case 2:
		return OpSLT
	case 3:
		return OpSLTU
	case 4:
		return OpXOR
	case 5:
		switch funct7 {
		case 0x00:
			return OpSRL
		case 0x20:
			return OpSRA
		}
	case 6:
		return OpOR
	case 7:
		return OpAND
	}
	return OpIllegal
}

func decodeAluRW(funct3, funct7 uint32) Opcode {
	if funct7 == 0x01 {
		switch funct3 {
		case 0:
			return OpMULW
		case 4:
			return OpDIVW
		case 5:
			return OpDIVUW
		case 6:
			return OpREMW
		case 7:
			return OpREMUW
		}
		return OpIllegal
	}
	switch funct3 {
	case 0:
		switch funct7 {
		case 0x00:
			return OpADDW
		case 0x20:
			return OpSUBW
		}
	case 1:
		return OpSLLW
	case 5:
		switch funct7 {
		case 0x00:
			return OpSRLW
		case 0x20:
			return OpSRAW
		}
	}
	return OpIllegal
}

func decodeIImm(word uint32) uint64 {
	return uint64(word>>20) & 0xFFF
}

func decodeSImm(word uint32) uint64 {
	hi := (word >> 25) & 0x7F
	lo := (word >> 7) & 0x1F
	return uint64(hi<<5 | lo)
}

func decodeBImm(word uint32) uint64 {
	bit12 := (word >> 31) & 0x1
	bit11 := (word >> 7) & 0x1
	bits10to5 := (word >> 25) & 0x3F
	bits4to1 := (word >> 8) & 0xF
	return uint64(bit12<<12 | bit11<<11 | bits10to5<<5 | bits4to1<<1)
}

func decodeJImm(word uint32) uint64 {
	bit20 := (word >> 31) & 0x1
	bits10to1 := (word >> 21) & 0x3FF
	bit11 := (word >> 20) & 0x1
	bits19to12 := (word >> 12) & 0xFF
	return uint64(bit20<<20 | bits19to12<<12 | bit11<<11 | bits10to1<<1)
}
