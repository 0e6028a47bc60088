package riscv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignExtend(t *testing.T) {
	cases := []struct {
		name string
		v    uint64
		bit  uint
		want uint64
	}{
		{"12-bit positive", 0x7FF, 11, 0x7FF},
		{"12-bit negative", 0xFFF, 11, 0xFFFFFFFFFFFFFFFF},
		{"12-bit min negative", 0x800, 11, 0xFFFFFFFFFFFFF800},
		{"32-bit negative", 0x80000000, 31, 0xFFFFFFFF80000000},
		{"20-bit positive (jal-style)", 0x0FFFFF, 20, 0x0FFFFF},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, SignExtend(c.v, c.bit))
		})
	}
}

func TestSext32Zext32(t *testing.T) {
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), Sext32(0xFFFFFFFF))
	require.Equal(t, uint64(0x00000000FFFFFFFF), Zext32(0xFFFFFFFF))
}

func TestSignedXLEN(t *testing.T) {
	require.Equal(t, int64(-1), SignedXLEN(RV32, 0xFFFFFFFF))
	require.Equal(t, int64(-1), SignedXLEN(RV64, 0xFFFFFFFFFFFFFFFF))
}

func TestShiftMask(t *testing.T) {
	require.Equal(t, uint64(0x1F), ShiftMask(RV32))
	require.Equal(t, uint64(0x3F), ShiftMask(RV64))
}
