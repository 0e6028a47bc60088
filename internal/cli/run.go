package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/rv-core/riscv-sim/internal/loader"
	"github.com/rv-core/riscv-sim/riscv"
	"github.com/rv-core/riscv-sim/riscv/exec"
)

var (
	RunInputFlag = &cli.PathFlag{
		Name:     "input",
		Usage:    "path to a hex memory image to load before execution",
		Required: true,
	}
	RunXLenFlag = &cli.UintFlag{
		Name:  "xlen",
		Usage: "register width: 32 or 64",
		Value: 64,
	}
	RunStepsFlag = &cli.Uint64Flag{
		Name:  "steps",
		Usage: "maximum number of instructions to execute before stopping (0 = unbounded)",
		Value: 0,
	}
	RunInfoEveryFlag = &cli.Uint64Flag{
		Name:  "info-every",
		Usage: "log an Info progress line every N steps (0 = never)",
		Value: 0,
	}
	RunMemLimitFlag = &cli.Uint64Flag{
		Name:  "mem-limit",
		Usage: "bound the address space to this many bytes, faulting beyond it (0 = unbounded)",
		Value: 0,
	}
	RunPProfCPU = &cli.BoolFlag{
		Name:  "cpuprofile",
		Usage: "enable CPU profiling for the run, written to the working directory",
	}
)

// Run implements the "run" subcommand: load a hex memory image, build a
// fresh riscv.State, and fetch/decode/execute until the state stops or the
// step budget is exhausted.
func Run(ctx *cli.Context) error {
	if ctx.Bool(RunPProfCPU.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}

	l := Logger(os.Stderr, log.LevelInfo)

	rv := riscv.RV64
	if ctx.Uint(RunXLenFlag.Name) == 32 {
		rv = riscv.RV32
	}

	var mem *riscv.Memory
	if limit := ctx.Uint64(RunMemLimitFlag.Name); limit != 0 {
		mem = riscv.NewBoundedMemory(limit)
	} else {
		mem = riscv.NewMemory()
	}

	f, err := os.Open(ctx.Path(RunInputFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to open memory image: %w", err)
	}
	defer f.Close()

	entry, err := loader.Load(f, mem)
	if err != nil {
		return fmt.Errorf("failed to load memory image: %w", err)
	}

	state := riscv.NewState(rv, mem)
	state.PC = entry

	steps := ctx.Uint64(RunStepsFlag.Name)
	infoEvery := ctx.Uint64(RunInfoEveryFlag.Name)

	start := time.Now()
	var step uint64
	for !state.Stop {
		if steps != 0 && step >= steps {
			l.Info("step budget exhausted", "steps", step)
			break
		}
		if ctx.Context.Err() != nil {
			return ctx.Context.Err()
		}

		word, ferr := mem.Read32(state.PC)
		if ferr != nil {
			state.EnterTrap(false, riscv.CauseFetchAccess, state.PC)
			break
		}
		in := riscv.Decode(uint32(word))
		exec.Execute(state, in)
		step++

		if infoEvery != 0 && step%infoEvery == 0 {
			delta := time.Since(start)
			l.Info("processing",
				"step", step,
				"pc", HexU64(state.PC),
				"ips", float64(step)/(float64(delta)/float64(time.Second)),
				"pages", mem.PageCount(),
			)
		}
	}

	if state.Stop {
		l.Info("halted",
			"reason", stopReasonString(state.StopReason),
			"step", step,
			"pc", HexU64(state.PC),
			"cause", state.LastTrapCause,
			"tval", HexU64(state.LastTrapValue),
		)
	}
	return nil
}

func stopReasonString(r riscv.StopReason) string {
	switch r {
	case riscv.StopTrap:
		return "trap"
	case riscv.StopReturn:
		return "return"
	default:
		return "none"
	}
}

var RunCommand = &cli.Command{
	Name:        "run",
	Usage:       "Run a hex memory image to completion or to its step budget",
	Description: "Loads a hex memory image, then fetches, decodes, and executes instructions until the core halts or the step budget is exhausted.",
	Action:      Run,
	Flags: []cli.Flag{
		RunInputFlag,
		RunXLenFlag,
		RunStepsFlag,
		RunInfoEveryFlag,
		RunMemLimitFlag,
		RunPProfCPU,
	},
}
