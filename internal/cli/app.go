// Package cli assembles the command-line driver around the riscv/exec
// core: flags, structured logging, and the fetch/decode/execute loop.
// Nothing in riscv or riscv/exec imports this package.
package cli

import "github.com/urfave/cli/v2"

// NewApp builds the top-level CLI application.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "riscv-sim"
	app.Usage = "RV32I/RV64I + M instruction-level simulator"
	app.Description = "Loads a hex memory image and executes it against the core RISC-V instruction semantics."
	app.Commands = []*cli.Command{
		RunCommand,
	}
	return app
}
