package main

import (
	"fmt"
	"os"

	"github.com/kitrofimov/chip8vm/chip8"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: chip8asm <input.asm> <output.ch8>")
		os.Exit(1)
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result := chip8.AssembleSource(string(src))

	reporter := chip8.Reporter{Source: string(src)}
	for _, d := range result.Report.Diagnostics {
		fmt.Fprint(os.Stderr, reporter.Format(d))
	}

	if err := result.EncodedROMError(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := os.WriteFile(os.Args[2], result.ROM, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
