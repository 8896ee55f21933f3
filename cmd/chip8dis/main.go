package main

import (
	"fmt"
	"os"

	"github.com/kitrofimov/chip8vm/chip8"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: chip8dis <input.ch8> <output.asm>")
		os.Exit(1)
	}

	rom, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	listing := chip8.DisassembleText(rom)

	if err := os.WriteFile(os.Args[2], []byte(listing), 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
