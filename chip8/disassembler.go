package chip8

import "fmt"

// Disassemble performs a linear sweep over a ROM image in 2-byte
// strides, emitting one assembly line per word. Words that decode
// become their canonical instruction text; words that don't become a
// ".word 0xNNNN" directive.
//
// This is deliberately dumb about code/data boundaries: a ROM that
// mixes sprite data into the instruction stream will produce garbage
// ".word"/instruction lines over that data, and recovering which is
// which is left to the reader. Re-assembling the output reproduces the
// exact input bytes (labels do not survive, since none existed to
// begin with).
func Disassemble(rom []byte) []string {
	lines := make([]string, 0, (len(rom)+1)/2)

	for i := 0; i+1 < len(rom); i += 2 {
		word := uint16(rom[i])<<8 | uint16(rom[i+1])

		if in, ok := Decode(word); ok {
			lines = append(lines, in.String())
		} else {
			lines = append(lines, fmt.Sprintf(".word 0x%04X", word))
		}
	}

	// an odd trailing byte can't form a word; surface it as raw data
	if len(rom)%2 == 1 {
		lines = append(lines, fmt.Sprintf(".byte 0x%02X", rom[len(rom)-1]))
	}

	return lines
}

// DisassembleText is Disassemble joined into one newline-terminated
// listing, matching the shape callers get back from an assembler run.
func DisassembleText(rom []byte) string {
	var out string
	for _, line := range Disassemble(rom) {
		out += line + "\n"
	}
	return out
}
