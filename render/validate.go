package render

import (
	"fmt"

	"github.com/gogpu/fractal"
	"github.com/gogpu/naga"
)

// CompileSPIRV compiles WGSL source to a SPIR-V word slice via naga.
// SPIR-V is little-endian 32-bit words.
func CompileSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// ValidateProgram runs both stages of a compiled program through naga,
// reporting generator bugs at the WGSL source level before any GPU work.
// The compiler guarantees syntactically complete output for valid inputs,
// so a failure here indicates a fractal package defect, not user error.
func ValidateProgram(p fractal.Program) error {
	if _, err := CompileSPIRV(p.Vertex); err != nil {
		return fmt.Errorf("render: vertex stage: %w", err)
	}
	if _, err := CompileSPIRV(p.Fragment); err != nil {
		return fmt.Errorf("render: fragment stage: %w", err)
	}
	return nil
}
