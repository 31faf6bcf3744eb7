package gpu

import (
	"fmt"

	"github.com/gogpu/naga"
)

// CheckWGSL compiles src offline so syntax and type errors surface with
// naga's diagnostics before the device sees the program.
func CheckWGSL(label, src string) error {
	if _, err := naga.Compile(src); err != nil {
		return fmt.Errorf("wgsl %q: %w", label, err)
	}
	return nil
}
