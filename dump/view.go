package dump

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
)

// View opens the dump's output in the configured external viewer and waits
// for it to exit. The context cancels the viewer process.
func (d *FieldDump) View(ctx context.Context) error {
	argv := d.viewCommand()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("dump: viewer failed: %w", err)
	}

	return nil
}

// viewCommand builds the viewer argv. The solver names the rectilinear-grid
// series <prefix>_..vtr, which the viewer expands to the per-timestep files.
func (d *FieldDump) viewCommand() []string {
	data := filepath.Join(d.dirPath, d.prefix+"_..vtr")
	return []string{d.viewer, "--data=" + data}
}
