package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/carve/internal/ux"
)

var configTemplate = `# carve configuration
# Where extracted files are written. Declared paths are joined under this.
output-dir: .

# What to do when an extracted file already exists on disk:
#   prompt    — ask once per run before overwriting anything (default)
#   overwrite — always replace existing files
#   skip      — never touch existing files
on-existing: prompt

# Declared paths matching any of these globs are never materialized.
ignore: []
#  - "**/*.min.js"
#  - "vendor/**"

# Quiet period after a document change before re-extraction (watch mode).
debounce-ms: 500
`

// Init writes an example .carve.yaml into targetDir.
func Init(targetDir string) error {
	configPath := filepath.Join(targetDir, ".carve.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf(".carve.yaml already exists in %s", targetDir)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing .carve.yaml: %w", err)
	}

	fmt.Printf("\n%s%s✓ Wrote .carve.yaml%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Edit %s.carve.yaml%s to set the output directory and overwrite policy\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Run %scarve extract <transcript>%s to materialize files once\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Run %scarve watch <transcript>%s to re-extract on every change\n\n", ux.Cyan, ux.Reset)

	return nil
}
