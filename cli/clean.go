package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
)

var CleanCommand = &cli.Command{
	Name:      "clean",
	Usage:     "Delete exported pages from the output directory (default: outputDir in demos.config.yml)",
	ArgsUsage: "[path (optional)]",
	Action: func(c *cli.Context) error {
		config := loadConfig()
		target := config.OutputDir

		if c.Args().Len() > 0 {
			rel := strings.TrimPrefix(c.Args().Get(0), "/")
			if rel == "" || strings.Contains(rel, "..") {
				return fmt.Errorf("invalid path: %q", c.Args().Get(0))
			}
			target = filepath.Join(config.OutputDir, rel)
		}

		if _, err := os.Stat(target); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("🧼 Nothing to clean:", target)
				return nil
			}
			return fmt.Errorf("failed to access path: %w", err)
		}

		fmt.Println("🧹 Cleaning:", target)
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to clean output: %w", err)
		}

		fmt.Println("✅ Done.")
		return nil
	},
}
