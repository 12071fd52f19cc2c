package cli

import (
	"fmt"

	"github.com/go-barry/demos/core"
	"github.com/urfave/cli/v2"
)

var ExportCommand = &cli.Command{
	Name:  "export",
	Usage: "Render the index, demo pages and static assets into the output directory",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "out",
			Usage: "output directory (overrides outputDir in demos.config.yml)",
		},
	},
	Action: func(c *cli.Context) error {
		cfg := loadConfig()
		if out := c.String("out"); out != "" {
			cfg.OutputDir = out
		}

		renderer, assets := newRenderer("prod", cfg)

		fmt.Println("📦 Exporting to:", cfg.OutputDir)
		written, err := core.ExportSite(renderer, assets, cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		for _, rel := range written {
			fmt.Println("  ✔", rel)
		}
		fmt.Printf("✅ Exported %d files.\n", len(written))
		return nil
	},
}
