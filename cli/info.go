package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-barry/demos/core"
	"github.com/segmentio/encoding/json"
	"github.com/urfave/cli/v2"
)

type projectInfo struct {
	TemplatesDir  string           `json:"templatesDir"`
	OutputDir     string           `json:"outputDir"`
	Port          int              `json:"port"`
	DebugHeaders  bool             `json:"debugHeaders"`
	DebugLogs     bool             `json:"debugLogs"`
	Minify        bool             `json:"minify"`
	Demos         []core.DemoEntry `json:"demos"`
	Templates     int              `json:"templates"`
	ExportedPages int              `json:"exportedPages"`
}

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print configuration, demo list and export summary",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "json", Usage: "print machine-readable JSON"},
	},
	Action: func(c *cli.Context) error {
		config := loadConfig()

		info := projectInfo{
			TemplatesDir: config.TemplatesDir,
			OutputDir:    config.OutputDir,
			Port:         config.Port,
			DebugHeaders: config.DebugHeaders,
			DebugLogs:    config.DebugLogs,
			Minify:       config.Minify,
			Demos:        core.Demos(),
		}

		fs.WalkDir(core.TemplatesFS(config.TemplatesDir), ".", func(path string, d fs.DirEntry, err error) error {
			if err == nil && !d.IsDir() && strings.HasSuffix(path, ".html") {
				info.Templates++
			}
			return nil
		})

		filepath.Walk(config.OutputDir, func(path string, fi os.FileInfo, err error) error {
			if err == nil && !fi.IsDir() && strings.HasSuffix(path, ".html") {
				info.ExportedPages++
			}
			return nil
		})

		if c.Bool("json") {
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		templatesDir := info.TemplatesDir
		if templatesDir == "" {
			templatesDir = "(embedded)"
		}

		fmt.Println("📁 Templates Directory:", templatesDir)
		fmt.Println("📁 Output Directory:", info.OutputDir)
		fmt.Println("🔌 Port:", info.Port)
		fmt.Println("🔁 Debug Headers Enabled:", info.DebugHeaders)
		fmt.Println("🔁 Debug Logs Enabled:", info.DebugLogs)
		fmt.Println("🔁 Minify Enabled:", info.Minify)
		fmt.Println()

		fmt.Println("🗂️  Demos:")
		for _, demo := range info.Demos {
			fmt.Printf("   %-14s %s\n", demo.Title, demo.TemplateFile)
		}
		fmt.Println()

		fmt.Println("📦 Templates Found:", info.Templates)
		fmt.Println("💾 Exported Pages:", info.ExportedPages)

		return nil
	},
}
