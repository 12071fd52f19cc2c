package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-barry/demos/core"
	"github.com/urfave/cli/v2"
)

const initConfig = `templatesDir: ./templates
outputDir: ./cache
debugHeaders: false
debugLogs: true
minify: true
port: 8080
`

var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Copy the built-in templates into ./templates for editing",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "force", Usage: "overwrite existing files"},
	},
	Action: func(c *cli.Context) error {
		targetDir, _ := os.Getwd()
		force := c.Bool("force")
		fmt.Println("🚀 Writing templates in:", targetDir)

		templatesDir := filepath.Join(targetDir, core.TemplatesDir)
		if err := copyEmbeddedDir(core.TemplatesFS(""), ".", templatesDir, force); err != nil {
			return fmt.Errorf("failed to write templates: %w", err)
		}

		configPath := filepath.Join(targetDir, core.DefaultConfigFile)
		if _, err := os.Stat(configPath); err == nil && !force {
			fmt.Println("ℹ️  Keeping existing", core.DefaultConfigFile)
		} else {
			fmt.Println("🔧 Writing", core.DefaultConfigFile)
			if err := os.WriteFile(configPath, []byte(initConfig), 0644); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		}

		fmt.Println("✅ Templates ready.")
		fmt.Println("▶  Run: demos dev")
		return nil
	},
}

func copyEmbeddedDir(source fs.FS, sourceDir string, targetDir string, force bool) error {
	return fs.WalkDir(source, sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(targetDir, rel)

		if d.IsDir() {
			return os.MkdirAll(targetPath, os.ModePerm)
		}

		if !force {
			if _, err := os.Stat(targetPath); err == nil {
				return nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}

		data, err := fs.ReadFile(source, path)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), os.ModePerm); err != nil {
			return err
		}

		return os.WriteFile(targetPath, data, 0644)
	})
}
