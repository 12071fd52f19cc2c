package cli

import (
	"fmt"

	"github.com/go-barry/demos/core"
	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Render the index and every demo template and report failures",
	Action: func(c *cli.Context) error {
		cfg := loadConfig()
		renderer, _ := newRenderer("dev", cfg)

		var failed bool
		report := func(label string, err error) {
			if err != nil {
				failed = true
				fmt.Printf("❌ %s → %v\n", label, err)
				return
			}
			fmt.Printf("✅ %s\n", label)
		}

		_, err := core.RenderTemplate(renderer, core.IndexTemplate, core.IndexValues())
		report("/", err)

		for _, demo := range core.Demos() {
			_, err := core.RenderTemplate(renderer, demo.TemplateFile, core.DemoValues(demo))
			report(core.DemoPrefix+demo.TemplateFile, err)
		}

		if failed {
			return cli.Exit("some templates failed to render", 1)
		}

		fmt.Println("✅ All templates validated successfully.")
		return nil
	},
}
