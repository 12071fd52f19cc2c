package main

import (
	"log"
	"os"

	democli "github.com/go-barry/demos/cli"
	_ "github.com/joho/godotenv/autoload"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "demos",
		Usage: "Serve the demo index and demo pages",
		Commands: []*clilib.Command{
			democli.InitCommand,
			democli.DevCommand,
			democli.ProdCommand,
			democli.ExportCommand,
			democli.CleanCommand,
			democli.CheckCommand,
			democli.InfoCommand,
		},
	}
	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
