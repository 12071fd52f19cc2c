package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/go-barry/demos"
	"github.com/go-barry/demos/core"
	"github.com/urfave/cli/v2"
)

var configFile = core.DefaultConfigFile

var loadConfig = func() core.Config {
	return core.ApplyEnv(core.LoadConfig(configFile))
}

var runServer = demos.Start

var portFlag = &cli.IntFlag{
	Name:  "port",
	Usage: "port to listen on (overrides the config file)",
}

var DevCommand = &cli.Command{
	Name:   "dev",
	Usage:  "Start the demo server in dev mode (live reload, no minification)",
	Flags:  []cli.Flag{portFlag},
	Action: startAction("dev"),
}

var ProdCommand = &cli.Command{
	Name:   "prod",
	Usage:  "Start the demo server in production mode (minified assets, metrics)",
	Flags:  []cli.Flag{portFlag},
	Action: startAction("prod"),
}

func startAction(env string) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg := loadConfig()
		if c.IsSet("port") {
			cfg.Port = c.Int("port")
		}

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, demos.RuntimeConfig{
			Env:    env,
			Config: cfg,
		})
	}
}

func newRenderer(env string, cfg core.Config) (*core.TemplateRenderer, *core.Assets) {
	assets := core.NewAssets(env)
	renderer := core.NewTemplateRenderer(
		core.TemplatesFS(cfg.TemplatesDir),
		core.TemplateFuncs(env, assets),
		env == "prod" && cfg.Minify,
	)
	return renderer, assets
}
