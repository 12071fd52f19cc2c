package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/go-barry/demos/core"
	"github.com/urfave/cli/v2"
)

func captureOutput(f func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func overrideLoadConfig(t *testing.T, cfg core.Config) {
	t.Helper()
	orig := loadConfig
	loadConfig = func() core.Config { return cfg }
	t.Cleanup(func() { loadConfig = orig })
}

func runCommand(cmd *cli.Command, args ...string) (string, error) {
	app := &cli.App{
		Commands:       []*cli.Command{cmd},
		ExitErrHandler: func(c *cli.Context, err error) {},
	}

	var err error
	output := captureOutput(func() {
		err = app.Run(append([]string{"demos"}, args...))
	})
	return output, err
}
