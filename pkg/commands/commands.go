package commands

import (
	"github.com/urfave/cli/v2"
)

// Run wraps a command in a throwaway app so command tests can drive it
// with raw arguments
func Run(cmd *cli.Command, args []string) error {
	app := &cli.App{
		Name:     "notify",
		Commands: []*cli.Command{cmd},
	}
	return app.Run(args)
}
