package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cicd-toolbox/workflow-notify/cmd/notify/config"
	"github.com/cicd-toolbox/workflow-notify/pkg/commands/send"
	"github.com/cicd-toolbox/workflow-notify/pkg/notifications"
	"github.com/cicd-toolbox/workflow-notify/pkg/results"
	"github.com/cicd-toolbox/workflow-notify/pkg/version"
	"github.com/cicd-toolbox/workflow-notify/pkg/workflow"
	"github.com/enescakir/emoji"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Debugf("could not load .env file, relying on env vars")
	}

	cfg, err := config.Environ()
	if err != nil {
		logger := logrus.WithError(err)
		logger.Fatalln("main: invalid configuration")
	}

	initLogging(cfg)

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		fmt.Println(cfg.String())
	}

	app := &cli.App{
		Name:    "notify",
		Version: version.String(),
		Usage:   "formats CI/CD workflow outcomes and dispatches them to Mattermost or Slack",
		Description: `Exit codes:
   0  notification delivered
   1  malformed job results or missing context fields
   2  webhook delivery failed`,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			&send.Command,
		},
	}
	err = app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v %s\n", emoji.CrossMark, err.Error())
		os.Exit(exitCode(err))
	}
}

// exitCode keeps configuration mistakes distinguishable from transient
// delivery failure for the invoking workflow
func exitCode(err error) int {
	var dispatchErr *notifications.DispatchError
	if errors.As(err, &dispatchErr) {
		return 2
	}

	var parseErr *results.ParseError
	var validationErr *workflow.ValidationError
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) {
		return 1
	}

	return 1
}

// helper function configures the logging.
func initLogging(c *config.Config) {
	if c.Logging.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if c.Logging.Trace {
		logrus.SetLevel(logrus.TraceLevel)
	}
	if c.Logging.Text {
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   c.Logging.Color,
			DisableColors: !c.Logging.Color,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			PrettyPrint: c.Logging.Pretty,
		})
	}
}
