package send

import (
	"fmt"
	"time"

	"github.com/cicd-toolbox/workflow-notify/cmd/notify/config"
	"github.com/cicd-toolbox/workflow-notify/pkg/notifications"
	"github.com/cicd-toolbox/workflow-notify/pkg/results"
	"github.com/cicd-toolbox/workflow-notify/pkg/workflow"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var Command = cli.Command{
	Name:  "send",
	Usage: "Formats workflow job results and dispatches them to a chat webhook",
	UsageText: `notify send \
     --webhook-url https://hooks.example.com/xxx \
     --notification-type mattermost \
     --workflow-name "Build and Deploy" \
     --job-results "tests:success build:failure"`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "webhook-url",
			Usage:   "The destination webhook URL",
			EnvVars: []string{"WEBHOOK_URL"},
		},
		&cli.StringFlag{
			Name:    "notification-type",
			Usage:   "The chat backend: mattermost, 1, slack or 2",
			EnvVars: []string{"NOTIFICATION_TYPE"},
		},
		&cli.StringFlag{
			Name:    "channel",
			Usage:   "The target channel name or ID",
			EnvVars: []string{"CHANNEL"},
		},
		&cli.StringFlag{
			Name:    "workflow-name",
			Usage:   "The workflow's display name, falls back to the github context's workflow field",
			EnvVars: []string{"WORKFLOW_NAME"},
		},
		&cli.StringFlag{
			Name:    "job-results",
			Usage:   "Job results as name:status pairs or a flat JSON object",
			EnvVars: []string{"JOB_RESULTS"},
		},
		&cli.StringFlag{
			Name:    "github-context",
			Usage:   "The JSON-encoded github context of the run",
			EnvVars: []string{"GITHUB_CONTEXT"},
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the rendered payload instead of dispatching it",
		},
	},
	Action: send,
}

func send(c *cli.Context) error {
	cfg, err := config.Environ()
	if err != nil {
		return fmt.Errorf("invalid configuration: %s", err)
	}

	backend, err := notifications.BackendFromString(c.String("notification-type"))
	if err != nil {
		return err
	}

	set, err := results.Parse(c.String("job-results"))
	if err != nil {
		return err
	}
	overall := set.Overall()

	fields, err := workflow.ParseRawFields(c.String("github-context"))
	if err != nil {
		return err
	}
	ctx, err := workflow.BuildContext(fields, c.String("workflow-name"))
	if err != nil {
		return err
	}

	printSummary(overall, set)

	msg := notifications.MessageFromWorkflowResult(overall, set, ctx, c.String("channel"))

	if c.Bool("dry-run") {
		payload, err := notifications.Render(backend, msg)
		if err != nil {
			return err
		}
		fmt.Println(string(payload))
		return nil
	}

	if c.String("webhook-url") == "" {
		return &workflow.ValidationError{Field: "webhook-url"}
	}

	provider, err := notifications.NewProvider(
		backend,
		c.String("webhook-url"),
		cfg.DefaultChannel,
		time.Duration(cfg.TimeoutSeconds)*time.Second,
		time.Duration(cfg.RetryBackoffSeconds)*time.Second,
	)
	if err != nil {
		return err
	}

	return provider.Send(msg)
}

// printSummary echoes the per-job outcomes to the invoking workflow's log
func printSummary(overall results.Status, set *results.JobResultSet) {
	for _, job := range set.Jobs() {
		fmt.Printf("%s: %s\n", job.Name, colored(job.Status))
	}
	fmt.Printf("overall: %s\n", colored(overall))
}

func colored(status results.Status) string {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	switch status {
	case results.Failure:
		return red(status.String())
	case results.Cancelled:
		return gray(status.String())
	case results.Skipped:
		return yellow(status.String())
	}
	return green(status.String())
}
