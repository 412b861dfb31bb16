package notifications

import (
	"fmt"
	"strings"

	"github.com/cicd-toolbox/workflow-notify/pkg/results"
	"github.com/cicd-toolbox/workflow-notify/pkg/workflow"
)

// workflowResultMessage is the one message this tool sends: the outcome
// of a finished workflow run, one line per job.
type workflowResultMessage struct {
	overall results.Status
	jobs    *results.JobResultSet
	ctx     *workflow.Context
	channel string
}

func MessageFromWorkflowResult(overall results.Status, jobs *results.JobResultSet, ctx *workflow.Context, channel string) Message {
	return &workflowResultMessage{
		overall: overall,
		jobs:    jobs,
		ctx:     ctx,
		channel: channel,
	}
}

func (wm *workflowResultMessage) AsSlackMessage() (*slackMessage, error) {
	display := displays[wm.overall]

	msg := &slackMessage{
		Channel: wm.channel,
		Text:    fmt.Sprintf("%s: %s", wm.ctx.WorkflowName, display.Label),
		Blocks:  []Block{},
	}

	msg.Blocks = append(msg.Blocks,
		Block{
			Type: header,
			Text: &Text{
				Type: plainText,
				Text: fmt.Sprintf("%s %s: %s", display.Emoji, wm.ctx.WorkflowName, display.Label),
			},
		},
	)
	msg.Blocks = append(msg.Blocks,
		Block{
			Type: section,
			Text: &Text{
				Type: markdown,
				Text: wm.jobLines(),
			},
		},
	)
	msg.Blocks = append(msg.Blocks,
		Block{
			Type: contextString,
			Elements: []Text{
				{Type: markdown, Text: fmt.Sprintf("repo: %s", wm.ctx.Repository)},
				{Type: markdown, Text: fmt.Sprintf("branch: %s", wm.ctx.Branch)},
				{Type: markdown, Text: fmt.Sprintf("commit: %s", shortSHA(wm.ctx.SHA))},
				{Type: markdown, Text: fmt.Sprintf("actor: %s", wm.ctx.Actor)},
			},
		},
	)

	return msg, nil
}

func (wm *workflowResultMessage) AsMattermostMessage() (*mattermostMessage, error) {
	display := displays[wm.overall]

	msg := &mattermostMessage{
		Channel: wm.channel,
		Attachments: []mattermostAttachment{
			{
				Color:  display.Color,
				Title:  fmt.Sprintf("%s %s: %s", display.Emoji, wm.ctx.WorkflowName, display.Label),
				Text:   wm.jobLines(),
				Footer: wm.ctx.RunURL,
			},
		},
	}

	return msg, nil
}

func (wm *workflowResultMessage) CustomChannel() string {
	return wm.channel
}

func (wm *workflowResultMessage) jobLines() string {
	lines := []string{}
	for _, job := range wm.jobs.Jobs() {
		display := displays[job.Status]
		lines = append(lines, fmt.Sprintf("%s: %s %s", job.Name, display.Emoji, display.Label))
	}
	return strings.Join(lines, "\n")
}

func shortSHA(sha string) string {
	if len(sha) < 8 {
		return sha
	}
	return sha[0:7]
}
