package notifications

import (
	"encoding/json"
	"testing"

	"github.com/cicd-toolbox/workflow-notify/pkg/results"
	"github.com/cicd-toolbox/workflow-notify/pkg/workflow"
	"github.com/stretchr/testify/assert"
)

func testContext() *workflow.Context {
	return &workflow.Context{
		Repository:   "acme/shop",
		Branch:       "main",
		SHA:          "ea9ab7cc31b2599bf4afcfd639da516ca27a4780",
		Actor:        "jane-doe",
		RunID:        "1234567",
		RunURL:       "https://github.com/acme/shop/actions/runs/1234567",
		WorkflowName: "Build and Deploy",
	}
}

func testJobs(t *testing.T, input string) *results.JobResultSet {
	set, err := results.Parse(input)
	assert.Nil(t, err)
	return set
}

func Test_asMattermostMessage(t *testing.T) {
	jobs := testJobs(t, "tests:success\nbuild:failure")
	msg := MessageFromWorkflowResult(jobs.Overall(), jobs, testContext(), "cicd-notifications")

	mm, err := msg.AsMattermostMessage()
	assert.Nil(t, err)
	assert.Equal(t, "cicd-notifications", mm.Channel)
	assert.Equal(t, 1, len(mm.Attachments))
	assert.Equal(t, "#FF0000", mm.Attachments[0].Color)
	assert.Contains(t, mm.Attachments[0].Title, "Build and Deploy")
	assert.Contains(t, mm.Attachments[0].Title, "Failure")
	assert.Equal(t, "https://github.com/acme/shop/actions/runs/1234567", mm.Attachments[0].Footer)

	// jobs render in input order
	assert.Equal(t, "tests: ✅ Success\nbuild: ❌ Failure", mm.Attachments[0].Text)
}

func Test_asSlackMessage(t *testing.T) {
	jobs := testJobs(t, "tests:success\nbuild:success")
	msg := MessageFromWorkflowResult(jobs.Overall(), jobs, testContext(), "C0123456")

	sm, err := msg.AsSlackMessage()
	assert.Nil(t, err)
	assert.Equal(t, "C0123456", sm.Channel)
	assert.Equal(t, 3, len(sm.Blocks))

	assert.Equal(t, "header", sm.Blocks[0].Type)
	assert.Contains(t, sm.Blocks[0].Text.Text, "Build and Deploy")
	assert.Contains(t, sm.Blocks[0].Text.Text, "Success")

	assert.Equal(t, "section", sm.Blocks[1].Type)
	assert.Equal(t, "tests: ✅ Success\nbuild: ✅ Success", sm.Blocks[1].Text.Text)

	assert.Equal(t, "context", sm.Blocks[2].Type)
	assert.Equal(t, "repo: acme/shop", sm.Blocks[2].Elements[0].Text)
	assert.Equal(t, "branch: main", sm.Blocks[2].Elements[1].Text)
	assert.Equal(t, "commit: ea9ab7c", sm.Blocks[2].Elements[2].Text)
	assert.Equal(t, "actor: jane-doe", sm.Blocks[2].Elements[3].Text)
}

func Test_renderIsDeterministic(t *testing.T) {
	jobs := testJobs(t, "tests:success\nbuild:cancelled\ndeploy:skipped")
	msg := MessageFromWorkflowResult(jobs.Overall(), jobs, testContext(), "cicd-notifications")

	for _, backend := range []Backend{Mattermost, Slack} {
		first, err := Render(backend, msg)
		assert.Nil(t, err)
		second, err := Render(backend, msg)
		assert.Nil(t, err)
		assert.Equal(t, first, second)
	}
}

func Test_statusDisplayMapping(t *testing.T) {
	cancelled := displays[results.Cancelled]
	assert.Equal(t, "◻️", cancelled.Emoji)
	assert.Equal(t, "#808080", cancelled.Color)
	assert.Equal(t, "Cancelled", cancelled.Label)

	skipped := displays[results.Skipped]
	assert.Equal(t, "⏭️", skipped.Emoji)
	assert.Equal(t, "#FFA500", skipped.Color)
	assert.Equal(t, "Skipped", skipped.Label)
}

func Test_renderedPayloadIsValidJSON(t *testing.T) {
	jobs := testJobs(t, "tests:failure")
	msg := MessageFromWorkflowResult(jobs.Overall(), jobs, testContext(), "cicd-notifications")

	payload, err := Render(Slack, msg)
	assert.Nil(t, err)

	var decoded map[string]interface{}
	err = json.Unmarshal(payload, &decoded)
	assert.Nil(t, err)
	assert.Equal(t, "cicd-notifications", decoded["channel"])
}
