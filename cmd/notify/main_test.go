package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cicd-toolbox/workflow-notify/pkg/notifications"
	"github.com/cicd-toolbox/workflow-notify/pkg/results"
	"github.com/cicd-toolbox/workflow-notify/pkg/workflow"
	"github.com/stretchr/testify/assert"
)

func Test_exitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(&results.ParseError{Token: "build:weird", Reason: "unknown status"}))
	assert.Equal(t, 1, exitCode(&workflow.ValidationError{Field: "repository"}))
	assert.Equal(t, 2, exitCode(&notifications.DispatchError{Kind: notifications.RejectedByBackend, StatusCode: 422}))
	assert.Equal(t, 1, exitCode(errors.New("anything else")))

	// wrapped errors still map
	wrapped := fmt.Errorf("sending failed: %w", &notifications.DispatchError{Kind: notifications.Timeout})
	assert.Equal(t, 2, exitCode(wrapped))
}
