package notifications

import (
	"github.com/cicd-toolbox/workflow-notify/pkg/results"
	"github.com/enescakir/emoji"
)

// Message renders itself into each supported backend's payload shape.
// Rendering is pure: no network or file I/O happens here.
type Message interface {
	AsSlackMessage() (*slackMessage, error)
	AsMattermostMessage() (*mattermostMessage, error)
	CustomChannel() string
}

// Provider delivers a rendered message to its webhook
type Provider interface {
	Send(msg Message) error
}

type statusDisplay struct {
	Emoji string
	Color string
	Label string
}

// displays is the status mapping shared by every backend renderer
var displays = map[results.Status]statusDisplay{
	results.Success:   {emoji.CheckMarkButton.String(), "#00FF00", "Success"},
	results.Failure:   {emoji.CrossMark.String(), "#FF0000", "Failure"},
	results.Cancelled: {emoji.WhiteMediumSquare.String(), "#808080", "Cancelled"},
	results.Skipped:   {emoji.NextTrackButton.String(), "#FFA500", "Skipped"},
}
