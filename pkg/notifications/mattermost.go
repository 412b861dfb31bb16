package notifications

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type mattermostMessage struct {
	Channel     string                 `json:"channel,omitempty"`
	Text        string                 `json:"text,omitempty"`
	Attachments []mattermostAttachment `json:"attachments"`
}

type mattermostAttachment struct {
	Color  string `json:"color"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Footer string `json:"footer,omitempty"`
}

// MattermostProvider posts an attachment-style payload to a Mattermost
// incoming webhook. The attachment's side bar carries the overall
// status color.
type MattermostProvider struct {
	WebhookURL     string
	DefaultChannel string
	sender         *sender
}

func (m *MattermostProvider) Send(msg Message) error {
	mattermostMessage, err := msg.AsMattermostMessage()
	if err != nil {
		return fmt.Errorf("cannot create mattermost message: %s", err)
	}

	mattermostMessage.Channel = m.channel(msg)

	statusCode, err := m.sender.post(m.WebhookURL, mattermostMessage)
	if err != nil {
		return err
	}

	logrus.Infof("mattermost webhook accepted notification, status: %d", statusCode)
	return nil
}

func (m *MattermostProvider) channel(msg Message) string {
	if msg.CustomChannel() != "" {
		return msg.CustomChannel()
	}
	return m.DefaultChannel
}
