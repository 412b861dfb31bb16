package notifications

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const markdown = "mrkdwn"
const plainText = "plain_text"
const header = "header"
const section = "section"
const contextString = "context"

type slackMessage struct {
	Channel string  `json:"channel,omitempty"`
	Text    string  `json:"text"`
	Blocks  []Block `json:"blocks,omitempty"`
}

type Block struct {
	Type     string `json:"type"`
	Text     *Text  `json:"text,omitempty"`
	Elements []Text `json:"elements,omitempty"`
}

type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SlackProvider posts the block-kit payload to a Slack incoming
// webhook. Slack conveys status via emoji and label only, there is no
// color bar in its visual model.
type SlackProvider struct {
	WebhookURL     string
	DefaultChannel string
	sender         *sender
}

func (s *SlackProvider) Send(msg Message) error {
	slackMessage, err := msg.AsSlackMessage()
	if err != nil {
		return fmt.Errorf("cannot create slack message: %s", err)
	}

	slackMessage.Channel = s.channel(msg)

	statusCode, err := s.sender.post(s.WebhookURL, slackMessage)
	if err != nil {
		return err
	}

	logrus.Infof("slack webhook accepted notification, status: %d", statusCode)
	return nil
}

func (s *SlackProvider) channel(msg Message) string {
	if msg.CustomChannel() != "" {
		return msg.CustomChannel()
	}
	return s.DefaultChannel
}
