package notifications

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Backend is the destination chat service. The set is closed: adding a
// backend means adding a variant here and a renderer on Message.
type Backend int

const (
	Mattermost Backend = iota
	Slack
)

func (b Backend) String() string {
	return backendToString[b]
}

var backendToString = map[Backend]string{
	Mattermost: "mattermost",
	Slack:      "slack",
}

// legacy numeric type codes are accepted for compatibility with
// workflows written against the first release
var backendToID = map[string]Backend{
	"mattermost": Mattermost,
	"1":          Mattermost,
	"slack":      Slack,
	"2":          Slack,
}

func BackendFromString(backendString string) (Backend, error) {
	if backend, ok := backendToID[strings.ToLower(strings.TrimSpace(backendString))]; ok {
		return backend, nil
	}
	return 0, fmt.Errorf("unknown notification type %q, must be one of mattermost, 1, slack, 2", backendString)
}

// NewProvider returns the provider matching the backend variant
func NewProvider(backend Backend, webhookURL string, defaultChannel string, timeout time.Duration, retryBackoff time.Duration) (Provider, error) {
	switch backend {
	case Mattermost:
		return &MattermostProvider{
			WebhookURL:     webhookURL,
			DefaultChannel: defaultChannel,
			sender:         newSender(timeout, retryBackoff),
		}, nil
	case Slack:
		return &SlackProvider{
			WebhookURL:     webhookURL,
			DefaultChannel: defaultChannel,
			sender:         newSender(timeout, retryBackoff),
		}, nil
	}
	return nil, fmt.Errorf("unsupported backend %d", backend)
}

// Render returns the payload JSON for the backend without dispatching
// it. Used by dry runs.
func Render(backend Backend, msg Message) ([]byte, error) {
	var payload interface{}
	var err error

	switch backend {
	case Mattermost:
		payload, err = msg.AsMattermostMessage()
	case Slack:
		payload, err = msg.AsSlackMessage()
	default:
		return nil, fmt.Errorf("unsupported backend %d", backend)
	}
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(payload, "", "  ")
}
