package notifications

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

type DispatchErrorKind int

const (
	// Timeout the backend did not respond within the bounded wait
	Timeout DispatchErrorKind = iota
	// TransportFailure the connection could not be established or was reset
	TransportFailure
	// RejectedByBackend the backend answered with a non-2xx status
	RejectedByBackend
)

// DispatchError signals a failed webhook delivery. Rejections carry the
// backend's status code to aid diagnosing a misconfigured webhook.
type DispatchError struct {
	Kind       DispatchErrorKind
	StatusCode int
	Err        error
}

func (e *DispatchError) Error() string {
	switch e.Kind {
	case Timeout:
		return fmt.Sprintf("webhook timed out: %s", e.Err)
	case RejectedByBackend:
		return fmt.Sprintf("webhook rejected notification, status: %d", e.StatusCode)
	}
	return fmt.Sprintf("cannot reach webhook: %s", e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// sender performs the HTTP delivery. Transport-level failures get
// exactly one retry after a fixed backoff, the two attempts are
// strictly sequential. Rejections are never retried.
type sender struct {
	client       *http.Client
	retryBackoff time.Duration
}

func newSender(timeout time.Duration, retryBackoff time.Duration) *sender {
	return &sender{
		client:       &http.Client{Timeout: timeout},
		retryBackoff: retryBackoff,
	}
}

func (s *sender) post(url string, payload interface{}) (int, error) {
	b := new(bytes.Buffer)
	err := json.NewEncoder(b).Encode(payload)
	if err != nil {
		return 0, fmt.Errorf("cannot encode payload: %s", err)
	}
	body := b.Bytes()

	var statusCode int
	operation := func() error {
		req, err := http.NewRequest("POST", url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("cannot build request: %s", err))
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := s.client.Do(req)
		if err != nil {
			logrus.Warnf("could not post to webhook: %s", err)
			return &DispatchError{Kind: transportKind(err), Err: err}
		}
		defer res.Body.Close()
		io.Copy(io.Discard, res.Body)

		if res.StatusCode >= 300 {
			return backoff.Permanent(&DispatchError{Kind: RejectedByBackend, StatusCode: res.StatusCode})
		}

		statusCode = res.StatusCode
		return nil
	}

	backoffStrategy := backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryBackoff), 1)
	err = backoff.Retry(operation, backoffStrategy)
	if err != nil {
		return 0, err
	}

	return statusCode, nil
}

func transportKind(err error) DispatchErrorKind {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}
	return TransportFailure
}
