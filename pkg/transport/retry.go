package transport

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// RetryPolicy describes the retry behavior injected into outbound HTTP
// clients. All retry/backoff lives at this boundary; the core never
// retries anything.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxJitter   time.Duration
	RetryIf     func(resp *resty.Response, err error) bool
}

// DefaultRetryIf retries transport errors, throttling, and 5xx responses.
func DefaultRetryIf(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode() >= http.StatusInternalServerError ||
		resp.StatusCode() == http.StatusTooManyRequests
}

// Apply configures the client with the policy: exponential backoff from
// BaseDelay, plus up to MaxJitter of random spread per wait.
func (p RetryPolicy) Apply(client *resty.Client) *resty.Client {
	if p.MaxAttempts <= 1 {
		return client
	}
	retryIf := p.RetryIf
	if retryIf == nil {
		retryIf = DefaultRetryIf
	}
	client.SetRetryCount(p.MaxAttempts - 1).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return retryIf(resp, err)
		}).
		SetRetryAfter(func(c *resty.Client, resp *resty.Response) (time.Duration, error) {
			attempt := 1
			if resp != nil && resp.Request != nil {
				attempt = resp.Request.Attempt
			}
			delay := p.BaseDelay << uint(attempt-1)
			if p.MaxJitter > 0 {
				delay += time.Duration(rand.Int63n(int64(p.MaxJitter)))
			}
			return delay, nil
		})
	return client
}
