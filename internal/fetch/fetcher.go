package fetch

import (
	"context"
	"errors"
	"fmt"
	"matchdata-backend/internal/components/assert"
	"matchdata-backend/internal/components/telemetry"
	"net"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("internal/fetch")

const (
	report_fetcher_fetch   = "fetcher.fetch"
	report_fetcher_attempt = "fetcher.attempt"
	report_fetcher_decode  = "fetcher.decode"
	report_fetcher_session = "fetcher.session"
)

// Request is one logical GET.
type Request struct {
	URL string
	// Headers override the session headers for this request only.
	Headers map[string]string
	// MaxRetries is the total attempt budget, 0 uses the fetcher default.
	MaxRetries int
	// Timeout applies to each attempt, 0 uses the fetcher default.
	Timeout time.Duration
}

type Result struct {
	URL        string
	StatusCode int
	// Body is the response decoded with Charset.
	Body     string
	Charset  string
	Attempts int
}

// Fetcher issues throttled, retried and backed-off GET requests through a pool of sessions.
// It is safe for concurrent use and is meant to be shared by every extractor.
type Fetcher struct {
	opts     Options
	pool     *SessionPool
	throttle *Throttle
	limiter  *rate.Limiter
	tel      telemetry.API

	sleep  func(ctx context.Context, d time.Duration) error
	jitter func() time.Duration
}

func New(opts Options, tel telemetry.API) *Fetcher {
	assert.NotNil(tel)
	opts = opts.withDefaults()
	tel = telemetry.NewScopedAPI("fetch", tel)
	return newFetcher(opts, NewSessionPool(opts, tel), NewThrottle(opts.MaxConcurrent), tel)
}

func newFetcher(opts Options, pool *SessionPool, throttle *Throttle, tel telemetry.API) *Fetcher {
	f := &Fetcher{
		opts:     opts,
		pool:     pool,
		throttle: throttle,
		tel:      tel,
		sleep:    sleepContext,
		jitter:   uniformJitter(opts.MinJitter.Std(), opts.MaxJitter.Std()),
	}
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return f
}

func (f *Fetcher) Pool() *SessionPool {
	return f.pool
}

func (f *Fetcher) Throttle() *Throttle {
	return f.throttle
}

// Get is Fetch with the default retry budget and timeout.
func (f *Fetcher) Get(ctx context.Context, link string, headers map[string]string) (Result, error) {
	return f.Fetch(ctx, Request{URL: link, Headers: headers})
}

// Fetch performs the request. The throttle permit and the session are held for the
// whole logical fetch, retries and backoff sleeps included.
func (f *Fetcher) Fetch(ctx context.Context, req Request) (Result, error) {
	ctx, span := tracer.Start(ctx, "fetcher:Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", req.URL))

	result, err := f.fetch(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		switch {
		case IsKind(err, KindTransport):
			f.tel.ReportBroken(report_fetcher_fetch, err)
		case IsKind(err, KindClient):
			f.tel.ReportWarning(report_fetcher_fetch, err)
		default:
			f.tel.ReportDebug("fetch canceled", req.URL, err)
		}
		return result, err
	}
	span.SetAttributes(
		attribute.Int("status", result.StatusCode),
		attribute.Int("attempts", result.Attempts),
	)
	return result, nil
}

func (f *Fetcher) fetch(ctx context.Context, req Request) (Result, error) {
	retries := req.MaxRetries
	if retries <= 0 {
		retries = f.opts.MaxRetries
	}
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = f.opts.Timeout.Std()
	}

	err := f.throttle.Acquire(ctx)
	if err != nil {
		return Result{}, &Error{Kind: KindCanceled, URL: req.URL, Err: err}
	}
	defer f.throttle.Release()

	session, err := f.pool.Acquire()
	if err != nil {
		f.tel.ReportBroken(report_fetcher_session, err)
		return Result{}, &Error{Kind: KindTransport, URL: req.URL, Reason: "create session", Err: err}
	}
	defer f.pool.Release(session)

	headers := f.composeHeaders(req.Headers)

	var lastErr error
	var lastStatus int
	var lastReason string
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			delay := Backoff(attempt, f.jitter(), f.opts.MaxDelay.Std())
			f.tel.ReportDebug("retrying request", req.URL, attempt+1, delay.String())
			err := f.sleep(ctx, delay)
			if err != nil {
				return Result{}, &Error{Kind: KindCanceled, URL: req.URL, Attempts: attempt, Err: err}
			}
		}
		if f.limiter != nil {
			err := f.limiter.Wait(ctx)
			if err != nil {
				return Result{}, &Error{Kind: KindCanceled, URL: req.URL, Attempts: attempt, Err: err}
			}
		}

		res, reqErr := f.do(ctx, session, req.URL, headers, timeout)
		if ctx.Err() != nil {
			return Result{}, &Error{Kind: KindCanceled, URL: req.URL, Attempts: attempt + 1, Err: ctx.Err()}
		}

		status := 0
		if res != nil && res.RawResponse != nil {
			status = res.StatusCode()
		}
		outcome, reason := classify(status, reqErr)
		switch outcome {
		case outcomeSuccess:
			charset := f.opts.CharsetFor(hostOf(req.URL))
			body, err := decode(res.Body(), charset)
			if err != nil {
				f.tel.ReportWarning(report_fetcher_decode, req.URL, charset, err)
				body = string(res.Body())
			}
			return Result{
				URL:        req.URL,
				StatusCode: status,
				Body:       body,
				Charset:    charset,
				Attempts:   attempt + 1,
			}, nil
		case outcomeClientError:
			return Result{StatusCode: status}, &Error{
				Kind:       KindClient,
				URL:        req.URL,
				Attempts:   attempt + 1,
				StatusCode: status,
				Reason:     reason,
			}
		}

		f.tel.ReportWarning(report_fetcher_attempt, req.URL, attempt+1, retries, reason, reqErr)
		lastErr = reqErr
		lastStatus = status
		lastReason = reason
	}

	return Result{StatusCode: lastStatus}, &Error{
		Kind:       KindTransport,
		URL:        req.URL,
		Attempts:   retries,
		StatusCode: lastStatus,
		Reason:     lastReason,
		Err:        lastErr,
	}
}

func (f *Fetcher) composeHeaders(overrides map[string]string) map[string]string {
	headers := make(map[string]string, len(f.opts.BaseHeaders)+len(overrides)+1)
	for k, v := range f.opts.BaseHeaders {
		headers[k] = v
	}
	// a fresh identity per logical fetch on top of the session one
	if agent := pickUserAgent(f.opts.UserAgents); agent != "" {
		headers["User-Agent"] = agent
	}
	for k, v := range overrides {
		headers[k] = v
	}
	return headers
}

func (f *Fetcher) do(
	ctx context.Context,
	session *Session,
	link string,
	headers map[string]string,
	timeout time.Duration,
) (*resty.Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return session.Client.R().
		SetContext(attemptCtx).
		SetHeaders(headers).
		Get(link)
}

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeClientError
	outcomeRetryable
)

// classify decides what a single attempt resulted in, `status` is 0 when no response arrived.
func classify(status int, err error) (outcome, string) {
	if err != nil {
		if isTimeout(err) {
			return outcomeRetryable, "timeout"
		}
		var netErr *net.OpError
		if errors.As(err, &netErr) {
			return outcomeRetryable, "connection failure"
		}
		return outcomeRetryable, fmt.Sprintf("request error: %s", err.Error())
	}
	switch {
	case status >= 500:
		return outcomeRetryable, fmt.Sprintf("server error status %d", status)
	case status >= 400:
		return outcomeClientError, fmt.Sprintf("client error status %d", status)
	case status == 0:
		return outcomeRetryable, "no response"
	case status < 200 || status >= 300:
		return outcomeRetryable, fmt.Sprintf("unexpected status %d", status)
	}
	return outcomeSuccess, ""
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func hostOf(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return link
	}
	return parsed.Host
}
