package botwebhook

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/esports-club/internal/domain/application"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
	"github.com/riskibarqy/esports-club/internal/platform/resilience"
)

const IdempotencyHeader = "Idempotency-Key"

var (
	errBotUnreachable = crerr.New("bot webhook unreachable")
	errBadResponse    = crerr.New("bot webhook response unreadable")
)

type Config struct {
	URL            string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client forwards web applications to the bot process webhook.
type Client struct {
	http    *fasthttp.Client
	url     string
	timeout time.Duration
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

type requestBody struct {
	Name    string `json:"name"`
	Discord string `json:"discord"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
}

type responseBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewClient(cfg Config, logger *logging.Logger) (*Client, error) {
	target, err := validateHTTPURL(cfg.URL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid BOT_WEBHOOK_URL")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                      "esports-club-web",
			ReadTimeout:               timeout,
			WriteTimeout:              timeout,
			MaxIdemponentCallAttempts: 1,
		},
		url:     target,
		timeout: timeout,
		breaker: cfg.CircuitBreaker.Build(),
		logger:  logger,
	}, nil
}

// Forward returns an error only when the bot could not be reached or its
// answer could not be read. Any HTTP status from the bot is a result.
func (c *Client) Forward(ctx context.Context, item application.Application, idempotencyKey string) (application.ForwardResult, error) {
	body, err := sonic.Marshal(requestBody{
		Name:    item.Name,
		Discord: item.Discord,
		Email:   item.Email,
		Phone:   item.Phone,
	})
	if err != nil {
		return application.ForwardResult{}, crerr.Wrap(err, "marshal application")
	}

	curlPreview := buildCurlPreview(c.url, idempotencyKey, len(body))
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("botwebhook.url", c.url),
			attribute.String("botwebhook.idempotency_key", idempotencyKey),
			attribute.String("botwebhook.request_curl_preview", curlPreview),
		)
	}
	c.logger.DebugContext(ctx, "bot webhook request", "url", c.url, "curl_preview", curlPreview)

	var result application.ForwardResult
	err = c.breaker.Execute(func() error {
		var callErr error
		result, callErr = c.post(ctx, body, idempotencyKey)
		return callErr
	}, isCircuitFailure)
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "bot webhook circuit breaker rejected request", "state", c.breaker.State())
		}
		return application.ForwardResult{}, err
	}

	if span.IsRecording() {
		span.SetAttributes(attribute.Int("botwebhook.status_code", result.StatusCode))
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, body []byte, idempotencyKey string) (application.ForwardResult, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if idempotencyKey != "" {
		req.Header.Set(IdempotencyHeader, idempotencyKey)
	}
	req.SetBodyRaw(body)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return application.ForwardResult{}, crerr.Mark(crerr.Wrapf(err, "post %s", c.url), errBotUnreachable)
	}

	raw := append([]byte(nil), resp.Body()...)
	status := resp.StatusCode()

	var decoded responseBody
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return application.ForwardResult{}, crerr.Mark(
			crerr.Wrapf(err, "decode bot response status=%d body=%s", status, truncateForLog(string(raw), 512)),
			errBadResponse,
		)
	}

	return application.ForwardResult{
		StatusCode: status,
		Success:    decoded.Success,
		Message:    decoded.Message,
	}, nil
}

// Only transport failures count against the breaker; a bot that answers,
// even with 503, is up.
func isCircuitFailure(err error) bool {
	return crerr.Is(err, errBotUnreachable)
}

func validateHTTPURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return candidate, nil
}

// buildCurlPreview omits the body: it carries the applicant's contact details.
func buildCurlPreview(target, idempotencyKey string, bodyLen int) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl -X POST")
	appendPart(shellQuote(target))
	appendPart("-H")
	appendPart(shellQuote("Content-Type: application/json"))
	if idempotencyKey != "" {
		appendPart("-H")
		appendPart(shellQuote(IdempotencyHeader + ": " + idempotencyKey))
	}
	appendPart("-d")
	appendPart(shellQuote("<" + strconv.Itoa(bodyLen) + " bytes redacted>"))

	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}
