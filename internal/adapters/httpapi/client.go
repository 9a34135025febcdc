// Package httpapi implements the panel transport: it encodes named commands
// as form requests, parses the panel's line-oriented replies and maps the
// embedded error indicator onto the domain error taxonomy.
package httpapi

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.trai.ch/zerr"
)

const tracerName = "go.nivo.ch/panelctl/internal/adapters/httpapi"

// maxResponseSize caps how much of a reply is read. Panel listings are small;
// anything larger is a misbehaving endpoint.
const maxResponseSize = 4 << 20

// Client implements ports.Transport against the panel's HTTP API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	login      string
	password   string
	logger     ports.Logger
}

// NewClient creates a transport for the configured panel endpoint.
func NewClient(cfg *domain.ClientConfig, logger ports.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   cfg.Endpoint,
		login:      cfg.Login,
		password:   cfg.Password,
		logger:     logger,
	}
}

// Query invokes a read-only command via GET.
func (c *Client) Query(ctx context.Context, command string, params map[string]string) (*domain.Response, error) {
	return c.invoke(ctx, http.MethodGet, command, params)
}

// Apply invokes a mutating command via POST.
func (c *Client) Apply(ctx context.Context, command string, params map[string]string) (*domain.Response, error) {
	return c.invoke(ctx, http.MethodPost, command, params)
}

func (c *Client) invoke(ctx context.Context, method, command string, params map[string]string) (*domain.Response, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "panel."+command)
	defer span.End()

	id := requestID(command, params)
	span.SetAttributes(
		attribute.String("panel.command", command),
		attribute.String("panel.request_id", id),
	)
	c.logger.Debug(fmt.Sprintf("panel %s %s id=%s", method, command, id))

	form := url.Values{}
	form.Set("action", command)
	form.Set("login", c.login)
	form.Set("password", c.password)
	for k, v := range params {
		form.Set(k, v)
	}

	req, err := c.newRequest(ctx, method, form)
	if err != nil {
		return nil, zerr.With(zerr.With(domain.ErrRequestFailed, "command", command), "error", err.Error())
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, zerr.With(zerr.With(domain.ErrRequestFailed, "command", command), "error", err.Error())
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		err := zerr.With(zerr.With(domain.ErrRequestFailed, "command", command), "status", httpResp.StatusCode)
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected http status")
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.With(domain.ErrRequestFailed, "command", command), "error", err.Error())
	}

	resp, err := parseResponse(body)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(err, "command", command)
	}

	code, err := resp.Field("error")
	if err != nil {
		return nil, zerr.With(zerr.With(domain.ErrMalformedResponse, "command", command), "missing", "error")
	}
	if code != "0" {
		rejection := zerr.With(domain.ErrCommandRejected, "command", command)
		rejection = zerr.With(rejection, "code", code)
		rejection = zerr.With(rejection, "details", resp.Fields["details"])
		span.RecordError(rejection)
		span.SetStatus(codes.Error, "command rejected")
		return nil, rejection
	}

	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method string, form url.Values) (*http.Request, error) {
	if method == http.MethodGet {
		return http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+form.Encode(), nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

// requestID derives a short correlation id from the command and its
// parameters. Credentials are deliberately not part of the digest.
func requestID(command string, params map[string]string) string {
	h := xxhash.New()
	_, _ = h.WriteString(command)
	for _, k := range slices.Sorted(maps.Keys(params)) {
		_, _ = h.WriteString("\x00" + k + "=" + params[k])
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
