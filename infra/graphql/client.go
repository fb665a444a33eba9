package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/infra/auth"
	"github.com/borz-social/borz/infra/logger"
)

const userAgent = "borz_client/0.1.0"

// Client is a thin HTTP wrapper for the Borz GraphQL endpoint.
// It handles request encoding, token injection and error mapping.
type Client struct {
	endpoint      string
	tokenProvider auth.TokenProvider
	http          *http.Client
	tracer        trace.Tracer
	log           *slog.Logger
}

// NewClient creates a GraphQL client. tp may be nil for a client that only
// issues unauthenticated operations.
func NewClient(endpoint string, tp auth.TokenProvider) *Client {
	return &Client{
		endpoint:      endpoint,
		tokenProvider: tp,
		http:          &http.Client{Timeout: 20 * time.Second},
		tracer:        otel.Tracer("github.com/borz-social/borz/infra/graphql"),
		log:           logger.ComponentLogger("graphql"),
	}
}

// WithTokens returns a copy of the client that authenticates with tp.
func (c *Client) WithTokens(tp auth.TokenProvider) *Client {
	cp := *c
	cp.tokenProvider = tp
	return &cp
}

type request struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// Query runs an authenticated operation and decodes its data into out.
func (c *Client) Query(ctx context.Context, op, query string, vars map[string]any, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	return c.do(ctx, op, query, vars, token, out)
}

// Anonymous runs an operation without an Authorization header.
func (c *Client) Anonymous(ctx context.Context, op, query string, vars map[string]any, out any) error {
	return c.do(ctx, op, query, vars, "", out)
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.tokenProvider == nil {
		return "", domain.ErrUnauthorized
	}
	return c.tokenProvider.AccessToken(ctx)
}

func (c *Client) do(ctx context.Context, op, query string, vars map[string]any, token string, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "graphql."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("graphql.operation", op)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	body, err := json.Marshal(request{OperationName: op, Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("encoding %s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", reqID)
	if token != "" {
		req.Header.Set("Authorization", "JWT "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	c.log.Debug("graphql request", "op", op, "status", resp.StatusCode, "request_id", reqID, "elapsed", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", op, domain.ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API %s returned %d: %s", op, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var r response
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parsing %s response: %w", op, err)
	}
	if len(r.Errors) > 0 {
		msgs := make([]string, 0, len(r.Errors))
		for _, e := range r.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("%s: %w: %s", op, domain.ErrRemote, strings.Join(msgs, "; "))
	}
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return fmt.Errorf("%s: %w: empty data", op, domain.ErrRemote)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(r.Data, out); err != nil {
		return fmt.Errorf("decoding %s data: %w", op, err)
	}
	return nil
}

// connection is a Relay-style list.
type connection[T any] struct {
	Edges []struct {
		Node *T `json:"node"`
	} `json:"edges"`
}

func (c connection[T]) nodes() []T {
	out := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		if e.Node != nil {
			out = append(out, *e.Node)
		}
	}
	return out
}

// mutationResult is the common payload of account mutations.
type mutationResult struct {
	Success bool            `json:"success"`
	Errors  json.RawMessage `json:"errors"`
}

func (m mutationResult) err(op string) error {
	if m.Success {
		return nil
	}
	detail := strings.TrimSpace(string(m.Errors))
	if detail == "" || detail == "null" {
		return fmt.Errorf("%s: %w", op, domain.ErrRemote)
	}
	return fmt.Errorf("%s: %w: %s", op, domain.ErrRemote, detail)
}
