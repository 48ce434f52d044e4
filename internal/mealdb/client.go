package mealdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/mealfinder/meal-finder/internal/model"
)

// Endpoint paths and query parameters
const (
	FilterPath  = "filter.php"
	LookupPath  = "lookup.php"
	AreaParam   = "a"
	LookupParam = "i"
)

// Transport settings
const (
	DefaultTimeout  = 15 * time.Second
	MaxBodyBytes    = 10 << 20
	RequestIDHeader = "X-Request-ID"
	UserAgent       = "meal-finder/1.0"
)

// ErrResponseTooLarge marks a body over the client's size limit. It is
// reported together with model.ErrNetwork.
var ErrResponseTooLarge = errors.New("response too large")

// Client talks to TheMealDB over HTTP
type Client struct {
	baseURL  string
	client   *http.Client
	log      zerolog.Logger
	maxBytes int64
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

// WithLogger sets the request logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithMaxBodyBytes caps the size of a response body
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// NewClient creates a gateway client for the given base URL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: DefaultTimeout},
		log:      zerolog.Nop(),
		maxBytes: MaxBodyBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListMealsByArea returns the meals of an area in service order
func (c *Client) ListMealsByArea(ctx context.Context, area string) ([]model.MealSummary, error) {
	body, err := c.get(ctx, c.endpoint(FilterPath, AreaParam, area))
	if err != nil {
		return nil, fmt.Errorf("list meals for %q: %w", area, err)
	}

	records, err := decodeMeals(body)
	if err != nil {
		return nil, fmt.Errorf("list meals for %q: %w", area, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("list meals for %q: %w", area, model.ErrNoResults)
	}

	meals := make([]model.MealSummary, 0, len(records))
	for _, record := range records {
		summary, err := toSummary(record)
		if err != nil {
			return nil, fmt.Errorf("list meals for %q: %w", area, err)
		}
		meals = append(meals, summary)
	}
	return meals, nil
}

// GetMealDetail returns the full record for a meal id
func (c *Client) GetMealDetail(ctx context.Context, id string) (*model.MealDetail, error) {
	body, err := c.get(ctx, c.endpoint(LookupPath, LookupParam, id))
	if err != nil {
		return nil, fmt.Errorf("lookup meal %s: %w", id, err)
	}

	records, err := decodeMeals(body)
	if err != nil {
		return nil, fmt.Errorf("lookup meal %s: %w", id, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("lookup meal %s: %w", id, model.ErrNotFound)
	}

	detail, err := toDetail(records[0])
	if err != nil {
		return nil, fmt.Errorf("lookup meal %s: %w", id, err)
	}
	if detail.ID == "" {
		detail.ID = id
	}
	return detail, nil
}

// FetchImage downloads an image and scales it to width x height. A
// non-positive size returns the decoded image unscaled.
func (c *Client) FetchImage(ctx context.Context, imageURL string, width, height int) (image.Image, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, fmt.Errorf("fetch image: %w: empty url", model.ErrImageDecode)
	}

	body, err := c.get(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", imageURL, err)
	}

	src, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w: %v", imageURL, model.ErrImageDecode, err)
	}
	c.log.Debug().Str("url", imageURL).Str("format", format).
		Int("width", src.Bounds().Dx()).Int("height", src.Bounds().Dy()).Msg("image decoded")

	return Resize(src, width, height), nil
}

// Resize scales src to exactly width x height
func Resize(src image.Image, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// endpoint builds <base>/<path>?<param>=<value>
func (c *Client) endpoint(path, param, value string) string {
	query := url.Values{}
	query.Set(param, value)
	return c.baseURL + "/" + path + "?" + query.Encode()
}

// get performs a GET and returns the body of a 2xx response
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", model.ErrNetwork, err)
	}

	requestID := newRequestID()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("User-Agent", UserAgent)

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug().Str("request_id", requestID).Str("url", rawURL).Err(err).Msg("request failed")
		return nil, fmt.Errorf("%w: %v", model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", model.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", model.ErrNetwork, err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%w: %w: over %d bytes", model.ErrNetwork, ErrResponseTooLarge, c.maxBytes)
	}
	return body, nil
}

// newRequestID returns a time-ordered request id
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
