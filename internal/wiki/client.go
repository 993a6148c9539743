package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/proxy"

	"github.com/smtchahal/wikipedia-philosophy/internal/model"
)

// Client defaults.
const (
	// DefaultBaseURL is the English-language encyclopedia's action API.
	DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

	// DefaultTimeout bounds one API round trip.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the tool, per the API's etiquette of
	// carrying a contact URL in the agent string.
	DefaultUserAgent = "wikipedia-philosophy (+https://github.com/smtchahal/wikipedia-philosophy)"
)

// Client fetches rendered article markup from a MediaWiki action API.
//
// Design decision: The constructor validates configuration but performs no
// network I/O, so a Client can be built before the network is up and tested
// against httptest servers.
type Client struct {
	// baseURL is the action API endpoint.
	baseURL string

	// userAgent is sent with every request.
	userAgent string

	// timeout bounds each round trip when the client builds its own
	// http.Client.
	timeout time.Duration

	// proxyAddress is an optional SOCKS5 proxy in "host:port" format.
	proxyAddress string

	// httpClient performs the requests.
	httpClient *http.Client

	// logger records fetches at debug level.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different action API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTimeout bounds each API round trip.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithProxyAddress routes all requests through a SOCKS5 proxy given as
// "host:port".
func WithProxyAddress(addr string) Option {
	return func(c *Client) {
		c.proxyAddress = addr
	}
}

// WithHTTPClient supplies a fully configured HTTP client, overriding
// WithTimeout and WithProxyAddress.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client with the given options applied over defaults.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		hc, err := newHTTPClient(c.timeout, c.proxyAddress)
		if err != nil {
			return nil, err
		}
		c.httpClient = hc
	}

	return c, nil
}

// newHTTPClient builds the transport, routing through a SOCKS5 proxy when
// one is configured.
func newHTTPClient(timeout time.Duration, proxyAddress string) (*http.Client, error) {
	if proxyAddress == "" {
		return &http.Client{Timeout: timeout}, nil
	}

	if !isValidProxyAddress(proxyAddress) {
		return nil, ErrInvalidProxyAddress
	}

	// nil auth: SOCKS5 proxies used for this purpose don't require it.
	dialer, err := proxy.SOCKS5("tcp", proxyAddress, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("create SOCKS5 dialer: %w", err)
	}

	transport := &http.Transport{
		DialContext: func(_ context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		},
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}

// isValidProxyAddress checks the "host:port" format without a full URL
// parse: no scheme, no path, just host and port.
func isValidProxyAddress(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}
	n, err := strconv.Atoi(port)
	return err == nil && n >= 1 && n <= 65535
}

// invalidPageCodes are the action API error codes meaning the requested
// title cannot resolve to an article: missing page or malformed name.
var invalidPageCodes = map[string]bool{
	"missingtitle": true,
	"invalidtitle": true,
}

// apiErrorBody mirrors the API's error envelope.
type apiErrorBody struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// parseResponse mirrors the action=parse envelope (formatversion=2, where
// text is a plain string rather than a keyed object).
type parseResponse struct {
	Error *apiErrorBody `json:"error"`
	Parse *parseResult  `json:"parse"`
}

type parseResult struct {
	Title  string `json:"title"`
	PageID int    `json:"pageid"`
	Text   string `json:"text"`
}

// randomResponse mirrors the list=random envelope.
type randomResponse struct {
	Error *apiErrorBody `json:"error"`
	Query *struct {
		Random []struct {
			Title string `json:"title"`
		} `json:"random"`
	} `json:"query"`
}

// Fetch retrieves the rendered markup of one article at the given detail
// level. Redirects are resolved by the service; the returned Document
// carries the canonical post-redirect title.
//
// Titles outside the article mainspace are rejected before any request is
// made, with ErrInvalidPage.
func (c *Client) Fetch(ctx context.Context, title string, level model.Level) (*model.Document, error) {
	canonical := model.NormalizeTitle(title)
	if !model.IsMainspace(canonical) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPage, title)
	}

	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", canonical)
	params.Set("prop", "text")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("redirects", "1")
	if level == model.LevelLead {
		// Section 0 is the lead: everything before the first heading.
		params.Set("section", "0")
	}

	var resp parseResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		if invalidPageCodes[resp.Error.Code] {
			return nil, fmt.Errorf("%w: %q (%s)", ErrInvalidPage, title, resp.Error.Code)
		}
		return nil, &APIError{Code: resp.Error.Code, Info: resp.Error.Info}
	}
	if resp.Parse == nil {
		return nil, &APIError{Code: "empty_response", Info: "response carries neither parse result nor error"}
	}

	doc, err := model.NewDocument(model.NormalizeTitle(resp.Parse.Title), level, strings.NewReader(resp.Parse.Text))
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "fetched article",
		"title", doc.Title,
		"detail", level.String())
	return doc, nil
}

// Random returns the canonical title of a random mainspace article.
func (c *Client) Random(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "random")
	params.Set("rnnamespace", "0")
	params.Set("rnlimit", "1")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	var resp randomResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", &APIError{Code: resp.Error.Code, Info: resp.Error.Info}
	}
	if resp.Query == nil || len(resp.Query.Random) == 0 {
		return "", &APIError{Code: "empty_response", Info: "no random article in response"}
	}

	title := model.NormalizeTitle(resp.Query.Random[0].Title)
	c.logger.DebugContext(ctx, "picked random article", "title", title)
	return title, nil
}

// get performs one API round trip and decodes the JSON envelope into out.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build API request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			Code: fmt.Sprintf("http_%d", resp.StatusCode),
			Info: http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode API response: %v", ErrConnection, err)
	}
	return nil
}
