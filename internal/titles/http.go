package titles

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aocgen-labs/aocgen/internal/branding"
	"github.com/charmbracelet/log"
	"golang.org/x/net/html"
)

const (
	// DefaultTimeout bounds a single title lookup.
	DefaultTimeout = 10 * time.Second

	// maxPageSize caps how much of a puzzle page is read.
	maxPageSize = 2 << 20
)

// HTTPProvider scrapes the title from the puzzle page: the text of the first
// h2 inside the first <article class="day-desc">.
type HTTPProvider struct {
	url        string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	logger     *log.Logger
}

// Option configures an HTTPProvider.
type Option func(*HTTPProvider)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(p *HTTPProvider) {
		p.httpClient = c
	}
}

// WithURL sets the page URL pattern. It takes the year then the day as %d verbs.
func WithURL(pattern string) Option {
	return func(p *HTTPProvider) {
		p.url = pattern
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(p *HTTPProvider) {
		p.userAgent = ua
	}
}

// WithTimeout bounds each lookup. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(p *HTTPProvider) {
		p.timeout = d
	}
}

// WithLogger reports why lookups came back empty at debug level.
func WithLogger(l *log.Logger) Option {
	return func(p *HTTPProvider) {
		p.logger = l
	}
}

// New creates an HTTPProvider with the given options.
func New(opts ...Option) *HTTPProvider {
	p := &HTTPProvider{
		url:        branding.PuzzleURL(),
		userAgent:  branding.CLIName() + " (+https://github.com/" + branding.GitHubRepo() + ")",
		timeout:    DefaultTimeout,
		httpClient: http.DefaultClient,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchTitle implements Provider.
func (p *HTTPProvider) FetchTitle(ctx context.Context, year, day int) (string, bool) {
	title, err := p.fetch(ctx, year, day)
	if err != nil {
		p.logger.Debug("title unavailable", "year", year, "day", day, "err", err)
		return "", false
	}
	return title, true
}

func (p *HTTPProvider) fetch(ctx context.Context, year, day int) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	url := fmt.Sprintf(p.url, year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/html")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", url, err)
	}

	title, ok := ExtractTitle(doc)
	if !ok {
		return "", fmt.Errorf("%s has no puzzle heading", url)
	}
	return title, nil
}

// ExtractTitle returns the text of the first h2 inside the first
// <article class="day-desc"> of doc.
func ExtractTitle(doc *html.Node) (string, bool) {
	article := findFirst(doc, func(n *html.Node) bool {
		return n.Data == "article" && hasClass(n, "day-desc")
	})
	if article == nil {
		return "", false
	}
	h2 := findFirst(article, func(n *html.Node) bool { return n.Data == "h2" })
	if h2 == nil {
		return "", false
	}

	var sb strings.Builder
	collectText(h2, &sb)
	title := strings.TrimSpace(sb.String())
	return title, title != ""
}

// findFirst walks the tree under n depth-first and returns the first element
// matching pred.
func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && pred(c) {
			return c
		}
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
