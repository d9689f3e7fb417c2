package gameapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LinkChecker reports whether a hyperlink resolves.
type LinkChecker interface {
	Check(ctx context.Context, url string) bool
}

// LinkCheckerFunc adapts a function to LinkChecker.
type LinkCheckerFunc func(ctx context.Context, url string) bool

// Check implements LinkChecker.
func (f LinkCheckerFunc) Check(ctx context.Context, url string) bool {
	return f(ctx, url)
}

// AlwaysValid accepts every link without a request.
var AlwaysValid = LinkCheckerFunc(func(context.Context, string) bool { return true })

// HTTPLinkChecker checks links with a HEAD request.
type HTTPLinkChecker struct {
	client *http.Client
}

// NewHTTPLinkChecker creates a checker with the given request timeout.
func NewHTTPLinkChecker(timeout time.Duration) *HTTPLinkChecker {
	return &HTTPLinkChecker{client: &http.Client{Timeout: timeout}}
}

// Check implements LinkChecker. Any 2xx or 3xx response counts as valid.
func (c *HTTPLinkChecker) Check(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 400
}

// NewLinkChecker returns the checker selected by cfg.CheckLinks.
func NewLinkChecker(cfg Config) LinkChecker {
	if !cfg.CheckLinks {
		return AlwaysValid
	}
	return NewHTTPLinkChecker(time.Duration(cfg.TimeoutSeconds) * time.Second)
}

// WikiaPageName derives the wiki page name from an entity name: the part
// before " Lv", each word capitalised, joined by underscores.
// "Ion Cannon Lv3" -> "Ion_Cannon".
func WikiaPageName(name string) string {
	name, _, _ = strings.Cut(name, " Lv")
	caser := cases.Title(language.English)
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, "_")
}

// WikiaLink appends the page name of entity name to baseURL.
func WikiaLink(baseURL, name string) string {
	page := WikiaPageName(name)
	if page == "" {
		return ""
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + page
}
