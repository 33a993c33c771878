package infra_dictionary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/humanbelnik/wordchain/internal/model"
	"golang.org/x/net/html"
)

const (
	defaultTimeout = 10 * time.Second
	maxPageSize    = 2 << 20

	definitionClass = "significado"
	wordClassClass  = "cl"
)

// Client looks words up on a dicio style dictionary site: one page per word
// at <base>/<word>/.
type Client struct {
	baseURL string
	client  *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

func New(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup reports a missing page as a not found definition. Transport errors
// and other statuses are returned as errors so callers do not cache them.
func (c *Client) Lookup(ctx context.Context, word string) (model.Definition, error) {
	endpoint := fmt.Sprintf("%s/%s/", c.baseURL, url.PathEscape(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Definition{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return model.Definition{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return model.Definition{Found: false}, nil
	case resp.StatusCode != http.StatusOK:
		return model.Definition{}, fmt.Errorf("dictionary responded %d for %q", resp.StatusCode, word)
	}

	return Parse(io.LimitReader(resp.Body, maxPageSize))
}

// Parse extracts the first definition paragraph and the first grammatical
// class annotation of a dictionary page.
func Parse(r io.Reader) (model.Definition, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return model.Definition{}, err
	}

	var def model.Definition
	if p := find(doc, "p", definitionClass); p != nil {
		def.Found = true
		def.Text = strings.Join(strings.Fields(text(p)), " ")
	}
	if span := find(doc, "span", wordClassClass); span != nil {
		def.Class = strings.TrimSpace(text(span))
	}
	return def, nil
}

func find(n *html.Node, tag, class string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag && hasClass(n, class) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := find(child, tag, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" && slices.Contains(strings.Fields(attr.Val), class) {
			return true
		}
	}
	return false
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
