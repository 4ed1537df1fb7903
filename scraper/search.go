package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// SearchClient fetches job search-results pages
type SearchClient struct {
	client  *http.Client
	baseURL string
}

// NewSearchClient creates a search client against baseURL
func NewSearchClient(client *http.Client, baseURL string) *SearchClient {
	return &SearchClient{
		client:  client,
		baseURL: baseURL,
	}
}

// SearchURL builds {base}/search?keywords=..&location=..&start=..
func (c *SearchClient) SearchURL(keywords, location string, start int) string {
	q := url.Values{}
	q.Set("keywords", keywords)
	q.Set("location", location)
	q.Set("start", strconv.Itoa(start))
	return c.baseURL + "/search?" + q.Encode()
}

// FetchSearchPage downloads a search-results page. Any transport failure or
// non-2xx status is a *FetchError.
func (c *SearchClient) FetchSearchPage(ctx context.Context, pageURL string) (io.Reader, error) {
	resp, err := get(ctx, c.client, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	return bytes.NewReader(body), nil
}
