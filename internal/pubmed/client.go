// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed talks to the NCBI E-utilities: esearch for the PubMed IDs
// matching a term, efetch for one article's XML.
package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pdiddy/pubmed-papers/internal/httputil"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// DefaultBaseURL is the E-utilities root.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

const (
	defaultMaxResults = 50
	defaultCacheTTL   = 10 * time.Minute
	defaultTimeout    = 30 * time.Second
	defaultUserAgent  = "pubmed-papers/0.1"
	toolName          = "get-papers-list"
)

// HTTPError reports a non-200 answer from an E-utilities endpoint.
type HTTPError struct {
	Endpoint   string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.Endpoint, e.StatusCode)
}

// Client queries PubMed. The zero value is not usable; call NewClient.
type Client struct {
	BaseURL string
	APIKey  string
	Email   string
	Tool    string

	HTTP *httputil.Pacer

	maxResults int
	cache      *gocache.Cache
}

// NewClient builds a Client from cfg, filling in defaults for unset fields.
func NewClient(cfg types.PubMedConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	interval := cfg.RequestInterval
	if interval == 0 {
		interval = httputil.DefaultInterval
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	return &Client{
		BaseURL:    strings.TrimRight(base, "/"),
		APIKey:     cfg.APIKey,
		Email:      cfg.Email,
		Tool:       toolName,
		HTTP:       httputil.NewPacer(&http.Client{Timeout: timeout}, interval, ua),
		maxResults: maxResults,
		cache:      gocache.New(ttl, 2*ttl),
	}
}

// Search runs esearch for term and returns up to maxResults PubMed IDs in
// the order PubMed ranks them. A maxResults of zero or less uses the
// configured default.
func (c *Client) Search(ctx context.Context, term string, maxResults int) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("empty search term")
	}
	if maxResults <= 0 {
		maxResults = c.maxResults
	}

	params := c.params()
	params.Set("db", "pubmed")
	params.Set("term", term)
	params.Set("retmode", "json")
	params.Set("retmax", strconv.Itoa(maxResults))

	body, err := c.get(ctx, "esearch", params)
	if err != nil {
		return nil, err
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	if resp.Result.Error != "" {
		return nil, fmt.Errorf("esearch: %s", resp.Result.Error)
	}
	return resp.Result.IDList, nil
}

// Fetch runs efetch for one PubMed ID and returns the article XML.
// Successful responses are cached for the configured TTL.
func (c *Client) Fetch(ctx context.Context, pmid string) ([]byte, error) {
	pmid = strings.TrimSpace(pmid)
	if pmid == "" {
		return nil, fmt.Errorf("empty PubMed ID")
	}
	if data, ok := c.cache.Get(pmid); ok {
		return data.([]byte), nil
	}

	params := c.params()
	params.Set("db", "pubmed")
	params.Set("id", pmid)
	params.Set("retmode", "xml")
	params.Set("rettype", "abstract")

	body, err := c.get(ctx, "efetch", params)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(pmid, body)
	return body, nil
}

// params returns the identification parameters NCBI asks every request to carry.
func (c *Client) params() url.Values {
	v := url.Values{}
	if c.Tool != "" {
		v.Set("tool", c.Tool)
	}
	if c.Email != "" {
		v.Set("email", c.Email)
	}
	if c.APIKey != "" {
		v.Set("api_key", c.APIKey)
	}
	return v
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := c.BaseURL + "/" + endpoint + ".fcgi?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", endpoint, err)
	}

	resp, err := c.HTTP.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint, err)
	}
	return body, nil
}

type esearchResponse struct {
	Result struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
		Error  string   `json:"ERROR"`
	} `json:"esearchresult"`
}
