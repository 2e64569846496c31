package refdata

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/offerlens/offercompare/internal/domain"
	"github.com/offerlens/offercompare/pkg/dateutil"
)

// Client fetches reference data and rent estimates from the backend.
// Every failure degrades: reference data falls back to the built-in
// defaults, rent estimates to an explicit error placeholder consumed as
// 0 rent. No call returns an error to the caller.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	timeout time.Duration
	log     *zap.SugaredLogger
}

// NewClient builds a client for the given base URL. An empty base URL
// puts the client in offline mode: defaults and placeholders only.
func NewClient(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL: baseURL,
		http:    &fasthttp.Client{},
		timeout: timeout,
		log:     log,
	}
}

// get performs one GET and returns the body for a 200 response.
func (c *Client) get(url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, err
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

// FetchReferenceData loads the session's reference tables, merging any
// missing field with the built-in defaults. Intended to be called once
// per comparison session.
func (c *Client) FetchReferenceData() *domain.ReferenceData {
	if c.baseURL == "" {
		return Defaults()
	}
	body, err := c.get(c.baseURL + "/reference-data")
	if err != nil {
		c.log.Warnw("reference data fetch failed, using built-in defaults", "error", err)
		return Defaults()
	}
	var fetched domain.ReferenceData
	if err := json.Unmarshal(body, &fetched); err != nil {
		c.log.Warnw("reference data unmarshal failed, using built-in defaults", "error", err)
		return Defaults()
	}
	return MergeWithDefaults(&fetched)
}

// FetchRentEstimate asks the rent service about one location. Failures
// yield a placeholder carrying the error; callers treat it as 0 rent.
func (c *Client) FetchRentEstimate(location string) *domain.RentEstimate {
	placeholder := func(msg string) *domain.RentEstimate {
		return &domain.RentEstimate{
			Provider:    "offline",
			LastUpdated: dateutil.Stamp(time.Now()),
			Error:       msg,
		}
	}
	if c.baseURL == "" {
		return placeholder("no rent service configured")
	}
	body, err := c.get(c.baseURL + "/rent-estimate?location=" + url.QueryEscape(location))
	if err != nil {
		c.log.Warnw("rent estimate fetch failed", "location", location, "error", err)
		return placeholder(err.Error())
	}
	var est domain.RentEstimate
	if err := json.Unmarshal(body, &est); err != nil {
		c.log.Warnw("rent estimate unmarshal failed", "location", location, "error", err)
		return placeholder(err.Error())
	}
	return &est
}

// RentCache memoizes rent estimates per distinct location. The first
// completed result for a location wins and later fetches cannot clobber
// it, which is the stale-response policy for this synchronous model.
type RentCache struct {
	mu         sync.Mutex
	fetch      func(string) *domain.RentEstimate
	byLocation map[string]*domain.RentEstimate
}

// NewRentCache wraps a fetch function, typically Client.FetchRentEstimate.
func NewRentCache(fetch func(string) *domain.RentEstimate) *RentCache {
	return &RentCache{
		fetch:      fetch,
		byLocation: make(map[string]*domain.RentEstimate),
	}
}

// Get returns the cached estimate for a location, fetching it on first
// use.
func (rc *RentCache) Get(location string) *domain.RentEstimate {
	rc.mu.Lock()
	if est, ok := rc.byLocation[location]; ok {
		rc.mu.Unlock()
		return est
	}
	rc.mu.Unlock()

	est := rc.fetch(location)

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if cached, ok := rc.byLocation[location]; ok {
		return cached
	}
	rc.byLocation[location] = est
	return est
}
