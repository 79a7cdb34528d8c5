package liveness

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift/internal/record"
)

const (
	// DefaultTimeout bounds each individual probe request.
	DefaultTimeout = 8 * time.Second
	// DefaultConcurrency is the worker pool width.
	DefaultConcurrency = 10
)

// rangedGetAlive lists the statuses the fallback probe accepts as proof of
// life. 416 counts: a server refusing the one-byte range still served the
// resource's existence.
var rangedGetAlive = map[int]struct{}{
	http.StatusOK:                           {},
	http.StatusPartialContent:               {},
	http.StatusMovedPermanently:             {},
	http.StatusFound:                        {},
	http.StatusSeeOther:                     {},
	http.StatusTemporaryRedirect:            {},
	http.StatusPermanentRedirect:            {},
	http.StatusRequestedRangeNotSatisfiable: {},
}

// Checker probes record links and drops the ones that look dead. A probe
// failure only ever affects its own record; nothing here returns an error.
type Checker struct {
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds each probe request. Zero means DefaultTimeout.
	Timeout time.Duration
	// Concurrency is the worker pool width. Zero means DefaultConcurrency.
	Concurrency int
}

// FilterLive returns the records whose link answered a probe, preserving the
// input order. Each record is probed exactly once on a bounded worker pool;
// every worker writes only its own index of the verdict slice, so the
// collection needs no locking. The call returns once all probes have
// completed or hit their per-request timeout.
func (c *Checker) FilterLive(ctx context.Context, records []record.Record) []record.Record {
	if len(records) == 0 {
		return nil
	}

	width := c.Concurrency
	if width <= 0 {
		width = DefaultConcurrency
	}
	if width > len(records) {
		width = len(records)
	}

	type task struct {
		idx  int
		link string
	}
	alive := make([]bool, len(records))
	tasks := make(chan task)

	var wg sync.WaitGroup
	for w := 0; w < width; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				alive[t.idx] = c.probe(ctx, t.link)
			}
		}()
	}
	for i, r := range records {
		tasks <- task{idx: i, link: r.Link}
	}
	close(tasks)
	wg.Wait()

	out := make([]record.Record, 0, len(records))
	for i, ok := range alive {
		if ok {
			out = append(out, records[i])
		} else {
			log.Debug().Str("link", records[i].Link).Msg("dropping dead link")
		}
	}
	return out
}

// probe classifies a single link. Redirects are not followed: the first
// response's status is judged as-is, so a 3xx answer counts as alive without
// regard to where it points. Tier one is a HEAD request: any status in
// [200,400) is alive, 405 is inconclusive, any other status is dead. An
// inconclusive or transport-failed HEAD falls through to tier two, a one-byte
// ranged GET judged against rangedGetAlive. This two-tier shape is a
// heuristic carried over from the original probing behavior.
func (c *Checker) probe(ctx context.Context, link string) bool {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}

	status, err := c.request(ctx, http.MethodHead, u.String())
	if err == nil {
		if status >= 200 && status < 400 {
			return true
		}
		if status != http.StatusMethodNotAllowed {
			return false
		}
	}

	status, err = c.request(ctx, http.MethodGet, u.String())
	if err != nil {
		return false
	}
	_, ok := rangedGetAlive[status]
	return ok
}

func (c *Checker) request(ctx context.Context, method, rawURL string) (int, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return 0, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if method == http.MethodGet {
		req.Header.Set("Range", "bytes=0-0")
	}

	base := c.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}
	// Judge the first response directly; a redirect answer already proves
	// the link resolves. Clone so the caller's client keeps its policy.
	client := *base
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
