// Package search drives the user directory search screen: it owns the
// current criteria, issues directory requests and tracks the in-flight
// request state so the UI always renders a consistent view.
package search

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/client/models"
)

// Status is the request lifecycle phase of the controller.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is an immutable view of the controller for rendering.
type State struct {
	Status     Status
	Criteria   models.SearchCriteria
	Result     *models.SearchResult
	ErrMessage string
}

// Controller runs directory searches. Each accepted request gets a
// sequence number; responses arriving after a newer request started
// are discarded, so the visible result always matches the latest
// criteria.
type Controller struct {
	mu      sync.Mutex
	dir     client.DirectoryClient
	timeout time.Duration

	status   Status
	criteria models.SearchCriteria
	result   *models.SearchResult
	errMsg   string
	seq      uint64
}

func NewController(dir client.DirectoryClient, timeout time.Duration) *Controller {
	return &Controller{
		dir:      dir,
		timeout:  timeout,
		status:   StatusIdle,
		criteria: models.DefaultCriteria(),
	}
}

// Search applies new criteria and runs a request. The criteria are
// normalized first and the page is reset to 1, since changed filters
// invalidate the old pagination window.
func (c *Controller) Search(ctx context.Context, criteria models.SearchCriteria) State {
	return c.run(ctx, criteria.Normalized().WithPage(1))
}

// ChangePage re-runs the current criteria on a different page.
func (c *Controller) ChangePage(ctx context.Context, page int) State {
	c.mu.Lock()
	criteria := c.criteria.WithPage(page)
	c.mu.Unlock()
	return c.run(ctx, criteria)
}

// Refresh re-runs the current criteria unchanged.
func (c *Controller) Refresh(ctx context.Context) State {
	c.mu.Lock()
	criteria := c.criteria
	c.mu.Unlock()
	return c.run(ctx, criteria)
}

// Reset restores the default criteria and runs a search with them.
func (c *Controller) Reset(ctx context.Context) State {
	return c.run(ctx, models.DefaultCriteria())
}

// State returns the current view without issuing a request.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) run(ctx context.Context, criteria models.SearchCriteria) State {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.status = StatusLoading
	c.errMsg = ""
	c.mu.Unlock()

	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.dir.Search(reqCtx, criteria)

	c.mu.Lock()
	defer c.mu.Unlock()

	// a newer request started while this one was in flight
	if seq != c.seq {
		return c.stateLocked()
	}

	if err != nil {
		c.status = StatusError
		c.errMsg = displayMessage(err)
		return c.stateLocked()
	}

	// criteria become current only once the server has answered for
	// them; a failed request keeps paging through the last applied set
	c.status = StatusSuccess
	c.criteria = criteria
	c.result = result
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{
		Status:     c.status,
		Criteria:   c.criteria,
		Result:     c.result,
		ErrMessage: c.errMsg,
	}
}
