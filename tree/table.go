package tree

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Observer receives table events. It is used to export metrics and must be
// safe for concurrent use.
type Observer interface {
	// ObserveMatch is called after every Match.
	ObserveMatch(matched bool, elapsed time.Duration)
	// ObserveUpdate is called after the root has been swapped.
	ObserveUpdate(routes int)
}

// TableOption configures a Table.
type TableOption func(*tableConfig)

type tableConfig struct {
	logger   *slog.Logger
	observer Observer
	strict   bool
}

// WithLogger sets the logger for route updates and misses.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) TableOption {
	return func(c *tableConfig) {
		c.logger = logger
	}
}

// WithObserver registers an observer for matches and updates.
func WithObserver(o Observer) TableOption {
	return func(c *tableConfig) {
		c.observer = o
	}
}

// WithStrictMerge makes Add use MergeStrict, rejecting fragments whose
// param or wildcard descriptors disagree with the current tree.
func WithStrictMerge() TableOption {
	return func(c *tableConfig) {
		c.strict = true
	}
}

// Table holds the active route tree and replaces it atomically.
//
// Readers never lock: Match loads the current root and walks it. Writers
// build the new tree off to the side, by merging a fragment into the
// current root, and publish it with a single pointer swap, so a match in
// progress keeps using the tree it started with.
type Table[Req, Res any] struct {
	root atomic.Pointer[Node[Req, Res]]

	// mu serializes writers so concurrent Adds do not lose fragments.
	mu sync.Mutex

	logger   *slog.Logger
	observer Observer
	strict   bool
}

// NewTable returns a table serving root. A nil root is an empty tree.
func NewTable[Req, Res any](root *Node[Req, Res], opts ...TableOption) *Table[Req, Res] {
	cfg := tableConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	if root == nil {
		root = Empty[Req, Res]()
	}

	t := &Table[Req, Res]{
		logger:   cfg.logger,
		observer: cfg.observer,
		strict:   cfg.strict,
	}
	t.root.Store(root)

	return t
}

// Root returns the tree currently served.
func (t *Table[Req, Res]) Root() *Node[Req, Res] {
	return t.root.Load()
}

// Match matches segments against the current tree.
func (t *Table[Req, Res]) Match(req Req, segments []string) (Res, bool) {
	if t.observer == nil && !t.logger.Enabled(context.Background(), slog.LevelDebug) {
		return t.root.Load().Match(req, segments)
	}

	start := time.Now()
	res, ok := t.root.Load().Match(req, segments)

	if t.observer != nil {
		t.observer.ObserveMatch(ok, time.Since(start))
	}
	if !ok {
		t.logger.Debug("pathtree: no route matched", slog.Any("segments", segments))
	}

	return res, ok
}

// Add merges fragment into the current tree and publishes the result.
func (t *Table[Req, Res]) Add(fragment *Node[Req, Res]) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := t.root.Load()

	var next *Node[Req, Res]
	if t.strict {
		merged, err := MergeStrict(current, fragment)
		if err != nil {
			t.logger.Warn("pathtree: route update rejected", slog.Any("error", err))
			return err
		}
		next = merged
	} else {
		next = Merge(current, fragment)
	}

	t.publish(next, "merge")
	return nil
}

// Replace publishes root as the new tree, discarding the current one.
func (t *Table[Req, Res]) Replace(root *Node[Req, Res]) {
	if root == nil {
		root = Empty[Req, Res]()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.publish(root, "replace")
}

func (t *Table[Req, Res]) publish(root *Node[Req, Res], op string) {
	t.root.Store(root)

	routes := root.Len()
	t.logger.Info("pathtree: route table updated",
		slog.String("op", op),
		slog.Int("routes", routes),
	)

	if t.observer != nil {
		t.observer.ObserveUpdate(routes)
	}
}
