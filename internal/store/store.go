// Package store caches raw card-set documents and assembles display-ready
// sets from them, resolving reference cards (reprints that borrow data from
// an original printing in another set) into concrete cards.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/youruser/pokecatalog/internal/catalog"
	"github.com/youruser/pokecatalog/internal/source"
)

const (
	DefaultFetchTimeout = 10 * time.Second
	DefaultMaxRefDepth  = 4
)

// Store is the single point of access to set documents. Raw documents are
// memoized by set code for the life of the process; failed lookups are not,
// so a set that appears later (incremental authoring) is picked up.
type Store struct {
	src          source.Source
	log          *zap.Logger
	fetchTimeout time.Duration
	maxRefDepth  int

	group singleflight.Group
	mu    sync.RWMutex
	sets  map[string]*catalog.CardSet
}

type Option func(*Store)

func WithFetchTimeout(d time.Duration) Option {
	return func(s *Store) { s.fetchTimeout = d }
}

func WithMaxRefDepth(n int) Option {
	return func(s *Store) { s.maxRefDepth = n }
}

func New(src source.Source, log *zap.Logger, opts ...Option) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		src:          src,
		log:          log,
		fetchTimeout: DefaultFetchTimeout,
		maxRefDepth:  DefaultMaxRefDepth,
		sets:         make(map[string]*catalog.CardSet),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clear drops every cached document.
func (s *Store) Clear() {
	s.mu.Lock()
	s.sets = make(map[string]*catalog.CardSet)
	s.mu.Unlock()
}

// RawSet returns the authored document for code, fetching it from the
// content source on first access. Concurrent requests for the same uncached
// code share one fetch.
func (s *Store) RawSet(ctx context.Context, code string) (*catalog.CardSet, error) {
	if code == "" {
		return nil, &catalog.InvalidParameterError{Name: "setCode", Reason: "must not be empty"}
	}

	s.mu.RLock()
	cached, ok := s.sets[code]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := s.group.Do(code, func() (any, error) {
		// A fetch that completed between the miss above and joining the
		// flight already populated the cache.
		s.mu.RLock()
		cached, ok := s.sets[code]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}

		set, err := s.fetch(ctx, code)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.sets[code] = set
		s.mu.Unlock()
		return set, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*catalog.CardSet), nil
}

func (s *Store) fetch(ctx context.Context, code string) (*catalog.CardSet, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	set, err := s.src.GetSet(ctx, code)
	switch {
	case errors.Is(err, source.ErrNotFound):
		return nil, catalog.NewSetNotFound(code)
	case errors.Is(err, context.DeadlineExceeded):
		return nil, &catalog.SourceUnavailableError{Err: err, Timeout: true}
	case err != nil:
		return nil, &catalog.SourceUnavailableError{Err: err}
	}
	s.log.Debug("fetched set document",
		zap.String("set", code),
		zap.Int("cards", len(set.Cards)),
		zap.Duration("took", time.Since(start)))
	return set, nil
}

// FindCard looks num up in the raw document for code. Printed numbers are
// compared numerically, so "001" and "1" name the same card.
func (s *Store) FindCard(ctx context.Context, code, num string) (catalog.Card, error) {
	set, err := s.RawSet(ctx, code)
	if err != nil {
		return catalog.Card{}, err
	}
	want := catalog.NumValue(num)
	for _, c := range set.Cards {
		if catalog.NumValue(c.Num) == want {
			return c, nil
		}
	}
	return catalog.Card{}, catalog.NewCardNotFound(code, num)
}

// BuildSet assembles the display-ready set for code: every reference card is
// rewritten with the gameplay data of the printing it points at, and the
// result is sorted ascending by printed number (stable, so numbers that only
// differ in formatting keep their authored order).
//
// Any unresolved reference aborts the whole build; partial sets are never
// returned. The cached raw document is not mutated, so repeated builds of
// the same set are value-equal.
func (s *Store) BuildSet(ctx context.Context, code string) (*catalog.CardSet, error) {
	if code == "" {
		return nil, &catalog.InvalidParameterError{Name: "setCode", Reason: "must not be empty"}
	}
	raw, err := s.RawSet(ctx, code)
	if err != nil {
		return nil, err
	}

	out := &catalog.CardSet{
		Set:   raw.Set,
		Desc:  raw.Desc,
		Cards: make([]catalog.Card, len(raw.Cards)),
	}
	copy(out.Cards, raw.Cards)

	for i := range out.Cards {
		if out.Cards[i].Ref == nil {
			continue
		}
		resolved, err := s.resolve(ctx, raw.Set, out.Cards[i])
		if err != nil {
			return nil, err
		}
		out.Cards[i] = resolved
	}

	sort.SliceStable(out.Cards, func(i, j int) bool {
		return catalog.NumValue(out.Cards[i].Num) < catalog.NumValue(out.Cards[j].Num)
	})
	return out, nil
}

// resolve follows c's reference chain to its terminal card. Gameplay data
// comes from the terminal card; artwork comes from the hop nearest c that
// has any, with c's own img winning outright. The assembled card keeps c's
// ref, title, num and alt flag. Chain depth is capped so a mis-authored
// cycle fails instead of looping.
func (s *Store) resolve(ctx context.Context, setCode string, c catalog.Card) (catalog.Card, error) {
	img := c.Img
	cur := *c.Ref
	if cur.Set == "" {
		// Same-set reference, e.g. an alt-art printing of a card in its
		// own set.
		cur.Set = setCode
	}

	var target catalog.Card
	for depth := 0; ; depth++ {
		if depth >= s.maxRefDepth {
			return catalog.Card{}, fmt.Errorf("reference chain from %s:%s exceeds %d hops", setCode, c.Num, s.maxRefDepth)
		}
		t, err := s.FindCard(ctx, cur.Set, cur.Num)
		if err != nil {
			return catalog.Card{}, err
		}
		target = t
		if img == nil && t.Img != nil {
			img = t.Img
		}
		if t.Ref == nil {
			break
		}
		next := *t.Ref
		if next.Set == "" {
			next.Set = cur.Set
		}
		cur = next
	}

	out := target
	out.Ref = c.Ref
	out.Title = c.Title
	out.Num = c.Num
	out.Alt = c.Alt
	out.Img = img
	return out, nil
}
