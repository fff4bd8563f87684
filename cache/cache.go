// Package cache memoizes parse results by source content and parser options.
package cache

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	spooky "github.com/dgryski/go-spooky"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/tdewolff/tsparse/js"
)

// DefaultSize is the number of parse results kept by the language server and the watcher.
const DefaultSize = 256

type key struct {
	content uint64
	options uint64
	length  int
}

type result struct {
	src     []byte
	program *js.Program
	err     error
}

// Cache is a bounded LRU of parse results, safe for concurrent use. Returned programs are shared between callers and
// must not be modified.
type Cache struct {
	lru    *lru.Cache
	hits   uint64
	misses uint64
}

// New returns a cache holding at most size results.
func New(size int) (*Cache, error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create cache of size %d", size)
	}
	return &Cache{lru: l}, nil
}

// Parse returns the cached result for src and o, parsing on a miss.
func (c *Cache) Parse(src []byte, o js.Options) (*js.Program, error) {
	k := key{spooky.Hash64(src), fingerprint(o), len(src)}
	if v, ok := c.lru.Get(k); ok {
		if r := v.(result); bytes.Equal(r.src, src) {
			atomic.AddUint64(&c.hits, 1)
			return r.program, r.err
		}
	}
	atomic.AddUint64(&c.misses, 1)

	program, err := js.Parse(src, o)
	c.lru.Add(k, result{append([]byte{}, src...), program, err})
	return program, err
}

// Stats returns the number of hits and misses so far.
func (c *Cache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops all cached results.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// fingerprint hashes every option that changes the parse.
func fingerprint(o js.Options) uint64 {
	features := []string{}
	for f, ok := range o.Features {
		if ok {
			features = append(features, f.String())
		}
	}
	sort.Strings(features)

	s := fmt.Sprintf("%v|%d|%t|%d|%d|%t|%t|%t%t%t%t%t%t|%t|%t|%t|%s",
		o.SourceType, o.StrictMode, o.ContinueOnError, o.MaxErrors, o.Decorators, o.AnnexB, o.TypeScript,
		o.AllowImportExportEverywhere, o.AllowReturnOutsideFunction, o.AllowSuperOutsideMethod,
		o.AllowAwaitOutsideFunction, o.AllowNewTargetOutsideFunction, o.AllowUndeclaredExports,
		o.CreateParenthesizedExpressions, o.ParseAsAmbientContext, o.DisallowAmbiguousJSXLike,
		strings.Join(features, ","))
	return spooky.Hash64([]byte(s))
}
