package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdewolff/tsparse/js"
)

func TestCacheHit(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	src := []byte("let a = 1")
	p1, err := c.Parse(src, js.DefaultOptions())
	require.NoError(t, err)
	p2, err := c.Parse([]byte("let a = 1"), js.DefaultOptions())
	require.NoError(t, err)
	require.True(t, p1 == p2, "second parse must be served from the cache")

	hits, misses := c.Stats()
	require.Equal(t, uint64(1), hits)
	require.Equal(t, uint64(1), misses)
	require.Equal(t, 1, c.Len())
}

func TestCacheSourceIsCopied(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	src := []byte("a + b")
	_, err = c.Parse(src, js.DefaultOptions())
	require.NoError(t, err)
	src[0] = 'c'

	program, err := c.Parse([]byte("a + b"), js.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "(Stmt (+ a b))", program.String())
	hits, _ := c.Stats()
	require.Equal(t, uint64(1), hits)
}

func TestCacheOptions(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	src := []byte("let x: number = 1")
	_, err = c.Parse(src, js.DefaultOptions())
	require.Error(t, err)

	o := js.DefaultOptions()
	o.TypeScript = true
	program, err := c.Parse(src, o)
	require.NoError(t, err)
	require.NotNil(t, program)

	o.Features = map[js.Feature]bool{js.FeatureDecimal: true}
	_, err = c.Parse(src, o)
	require.NoError(t, err)

	_, misses := c.Stats()
	require.Equal(t, uint64(3), misses)
}

func TestCacheErrors(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	_, err1 := c.Parse([]byte("let a; let a"), js.DefaultOptions())
	_, err2 := c.Parse([]byte("let a; let a"), js.DefaultOptions())
	require.Error(t, err1)
	require.Equal(t, err1, err2)
}

func TestCacheEviction(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := c.Parse([]byte(fmt.Sprintf("a%d", i)), js.DefaultOptions())
		require.NoError(t, err)
	}
	require.Equal(t, 2, c.Len())

	c.Purge()
	require.Equal(t, 0, c.Len())
}

func TestCacheConcurrent(t *testing.T) {
	c, err := New(4)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := c.Parse([]byte(fmt.Sprintf("f(%d)", i%4)), js.DefaultOptions())
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	hits, misses := c.Stats()
	require.Equal(t, uint64(16), hits+misses)
}

func TestFingerprint(t *testing.T) {
	a := js.DefaultOptions()
	b := js.DefaultOptions()
	require.Equal(t, fingerprint(a), fingerprint(b))

	a.Features = map[js.Feature]bool{js.FeatureDecimal: true, js.FeatureThrowExpressions: true}
	b.Features = map[js.Feature]bool{js.FeatureThrowExpressions: true, js.FeatureDecimal: true, js.FeatureRecordAndTuple: false}
	require.Equal(t, fingerprint(a), fingerprint(b))

	b.SourceType = js.ModuleSource
	require.NotEqual(t, fingerprint(a), fingerprint(b))

	_, err := New(0)
	require.Error(t, err)
}
