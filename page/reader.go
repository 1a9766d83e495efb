package page

import (
	"context"
	"fmt"
	"io"

	"github.com/wilhasse/go-mdf/format"
)

// Reader is a forward-only, caching page reader over a sequential byte
// stream. It maintains a monotonically increasing current page index and
// caches every page it has decoded, keyed by (FileID, PageID); requesting a
// pointer whose page lies strictly behind the current index and is not
// already cached is a hard failure (format.ErrBackwardSeek).
type Reader struct {
	src     io.Reader
	fileID  uint16
	current uint32 // next page index to be read from src
	cache   map[cacheKey]*Page
}

type cacheKey struct {
	fileID uint16
	pageID uint32
}

// NewReader wraps a sequential byte stream positioned at the start of page
// 0. fileID identifies every page this reader produces (go-mdf treats one
// stream as one data file).
func NewReader(src io.Reader, fileID uint16) *Reader {
	return &Reader{src: src, fileID: fileID, cache: make(map[cacheKey]*Page)}
}

// ReadNext reads and caches the next sequential page.
func (r *Reader) ReadNext(ctx context.Context) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buf := make([]byte, format.PageSize)
	if _, err := io.ReadFull(r.src, buf); err != nil {
		return nil, fmt.Errorf("read page %d: %w", r.current, err)
	}
	p, err := New(r.current, r.fileID, buf)
	if err != nil {
		return nil, fmt.Errorf("decode page %d: %w", r.current, err)
	}
	r.cache[cacheKey{r.fileID, r.current}] = p
	r.current++
	return p, nil
}

// ReadUntil reads (and caches) every page from the current index up to and
// including ptr.PageID, then returns the cached Page for ptr. If ptr is
// already cached, no I/O happens. A ptr whose page lies strictly behind the
// current index and is not cached is rejected with format.ErrBackwardSeek,
// enforcing the forward-only constraint.
func (r *Reader) ReadUntil(ctx context.Context, ptr Pointer) (*Page, error) {
	key := cacheKey{ptr.FileID, uint32(ptr.PageID)}
	if p, ok := r.cache[key]; ok {
		return p, nil
	}
	if uint32(ptr.PageID) < r.current {
		return nil, format.ErrBackwardSeek
	}
	var last *Page
	for r.current <= uint32(ptr.PageID) {
		p, err := r.ReadNext(ctx)
		if err != nil {
			return nil, err
		}
		last = p
	}
	return last, nil
}

// SkipPages reads n pages, advancing the current index (the pages are
// cached like any other read, just not returned). Used by the boot-page
// bootstrap, which skips pages 0..8 before treating page 9 as the boot
// page.
func (r *Reader) SkipPages(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if _, err := r.ReadNext(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Cached returns the page for key, if already decoded.
func (r *Reader) Cached(fileID uint16, pageID uint16) (*Page, bool) {
	p, ok := r.cache[cacheKey{fileID, uint32(pageID)}]
	return p, ok
}
