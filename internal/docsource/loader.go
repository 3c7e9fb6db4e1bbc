package docsource

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nkurtev/attestor/internal/cache"
	"github.com/nkurtev/attestor/internal/model"
)

// Loader turns document sources (local files or URLs) into
// SourceDocuments ready for segmentation and indexing. Fetched URL
// text is cached; local files are always read fresh.
type Loader struct {
	fetcher *Fetcher
	robots  *RobotsChecker
	cache   cache.Cache // nil disables caching
}

// NewLoader creates a loader from the HTTP and cache configuration
func NewLoader(httpCfg model.HTTPConfig, cacheCfg model.CacheConfig) *Loader {
	var c cache.Cache
	if cacheCfg.Enabled {
		c = cache.NewLayeredCache(cacheCfg.MemoryTTL, cacheCfg.Dir, cacheCfg.DiskTTL)
	}
	return &Loader{
		fetcher: NewFetcher(httpCfg.Timeout, httpCfg.UserAgent, httpCfg.MaxBodyBytes),
		robots:  NewRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout),
		cache:   c,
	}
}

// Load resolves a single source to a document
func (l *Loader) Load(ctx context.Context, source string) (model.SourceDocument, error) {
	if isURL(source) {
		return l.loadURL(ctx, source)
	}
	return l.loadFile(source)
}

// LoadAll resolves multiple sources, failing on the first error
func (l *Loader) LoadAll(ctx context.Context, sources []string) ([]model.SourceDocument, error) {
	docs := make([]model.SourceDocument, 0, len(sources))
	for _, src := range sources {
		doc, err := l.Load(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", src, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (l *Loader) loadFile(path string) (model.SourceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SourceDocument{}, fmt.Errorf("read file: %w", err)
	}

	text := string(data)
	if isHTMLFile(path) {
		text = VisibleText(text)
	}

	return model.SourceDocument{
		ID:   docID(path),
		Name: nameFromPath(path),
		Text: text,
	}, nil
}

func (l *Loader) loadURL(ctx context.Context, rawURL string) (model.SourceDocument, error) {
	key := cache.Key(rawURL)
	if l.cache != nil {
		if cached, found := l.cache.Get(key); found {
			return model.SourceDocument{
				ID:   docID(rawURL),
				Name: nameFromURL(rawURL),
				Text: string(cached),
				URL:  rawURL,
			}, nil
		}
	}

	if !l.robots.IsAllowed(ctx, rawURL) {
		return model.SourceDocument{}, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	result, err := l.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return model.SourceDocument{}, err
	}

	text := result.Body
	if strings.Contains(result.ContentType, "html") {
		text = VisibleText(text)
	}

	if l.cache != nil {
		_ = l.cache.Set(key, []byte(text), 0)
	}

	name := result.Name
	if strings.Contains(result.ContentType, "html") {
		if title := PageTitle(result.Body); title != "" {
			name = title
		}
	}

	return model.SourceDocument{
		ID:   docID(rawURL),
		Name: name,
		Text: text,
		URL:  result.FinalURL,
	}, nil
}

// docID derives a short stable identifier from the source
func docID(source string) string {
	hash := sha256.Sum256([]byte(source))
	return hex.EncodeToString(hash[:6])
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return base
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}
