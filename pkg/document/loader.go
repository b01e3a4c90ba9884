package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"
)

// Loader fetches composition documents from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how the default loader resolves sources. Loading
// is offline-first: HTTP sources are disabled unless explicitly enabled.
type LoaderOptions struct {
	// FileSystem serves fs sources and, when set, file sources too.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour. Nil means
	// URL sources are rejected unless AllowHTTPFallback is set.
	HTTPClient *http.Client

	// AllowHTTPFallback enables URL sources through http.DefaultClient when
	// no client is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables URL loading using http.DefaultClient with an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// NewLoader builds the default loader.
func NewLoader(options ...LoaderOption) Loader {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &loader{options: cfg}
}

type loader struct {
	options LoaderOptions
}

func (l *loader) Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, errors.New("document loader: source is required")
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	switch src.Kind() {
	case SourceKindFile:
		return l.loadFile(src)
	case SourceKindFS:
		return l.loadFS(src)
	case SourceKindURL:
		return l.loadURL(ctx, src)
	default:
		return Document{}, fmt.Errorf("document loader: unsupported source kind %q", src.Kind())
	}
}

func (l *loader) loadFile(src Source) (Document, error) {
	raw, err := os.ReadFile(src.Location())
	if err != nil {
		return Document{}, fmt.Errorf("document loader: read %s: %w", src.Location(), err)
	}
	return NewDocument(src, raw)
}

func (l *loader) loadFS(src Source) (Document, error) {
	if l.options.FileSystem == nil {
		return Document{}, errors.New("document loader: fs source requires a filesystem")
	}
	raw, err := fs.ReadFile(l.options.FileSystem, src.Location())
	if err != nil {
		return Document{}, fmt.Errorf("document loader: read %s: %w", src.Location(), err)
	}
	return NewDocument(src, raw)
}

func (l *loader) loadURL(ctx context.Context, src Source) (Document, error) {
	client := l.options.HTTPClient
	if client == nil {
		if !l.options.AllowHTTPFallback {
			return Document{}, errors.New("document loader: url sources are disabled")
		}
		client = http.DefaultClient
	}
	if l.options.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.options.RequestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Location(), nil)
	if err != nil {
		return Document{}, fmt.Errorf("document loader: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("document loader: fetch %s: %w", src.Location(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Document{}, fmt.Errorf("document loader: fetch %s: unexpected status %d", src.Location(), resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, fmt.Errorf("document loader: read response: %w", err)
	}
	return NewDocument(src, raw)
}
