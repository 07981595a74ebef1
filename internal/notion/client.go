// Package notion wraps the Notion API client used to reach the workspace
// database ("collection") the bot reads from.
package notion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jomei/notionapi"
	"github.com/kr/pretty"
	"github.com/samber/lo"

	"github.com/edgard/ledgerbot/internal/config"
)

// ErrInvalidCollectionID is returned when an identifier is not a Notion UUID.
var ErrInvalidCollectionID = errors.New("invalid collection id")

// DatabaseGetter fetches a single database by ID. notionapi.DatabaseService
// satisfies it.
type DatabaseGetter interface {
	Get(ctx context.Context, id notionapi.DatabaseID) (*notionapi.Database, error)
}

// Summary is the loggable view of a fetched collection.
type Summary struct {
	ID         string
	Title      string
	URL        string
	Properties []string
}

// NewClient creates a Notion API client whose requests are bounded by cfg.Timeout.
// Creating the client performs no network I/O.
func NewClient(cfg config.NotionConfig) *notionapi.Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return notionapi.NewClient(notionapi.Token(cfg.Token), notionapi.WithHTTPClient(httpClient))
}

// ParseCollectionID validates raw as a Notion identifier, with or without
// dashes, and returns it in canonical dashed form.
func ParseCollectionID(raw string) (notionapi.DatabaseID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidCollectionID, raw, err)
	}
	return notionapi.DatabaseID(id.String()), nil
}

// Probe parses rawID and fetches that collection once. A malformed
// identifier fails before any request is made.
func Probe(ctx context.Context, getter DatabaseGetter, rawID string) (*notionapi.Database, Summary, error) {
	id, err := ParseCollectionID(rawID)
	if err != nil {
		return nil, Summary{}, err
	}

	db, err := getter.Get(ctx, id)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("failed to fetch collection %s: %w", id, err)
	}
	if db == nil {
		return nil, Summary{}, fmt.Errorf("collection %s: empty response", id)
	}

	return db, Summarize(db), nil
}

// Summarize extracts the identifying fields of a collection. Property names
// are sorted.
func Summarize(db *notionapi.Database) Summary {
	props := lo.Keys(db.Properties)
	sort.Strings(props)

	return Summary{
		ID:         string(db.ID),
		Title:      PlainText(db.Title),
		URL:        db.URL,
		Properties: props,
	}
}

// PlainText concatenates the plain-text content of a rich text array.
func PlainText(rt []notionapi.RichText) string {
	return strings.Join(lo.Map(rt, func(r notionapi.RichText, _ int) string { return r.PlainText }), "")
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", s.ID),
		slog.String("title", s.Title),
		slog.String("url", s.URL),
		slog.Any("properties", s.Properties),
	)
}

// Dump writes a readable rendering of the collection to w.
func Dump(w io.Writer, db *notionapi.Database) error {
	_, err := pretty.Fprintf(w, "%# v\n", db)
	return err
}
