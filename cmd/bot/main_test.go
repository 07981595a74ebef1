package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jomei/notionapi"

	"github.com/edgard/ledgerbot/internal/config"
	"github.com/edgard/ledgerbot/internal/notion"
)

type fakeDatabase struct {
	mu  sync.Mutex
	ids []notionapi.DatabaseID
}

func (f *fakeDatabase) Get(_ context.Context, id notionapi.DatabaseID) (*notionapi.Database, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, id)
	return &notionapi.Database{
		ID:    notionapi.ObjectID(id),
		Title: []notionapi.RichText{{PlainText: "Finance"}},
		URL:   "https://www.notion.so/finance",
	}, nil
}

func unusedDatabase(t *testing.T) databaseFactory {
	return func(config.NotionConfig) notion.DatabaseGetter {
		t.Error("collection client created")
		return &fakeDatabase{}
	}
}

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, name := range []string{"BOT_TOKEN", "API_TOKEN", "COLLECTION_ID", "NOTION_TIMEOUT", "LOG_LEVEL", "LOG_JSON"} {
		t.Setenv(name, vars[name])
	}
}

func noFileArgs(t *testing.T, extra ...string) []string {
	t.Helper()
	dir := t.TempDir()
	args := []string{
		"-config", filepath.Join(dir, "config.yaml"),
		"-env", filepath.Join(dir, ".env"),
	}
	return append(args, extra...)
}

func TestRunMissingAPIToken(t *testing.T) {
	setEnv(t, map[string]string{
		"BOT_TOKEN":     "abc",
		"COLLECTION_ID": "11111111-1111-1111-1111-111111111111",
	})

	var out bytes.Buffer
	if code := run(context.Background(), noFileArgs(t, "-once"), &out, unusedDatabase(t)); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if out.Len() != 0 {
		t.Errorf("run() printed %q, want no output", out.String())
	}
}

func TestRunMalformedCollectionID(t *testing.T) {
	setEnv(t, map[string]string{
		"BOT_TOKEN":     "abc",
		"API_TOKEN":     "xyz",
		"COLLECTION_ID": "finance",
		"LOG_LEVEL":     "error",
	})

	db := &fakeDatabase{}
	factory := func(config.NotionConfig) notion.DatabaseGetter { return db }

	var out bytes.Buffer
	if code := run(context.Background(), noFileArgs(t, "-once"), &out, factory); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if len(db.ids) != 0 {
		t.Errorf("Get calls = %v, want none", db.ids)
	}
	if out.Len() != 0 {
		t.Errorf("run() printed %q, want no output", out.String())
	}
}

func TestRunUnknownFlag(t *testing.T) {
	setEnv(t, nil)

	if code := run(context.Background(), []string{"-verbose"}, &bytes.Buffer{}, unusedDatabase(t)); code != 2 {
		t.Errorf("run() = %d, want 2", code)
	}
}

func TestRunOnceFetchesCollection(t *testing.T) {
	setEnv(t, map[string]string{
		"BOT_TOKEN":     "abc",
		"API_TOKEN":     "xyz",
		"COLLECTION_ID": "11111111111111111111111111111111",
		"LOG_LEVEL":     "error",
	})

	db := &fakeDatabase{}
	var gotCfg config.NotionConfig
	factory := func(cfg config.NotionConfig) notion.DatabaseGetter {
		gotCfg = cfg
		return db
	}

	var out bytes.Buffer
	if code := run(context.Background(), noFileArgs(t, "-once"), &out, factory); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	const want = notionapi.DatabaseID("11111111-1111-1111-1111-111111111111")
	if len(db.ids) != 1 || db.ids[0] != want {
		t.Errorf("Get calls = %v, want exactly one for %s", db.ids, want)
	}
	if gotCfg.Token != "xyz" {
		t.Errorf("client token = %q, want %q", gotCfg.Token, "xyz")
	}
	if !strings.Contains(out.String(), string(want)) || !strings.Contains(out.String(), "Finance") {
		t.Errorf("stdout = %q, want the collection id and title", out.String())
	}
}

func TestRunFetchFailure(t *testing.T) {
	setEnv(t, map[string]string{
		"BOT_TOKEN":     "abc",
		"API_TOKEN":     "xyz",
		"COLLECTION_ID": "11111111-1111-1111-1111-111111111111",
		"LOG_LEVEL":     "error",
	})

	factory := func(config.NotionConfig) notion.DatabaseGetter { return failingDatabase{} }

	var out bytes.Buffer
	if code := run(context.Background(), noFileArgs(t, "-once"), &out, factory); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if out.Len() != 0 {
		t.Errorf("run() printed %q, want no output", out.String())
	}
}

type failingDatabase struct{}

func (failingDatabase) Get(context.Context, notionapi.DatabaseID) (*notionapi.Database, error) {
	return nil, errors.New("object_not_found")
}
