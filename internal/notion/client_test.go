package notion

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jomei/notionapi"

	"github.com/edgard/ledgerbot/internal/config"
)

const testCollectionID = "11111111-1111-1111-1111-111111111111"

type fakeGetter struct {
	calls []notionapi.DatabaseID
	db    *notionapi.Database
	err   error
}

func (f *fakeGetter) Get(_ context.Context, id notionapi.DatabaseID) (*notionapi.Database, error) {
	f.calls = append(f.calls, id)
	return f.db, f.err
}

func testDatabase() *notionapi.Database {
	return &notionapi.Database{
		ID:    notionapi.ObjectID(testCollectionID),
		Title: []notionapi.RichText{{PlainText: "Fin"}, {PlainText: "ance"}},
		URL:   "https://www.notion.so/" + strings.ReplaceAll(testCollectionID, "-", ""),
		Properties: notionapi.PropertyConfigs{
			"Name":   &notionapi.TitlePropertyConfig{},
			"Amount": &notionapi.NumberPropertyConfig{},
		},
	}
}

func TestParseCollectionID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    notionapi.DatabaseID
		wantErr bool
	}{
		{name: "dashed", raw: testCollectionID, want: testCollectionID},
		{name: "undashed", raw: "11111111111111111111111111111111", want: testCollectionID},
		{name: "upper case", raw: "ABCDEFAB-1111-2222-3333-444455556666", want: "abcdefab-1111-2222-3333-444455556666"},
		{name: "surrounding space", raw: " " + testCollectionID + "\n", want: testCollectionID},
		{name: "empty", raw: "", wantErr: true},
		{name: "not hex", raw: "zzzzzzzz-1111-1111-1111-111111111111", wantErr: true},
		{name: "too short", raw: "1111", wantErr: true},
		{name: "page url", raw: "https://www.notion.so/finance", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCollectionID(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCollectionID) {
					t.Fatalf("ParseCollectionID(%q) error = %v, want ErrInvalidCollectionID", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCollectionID(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseCollectionID(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestProbeRejectsMalformedIDWithoutFetching(t *testing.T) {
	t.Parallel()

	getter := &fakeGetter{db: testDatabase()}
	_, _, err := Probe(context.Background(), getter, "not-a-uuid")
	if !errors.Is(err, ErrInvalidCollectionID) {
		t.Fatalf("Probe() error = %v, want ErrInvalidCollectionID", err)
	}
	if len(getter.calls) != 0 {
		t.Errorf("Get called %d times, want 0", len(getter.calls))
	}
}

func TestProbeFetchesOnce(t *testing.T) {
	t.Parallel()

	getter := &fakeGetter{db: testDatabase()}
	db, summary, err := Probe(context.Background(), getter, testCollectionID)
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	if !reflect.DeepEqual(getter.calls, []notionapi.DatabaseID{testCollectionID}) {
		t.Errorf("Get calls = %v, want exactly one for %s", getter.calls, testCollectionID)
	}
	if db != getter.db {
		t.Error("Probe() did not return the fetched collection")
	}

	want := Summary{
		ID:         testCollectionID,
		Title:      "Finance",
		URL:        getter.db.URL,
		Properties: []string{"Amount", "Name"},
	}
	if !reflect.DeepEqual(summary, want) {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
}

func TestProbeFetchError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("unauthorized")
	getter := &fakeGetter{err: fetchErr}

	_, _, err := Probe(context.Background(), getter, testCollectionID)
	if !errors.Is(err, fetchErr) {
		t.Fatalf("Probe() error = %v, want wrapped %v", err, fetchErr)
	}
	if len(getter.calls) != 1 {
		t.Errorf("Get called %d times, want 1", len(getter.calls))
	}
}

func TestProbeEmptyResponse(t *testing.T) {
	t.Parallel()

	if _, _, err := Probe(context.Background(), &fakeGetter{}, testCollectionID); err == nil {
		t.Fatal("Probe() error = nil for empty response")
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Dump(&buf, testDatabase()); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(buf.String(), testCollectionID) {
		t.Errorf("Dump() output missing collection id: %s", buf.String())
	}
}

func TestNewClientWiresDatabaseService(t *testing.T) {
	t.Parallel()

	c := NewClient(config.NotionConfig{Token: "secret", CollectionID: testCollectionID, Timeout: time.Second})
	if c.Database == nil {
		t.Fatal("client has no database service")
	}
	var _ DatabaseGetter = c.Database
}
