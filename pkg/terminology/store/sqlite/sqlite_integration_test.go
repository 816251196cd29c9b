package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUpsertGetRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	doc := store.Document{
		Name: "海啸等级",
		Pages: []store.Page{
			{Number: 1, Text: "海啸是指由海底地震引起的巨大波浪灾害。"},
			{Number: 2, Text: "海啸等级按最大波幅划分。"},
		},
	}
	if err := s.UpsertDocument(ctx, doc); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.GetDocument(ctx, "海啸等级")
	if err != nil || !ok {
		t.Fatalf("GetDocument: ok=%v err=%v", ok, err)
	}
	if len(got.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(got.Pages))
	}
	if got.Pages[0].Number != 1 || got.Pages[1].Number != 2 {
		t.Errorf("pages out of order: %+v", got.Pages)
	}
}

func TestUpsertReplacesPages(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.UpsertDocument(ctx, store.Document{Name: "doc", Pages: []store.Page{
		{Number: 1, Text: "旧第一页"},
		{Number: 2, Text: "旧第二页"},
		{Number: 3, Text: "旧第三页"},
	}})
	if err := s.UpsertDocument(ctx, store.Document{Name: "doc", Pages: []store.Page{
		{Number: 1, Text: "新第一页"},
	}}); err != nil {
		t.Fatal(err)
	}

	got, _, err := s.GetDocument(ctx, "doc")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Pages) != 1 || got.Pages[0].Text != "新第一页" {
		t.Errorf("pages = %+v, want fully replaced", got.Pages)
	}
}

func TestUpsertRejectsEmptyName(t *testing.T) {
	s := openTestStore(t)
	if err := s.UpsertDocument(context.Background(), store.Document{}); err == nil {
		t.Error("expected error for empty document name")
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.GetDocument(context.Background(), "absent")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("missing document reported as found")
	}
}

func TestListDocumentsNameOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.UpsertDocument(ctx, store.Document{Name: "b-规范", Pages: []store.Page{{Number: 1, Text: "乙"}}})
	s.UpsertDocument(ctx, store.Document{Name: "a-规范", Pages: []store.Page{{Number: 1, Text: "甲"}}})

	docs, err := s.ListDocuments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 || docs[0].Name != "a-规范" || docs[1].Name != "b-规范" {
		t.Errorf("docs = %+v, want name order", docs)
	}
	if len(docs[0].Pages) != 1 {
		t.Errorf("listed documents should carry pages: %+v", docs[0])
	}
}

func TestDeleteDocumentCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.UpsertDocument(ctx, store.Document{Name: "doc", Pages: []store.Page{{Number: 1, Text: "内容"}}})
	if err := s.DeleteDocument(ctx, "doc"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.GetDocument(ctx, "doc"); ok {
		t.Error("document still present after delete")
	}
	if err := s.DeleteDocument(ctx, "doc"); err != nil {
		t.Errorf("deleting absent document: %v", err)
	}
}
