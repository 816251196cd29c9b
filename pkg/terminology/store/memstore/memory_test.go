package memstore

import (
	"context"
	"testing"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/store"
)

func TestUpsertGetRoundtrip(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	doc := store.Document{
		Name: "风暴潮预警规范",
		Pages: []store.Page{
			{Number: 1, Text: "第一页内容。"},
			{Number: 2, Text: "第二页内容。"},
		},
	}
	if err := s.UpsertDocument(ctx, doc); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.GetDocument(ctx, "风暴潮预警规范")
	if err != nil || !ok {
		t.Fatalf("GetDocument: ok=%v err=%v", ok, err)
	}
	if len(got.Pages) != 2 || got.Pages[1].Text != "第二页内容。" {
		t.Errorf("pages = %+v", got.Pages)
	}
}

func TestUpsertReplaces(t *testing.T) {
	s := New()
	ctx := context.Background()

	s.UpsertDocument(ctx, store.Document{Name: "doc", Pages: []store.Page{{Number: 1, Text: "旧"}}})
	s.UpsertDocument(ctx, store.Document{Name: "doc", Pages: []store.Page{{Number: 1, Text: "新"}}})

	got, _, _ := s.GetDocument(ctx, "doc")
	if len(got.Pages) != 1 || got.Pages[0].Text != "新" {
		t.Errorf("pages = %+v, want replaced content", got.Pages)
	}
}

func TestGetMissing(t *testing.T) {
	s := New()
	_, ok, err := s.GetDocument(context.Background(), "absent")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("missing document reported as found")
	}
}

func TestListDocumentsSorted(t *testing.T) {
	s := New()
	ctx := context.Background()

	s.UpsertDocument(ctx, store.Document{Name: "b-doc"})
	s.UpsertDocument(ctx, store.Document{Name: "a-doc"})

	docs, err := s.ListDocuments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 || docs[0].Name != "a-doc" || docs[1].Name != "b-doc" {
		t.Errorf("docs = %+v, want name order", docs)
	}
}

func TestDeleteDocument(t *testing.T) {
	s := New()
	ctx := context.Background()

	s.UpsertDocument(ctx, store.Document{Name: "doc"})
	if err := s.DeleteDocument(ctx, "doc"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.GetDocument(ctx, "doc"); ok {
		t.Error("document still present after delete")
	}
	// deleting an absent document is not an error
	if err := s.DeleteDocument(ctx, "doc"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestCallerCannotMutateStored(t *testing.T) {
	s := New()
	ctx := context.Background()

	pages := []store.Page{{Number: 1, Text: "原文"}}
	s.UpsertDocument(ctx, store.Document{Name: "doc", Pages: pages})
	pages[0].Text = "改写"

	got, _, _ := s.GetDocument(ctx, "doc")
	if got.Pages[0].Text != "原文" {
		t.Error("stored document shares memory with caller slice")
	}
}
