package editor

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeywordsRoundTrip(t *testing.T) {
	tool := newFakeTool()
	ed := newTestEditor(t, tool)
	ctx := context.Background()

	want := []string{"sunset", "beach", "vacation"}
	if err := ed.SetKeywords(ctx, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ed.Keywords(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("keywords did not round-trip (-want +got):\n%s", diff)
	}
}

func TestKeywordsSingleValueNormalizedToList(t *testing.T) {
	tool := newFakeTool()
	tool.keywords = []string{"alpha"}
	ed := newTestEditor(t, tool)

	got, err := ed.Keywords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"alpha"}, got); diff != "" {
		t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
	}
}

func TestKeywordsEmptyWhenUnset(t *testing.T) {
	ed := newTestEditor(t, newFakeTool())

	got, err := ed.Keywords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no keywords, got %v", got)
	}
}

func TestClearKeywordsEmptiesList(t *testing.T) {
	tool := newFakeTool()
	ed := newTestEditor(t, tool)
	ctx := context.Background()

	if err := ed.SetKeywords(ctx, []string{"a", "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ed.ClearKeywords(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ed.Keywords(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no keywords after clear, got %v", got)
	}
}

func TestAddKeywordAccumulates(t *testing.T) {
	tool := newFakeTool()
	ed := newTestEditor(t, tool)
	ctx := context.Background()

	if err := ed.AddKeyword(ctx, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ed.AddKeyword(ctx, "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ed.Keywords(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
	}
}

func TestAddKeywordsInvocationArgs(t *testing.T) {
	inv := &scriptInvoker{}
	ed := newTestEditor(t, inv)

	if err := ed.AddKeywords(context.Background(), []string{"red sky", "dunes"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"-overwrite_original_in_place", "-iptc:keywords+=red sky", "-iptc:keywords+=dunes"}
	if diff := cmp.Diff(want, inv.calls[0].args); diff != "" {
		t.Fatalf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestAddKeywordsEmptyIsNoop(t *testing.T) {
	inv := &scriptInvoker{}
	ed := newTestEditor(t, inv)

	if err := ed.AddKeywords(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inv.calls) != 0 {
		t.Fatalf("expected no invocation, got %d", len(inv.calls))
	}
}

func TestSetKeywordsClearsBeforeAdding(t *testing.T) {
	tool := newFakeTool()
	tool.keywords = []string{"stale"}
	ed := newTestEditor(t, tool)

	if err := ed.SetKeywords(context.Background(), []string{"fresh"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tool.calls) != 2 {
		t.Fatalf("expected clear then add, got %d calls", len(tool.calls))
	}
	if !containsArg(tool.calls[0].args, "-Keywords=") {
		t.Fatalf("expected first call to clear keywords: %v", tool.calls[0].args)
	}
	if !containsArg(tool.calls[1].args, "-iptc:keywords+=fresh") {
		t.Fatalf("expected second call to add keywords: %v", tool.calls[1].args)
	}
}

func TestRemoveKeywordDropsFirstOccurrence(t *testing.T) {
	tool := newFakeTool()
	tool.keywords = []string{"a", "b", "a"}
	ed := newTestEditor(t, tool)

	if err := ed.RemoveKeyword(context.Background(), "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ed.Keywords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, got); diff != "" {
		t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
	}
}

func TestRemoveKeywordMissingIsIgnored(t *testing.T) {
	tool := newFakeTool()
	tool.keywords = []string{"keep"}
	ed := newTestEditor(t, tool)

	if err := ed.RemoveKeywords(context.Background(), []string{"absent"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ed.Keywords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"keep"}, got); diff != "" {
		t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
	}
}

func containsArg(args []string, want string) bool {
	for _, arg := range args {
		if arg == want || strings.HasPrefix(arg, want) {
			return true
		}
	}
	return false
}
