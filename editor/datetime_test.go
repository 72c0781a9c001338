package editor

import (
	"context"
	"strings"
	"testing"
	"time"

	apperrors "exifedit/internal/errors"
)

func TestOriginalDateTimeRoundTrip(t *testing.T) {
	tool := newFakeTool()
	ed := newTestEditor(t, tool)
	ctx := context.Background()

	want := time.Date(2023, 4, 5, 6, 7, 8, 0, time.Local)
	if err := ed.SetOriginalDateTime(ctx, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := ed.OriginalDateTime(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected DateTimeOriginal to be set")
	}
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOriginalDateTimeUnset(t *testing.T) {
	ed := newTestEditor(t, newFakeTool())

	_, ok, err := ed.OriginalDateTime(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected unset DateTimeOriginal")
	}
}

func TestSetModificationDateTimeInvocationArgs(t *testing.T) {
	inv := &scriptInvoker{}
	ed := newTestEditor(t, inv)

	when := time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local)
	if err := ed.SetModificationDateTime(context.Background(), when); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !containsArg(inv.calls[0].args, "-FileModifyDate=2024:12:31 23:59:59") {
		t.Fatalf("unexpected args: %v", inv.calls[0].args)
	}
}

func TestSetOriginalDateTimeZeroMeansNow(t *testing.T) {
	tool := newFakeTool()
	ed := newTestEditor(t, tool)
	ctx := context.Background()

	before := time.Now().Add(-2 * time.Second)
	if err := ed.SetOriginalDateTime(ctx, time.Time{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := time.Now().Add(2 * time.Second)

	got, ok, err := ed.OriginalDateTime(ctx)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Before(before) || got.After(after) {
		t.Fatalf("expected a current timestamp, got %v", got)
	}
}

func TestDateTimeMalformedValueIsParseFailure(t *testing.T) {
	inv := &scriptInvoker{responses: []scriptResponse{
		{stdout: `[{"DateTimeOriginal": "sometime last summer"}]`},
	}}
	ed := newTestEditor(t, inv)

	_, _, err := ed.OriginalDateTime(context.Background())
	if kind := apperrors.KindOf(err); kind != apperrors.ParseFailure {
		t.Fatalf("expected parse_failure, got %s (%v)", kind, err)
	}
}

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  time.Time
		fails bool
	}{
		{
			name:  "full datetime",
			value: "2023:04:05 06:07:08",
			want:  time.Date(2023, 4, 5, 6, 7, 8, 0, time.Local),
		},
		{
			name:  "date only becomes midnight",
			value: "2023:04:05",
			want:  time.Date(2023, 4, 5, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "dashes rejected",
			value: "2023-04-05 06:07:08",
			fails: true,
		},
		{
			name:  "garbage rejected",
			value: "next tuesday",
			fails: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDateTime(tc.value)
			if tc.fails {
				if err == nil {
					t.Fatalf("expected error for %q", tc.value)
				}
				if !strings.Contains(err.Error(), tc.value) {
					t.Fatalf("expected value in error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
