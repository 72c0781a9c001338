// Package editor reads and writes image metadata by driving the exiftool
// command-line program. Every operation is one synchronous subprocess
// round-trip; no result is cached between calls.
//
// Writes mutate the image file in place (unless WithBackup is set) and are
// not retried: a failed or cancelled write may leave the file partially
// updated. The Editor holds no mutable state after construction, but it
// does not serialize access to the underlying file either — callers that
// may touch the same image concurrently must provide their own locking.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"exifedit/exiftool"
	apperrors "exifedit/internal/errors"
)

// Invoker runs a single exiftool invocation. file is appended as the final
// argument when non-empty. It is the narrow seam between the editor and
// the external process; *exiftool.Runner is the production implementation.
type Invoker interface {
	Run(ctx context.Context, file string, args ...string) (stdout, stderr string, err error)
}

// overwriteFlag makes exiftool edit the file in place instead of leaving
// an "_original" backup next to it.
const overwriteFlag = "-overwrite_original_in_place"

var badTagPattern = regexp.MustCompile(`Warning: Tag '[^']+' does not exist`)

// TagEntry is one named metadata field as reported by exiftool. Value
// holds the decoded JSON value: a string, a number, a bool, or a list.
type TagEntry struct {
	Name  string
	Value any
}

// ValueString renders the entry's value for display. List values are
// joined with commas.
func (t TagEntry) ValueString() string {
	return renderValue(t.Value)
}

type Editor struct {
	image  string
	inv    Invoker
	fs     afero.Fs
	backup bool
	extra  []string
}

type Option func(*Editor)

// WithInvoker replaces the default exiftool runner. Useful for sharing one
// resolved runner across editors, and for tests.
func WithInvoker(inv Invoker) Option {
	return func(e *Editor) { e.inv = inv }
}

// WithBackup keeps exiftool's "_original" backup file next to the image
// instead of overwriting in place.
func WithBackup() Option {
	return func(e *Editor) { e.backup = true }
}

// WithExtraArgs prepends fixed arguments to every write invocation.
func WithExtraArgs(args ...string) Option {
	return func(e *Editor) { e.extra = append(e.extra, args...) }
}

// WithFs replaces the filesystem used to check that the image exists.
func WithFs(fs afero.Fs) Option {
	return func(e *Editor) { e.fs = fs }
}

// New builds an editor for the image at the given path. It fails with a
// ToolNotFound error when exiftool cannot be resolved and with a NotFound
// error when the image does not exist, in both cases before any
// subprocess is spawned.
func New(image string, opts ...Option) (*Editor, error) {
	e := &Editor{
		image: image,
		fs:    afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.inv == nil {
		runner, err := exiftool.New()
		if err != nil {
			return nil, err
		}
		e.inv = runner
	}
	if _, err := e.fs.Stat(image); err != nil {
		return nil, apperrors.Wrap(apperrors.NotFound, "stat", image, err)
	}
	return e, nil
}

// Image returns the path this editor operates on.
func (e *Editor) Image() string {
	return e.image
}

// read runs a JSON-mode query for the named tags (all tags when none are
// given) and returns the decoded record for the image.
func (e *Editor) read(ctx context.Context, tags ...string) (map[string]any, error) {
	args := []string{"-j", "-d", toolTimeFormat}
	for _, tag := range tags {
		args = append(args, "-"+tag)
	}

	stdout, _, err := e.inv.Run(ctx, e.image, args...)
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	if err := json.Unmarshal([]byte(stdout), &records); err != nil {
		return nil, apperrors.Wrap(apperrors.ParseFailure, "decode", e.image,
			fmt.Errorf("%w: %q", err, strings.TrimSpace(stdout)))
	}
	if len(records) == 0 {
		return nil, apperrors.New(apperrors.ParseFailure, "decode", e.image,
			"exiftool returned no records")
	}
	return records[0], nil
}

// write runs a tag-assignment invocation. A tag name rejected by exiftool
// surfaces as an InvalidTag error.
func (e *Editor) write(ctx context.Context, assignments ...string) error {
	args := make([]string, 0, len(e.extra)+len(assignments)+1)
	args = append(args, e.extra...)
	if !e.backup {
		args = append(args, overwriteFlag)
	}
	args = append(args, assignments...)

	_, stderr, err := e.inv.Run(ctx, e.image, args...)
	if err != nil {
		return err
	}
	if match := badTagPattern.FindString(stderr); match != "" {
		return apperrors.New(apperrors.InvalidTag, "write", e.image, match)
	}
	return nil
}

// Tag returns the raw decoded value of the named tag. ok is false when the
// tag is absent from the image; absence is never an error.
func (e *Editor) Tag(ctx context.Context, name string) (value any, ok bool, err error) {
	record, err := e.read(ctx, name)
	if err != nil {
		return nil, false, err
	}
	value, ok = record[name]
	return value, ok, nil
}

// TagString returns the named tag rendered as a string.
func (e *Editor) TagString(ctx context.Context, name string) (string, bool, error) {
	value, ok, err := e.Tag(ctx, name)
	if err != nil || !ok {
		return "", ok, err
	}
	return renderValue(value), true, nil
}

// SetTag assigns one or more values to the named tag in a single
// invocation. Passing an empty string clears the tag.
func (e *Editor) SetTag(ctx context.Context, name string, values ...string) error {
	if len(values) == 0 {
		return apperrors.New(apperrors.Internal, "set-tag", e.image, "no values given")
	}
	assignments := make([]string, 0, len(values))
	for _, value := range values {
		assignments = append(assignments, "-"+name+"="+value)
	}
	return e.write(ctx, assignments...)
}

// SetTags assigns several tags in one invocation, in lexical tag order.
func (e *Editor) SetTags(ctx context.Context, tags map[string]string) error {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := make([]string, 0, len(names))
	for _, name := range names {
		assignments = append(assignments, "-"+name+"="+tags[name])
	}
	return e.write(ctx, assignments...)
}

// Tags returns every tag on the image sorted by name. When includeEmpty is
// false, tags whose values render to an empty string are dropped.
func (e *Editor) Tags(ctx context.Context, includeEmpty bool) ([]TagEntry, error) {
	record, err := e.read(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]TagEntry, 0, len(record))
	for name, value := range record {
		if !includeEmpty && renderValue(value) == "" {
			continue
		}
		entries = append(entries, TagEntry{Name: name, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// TagMap returns every tag on the image keyed by name.
func (e *Editor) TagMap(ctx context.Context, includeEmpty bool) (map[string]any, error) {
	entries, err := e.Tags(ctx, includeEmpty)
	if err != nil {
		return nil, err
	}
	result := make(map[string]any, len(entries))
	for _, entry := range entries {
		result[entry.Name] = entry.Value
	}
	return result, nil
}

func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, renderValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
