package editor

import (
	"context"
	"fmt"
	"regexp"
	"time"

	apperrors "exifedit/internal/errors"
)

// TimeLayout is the EXIF datetime string format. Reads pass the matching
// strftime format to exiftool so tool output and this layout stay in
// lockstep; changing one without the other breaks every date round-trip.
const TimeLayout = "2006:01:02 15:04:05"

// toolTimeFormat is TimeLayout expressed as exiftool's -d format string.
const toolTimeFormat = "%Y:%m:%d %H:%M:%S"

const (
	originalDateTag = "DateTimeOriginal"
	modifyDateTag   = "FileModifyDate"
)

var (
	datePattern     = regexp.MustCompile(`^\d{4}:[01]\d:[0-3]\d$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}:[01]\d:[0-3]\d [0-2]\d:[0-5]\d:[0-5]\d$`)
)

// OriginalDateTime returns when the picture was taken. ok is false when
// the tag is not set.
func (e *Editor) OriginalDateTime(ctx context.Context) (time.Time, bool, error) {
	return e.dateTag(ctx, originalDateTag)
}

// SetOriginalDateTime sets when the picture was taken. A zero time means
// "now".
func (e *Editor) SetOriginalDateTime(ctx context.Context, t time.Time) error {
	return e.setDateTag(ctx, originalDateTag, t)
}

// ModificationDateTime returns the file modification date recorded in the
// metadata.
func (e *Editor) ModificationDateTime(ctx context.Context) (time.Time, bool, error) {
	return e.dateTag(ctx, modifyDateTag)
}

// SetModificationDateTime sets the file modification date. A zero time
// means "now", like touch.
func (e *Editor) SetModificationDateTime(ctx context.Context, t time.Time) error {
	return e.setDateTag(ctx, modifyDateTag, t)
}

func (e *Editor) dateTag(ctx context.Context, tag string) (time.Time, bool, error) {
	raw, ok, err := e.TagString(ctx, tag)
	if err != nil || !ok {
		return time.Time{}, ok, err
	}
	t, err := time.ParseInLocation(TimeLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, false, apperrors.Wrap(apperrors.ParseFailure, "parse-date", e.image,
			fmt.Errorf("tag %s: %w", tag, err))
	}
	return t, true, nil
}

func (e *Editor) setDateTag(ctx context.Context, tag string, t time.Time) error {
	if t.IsZero() {
		t = time.Now()
	}
	return e.write(ctx, "-"+tag+"="+t.Format(TimeLayout))
}

// ParseDateTime parses a user-supplied EXIF date string. A date without a
// time component is taken to be midnight.
func ParseDateTime(value string) (time.Time, error) {
	switch {
	case datePattern.MatchString(value):
		value += " 00:00:00"
	case dateTimePattern.MatchString(value):
	default:
		return time.Time{}, fmt.Errorf("invalid datetime %q, want YYYY:MM:DD or YYYY:MM:DD HH:MM:SS", value)
	}
	return time.ParseInLocation(TimeLayout, value, time.Local)
}
