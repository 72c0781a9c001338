package editor

import (
	"context"
	"fmt"
	"strconv"

	apperrors "exifedit/internal/errors"
)

// orientationTag with the trailing # asks exiftool for the numeric code
// instead of the human-readable description.
const orientationTag = "Orientation#"

// pose is the physical reading of an EXIF orientation code.
type pose struct {
	rotation int // clockwise degrees: 0, 90, 180 or 270
	mirrored bool
}

// The eight EXIF orientation codes:
//
//	     Rot    Img
//	1:     0    Normal
//	2:     0    Mirrored
//	3:   180    Normal
//	4:   180    Mirrored
//	5:   +90    Mirrored
//	6:   +90    Normal
//	7:   -90    Mirrored
//	8:   -90    Normal
var poses = map[int]pose{
	1: {0, false},
	2: {0, true},
	3: {180, false},
	4: {180, true},
	5: {90, true},
	6: {90, false},
	7: {270, true},
	8: {270, false},
}

var codes = map[pose]int{
	{0, false}:   1,
	{0, true}:    2,
	{180, false}: 3,
	{180, true}:  4,
	{90, true}:   5,
	{90, false}:  6,
	{270, true}:  7,
	{270, false}: 8,
}

// Orientation returns the image's orientation code, defaulting to 1
// (normal) when the tag is not set.
func (e *Editor) Orientation(ctx context.Context) (int, error) {
	value, ok, err := e.Tag(ctx, orientationTag)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}
	switch v := value.(type) {
	case float64:
		return int(v), nil
	case string:
		code, convErr := strconv.Atoi(v)
		if convErr != nil {
			return 0, apperrors.Wrap(apperrors.ParseFailure, "parse-orientation", e.image, convErr)
		}
		return code, nil
	default:
		return 0, apperrors.New(apperrors.ParseFailure, "parse-orientation", e.image,
			fmt.Sprintf("unexpected orientation value %v", value))
	}
}

// SetOrientation writes an orientation code without touching pixel data.
func (e *Editor) SetOrientation(ctx context.Context, code int) error {
	if _, ok := poses[code]; !ok {
		return fmt.Errorf("orientation code must be 1 through 8, got %d", code)
	}
	return e.write(ctx, fmt.Sprintf("-%s=%d", orientationTag, code))
}

// RotateCW rotates the image clockwise by num 90 degree steps.
func (e *Editor) RotateCW(ctx context.Context, num int) error {
	return e.rotate(ctx, 90*num)
}

// RotateCCW rotates the image counter-clockwise by num 90 degree steps.
func (e *Editor) RotateCCW(ctx context.Context, num int) error {
	return e.rotate(ctx, -90*num)
}

func (e *Editor) rotate(ctx context.Context, degrees int) error {
	current, err := e.Orientation(ctx)
	if err != nil {
		return err
	}
	next, err := rotated(current, degrees)
	if err != nil {
		return err
	}
	return e.SetOrientation(ctx, next)
}

// MirrorVertically flips the image top to bottom: a 180 degree rotation
// followed by a horizontal flip.
func (e *Editor) MirrorVertically(ctx context.Context) error {
	current, err := e.Orientation(ctx)
	if err != nil {
		return err
	}
	turned, err := rotated(current, 180)
	if err != nil {
		return err
	}
	return e.SetOrientation(ctx, mirrored(turned))
}

// MirrorHorizontally flips the image left to right.
func (e *Editor) MirrorHorizontally(ctx context.Context) error {
	current, err := e.Orientation(ctx)
	if err != nil {
		return err
	}
	return e.SetOrientation(ctx, mirrored(current))
}

// rotated returns the orientation code after turning the given code by
// degrees clockwise. The mirror state is preserved.
func rotated(code, degrees int) (int, error) {
	if degrees%90 != 0 {
		return 0, fmt.Errorf("rotations must be multiples of 90 degrees, got %d", degrees)
	}
	p, ok := poses[code]
	if !ok {
		p = poses[1] // unknown codes are treated as upright
	}
	rotation := ((p.rotation+degrees)%360 + 360) % 360
	return codes[pose{rotation, p.mirrored}], nil
}

// mirrored flips the mirror state of an orientation code, preserving its
// rotation.
func mirrored(code int) int {
	p, ok := poses[code]
	if !ok {
		p = poses[1]
	}
	return codes[pose{p.rotation, !p.mirrored}]
}
