package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/CLOEI/gtworld-r/errors"
)

func TestErrorString(t *testing.T) {
	err := errors.New(errors.StageTiles, errors.KindTruncated).
		Offset(412).
		Tile(3, 7).
		Detail("reading flags word").
		Build()

	s := err.Error()
	for _, want := range []string{"[tiles]", "truncated", "offset 412", "tile 3,7", "reading flags word"} {
		if !strings.Contains(s, want) {
			t.Errorf("error string %q missing %q", s, want)
		}
	}
}

func TestErrorIsMatchesStageAndKind(t *testing.T) {
	err := errors.Truncated(errors.StageDropped, 99, nil)
	target := &errors.Error{Stage: errors.StageDropped, Kind: errors.KindTruncated}

	if !stderrors.Is(err, target) {
		t.Error("expected Is to match on stage+kind")
	}

	other := &errors.Error{Stage: errors.StageHeader, Kind: errors.KindTruncated}
	if stderrors.Is(err, other) {
		t.Error("expected Is to reject different stage")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := stderrors.New("short read")
	err := errors.PayloadDecode(1, 2, 50, cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}
}

func TestInvalidItemIDCarriesContext(t *testing.T) {
	err := errors.InvalidItemID(9000, 8000, 5, 6, 120)

	if err.Value != uint16(9000) {
		t.Errorf("Value = %v, want 9000", err.Value)
	}
	if err.X != 5 || err.Y != 6 || !err.HasPos {
		t.Errorf("coordinate = (%d,%d,%v), want (5,6,true)", err.X, err.Y, err.HasPos)
	}
	if err.Offset != 120 {
		t.Errorf("Offset = %d, want 120", err.Offset)
	}
}

func TestUnsupportedVersionDetail(t *testing.T) {
	err := errors.UnsupportedVersion(0x10, 0x19, 0)
	if !strings.Contains(err.Error(), "version 16 below minimum 25") {
		t.Errorf("unexpected detail: %s", err.Error())
	}
}

func TestAsRecoversStructuredError(t *testing.T) {
	var wrapped error = errors.OversizedTileCount(1<<24, 1<<20, 17)

	var e *errors.Error
	if !stderrors.As(wrapped, &e) {
		t.Fatal("expected As to recover *Error")
	}
	if e.Kind != errors.KindOversizedTileCount {
		t.Errorf("Kind = %s, want oversized_tile_count", e.Kind)
	}
}
