package source

import (
	"context"
	"errors"

	"github.com/youruser/pokecatalog/internal/catalog"
)

// ErrNotFound reports that no document exists for the requested set code.
// Transport failures are returned as ordinary errors so callers can tell
// "missing" from "unreachable".
var ErrNotFound = errors.New("set document not found")

// Source yields raw authored set documents by set code.
type Source interface {
	GetSet(ctx context.Context, code string) (*catalog.CardSet, error)
}
