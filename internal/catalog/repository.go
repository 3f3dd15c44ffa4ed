package catalog

import (
	"context"
	"errors"

	"github.com/leotech/cardapio-service/internal/model"
)

// ErrFetchFailed marks any transport or decode failure while loading
// the spreadsheet snapshot. The handler maps it to the "could not load
// catalog" state; nothing is retried.
var ErrFetchFailed = errors.New("could not load catalog")

type Repository interface {
	// FetchCatalog pulls a fresh snapshot from the spreadsheet
	// endpoint. The response is never cached; a missing table yields
	// an empty collection, never an error.
	FetchCatalog(ctx context.Context) (*model.Catalog, error)
}
