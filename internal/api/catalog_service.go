package api

import (
	"context"

	"discbin/internal/money"
	"discbin/internal/store"
)

// Catalog abstracts the catalog persistence interactions the API needs.
type Catalog interface {
	ListArtists(ctx context.Context) ([]store.Artist, error)
	CreateArtist(ctx context.Context, name string) (store.Artist, error)
	DeleteArtist(ctx context.Context, id int64) error
	ListCDs(ctx context.Context) ([]store.CD, error)
	CreateCD(ctx context.Context, title string, artistID int64, price money.Cents, stock int) (store.CD, error)
	DeleteCD(ctx context.Context, id int64) error
}

// CatalogService exposes catalog operations returning API DTOs.
type CatalogService struct {
	store Catalog
}

// NewCatalogService constructs a CatalogService around the provided catalog.
func NewCatalogService(store Catalog) *CatalogService {
	if store == nil {
		return nil
	}
	return &CatalogService{store: store}
}

// ListArtists returns all artists in listing order.
func (s *CatalogService) ListArtists(ctx context.Context) ([]Artist, error) {
	artists, err := s.store.ListArtists(ctx)
	if err != nil {
		return nil, err
	}
	return FromArtists(artists), nil
}

// CreateArtist registers a new artist.
func (s *CatalogService) CreateArtist(ctx context.Context, req CreateArtistRequest) (Artist, error) {
	artist, err := s.store.CreateArtist(ctx, req.Name)
	if err != nil {
		return Artist{}, err
	}
	return FromArtist(artist), nil
}

// DeleteArtist removes an artist. The store refuses when CDs still reference
// it; callers inspect the error for the dependent count.
func (s *CatalogService) DeleteArtist(ctx context.Context, id int64) error {
	return s.store.DeleteArtist(ctx, id)
}

// ListCDs returns all CDs in listing order.
func (s *CatalogService) ListCDs(ctx context.Context) ([]CD, error) {
	cds, err := s.store.ListCDs(ctx)
	if err != nil {
		return nil, err
	}
	return FromCDs(cds), nil
}

// CreateCD parses the wire price and inserts the title. The store verifies
// the referenced artist exists; a dangling id surfaces as not-found.
func (s *CatalogService) CreateCD(ctx context.Context, req CreateCDRequest) (CD, error) {
	price, err := money.ParseAmount(req.Price)
	if err != nil {
		return CD{}, err
	}
	cd, err := s.store.CreateCD(ctx, req.Title, req.ArtistID, price, req.Stock)
	if err != nil {
		return CD{}, err
	}
	return FromCD(cd), nil
}

// DeleteCD removes a title.
func (s *CatalogService) DeleteCD(ctx context.Context, id int64) error {
	return s.store.DeleteCD(ctx, id)
}
