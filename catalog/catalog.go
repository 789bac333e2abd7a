package catalog

import (
	"context"
	"log/slog"
)

//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

type CatalogRepository interface {
	GetServices(ctx context.Context, limit int) ([]Service, error)
	GetServiceByID(ctx context.Context, id string) (Service, error)
	GetFavoriteIDs(ctx context.Context, guestID string) ([]string, error)
	GetFavoriteServices(ctx context.Context, guestID string) ([]Service, error)
	InsertFavorite(ctx context.Context, guestID, serviceID string) error
	DeleteFavorite(ctx context.Context, guestID, serviceID string) error
}

// Catalog is the read side of the service catalog plus favorites. Read
// failures degrade to empty results. Writes always report their error.
type Catalog struct {
	repo   CatalogRepository
	logger *slog.Logger
}

func NewCatalog(repo CatalogRepository) *Catalog {
	return &Catalog{repo: repo, logger: slog.Default().With("component", "catalog")}
}

func (c *Catalog) FetchServices(ctx context.Context, limit int) []Service {
	services, err := c.repo.GetServices(ctx, limit)
	if err != nil {
		c.logger.Warn("failed to fetch services", "limit", limit, "err", err)
		return []Service{}
	}
	return services
}

func (c *Catalog) FetchService(ctx context.Context, id string) (Service, error) {
	return c.repo.GetServiceByID(ctx, id)
}

func (c *Catalog) FetchFavoriteIDs(ctx context.Context, guestID string) FavoriteSet {
	ids, err := c.repo.GetFavoriteIDs(ctx, guestID)
	if err != nil {
		c.logger.Warn("failed to fetch favorite ids", "guestId", guestID, "err", err)
		return FavoriteSet{}
	}
	return NewFavoriteSet(ids...)
}

func (c *Catalog) FetchFavoriteServices(ctx context.Context, guestID string) []Service {
	services, err := c.repo.GetFavoriteServices(ctx, guestID)
	if err != nil {
		c.logger.Warn("failed to fetch favorite services", "guestId", guestID, "err", err)
		return []Service{}
	}
	return services
}

func (c *Catalog) AddFavorite(ctx context.Context, guestID, serviceID string) error {
	return c.repo.InsertFavorite(ctx, guestID, serviceID)
}

func (c *Catalog) RemoveFavorite(ctx context.Context, guestID, serviceID string) error {
	return c.repo.DeleteFavorite(ctx, guestID, serviceID)
}

// ToggleFavorite flips membership of serviceID and returns the new state.
// On error the returned state is the one before the call.
func (c *Catalog) ToggleFavorite(ctx context.Context, guestID, serviceID string) (bool, error) {
	ids, err := c.repo.GetFavoriteIDs(ctx, guestID)
	if err != nil {
		return false, err
	}

	if NewFavoriteSet(ids...).Has(serviceID) {
		if err := c.repo.DeleteFavorite(ctx, guestID, serviceID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := c.repo.InsertFavorite(ctx, guestID, serviceID); err != nil {
		return false, err
	}

	return true, nil
}
