package database

import (
	"errors"
	"log/slog"
)

// ErrNotFound is returned by lookups when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Store bundles every collection the API reads from.
type Store struct {
	Portfolio *PortfolioCatalog
	Services  *ServiceCatalog
	Reviews   ReviewStore
}

// InitDB seeds the in-memory collections. It is the hook point where a real
// persistence backend would open its connection.
func InitDB(logger *slog.Logger) (*Store, error) {
	services, err := NewServiceCatalog(seedServices())
	if err != nil {
		return nil, err
	}

	store := &Store{
		Portfolio: NewPortfolioCatalog(seedPortfolio()),
		Services:  services,
		Reviews:   NewMemoryReviewStore(seedReviews()),
	}

	logger.Info("Database initialized",
		slog.Int("portfolio_items", len(store.Portfolio.items)),
		slog.Int("services", len(store.Services.items)),
		slog.Int("reviews", store.Reviews.Count()),
	)
	return store, nil
}
