package database

import (
	"fmt"
	"slices"

	"danawa-backend/internal/models"

	"github.com/shopspring/decimal"
)

// PortfolioCatalog is the read-only list of portfolio items.
type PortfolioCatalog struct {
	items []models.PortfolioItem
}

func NewPortfolioCatalog(items []models.PortfolioItem) *PortfolioCatalog {
	return &PortfolioCatalog{items: slices.Clone(items)}
}

// List returns the items whose category equals category exactly, in catalog
// order. An empty category or models.CategoryAll returns everything.
func (c *PortfolioCatalog) List(category string) []models.PortfolioItem {
	out := make([]models.PortfolioItem, 0, len(c.items))
	for _, item := range c.items {
		if category == "" || category == models.CategoryAll || item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (c *PortfolioCatalog) GetByID(id int) (models.PortfolioItem, error) {
	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.PortfolioItem{}, fmt.Errorf("portfolio item %d: %w", id, ErrNotFound)
}

// ServiceEntry is a catalog service before its display price is rendered.
type ServiceEntry struct {
	ID          int
	Title       string
	Description string
	BasePrice   decimal.Decimal
	Category    string
	Features    []string
	Icon        string
}

// ServiceCatalog is the read-only service list.
type ServiceCatalog struct {
	items []models.Service
}

func NewServiceCatalog(entries []ServiceEntry) (*ServiceCatalog, error) {
	items := make([]models.Service, 0, len(entries))
	for _, e := range entries {
		price, err := FormatPrice(e.BasePrice)
		if err != nil {
			return nil, fmt.Errorf("service %d: %w", e.ID, err)
		}
		items = append(items, models.Service{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Price:       price,
			Category:    e.Category,
			Features:    slices.Clone(e.Features),
			Icon:        e.Icon,
		})
	}
	return &ServiceCatalog{items: items}, nil
}

func (c *ServiceCatalog) List() []models.Service {
	out := make([]models.Service, len(c.items))
	for i, s := range c.items {
		s.Features = slices.Clone(s.Features)
		out[i] = s
	}
	return out
}

func (c *ServiceCatalog) GetByID(id int) (models.Service, error) {
	for _, s := range c.items {
		if s.ID == id {
			s.Features = slices.Clone(s.Features)
			return s, nil
		}
	}
	return models.Service{}, fmt.Errorf("service %d: %w", id, ErrNotFound)
}
