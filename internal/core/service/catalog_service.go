package service

import (
	"errors"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
)

var (
	ErrStallNotFound = errors.New("stall not found")
	ErrItemNotFound  = errors.New("menu item not found")
)

// CatalogService serves the static stall/menu dataset. The catalog is
// read-only; stall management is out of scope.
type CatalogService struct {
	stalls []domain.Stall
	menus  map[string][]domain.MenuItem
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		stalls: stalls,
		menus:  menusByStall,
	}
}

func (s *CatalogService) Stalls() []domain.Stall {
	out := make([]domain.Stall, len(s.stalls))
	copy(out, s.stalls)
	return out
}

func (s *CatalogService) Stall(stallID string) (domain.Stall, error) {
	for _, stall := range s.stalls {
		if stall.ID == stallID {
			return stall, nil
		}
	}
	return domain.Stall{}, ErrStallNotFound
}

func (s *CatalogService) Menu(stallID string) ([]domain.MenuItem, error) {
	if _, err := s.Stall(stallID); err != nil {
		return nil, err
	}
	items := s.menus[stallID]
	out := make([]domain.MenuItem, len(items))
	copy(out, items)
	return out, nil
}

// Item resolves a menu item and its stall, so cart lines carry
// server-known names and prices rather than client-supplied ones.
func (s *CatalogService) Item(stallID, itemID string) (domain.MenuItem, domain.Stall, error) {
	stall, err := s.Stall(stallID)
	if err != nil {
		return domain.MenuItem{}, domain.Stall{}, err
	}
	for _, item := range s.menus[stallID] {
		if item.ID == itemID {
			return item, stall, nil
		}
	}
	return domain.MenuItem{}, domain.Stall{}, ErrItemNotFound
}
