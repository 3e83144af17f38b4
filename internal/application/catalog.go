package application

import (
	"fmt"
	"strings"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"golang.org/x/text/cases"
)

type CatalogService struct {
	catalog ports.DestinationCatalog
}

func NewCatalogService(catalog ports.DestinationCatalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) All() []domain.Destination {
	return s.catalog.List()
}

// Search matches query case-insensitively against name, description and ID.
// Only an empty query returns the whole catalog; whitespace is matched like
// any other text. Catalog order is preserved.
func (s *CatalogService) Search(query string) []domain.Destination {
	destinations := s.catalog.List()
	if query == "" {
		return destinations
	}

	fold := cases.Fold()
	needle := fold.String(query)

	matches := make([]domain.Destination, 0, len(destinations))
	for _, destination := range destinations {
		for _, field := range []string{destination.Name, destination.Description, destination.ID} {
			if strings.Contains(fold.String(field), needle) {
				matches = append(matches, destination)
				break
			}
		}
	}

	return matches
}

func (s *CatalogService) Get(id string) (domain.Destination, error) {
	for _, destination := range s.catalog.List() {
		if strings.EqualFold(destination.ID, strings.TrimSpace(id)) {
			return destination, nil
		}
	}

	return domain.Destination{}, fmt.Errorf("get destination %q: %w", id, domain.ErrDestinationNotFound)
}
