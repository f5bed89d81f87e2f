package order

import (
	"context"

	"farmgate/internal/domain"
	orderrepo "farmgate/internal/repository/order"
)

// Service exposes the read-only projection that shows a farmer which
// carts reference their listings.
type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ListForFarmer returns cart lines referencing the farmer's listings,
// grouped by cart, across carts of any status.
func (s *Service) ListForFarmer(ctx context.Context, farmerID string) ([]domain.FarmerOrder, error) {
	lines, err := s.repo.ListLinesForFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	byCart := make(map[string]*domain.FarmerOrder)
	var ordered []string
	for _, line := range lines {
		group, ok := byCart[line.CartID]
		if !ok {
			group = &domain.FarmerOrder{
				CartID:     line.CartID,
				BuyerID:    line.BuyerID,
				CartStatus: line.CartStatus,
			}
			byCart[line.CartID] = group
			ordered = append(ordered, line.CartID)
		}
		group.Lines = append(group.Lines, line.CartLine)
	}

	result := make([]domain.FarmerOrder, 0, len(ordered))
	for _, cartID := range ordered {
		result = append(result, *byCart[cartID])
	}
	return result, nil
}
