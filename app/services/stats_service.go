package services

import (
	"context"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
)

// StatsService builds the admin dashboard reports.
type StatsService struct {
	users    *repositories.UserRepository
	menu     *repositories.MenuRepository
	payments *repositories.PaymentRepository
}

func NewStatsService(users *repositories.UserRepository, menu *repositories.MenuRepository, payments *repositories.PaymentRepository) *StatsService {
	return &StatsService{users: users, menu: menu, payments: payments}
}

// Summary returns the top-line counts plus total revenue. Counts come from
// collection metadata, so they may lag slightly behind recent writes.
func (s *StatsService) Summary(ctx context.Context) (*models.SummaryStats, error) {
	users, err := s.users.EstimatedCount(ctx)
	if err != nil {
		return nil, err
	}
	menuItems, err := s.menu.EstimatedCount(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.payments.EstimatedCount(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.payments.Revenue(ctx)
	if err != nil {
		return nil, err
	}

	return &models.SummaryStats{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}

// OrderStats returns order count and revenue grouped by menu category.
func (s *StatsService) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	return s.payments.CategoryStats(ctx)
}
