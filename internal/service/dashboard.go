package service

import (
	"context"
	"time"

	"github.com/tokoku/go-storefront-api/internal/dto"
	"github.com/tokoku/go-storefront-api/internal/model"
	"github.com/tokoku/go-storefront-api/internal/store"
)

// lowStockThreshold marks products the admin dashboard calls out for
// restocking.
const lowStockThreshold = 10

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

type DashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

// Stats aggregates the whole document in one pass per collection. Revenue
// excludes cancelled orders and truncates each total toward zero; asset is
// price times stock summed over the catalog.
func (s *DashboardService) Stats(ctx context.Context) dto.StatsResponse {
	doc := s.store.Load()

	var revenue int64
	for _, o := range doc.Orders {
		if o.Status != model.StatusBatal {
			revenue += int64(o.Total)
		}
	}

	var asset int64
	low := 0
	for _, p := range doc.Products {
		asset += p.Price * int64(p.Stock)
		if p.Stock < lowStockThreshold {
			low++
		}
	}

	return dto.StatsResponse{
		TotalProducts: len(doc.Products),
		TotalRevenue:  revenue,
		TotalAsset:    asset,
		LowStock:      low,
	}
}

// Chart returns revenue per calendar month for the trailing six months,
// current month inclusive. Cancelled orders are excluded, like Stats.
func (s *DashboardService) Chart(ctx context.Context) []dto.ChartPoint {
	return s.chartAt(time.Now())
}

func (s *DashboardService) chartAt(now time.Time) []dto.ChartPoint {
	doc := s.store.Load()

	// Anchor on the first of the month so subtracting months never
	// normalizes past a short month.
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]dto.ChartPoint, 6)
	index := make(map[string]int, 6)
	for i := 0; i < 6; i++ {
		m := first.AddDate(0, i-5, 0)
		points[i] = dto.ChartPoint{Name: monthNames[m.Month()-1]}
		index[m.Format("2006-01")] = i
	}

	for _, o := range doc.Orders {
		if o.Status == model.StatusBatal {
			continue
		}
		d, err := time.Parse("2006-01-02", o.Date)
		if err != nil {
			continue
		}
		if i, ok := index[d.Format("2006-01")]; ok {
			points[i].Total += int64(o.Total)
		}
	}
	return points
}
