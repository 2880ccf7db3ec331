package service

import (
	"context"
	"errors"
	"time"

	"github.com/tokoku/go-storefront-api/internal/dto"
	"github.com/tokoku/go-storefront-api/internal/model"
	"github.com/tokoku/go-storefront-api/internal/store"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

type OrderService struct {
	store *store.Store
}

func NewOrderService(st *store.Store) *OrderService {
	return &OrderService{store: st}
}

// List returns all orders, newest-first.
func (s *OrderService) List(ctx context.Context) []model.Order {
	return s.store.Load().Orders
}

// Create builds a Pending order from the request and, in the same save,
// adjusts every referenced product: stock goes down by the item quantity
// (floored at zero — a quantity above the available stock is not rejected)
// and the sold counter goes up by the same amount. The order total is taken
// from the client as-is, never recomputed from the items.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error) {
	var created model.Order
	err := s.store.Update(func(doc *model.Document) error {
		order := model.Order{
			ID:            model.NewOrderID(),
			CustomerName:  req.CustomerName,
			Address:       orDash(req.Address),
			Courier:       orDash(req.Courier),
			PaymentMethod: orDash(req.PaymentMethod),
			Date:          time.Now().Format("2006-01-02"),
			Total:         req.Total,
			Status:        model.StatusPending,
			Items:         make([]model.OrderItem, 0, len(req.Items)),
		}
		for _, it := range req.Items {
			order.Items = append(order.Items, model.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Price:     it.Price,
				Quantity:  it.Quantity,
			})
			for i := range doc.Products {
				p := &doc.Products[i]
				if p.ID != it.ProductID {
					continue
				}
				p.Stock -= it.Quantity
				if p.Stock < 0 {
					p.Stock = 0
				}
				p.Sold += it.Quantity
				break
			}
		}
		doc.Orders = append([]model.Order{order}, doc.Orders...)
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateStatus overwrites the status of the matched order. The status must
// be one of the known five; beyond that there is no transition rule, so a
// finished order can be reopened and any order can be cancelled.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	var updated model.Order
	err := s.store.Update(func(doc *model.Document) error {
		for i := range doc.Orders {
			o := &doc.Orders[i]
			if o.ID != id {
				continue
			}
			o.Status = status
			updated = *o
			return nil
		}
		return ErrOrderNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the matched order. Idempotent. Stock decremented at
// creation time is not restored, the same as cancellation.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.store.Update(func(doc *model.Document) error {
		kept := doc.Orders[:0]
		for _, o := range doc.Orders {
			if o.ID != id {
				kept = append(kept, o)
			}
		}
		doc.Orders = kept
		return nil
	})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
