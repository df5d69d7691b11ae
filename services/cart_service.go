package services

import (
	"context"
	"strings"

	"backend/cart"
	"backend/pkg/apperr"

	"github.com/google/uuid"
)

// CartService wraps the cart document operations in a load-mutate-save
// cycle against the injected store. All mutations are whole-document
// writes; last write wins, matching the original client-side storage.
type CartService struct {
	Store cart.Store
}

func NewCartService(store cart.Store) *CartService {
	return &CartService{Store: store}
}

// MintToken issues the anonymous client identity the cart is keyed by.
func (s *CartService) MintToken() string {
	return uuid.NewString()
}

func (s *CartService) Get(ctx context.Context, token string) (*cart.Cart, error) {
	return s.Store.Load(ctx, token)
}

type BranchCartOut struct {
	Items    []cart.Line `json:"items"`
	Subtotal int64       `json:"subtotal"`
}

// GetForBranch filters the cart down to one branch's lines; checkout for
// branch A never sees branch B's lines.
func (s *CartService) GetForBranch(ctx context.Context, token, branchSlug string) (*BranchCartOut, error) {
	c, err := s.Store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	return &BranchCartOut{
		Items:    c.ItemsForBranch(branchSlug),
		Subtotal: c.SubtotalForBranch(branchSlug),
	}, nil
}

func (s *CartService) Add(ctx context.Context, token string, line cart.Line) (*cart.Cart, error) {
	if strings.TrimSpace(line.ProductSlug) == "" ||
		strings.TrimSpace(line.BranchSlug) == "" ||
		strings.TrimSpace(line.Name) == "" {
		return nil, apperr.Validationf("product slug, branch slug and name are required")
	}
	if line.Price < 0 {
		return nil, apperr.Validationf("price must not be negative")
	}
	c, err := s.Store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	c.AddItem(line)
	if err := s.Store.Save(ctx, token, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, token, id string, qty int) (*cart.Cart, error) {
	c, err := s.Store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	c.UpdateItemQuantity(id, qty)
	if err := s.Store.Save(ctx, token, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CartService) Remove(ctx context.Context, token, id string) (*cart.Cart, error) {
	c, err := s.Store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	c.RemoveItem(id)
	if err := s.Store.Save(ctx, token, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CartService) Clear(ctx context.Context, token string) error {
	c, err := s.Store.Load(ctx, token)
	if err != nil {
		return err
	}
	c.Clear()
	return s.Store.Save(ctx, token, c)
}
