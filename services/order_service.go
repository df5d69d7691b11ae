package services

import (
	"encoding/json"
	"errors"
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	BranchRepo  *repository.BranchRepository
	CatalogRepo *repository.CatalogRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	branchRepo *repository.BranchRepository,
	catalogRepo *repository.CatalogRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, BranchRepo: branchRepo, CatalogRepo: catalogRepo}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	FoodItemID uint `json:"foodItemId"`
	Quantity   int  `json:"quantity"`
}

type CreateOrderIn struct {
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerAddress string        `json:"customerAddress"`
	Items           []OrderLineIn `json:"-"`
}

type CreateOrderRes struct {
	ID          uint   `json:"id"`
	Reference   string `json:"reference"`
	TotalAmount int64  `json:"totalAmount"`
}

// ParseItems decodes the serialized line items. Only a payload that fails
// to parse is treated as malformed; a missing food item later surfaces as
// not-found, not as this error.
func ParseItems(raw []byte) ([]OrderLineIn, error) {
	if len(raw) == 0 {
		return nil, apperr.Validationf("items is required")
	}
	var items []OrderLineIn
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperr.Malformedf("invalid items data")
	}
	return items, nil
}

// ----- Create -----

// Create assembles an order: re-reads every line's current price from the
// catalog (client prices are never trusted), then persists the order and
// all of its lines in one transaction, so a failure partway through never
// leaves an orphaned order row.
func (s *OrderService) Create(branchID uint, in *CreateOrderIn) (*CreateOrderRes, error) {
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" ||
		strings.TrimSpace(in.CustomerAddress) == "" {
		return nil, apperr.Validationf("all fields are required")
	}
	if len(in.Items) == 0 {
		return nil, apperr.Validationf("items is required")
	}

	ok, err := s.BranchRepo.Exists(branchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("branch not found")
	}

	var totalAmount int64
	rows := make([]struct {
		foodItemID uint
		qty        int
		unitPrice  int64
	}, 0, len(in.Items))

	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, apperr.Validationf("quantity must be at least 1")
		}
		fi, err := s.CatalogRepo.GetFoodItemBasics(it.FoodItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFoundf("food item %d not found", it.FoodItemID)
			}
			return nil, err
		}
		if fi.BranchID == nil || *fi.BranchID != branchID {
			return nil, apperr.Validationf("food item not in this branch")
		}
		totalAmount += fi.Price * int64(it.Quantity)
		rows = append(rows, struct {
			foodItemID uint
			qty        int
			unitPrice  int64
		}{fi.ID, it.Quantity, fi.Price})
	}

	var out CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Reference:       newOrderReference(),
			CustomerName:    in.CustomerName,
			CustomerPhone:   in.CustomerPhone,
			CustomerAddress: in.CustomerAddress,
			TotalAmount:     totalAmount,
			Status:          entity.OrderPending,
			BranchID:        &branchID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, r := range rows {
			itemID := r.foodItemID
			oi := entity.OrderItem{
				OrderID:    order.ID,
				FoodItemID: &itemID,
				BranchID:   &branchID,
				Quantity:   r.qty,
				Price:      r.unitPrice,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = CreateOrderRes{ID: order.ID, Reference: order.Reference, TotalAmount: order.TotalAmount}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func newOrderReference() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// ErrInvalidOrderID covers unparseable order id path params.
var ErrInvalidOrderID = apperr.Validationf("invalid order id")

// BranchForOrder resolves the branch an order was placed against. The
// branch reference is nullable, so a detached order is a not-found.
func (s *OrderService) BranchForOrder(o *entity.Order) (*entity.Branch, error) {
	if o.BranchID == nil {
		return nil, apperr.NotFoundf("order %d has no branch", o.ID)
	}
	return s.BranchRepo.GetByID(*o.BranchID)
}

// ----- Detail & listing -----

type OrderDetail struct {
	Order entity.Order                 `json:"order"`
	Items []repository.OrderItemDetail `json:"items"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

type OrderListOut struct {
	Items []repository.OrderSummary `json:"items"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}

func (s *OrderService) List(branchID *uint, status *entity.OrderStatus, page, limit int) (*OrderListOut, error) {
	items, total, err := s.Repo.ListOrders(branchID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// ----- Status lifecycle -----

// UpdateStatus validates membership only. Any known status may overwrite
// any other; there is no transition table.
func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	st := entity.OrderStatus(status)
	if !st.Valid() {
		return apperr.Validationf("invalid status %q", status)
	}
	affected, err := s.Repo.UpdateStatus(orderID, st)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFoundf("order %d not found", orderID)
	}
	return nil
}
