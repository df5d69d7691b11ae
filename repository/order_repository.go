package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID           uint               `json:"id"`
	Reference    string             `json:"reference"`
	BranchID     *uint              `json:"branchId"`
	CustomerName string             `json:"customerName"`
	TotalAmount  int64              `json:"totalAmount"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ListOrders is the admin listing, newest first, optionally narrowed to
// one branch and/or one status.
func (r *OrderRepository) ListOrders(branchID *uint, status *entity.OrderStatus, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	base := r.DB.Model(&entity.Order{})
	if branchID != nil && *branchID != 0 {
		base = base.Where("branch_id = ?", *branchID)
	}
	if status != nil && *status != "" {
		base = base.Where("status = ?", *status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := base.
		Select("id, reference, branch_id, customer_name, total_amount, status, created_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

// UpdateStatus overwrites the status unconditionally; the caller has
// already validated the value. Returns rows affected so a missing order
// is distinguishable from success.
func (r *OrderRepository) UpdateStatus(orderID uint, status entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

type OrderItemDetail struct {
	ID           uint   `json:"id"`
	FoodItemID   *uint  `json:"foodItemId"`
	Quantity     int    `json:"quantity"`
	Price        int64  `json:"price"`
	FoodItemName string `json:"foodItemName"`
	FoodItemPic  string `json:"foodItemPicture"`
}

// GetOrderItems joins item display fields the admin detail screen and the
// order summary message need. Left join: the food item may be gone.
func (r *OrderRepository) GetOrderItems(orderID uint) ([]OrderItemDetail, error) {
	var out []OrderItemDetail
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.food_item_id, oi.quantity, oi.price, fi.name AS food_item_name, fi.picture AS food_item_pic").
		Joins("LEFT JOIN food_items fi ON fi.id = oi.food_item_id").
		Where("oi.order_id = ? AND oi.deleted_at IS NULL", orderID).
		Scan(&out).Error
	return out, err
}
