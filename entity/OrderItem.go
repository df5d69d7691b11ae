package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"` // unit price snapshot at order time

	OrderID uint  `json:"orderId" gorm:"index"`
	Order   Order `json:"-"`

	FoodItemID *uint     `json:"foodItemId" gorm:"index"`
	FoodItem   *FoodItem `json:"-"` // preload only when the item name is needed

	// denormalized so branch order history survives item deletion
	BranchID *uint `json:"branchId" gorm:"index"`
}
