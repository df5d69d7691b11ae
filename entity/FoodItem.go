package entity

import (
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	Name        string `json:"name"`
	Slug        string `json:"slug" gorm:"index"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
	Price       int64  `json:"price"`

	BranchID *uint   `json:"branchId" gorm:"index"`
	Branch   *Branch `json:"-"`

	CategoryID *uint     `json:"categoryId" gorm:"index"`
	Category   *Category `json:"-"` // preload only for item detail

	OrderItems []OrderItem `json:"-"`
}
