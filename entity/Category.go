package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `json:"name"`
	Slug string `json:"slug" gorm:"index"`

	BranchID *uint   `json:"branchId" gorm:"index"`
	Branch   *Branch `json:"-"`

	FoodItems []FoodItem `json:"-"`
}
