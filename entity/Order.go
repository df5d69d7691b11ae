package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Reference string `json:"reference" gorm:"uniqueIndex"`

	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`

	// server-computed, equals the sum of item price*quantity at creation
	TotalAmount int64       `json:"totalAmount"`
	Status      OrderStatus `json:"status" gorm:"index"`

	BranchID *uint   `json:"branchId" gorm:"index"`
	Branch   *Branch `json:"-"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
