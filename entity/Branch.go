package entity

import (
	"gorm.io/gorm"
)

type Branch struct {
	gorm.Model
	Name        string `json:"name"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	WhatsApp    string `json:"whatsapp"`
	Description string `json:"description"`
	Banner      string `json:"banner"`
	DeliveryFee int64  `json:"deliveryFee"`

	Categories []Category `json:"-"`
	FoodItems  []FoodItem `json:"-"`
	Orders     []Order    `json:"-"`
}
