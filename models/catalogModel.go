package models

import (
	"math"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const (
	ItemTypeService = "service"
	ItemTypeMenu    = "menu"
)

type Service struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Photo       string         `json:"photo"`
	Price       float64        `json:"price" binding:"required"`
	Discount    float64        `json:"discount"`
	FinalPrice  float64        `json:"finalPrice"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Tags        datatypes.JSON `json:"tags"`
}

type MenuItem struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Photo       string         `json:"photo"`
	Price       float64        `json:"price" binding:"required"`
	Discount    float64        `json:"discount"`
	FinalPrice  float64        `json:"finalPrice"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Tags        datatypes.JSON `json:"tags"`
}

func (s *Service) BeforeSave(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = StatusActive
	}
	s.FinalPrice = ApplyDiscount(s.Price, s.Discount)
	return nil
}

func (m *MenuItem) BeforeSave(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = StatusActive
	}
	m.FinalPrice = ApplyDiscount(m.Price, m.Discount)
	return nil
}

// ApplyDiscount takes a discount percentage off a price, rounded to cents.
func ApplyDiscount(price, discount float64) float64 {
	return math.Round(price*(100-discount)) / 100
}

func ValidItemType(itemType string) bool {
	return itemType == ItemTypeService || itemType == ItemTypeMenu
}

func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}
