package models

import "gorm.io/gorm"

// CartItem is unique per (user, item type, item); adding the same item again
// bumps the quantity instead of creating a second row.
type CartItem struct {
	gorm.Model
	UserID   uint   `json:"userId" gorm:"uniqueIndex:idx_cart_user_item"`
	ItemType string `json:"itemType" gorm:"uniqueIndex:idx_cart_user_item"`
	ItemID   uint   `json:"itemId" gorm:"uniqueIndex:idx_cart_user_item"`
	Quantity int    `json:"quantity"`
}
