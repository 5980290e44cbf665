package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: purchase status ('pending' → 'success' | 'failed')
============================================================================= */

type PurchaseStatus string

const (
	PurchasePending PurchaseStatus = "pending"
	PurchaseSuccess PurchaseStatus = "success"
	PurchaseFailed  PurchaseStatus = "failed"
)

func (s PurchaseStatus) String() string { return string(s) }
func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchasePending, PurchaseSuccess, PurchaseFailed:
		return true
	default:
		return false
	}
}

func (s *PurchaseStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PurchaseStatus(v)
	case []byte:
		*s = PurchaseStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for PurchaseStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid PurchaseStatus: %q", *s)
	}
	return nil
}

func (s PurchaseStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid PurchaseStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: purchases
============================================================================= */

// PurchaseModel tracks one payment attempt for a learning path or a
// mentorship booking. OrderID is our reference sent to the gateway;
// Authority is the token the gateway hands back for the redirect.
type PurchaseModel struct {
	PurchaseID             uuid.UUID      `json:"purchase_id" gorm:"column:purchase_id;type:uuid;primaryKey"`
	PurchaseUserID         uuid.UUID      `json:"purchase_user_id" gorm:"column:purchase_user_id;type:uuid;not null;index:idx_purchase_user"`
	PurchaseLearningPathID *uuid.UUID     `json:"purchase_learning_path_id,omitempty" gorm:"column:purchase_learning_path_id;type:uuid"`
	PurchaseOrderID        string         `json:"purchase_order_id" gorm:"column:purchase_order_id;type:varchar(64);not null;uniqueIndex:uq_purchase_order"`
	PurchaseAuthority      *string        `json:"purchase_authority,omitempty" gorm:"column:purchase_authority;type:varchar(255)"`
	PurchaseAmount         int64          `json:"purchase_amount" gorm:"column:purchase_amount;not null"`
	PurchaseStatus         PurchaseStatus `json:"purchase_status" gorm:"column:purchase_status;type:varchar(16);not null;default:'pending';index:idx_purchase_status"`
	PurchasePaidAt         *time.Time     `json:"purchase_paid_at,omitempty" gorm:"column:purchase_paid_at"`
	PurchaseCreatedAt      time.Time      `json:"purchase_created_at" gorm:"column:purchase_created_at;autoCreateTime"`
	PurchaseUpdatedAt      time.Time      `json:"purchase_updated_at" gorm:"column:purchase_updated_at;autoUpdateTime"`
}

func (PurchaseModel) TableName() string { return "purchases" }

func (m *PurchaseModel) BeforeCreate(_ *gorm.DB) error {
	if m.PurchaseID == uuid.Nil {
		m.PurchaseID = uuid.New()
	}
	if m.PurchaseStatus == "" {
		m.PurchaseStatus = PurchasePending
	}
	return nil
}
