package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionType defines the kind of balance request
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
)

// TransactionStatus defines the lifecycle state of a request.
// PENDING moves to APPROVED or REJECTED exactly once.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusApproved TransactionStatus = "APPROVED"
	TransactionStatusRejected TransactionStatus = "REJECTED"
)

// Transaction is a user-submitted deposit or withdraw request awaiting
// admin review. Balances change only when a request is approved.
type Transaction struct {
	gorm.Model
	Reference string          `gorm:"type:varchar(36);uniqueIndex" json:"reference"`
	UserID    uint            `gorm:"not null;index" json:"userId"`
	UserEmail string          `gorm:"not null;index" json:"userEmail"`
	Type      TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount    float64         `gorm:"not null" json:"amount"`

	// Evidence for admin review only. Deposits carry a base64 receipt
	// image, withdrawals a destination address. Neither is validated
	// server-side.
	WalletAddress string `gorm:"type:varchar(255)" json:"walletAddress"`
	ProofImage    string `gorm:"type:text" json:"proofImage"`

	Status          TransactionStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	DecidedBy       uint              `gorm:"default:0" json:"decidedBy"`
	TransactionDate time.Time         `gorm:"not null" json:"transactionDate"`
	IsDeleted       bool              `gorm:"default:false" json:"isDeleted"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
