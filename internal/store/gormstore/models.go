package gormstore

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	indexActiveGamertag = "idx_identities_active_gamertag"
	indexActiveUserID   = "idx_identities_active_user"
	indexReversalOf     = "idx_transactions_reversal_of"
)

// Identity mirrors the identities table. Gamertag uniqueness holds among
// active rows only, so a deactivated handle can be claimed again.
type Identity struct {
	ID          string    `gorm:"primaryKey"`
	UserID      string    `gorm:"not null;index:idx_identities_active_user,unique,where:active"`
	Gamertag    string    `gorm:"not null"`
	GamertagKey string    `gorm:"not null;index:idx_identities_active_gamertag,unique,where:active"`
	DisplayName string    `gorm:"not null"`
	AvatarURL   string    `gorm:"not null;default:''"`
	Active      bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Identity) TableName() string { return "identities" }

// Account mirrors the accounts table.
type Account struct {
	IdentityID string    `gorm:"primaryKey"`
	Balance    int64     `gorm:"not null;default:0;check:chk_accounts_balance_non_negative,balance >= 0"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Account) TableName() string { return "accounts" }

// Transaction mirrors the transactions table. reversal_of is unique so a
// transaction can be compensated at most once.
type Transaction struct {
	ID         string         `gorm:"primaryKey"`
	Kind       string         `gorm:"not null"`
	SenderID   string         `gorm:"not null;index:idx_transactions_sender_created,priority:1"`
	ReceiverID string         `gorm:"not null;index:idx_transactions_receiver_created,priority:1"`
	Amount     int64          `gorm:"not null;check:chk_transactions_amount_positive,amount > 0"`
	Status     string         `gorm:"not null"`
	Message    string         `gorm:"not null;default:''"`
	Metadata   datatypes.JSON `gorm:"type:jsonb;not null"`
	RequestID  *string        `gorm:"index"`
	ReversalOf *string        `gorm:"index:idx_transactions_reversal_of,unique"`
	CreatedAt  time.Time      `gorm:"not null;index:idx_transactions_sender_created,priority:2;index:idx_transactions_receiver_created,priority:2"`
}

func (Transaction) TableName() string { return "transactions" }

// Request mirrors the requests table.
type Request struct {
	ID            string     `gorm:"primaryKey"`
	RequesterID   string     `gorm:"not null;index"`
	TargetID      string     `gorm:"not null;index"`
	Amount        int64      `gorm:"not null;check:chk_requests_amount_positive,amount > 0"`
	Message       string     `gorm:"not null;default:''"`
	Status        string     `gorm:"not null;index:idx_requests_status_created,priority:1"`
	TransactionID *string    `gorm:""`
	CreatedAt     time.Time  `gorm:"not null;index:idx_requests_status_created,priority:2"`
	ResolvedAt    *time.Time `gorm:""`
}

func (Request) TableName() string { return "requests" }

// Contact mirrors the contacts table.
type Contact struct {
	OwnerID            string    `gorm:"primaryKey"`
	ContactID          string    `gorm:"primaryKey"`
	ContactGamertag    string    `gorm:"not null"`
	ContactDisplayName string    `gorm:"not null"`
	IsFavorite         bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Contact) TableName() string { return "contacts" }

// AutoMigrate creates or updates every ledger table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Identity{}, &Account{}, &Transaction{}, &Request{}, &Contact{})
}
