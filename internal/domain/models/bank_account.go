package models

import "time"

// Bank account types.
const (
	AccountSavings = "savings"
	AccountCurrent = "current"
)

// BankAccount holds an owner's payee details. At most one account per owner
// is active at rest; superseded accounts are deactivated, not deleted.
type BankAccount struct {
	ID                int64     `json:"id"`
	OwnerID           int64     `json:"owner_id"`
	AccountHolderName string    `json:"account_holder_name"`
	AccountNumber     string    `json:"account_number"`
	IFSCCode          string    `json:"ifsc_code"`
	BankName          string    `json:"bank_name"`
	BranchName        string    `json:"branch_name"`
	AccountType       string    `json:"account_type"`
	IsVerified        bool      `json:"is_verified"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BankAccountInput is the payload for add/update.
type BankAccountInput struct {
	AccountHolderName string `json:"accountHolderName"`
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	BankName          string `json:"bankName"`
	BranchName        string `json:"branchName"`
	AccountType       string `json:"accountType"`
}
