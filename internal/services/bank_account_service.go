package services

import (
	"strconv"

	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
	"wanderstay/internal/repositories"
	"wanderstay/internal/utils"
)

// BankAccountService manages an owner's payee accounts with the invariant
// that at most one is active at rest. Adding or activating an account also
// retries any payouts that were waiting for one.
type BankAccountService struct {
	Repo      repositories.BankAccountRepository
	PayoutSvc PayoutService
	RequestID string
}

func validateBankAccountInput(in models.BankAccountInput) error {
	switch {
	case utils.TrimOrEmpty(in.AccountHolderName) == "":
		return domain.ValidationError{Field: "accountHolderName", Msg: "required"}
	case utils.TrimOrEmpty(in.AccountNumber) == "":
		return domain.ValidationError{Field: "accountNumber", Msg: "required"}
	case utils.TrimOrEmpty(in.IFSCCode) == "":
		return domain.ValidationError{Field: "ifscCode", Msg: "required"}
	case utils.TrimOrEmpty(in.BankName) == "":
		return domain.ValidationError{Field: "bankName", Msg: "required"}
	}
	if in.AccountType != "" && in.AccountType != models.AccountSavings && in.AccountType != models.AccountCurrent {
		return domain.ValidationError{Field: "accountType", Msg: "must be savings or current"}
	}
	return nil
}

// Add swaps in a new active account: the previous active one is deactivated
// and kept for history, never deleted.
func (s BankAccountService) Add(ownerID int64, in models.BankAccountInput) (models.BankAccount, error) {
	if err := validateBankAccountInput(in); err != nil {
		return models.BankAccount{}, err
	}

	if err := s.Repo.DeactivateActive(ownerID); err != nil {
		return models.BankAccount{}, err
	}

	accountType := in.AccountType
	if accountType == "" {
		accountType = models.AccountSavings
	}
	account := models.BankAccount{
		OwnerID:           ownerID,
		AccountHolderName: utils.TrimOrEmpty(in.AccountHolderName),
		AccountNumber:     utils.TrimOrEmpty(in.AccountNumber),
		IFSCCode:          utils.TrimOrEmpty(in.IFSCCode),
		BankName:          utils.TrimOrEmpty(in.BankName),
		BranchName:        utils.TrimOrEmpty(in.BranchName),
		AccountType:       accountType,
		IsActive:          true,
	}
	id, err := s.Repo.Create(account)
	if err != nil {
		return models.BankAccount{}, err
	}
	account.ID = id

	utils.LogEvent(s.RequestID, "bank_account", "add",
		"owner_id="+strconv.FormatInt(ownerID, 10)+" account_id="+strconv.FormatInt(id, 10))
	s.retryOwedPayouts(ownerID)
	return account, nil
}

// Activate makes the chosen account the owner's single active one via one
// conditional update statement.
func (s BankAccountService) Activate(ownerID, accountID int64) error {
	account, err := s.Repo.GetByID(accountID)
	if err != nil {
		return err
	}
	if account.OwnerID != ownerID {
		return domain.ForbiddenError{Resource: "bank account", Msg: "you can only activate your own bank accounts"}
	}

	if err := s.Repo.ActivateExclusive(ownerID, accountID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "bank_account", "activate", "account_id="+strconv.FormatInt(accountID, 10))
	s.retryOwedPayouts(ownerID)
	return nil
}

// Update rewrites payee details; the account drops back to unverified since
// verification covered the previous details.
func (s BankAccountService) Update(ownerID, accountID int64, in models.BankAccountInput) error {
	if err := validateBankAccountInput(in); err != nil {
		return err
	}
	account, err := s.Repo.GetByID(accountID)
	if err != nil {
		return err
	}
	if account.OwnerID != ownerID {
		return domain.ForbiddenError{Resource: "bank account", Msg: "you can only edit your own bank accounts"}
	}
	return s.Repo.Update(accountID, in)
}

// Delete removes the account permanently.
func (s BankAccountService) Delete(ownerID, accountID int64) error {
	account, err := s.Repo.GetByID(accountID)
	if err != nil {
		return err
	}
	if account.OwnerID != ownerID {
		return domain.ForbiddenError{Resource: "bank account", Msg: "you can only delete your own bank accounts"}
	}
	return s.Repo.Delete(accountID)
}

// List returns the owner's accounts.
func (s BankAccountService) List(ownerID int64) ([]models.BankAccount, error) {
	return s.Repo.ListByOwner(ownerID)
}

// Get returns one account after an ownership check.
func (s BankAccountService) Get(ownerID, accountID int64) (models.BankAccount, error) {
	account, err := s.Repo.GetByID(accountID)
	if err != nil {
		return models.BankAccount{}, err
	}
	if account.OwnerID != ownerID {
		return models.BankAccount{}, domain.ForbiddenError{Resource: "bank account", Msg: "you can only view your own bank accounts"}
	}
	return account, nil
}

func (s BankAccountService) retryOwedPayouts(ownerID int64) {
	svc := s.PayoutSvc
	svc.RequestID = s.RequestID
	if n, err := svc.RetryOutbox(ownerID); err != nil {
		utils.LogEvent(s.RequestID, "bank_account", "outbox_retry", "failed: "+err.Error())
	} else if n > 0 {
		utils.LogEvent(s.RequestID, "bank_account", "outbox_retry",
			"derived "+strconv.Itoa(n)+" owed payouts for owner_id="+strconv.FormatInt(ownerID, 10))
	}
}
