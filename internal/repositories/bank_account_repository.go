package repositories

import (
	"database/sql"
	"errors"

	"wanderstay/internal/domain"
	"wanderstay/internal/domain/models"
)

type BankAccountRepository struct {
	DB *sql.DB
}

func (r BankAccountRepository) db() *sql.DB { return sharedDB(r.DB) }

const bankAccountColumns = `id,
       COALESCE(owner_id,0),
       COALESCE(account_holder_name,''),
       COALESCE(account_number,''),
       COALESCE(ifsc_code,''),
       COALESCE(bank_name,''),
       COALESCE(branch_name,''),
       COALESCE(account_type,'savings'),
       COALESCE(is_verified,0),
       COALESCE(is_active,0),
       created_at,
       updated_at`

func scanBankAccount(row rowScanner) (models.BankAccount, error) {
	var a models.BankAccount
	err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.AccountHolderName,
		&a.AccountNumber,
		&a.IFSCCode,
		&a.BankName,
		&a.BranchName,
		&a.AccountType,
		&a.IsVerified,
		&a.IsActive,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Create inserts a new account, active by default.
func (r BankAccountRepository) Create(a models.BankAccount) (int64, error) {
	accountType := a.AccountType
	if accountType == "" {
		accountType = models.AccountSavings
	}
	res, err := r.db().Exec(`
		INSERT INTO bank_accounts
			(owner_id, account_holder_name, account_number, ifsc_code, bank_name,
			 branch_name, account_type, is_verified, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.OwnerID, a.AccountHolderName, a.AccountNumber, a.IFSCCode, a.BankName,
		a.BranchName, accountType, a.IsVerified, a.IsActive,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID fetches one account.
func (r BankAccountRepository) GetByID(id int64) (models.BankAccount, error) {
	row := r.db().QueryRow(`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE id=? LIMIT 1`, id)
	a, err := scanBankAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BankAccount{}, domain.NotFoundError{Resource: "bank account"}
	}
	return a, err
}

// ListByOwner returns all of the owner's accounts, newest first.
func (r BankAccountRepository) ListByOwner(ownerID int64) ([]models.BankAccount, error) {
	rows, err := r.db().Query(`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE owner_id=? ORDER BY id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BankAccount
	for rows.Next() {
		a, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// FindActiveByOwner returns the owner's single active account, or NotFound.
func (r BankAccountRepository) FindActiveByOwner(ownerID int64) (models.BankAccount, error) {
	row := r.db().QueryRow(`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE owner_id=? AND is_active=1 LIMIT 1`, ownerID)
	a, err := scanBankAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BankAccount{}, domain.NotFoundError{Resource: "active bank account"}
	}
	return a, err
}

// DeactivateActive flips the owner's currently-active account off, keeping
// the row for history.
func (r BankAccountRepository) DeactivateActive(ownerID int64) error {
	_, err := r.db().Exec(`UPDATE bank_accounts SET is_active=0 WHERE owner_id=? AND is_active=1`, ownerID)
	return err
}

// ActivateExclusive makes accountID the owner's only active account in one
// statement, so no interleaving can observe zero or two active accounts.
// MySQL validates uniq_owner_active per row as the UPDATE walks the table,
// so the currently-active row must be cleared before the target row is set;
// ORDER BY is_active DESC forces that visit order.
func (r BankAccountRepository) ActivateExclusive(ownerID, accountID int64) error {
	_, err := r.db().Exec(`UPDATE bank_accounts SET is_active = (id = ?) WHERE owner_id = ? ORDER BY is_active DESC`,
		accountID, ownerID)
	return err
}

// Update rewrites the payee details and clears the verified flag, since
// verification applies to the exact detail set last checked.
func (r BankAccountRepository) Update(id int64, in models.BankAccountInput) error {
	accountType := in.AccountType
	if accountType == "" {
		accountType = models.AccountSavings
	}
	_, err := r.db().Exec(`
		UPDATE bank_accounts SET
			account_holder_name=?, account_number=?, ifsc_code=?, bank_name=?,
			branch_name=?, account_type=?, is_verified=0
		WHERE id=?`,
		in.AccountHolderName, in.AccountNumber, in.IFSCCode, in.BankName,
		in.BranchName, accountType, id,
	)
	return err
}

// Delete removes the row permanently.
func (r BankAccountRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM bank_accounts WHERE id=?`, id)
	return err
}
