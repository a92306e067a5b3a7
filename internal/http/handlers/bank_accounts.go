package handlers

import (
	"net/http"

	"wanderstay/internal/domain/models"
	"wanderstay/internal/http/middleware"
	"wanderstay/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/bank-accounts
func GetBankAccounts(c *gin.Context) {
	accounts, err := bankAccountService(c).List(middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if accounts == nil {
		accounts = []models.BankAccount{}
	}
	for i := range accounts {
		accounts[i].AccountNumber = utils.MaskAccountNumber(accounts[i].AccountNumber)
	}
	c.JSON(http.StatusOK, gin.H{"bankAccounts": accounts})
}

type bankAccountRequest struct {
	BankAccount models.BankAccountInput `json:"bankAccount"`
}

// POST /api/bank-accounts
func AddBankAccount(c *gin.Context) {
	var req bankAccountRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	account, err := bankAccountService(c).Add(middleware.CurrentUserID(c), req.BankAccount)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Bank account added successfully!",
		"bankAccount": account,
	})
}

// GET /api/bank-accounts/:accountId
func ShowBankAccount(c *gin.Context) {
	id, ok := idParam(c, "accountId")
	if !ok {
		return
	}
	account, err := bankAccountService(c).Get(middleware.CurrentUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bankAccount": account})
}

// PUT /api/bank-accounts/:accountId
func UpdateBankAccount(c *gin.Context) {
	id, ok := idParam(c, "accountId")
	if !ok {
		return
	}
	var req bankAccountRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := bankAccountService(c).Update(middleware.CurrentUserID(c), id, req.BankAccount); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bank account updated successfully!",
	})
}

// PATCH /api/bank-accounts/:accountId/activate
func ActivateBankAccount(c *gin.Context) {
	id, ok := idParam(c, "accountId")
	if !ok {
		return
	}
	if err := bankAccountService(c).Activate(middleware.CurrentUserID(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bank account activated successfully!",
	})
}

// DELETE /api/bank-accounts/:accountId
func DeleteBankAccount(c *gin.Context) {
	id, ok := idParam(c, "accountId")
	if !ok {
		return
	}
	if err := bankAccountService(c).Delete(middleware.CurrentUserID(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bank account deleted successfully!",
	})
}
