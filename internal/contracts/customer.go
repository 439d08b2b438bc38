package contracts

import (
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/customer"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/merchant"
)

type CustomerCreateRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Phone string `json:"phone" binding:"omitempty,max=20"`
}

type CustomerUpdateRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=200"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	IsActive *bool   `json:"is_active" binding:"omitempty"`
}

type CustomerResponse struct {
	Customer *customer.Customer `json:"customer"`
}

type MerchantCreateRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Number      string `json:"number" binding:"omitempty,max=50"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	BankAccount string `json:"bank_account" binding:"omitempty,max=34"`
	IfscCode    string `json:"ifsc_code" binding:"omitempty,max=11"`
}

type MerchantUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Number      *string `json:"number" binding:"omitempty,max=50"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	BankAccount *string `json:"bank_account" binding:"omitempty,max=34"`
	IfscCode    *string `json:"ifsc_code" binding:"omitempty,max=11"`
	IsActive    *bool   `json:"is_active" binding:"omitempty"`
}

type MerchantResponse struct {
	Merchant *merchant.Merchant `json:"merchant"`
}
