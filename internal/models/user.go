package models

import "time"

// User roles, account states and KYC states stored on profile records.
const (
	RoleUser = "user"

	StatusActive    = "active"
	StatusSuspended = "suspended"

	KYCStatusPending  = "pending"
	KYCStatusVerified = "verified"
	KYCStatusRejected = "rejected"

	DefaultBalance     = "KES 0.00"
	DefaultDisplayName = "User"
)

// User is the profile record stored at users/{uid}.
type User struct {
	UID               string         `bson:"-" json:"uid"`
	BusinessType      string         `bson:"businessType" json:"businessType"`
	CompanyName       string         `bson:"companyName" json:"companyName"`
	Email             string         `bson:"email" json:"email"`
	Phone             string         `bson:"phone" json:"phone"`
	COINumber         string         `bson:"coiNumber" json:"coiNumber"`
	DisplayName       string         `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Role              string         `bson:"role" json:"role"`
	KYCCompleted      bool           `bson:"kycCompleted" json:"kycCompleted"`
	KYCStatus         string         `bson:"kycStatus,omitempty" json:"kycStatus,omitempty"`
	Status            string         `bson:"status" json:"status"`
	Directors         []Director     `bson:"directors" json:"directors"`
	Files             CompanyFiles   `bson:"files" json:"files"`
	KYC               *KYCSubmission `bson:"kyc,omitempty" json:"kyc,omitempty"`
	Balance           string         `bson:"balance,omitempty" json:"balance,omitempty"`
	Transactions      []Transaction  `bson:"transactions" json:"transactions"`
	ProfileIncomplete bool           `bson:"profileIncomplete,omitempty" json:"profileIncomplete,omitempty"`
	CreatedAt         time.Time      `bson:"createdAt,omitempty" json:"createdAt"`
}

// Director is one company director captured at registration.
type Director struct {
	FirstName     string `bson:"firstName" json:"firstName"`
	LastName      string `bson:"lastName" json:"lastName"`
	IDFileBase64  string `bson:"idFileBase64" json:"idFileBase64,omitempty"`
	KRAFileBase64 string `bson:"kraFileBase64" json:"kraFileBase64,omitempty"`
}

// CompanyFiles holds the company documents as data URLs.
type CompanyFiles struct {
	COIBase64        string `bson:"coiBase64" json:"coiBase64,omitempty"`
	CR12Base64       string `bson:"cr12Base64" json:"cr12Base64,omitempty"`
	CompanyKRABase64 string `bson:"companyKraBase64" json:"companyKraBase64,omitempty"`
}

// KYCSubmission is the kyc sub-object merged into the profile record.
type KYCSubmission struct {
	IDNumber         string    `bson:"idNumber" json:"idNumber"`
	KRAPin           string    `bson:"kraPin" json:"kraPin"`
	DateOfBirth      string    `bson:"dateOfBirth" json:"dateOfBirth"`
	Address          string    `bson:"address" json:"address"`
	City             string    `bson:"city" json:"city"`
	Country          string    `bson:"country" json:"country"`
	IDDocumentBase64 string    `bson:"idDocument" json:"idDocument,omitempty"`
	SelfieBase64     string    `bson:"selfie" json:"selfie,omitempty"`
	Status           string    `bson:"status" json:"status"`
	SubmittedAt      time.Time `bson:"submittedAt,omitempty" json:"submittedAt"`
}

// Transaction is a transfer shown on the customer dashboard.
type Transaction struct {
	ID        string    `bson:"id" json:"id"`
	Type      string    `bson:"type" json:"type"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Recipient string    `bson:"recipient" json:"recipient"`
	Status    string    `bson:"status" json:"status"`
	Date      time.Time `bson:"date" json:"date"`
}

// DefaultUser returns a profile pre-filled with the fields a reader may rely on.
func DefaultUser() User {
	return User{
		Role:         RoleUser,
		Status:       StatusActive,
		Balance:      DefaultBalance,
		Directors:    []Director{},
		Transactions: []Transaction{},
	}
}

// EffectiveKYCStatus resolves the KYC state: top-level kycStatus, then kyc.status, then pending.
func (u *User) EffectiveKYCStatus() string {
	if u.KYCStatus != "" {
		return u.KYCStatus
	}
	if u.KYC != nil && u.KYC.Status != "" {
		return u.KYC.Status
	}
	return KYCStatusPending
}

// AdminDisplayName is the name shown in the admin user list.
func (u *User) AdminDisplayName() string {
	if u.CompanyName != "" {
		return u.CompanyName
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return "N/A"
}

// UserSummary is a row of the admin user list.
type UserSummary struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	KYCStatus string `json:"kycStatus"`
	CreatedAt string `json:"createdAt"`
}

// DashboardView is the customer dashboard view model.
type DashboardView struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Balance      string        `json:"balance"`
	KYCStatus    string        `json:"kycStatus"`
	Status       string        `json:"status"`
	Transactions []Transaction `json:"transactions"`
}

// AdminStats is the admin dashboard view model.
type AdminStats struct {
	TotalUsers        int `json:"totalUsers"`
	PendingKYC        int `json:"pendingKyc"`
	TotalTransactions int `json:"totalTransactions"`
	ActiveCountries   int `json:"activeCountries"`

	Notification *Notification `json:"notification,omitempty"`
}
