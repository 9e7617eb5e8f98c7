package models

import "time"

// Admin marker collection. A document at admins/{uid} grants admin access.
const CollectionAdmins = "admins"

// AdminMarker is the content of an admin marker document.
type AdminMarker struct {
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	GrantedAt time.Time `bson:"grantedAt,omitempty" json:"grantedAt"`
}

// Account is an identity record owned by the identity provider.
type Account struct {
	UID            string     `bson:"_id" json:"uid"`
	Email          string     `bson:"email" json:"email"`
	PasswordHash   string     `bson:"passwordHash" json:"-"`
	DisplayName    string     `bson:"displayName" json:"displayName"`
	Disabled       bool       `bson:"disabled" json:"disabled"`
	SessionEpoch   int        `bson:"sessionEpoch" json:"-"`
	ResetTokenHash string     `bson:"resetTokenHash,omitempty" json:"-"`
	ResetExpiresAt *time.Time `bson:"resetExpiresAt,omitempty" json:"-"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// PasswordResetRequest represents the request body for a reset email
type PasswordResetRequest struct {
	Email string `json:"email" form:"email" binding:"required"`
}

// PasswordResetConfirmRequest completes a password reset
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// Notification variants.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is a transient message shown to the user.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant"`
}
