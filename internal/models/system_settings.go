package models

import "time"

// Settings document location.
const (
	CollectionSettings = "settings"
	SettingsDocumentID = "platform"
)

// SystemSettings represents the platform-wide settings singleton.
type SystemSettings struct {
	TransactionFee     float64   `bson:"transactionFee" json:"transactionFee"`
	MinTransaction     float64   `bson:"minTransaction" json:"minTransaction"`
	MaxTransaction     float64   `bson:"maxTransaction" json:"maxTransaction"`
	DailyLimit         float64   `bson:"dailyLimit" json:"dailyLimit"`
	MaintenanceMode    bool      `bson:"maintenanceMode" json:"maintenanceMode"`
	EmailNotifications bool      `bson:"emailNotifications" json:"emailNotifications"`
	SMSNotifications   bool      `bson:"smsNotifications" json:"smsNotifications"`
	AutoKYCApproval    bool      `bson:"autoKycApproval" json:"autoKycApproval"`
	SupportEmail       string    `bson:"supportEmail" json:"supportEmail"`
	SupportPhone       string    `bson:"supportPhone" json:"supportPhone"`
	BusinessHours      string    `bson:"businessHours" json:"businessHours"`
	UpdatedAt          time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	UpdatedBy          string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}

// DefaultSystemSettings returns the settings used until an admin saves them.
func DefaultSystemSettings() SystemSettings {
	return SystemSettings{
		TransactionFee:     2.5,
		MinTransaction:     100,
		MaxTransaction:     1000000,
		DailyLimit:         500000,
		MaintenanceMode:    false,
		EmailNotifications: true,
		SMSNotifications:   true,
		AutoKYCApproval:    false,
		SupportEmail:       "support@oripayexchange.com",
		SupportPhone:       "+254 700 000000",
		BusinessHours:      "Mon-Fri: 8AM - 6PM EAT",
	}
}
