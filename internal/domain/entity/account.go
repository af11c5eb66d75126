// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing one registered subscriber.
type Account struct {
	ID            uuid.UUID             `json:"id" firestore:"id"`                        // The Global Unique Identifier (GUID) for the account.
	FullName      string                `json:"full_name" firestore:"fullName"`           // The subscriber's full display name.
	Email         string                `json:"email" firestore:"email"`                  // The subscriber's primary contact email.
	PhoneNumber   string                `json:"phone_number" firestore:"phoneNumber"`     // The subscriber's SIM number, used as the primary protected line.
	Language      string                `json:"language" firestore:"language"`            // Preferred language code, e.g. "en", "zu", "xh".
	SimProtection *SimProtectionProfile `json:"sim_protection" firestore:"simProtection"` // Optional protection profile. Nil until the registration wizard completes.
	Alerts        []Alert               `json:"alerts" firestore:"alerts"`                // Alert history embedded in the account document.
	DeviceTokens  []string              `json:"device_tokens" firestore:"deviceTokens"`   // FCM registration tokens for push delivery.
	FaceEnrolled  bool                  `json:"face_enrolled" firestore:"faceEnrolled"`   // Whether a face capture has been stored for the face challenge policy.
	Version       int64                 `json:"version" firestore:"version"`              // Monotonic document version for optimistic concurrency control.
	CreatedAt     time.Time             `json:"created_at" firestore:"createdAt"`         // Timestamp of when this account was created.
	UpdatedAt     time.Time             `json:"updated_at" firestore:"updatedAt"`         // Timestamp of the last modification.
}

// SimProtectionProfile is the protection configuration for one linked number.
type SimProtectionProfile struct {
	LinkedNumber     string        `json:"linked_number" firestore:"linkedNumber"`           // The protected SIM number.
	IDNumber         string        `json:"id_number" firestore:"idNumber"`                   // South African national ID number, checksum-validated at creation.
	EmailAlerts      bool          `json:"email_alerts" firestore:"emailAlerts"`             // Whether alert emails are sent.
	AlertEmail       string        `json:"alert_email" firestore:"alertEmail"`               // Address receiving alert emails, required when EmailAlerts is set.
	AutoLock         bool          `json:"auto_lock" firestore:"autoLock"`                   // Whether the SIM is locked automatically on detection.
	NextOfKin        []NextOfKin   `json:"next_of_kin" firestore:"nextOfKin"`                // Contacts notified on alert, at least one required.
	BankAccounts     []BankAccount `json:"bank_accounts" firestore:"bankAccounts"`           // Linked bank accounts covered by the protection, at least one required.
	CoverageAmount   int64         `json:"coverage_amount" firestore:"coverageAmount"`       // SIM protection coverage in rand.
	Active           bool          `json:"active" firestore:"active"`                        // Whether SIM protection is currently active.
	CreditLockActive bool          `json:"credit_lock_active" firestore:"creditLockActive"`  // Whether the optional credit-lock service is active.
	CreditLockCover  int64         `json:"credit_lock_cover" firestore:"creditLockCover"`    // Credit-lock coverage in rand.
	DataBrokerActive bool          `json:"data_broker_active" firestore:"dataBrokerActive"`  // Whether the optional data-broker removal service is active.
	DataBrokerCover  int64         `json:"data_broker_cover" firestore:"dataBrokerCover"`    // Data-broker coverage in rand.
	UpdatedAt        time.Time     `json:"updated_at" firestore:"updatedAt"`                 // Timestamp of the last modification to this profile.
}

// NextOfKin is one emergency contact notified when an alert fires.
type NextOfKin struct {
	ID     uuid.UUID `json:"id" firestore:"id"` // Stable identifier assigned at creation.
	Name   string    `json:"name" firestore:"name"`
	Number string    `json:"number" firestore:"number"`
}

// BankAccount is one linked bank account covered by SIM protection.
type BankAccount struct {
	ID            uuid.UUID `json:"id" firestore:"id"` // Stable identifier assigned at creation.
	BankName      string    `json:"bank_name" firestore:"bankName"`
	AccountNumber string    `json:"account_number" firestore:"accountNumber"`
}

// KnownNumbers returns every SIM number linked to the account: the primary
// phone number plus the protected number from the profile, if any.
func (a *Account) KnownNumbers() []string {
	numbers := []string{a.PhoneNumber}
	if a.SimProtection != nil && a.SimProtection.LinkedNumber != "" && a.SimProtection.LinkedNumber != a.PhoneNumber {
		numbers = append(numbers, a.SimProtection.LinkedNumber)
	}

	return numbers
}

// OwnsNumber reports whether simNumber is linked to this account.
func (a *Account) OwnsNumber(simNumber string) bool {
	for _, n := range a.KnownNumbers() {
		if n == simNumber {
			return true
		}
	}

	return false
}

// FindAlert returns the alert with the given ID, or nil when absent.
// Alerts are addressed by stable identifier, never by slice position.
func (a *Account) FindAlert(alertID uuid.UUID) *Alert {
	for i := range a.Alerts {
		if a.Alerts[i].ID == alertID {
			return &a.Alerts[i]
		}
	}

	return nil
}
