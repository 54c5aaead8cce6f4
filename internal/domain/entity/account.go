// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Account is the core entity in the system, representing a registered user.
type Account struct {
	Uid          int64     // Numeric identifier assigned by the store on creation.
	Username     string    // Display name, unique across all accounts.
	Email        string    // Login identifier, unique across all accounts.
	PasswordHash string    // Bcrypt hash of the password. Never the plaintext.
	Timezone     string    // IANA timezone name, used to anchor "today" for the user.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
