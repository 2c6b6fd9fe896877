package login

// AccountStatus is the lifecycle state of an account.
type AccountStatus = string

const (
	// AccountActive marks accounts that completed a password-setting login.
	AccountActive AccountStatus = "active"
	// AccountInactive marks provisioned accounts that never logged in and
	// carry no password yet.
	AccountInactive AccountStatus = "inactive"
)

// Role is an opaque authorization tag attached to an account and
// snapshotted into its session.
type Role = string

// Account is a verified identity, as returned by the credential check.
type Account struct {
	// URI is the stable store-assigned resource identifier.
	URI string
	// UUID is the short public identifier exposed to clients.
	UUID string
	// Nickname is the lower-cased login handle.
	Nickname string
}

// AccountCredentials is the credential material of an active account.
type AccountCredentials struct {
	URI          string
	UUID         string
	PasswordHash string
	Salt         string
}

// AccountRef identifies an account without its credential material.
type AccountRef struct {
	URI  string
	UUID string
}
