package login

// Vocabulary of the graph store layout. Accounts are typed FOAF online
// accounts in the users graph; sessions are typed by convention through
// their session:account link in the sessions graph.
const (
	foafOnlineAccount = "http://xmlns.com/foaf/0.1/OnlineAccount"
	foafAccountName   = "http://xmlns.com/foaf/0.1/accountName"

	muUUID = "http://mu.semte.ch/vocabularies/core/uuid"

	accountPassword       = "http://mu.semte.ch/vocabularies/account/password"
	accountSalt           = "http://mu.semte.ch/vocabularies/account/salt"
	accountStatus         = "http://mu.semte.ch/vocabularies/account/status"
	accountStatusActive   = "http://mu.semte.ch/vocabularies/account/status/active"
	accountStatusInactive = "http://mu.semte.ch/vocabularies/account/status/inactive"

	extRole        = "http://mu.semte.ch/vocabularies/ext/role"
	extSessionRole = "http://mu.semte.ch/vocabularies/ext/sessionRole"

	sessionAccount = "http://mu.semte.ch/vocabularies/session/account"

	dctModified = "http://purl.org/dc/terms/modified"
)
