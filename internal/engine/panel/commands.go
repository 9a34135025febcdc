// Package panel implements the client-side object model of the hosting
// panel: one object per remote resource, hydrated from listings and backed
// by a per-object response cache. Accessors populate the cache on first
// read; mutations clear the mutated object's cache and its owner's cache
// once the panel confirms the change.
//
// Objects are not safe for concurrent use. A session's object graph belongs
// to one logical call sequence; callers that fan out must confine each
// object to a single goroutine.
package panel

// Remote command names. The panel routes requests on these identifiers; the
// wire encoding itself lives in the transport adapter.
const (
	cmdGetSettings = "get_accountsettings"

	cmdGetDomains   = "get_domains"
	cmdAddDomain    = "add_domain"
	cmdDeleteDomain = "delete_domain"

	cmdGetSubdomains   = "get_subdomains"
	cmdAddSubdomain    = "add_subdomain"
	cmdDeleteSubdomain = "delete_subdomain"

	cmdGetMailboxes        = "get_mailaccounts"
	cmdAddMailbox          = "add_mailaccount"
	cmdUpdateMailbox       = "update_mailaccount"
	cmdDeleteMailbox       = "delete_mailaccount"

	cmdGetForwarders   = "get_mailforwards"
	cmdAddForwarder    = "add_mailforward"
	cmdDeleteForwarder = "delete_mailforward"

	cmdGetFtpAccounts   = "get_ftpusers"
	cmdAddFtpAccount    = "add_ftpuser"
	cmdUpdateFtpAccount = "update_ftpuser"
	cmdDeleteFtpAccount = "delete_ftpuser"

	cmdGetDatabases   = "get_databases"
	cmdAddDatabase    = "add_database"
	cmdUpdateDatabase = "update_database"
	cmdDeleteDatabase = "delete_database"

	cmdGetDNSRecords   = "get_dns_settings"
	cmdAddDNSRecord    = "add_dns_settings"
	cmdDeleteDNSRecord = "delete_dns_settings"

	cmdAddCertificate = "add_ssl"
)
