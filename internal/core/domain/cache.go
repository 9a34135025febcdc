// Package domain contains the core types of the panel client: the per-object
// response cache, resource snapshots and the structured panel response.
package domain

// Key identifies a cached collection on a resource object. Keys are a closed
// set of constants so that a typo cannot silently create a new, never
// invalidated cache slot.
type Key string

const (
	// KeyDomains caches the account's domain listing.
	KeyDomains Key = "domains"
	// KeySubdomains caches a domain's subdomain listing.
	KeySubdomains Key = "subdomains"
	// KeyMailboxes caches a domain's mailbox listing.
	KeyMailboxes Key = "mailboxes"
	// KeyForwarders caches a domain's mail forwarder listing.
	KeyForwarders Key = "forwarders"
	// KeyFtp caches an FTP account listing (account or domain scoped).
	KeyFtp Key = "ftp"
	// KeyDatabases caches the account's database listing.
	KeyDatabases Key = "databases"
	// KeyDNSRecords caches a domain's DNS record listing.
	KeyDNSRecords Key = "dns"
	// KeySettings caches the account settings snapshot.
	KeySettings Key = "settings"
)

// Cache memoizes remote listings per resource object. Entries are populated
// on first read through a loader and stay valid until the owning object
// clears them after a successful mutation; the cache itself performs no
// freshness checks against the panel.
//
// A Cache is owned by exactly one resource object and is not synchronized.
// Sharing an object graph across goroutines requires external locking.
type Cache struct {
	entries map[Key]any
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]any)}
}

// Clear drops every entry. The next read per key runs its loader again.
func (c *Cache) Clear() {
	clear(c.entries)
}

// Invalidate drops the entry for a single key, if present.
func (c *Cache) Invalidate(key Key) {
	delete(c.entries, key)
}

// Len reports the number of populated entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Lookup returns the cached value for key, running loader to populate it on
// first access. The loader runs at most once per key between invalidations.
// A failing loader stores nothing, so the next Lookup retries it.
func Lookup[T any](c *Cache, key Key, loader func() (T, error)) (T, error) {
	if v, ok := c.entries[key]; ok {
		return v.(T), nil
	}

	v, err := loader()
	if err != nil {
		var zero T
		return zero, err
	}

	c.entries[key] = v
	return v, nil
}
