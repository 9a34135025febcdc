//go:build e2e

package e2e_test

import (
	"fmt"
	"net/http"
	"strings"
)

// stubPanel is a fixed-fixture panel API for the scripts. It speaks the
// line-oriented reply format the client parses and rejects a handful of
// well-known inputs so the scripts can cover the failure paths.
type stubPanel struct{}

func newStubPanel() http.Handler {
	return &stubPanel{}
}

func (s *stubPanel) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	if r.Form.Get("login") != "alice" || r.Form.Get("password") != "hunter2" {
		reply(w, "error=403", "details=authentication failed")
		return
	}

	switch r.Form.Get("action") {
	case "get_accountsettings":
		reply(w,
			"error=0",
			"disk_quota=250/1000",
			"traffic_quota=10/unlimited",
			"max_domains=10",
			"max_mailaccounts=50",
			"max_databases=5",
		)
	case "get_domains":
		reply(w,
			"error=0",
			"columns=owner|name|disk_quota|traffic_quota|active",
			"item0=alice|example.org|100/500|2/unlimited|1",
			"item1=alice|staging.example.net|10/100|0/100|0",
		)
	case "get_subdomains":
		reply(w,
			"error=0",
			"columns=host|path|active",
			"item0=www|/web|1",
		)
	case "get_mailaccounts":
		reply(w,
			"error=0",
			"columns=local|quota|active",
			"item0=info|50/1024|1",
			"item1=sales|10/512|1",
		)
	case "get_mailforwards":
		reply(w,
			"error=0",
			"columns=source|targets|active",
			"item0=all|info@example.org,team@example.net|1",
		)
	case "get_ftpusers":
		reply(w,
			"error=0",
			"columns=owner|username|directory|quota|active",
			"item0=alice|deploy|/web|100/1000|1",
		)
	case "get_databases":
		reply(w,
			"error=0",
			"columns=owner|name|size",
			"item0=alice|shop_db|42",
		)
	case "get_dns_settings":
		reply(w,
			"error=0",
			"columns=record_id|type|host|content|priority",
			"item0=7|MX|@|mail.example.org|10",
		)
	case "add_domain":
		if r.Form.Get("domain") == "taken.example.org" {
			reply(w, "error=1", "details=domain already registered")
			return
		}
		reply(w, "error=0")
	case "add_mailaccount":
		if r.Form.Get("local") == "info" {
			reply(w, "error=1", "details=mailbox exists")
			return
		}
		reply(w, "error=0")
	default:
		if strings.HasPrefix(r.Form.Get("action"), "add_") ||
			strings.HasPrefix(r.Form.Get("action"), "update_") ||
			strings.HasPrefix(r.Form.Get("action"), "delete_") {
			reply(w, "error=0")
			return
		}
		reply(w, "error=2", "details=unknown action")
	}
}

func reply(w http.ResponseWriter, lines ...string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, line := range lines {
		_, _ = fmt.Fprintln(w, line)
	}
}
