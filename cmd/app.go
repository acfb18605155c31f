// Package cmd implements the CLI application to manage a daily ledger.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/etnz/daybook"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&deleteCmd{},
	&clearDayCmd{},

	&listCmd{},
	&summaryCmd{},

	&fmtCmd{},
	&suggestCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var localDir = flag.String("local-dir", ".daybook", "Path to the local data folder used when not signed in")
var remoteURL = flag.String("remote", "", "Base URL of the remote document service (defaults to $DAYBOOK_REMOTE)")
var userID = flag.String("user", "", "User identifier owning the remote collection (defaults to $DAYBOOK_USER)")
var authToken = flag.String("token", "", "Bearer token for the remote service (defaults to $DAYBOOK_TOKEN)")

func envOr(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(key)
}

// OpenStore is the central function to open the session's ledger store. It
// picks the remote document service when both a user and a remote base URL
// are configured, the local folder otherwise, then loads the ledger.
func OpenStore(ctx context.Context) (*daybook.Store, error) {
	local, err := daybook.NewDirStore(*localDir)
	if err != nil {
		return nil, fmt.Errorf("cannot open local folder %q: %w", *localDir, err)
	}

	session := daybook.Session{UserID: envOr(*userID, "DAYBOOK_USER")}

	var remote daybook.DocumentStore
	if base := envOr(*remoteURL, "DAYBOOK_REMOTE"); base != "" {
		var header http.Header
		if token := envOr(*authToken, "DAYBOOK_TOKEN"); token != "" {
			header = http.Header{"Authorization": {"Bearer " + token}}
		}
		remote = daybook.NewRestStore(base, header)
	}

	s := daybook.NewStore(session, remote, local)
	s.Load(ctx)
	return s, nil
}

// CloseStore persists the store a last time before the process exits.
func CloseStore(s *daybook.Store) error {
	return s.Flush()
}
