// Package storage loads line/multiline geometry documents the locate/clip
// handlers operate on, from Azure Blob Storage or from the local
// filesystem (for tests and the file:// scheme): a small Connection value
// carries just enough to open the blob, and a ConnectionMaker binds it to
// a validated allow-list of accounts.
package storage

import (
	"fmt"
	"net/url"
	"strings"
)

// Connection names a single geometry document to load.
type Connection interface {
	// URL is the fully qualified blob or file URL.
	URL() string
}

// ConnectionMaker validates a caller-supplied URL against the server's
// configuration (allowed storage accounts) and returns a Connection, or an
// error if the URL is not one the server is willing to fetch.
type ConnectionMaker func(rawURL string) (Connection, error)

type fileConnection struct {
	path string
}

// NewFileConnection returns a Connection reading from the local filesystem,
// used for tests and for a "file://" scheme in development.
func NewFileConnection(path string) Connection {
	return fileConnection{path: path}
}

func (c fileConnection) URL() string { return c.path }

type azureConnection struct {
	url string
}

func (c azureConnection) URL() string { return c.url }

// MakeAzureConnection returns a ConnectionMaker that accepts blob URLs
// whose host matches one of the given storage accounts. When no account is
// given, any host is accepted. "file://" URLs bypass the account check and
// become file connections.
func MakeAzureConnection(storageAccounts []string) ConnectionMaker {
	allowed := make(map[string]bool, len(storageAccounts))
	for _, a := range storageAccounts {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if u, err := url.Parse(a); err == nil && u.Host != "" {
			allowed[strings.ToLower(u.Host)] = true
		} else {
			allowed[strings.ToLower(a)] = true
		}
	}

	return func(rawURL string) (Connection, error) {
		if strings.HasPrefix(rawURL, "file://") {
			return NewFileConnection(strings.TrimPrefix(rawURL, "file://")), nil
		}

		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, NewError(InvalidArgument, fmt.Sprintf("invalid geometry url: %v", err))
		}

		if len(allowed) > 0 && !allowed[strings.ToLower(u.Host)] {
			return nil, NewError(InvalidArgument,
				fmt.Sprintf("storage account '%s' is not in the accepted list", u.Host))
		}

		return azureConnection{url: rawURL}, nil
	}
}
