package actor

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"blogclone/pkg/session"
)

type Kind int

const (
	Anonymous Kind = iota
	User
)

// Identity is the entity whose engagement is being counted: a signed-in
// user, or the network origin of an anonymous reader. Exactly one of
// UserID/Address is meaningful, selected by Kind.
type Identity struct {
	Kind    Kind
	UserID  int64
	Address string
}

// Key is the ledger deduplication key. The prefix keeps a user id from
// ever colliding with an address string.
func (i Identity) Key() string {
	if i.Kind == User {
		return fmt.Sprintf("user:%d", i.UserID)
	}
	return "addr:" + i.Address
}

func FromUser(userID int64) Identity {
	return Identity{Kind: User, UserID: userID}
}

func FromAddress(addr string) Identity {
	return Identity{Kind: Anonymous, Address: addr}
}

// Resolver derives an Identity from an inbound request. It never fails:
// with no verified session attached to the request context it falls back
// to the client network address.
//
// TrustProxyHeaders must be set only when the service sits behind a
// reverse proxy that overwrites X-Forwarded-For. Left unset, all
// anonymous readers behind one proxy collapse into the proxy's address.
type Resolver struct {
	TrustProxyHeaders bool
}

func (rv *Resolver) Resolve(r *http.Request) Identity {
	if sess, err := session.FromContext(r.Context()); err == nil {
		return FromUser(sess.User.ID)
	}

	return FromAddress(rv.clientAddress(r))
}

func (rv *Resolver) clientAddress(r *http.Request) string {
	if rv.TrustProxyHeaders {
		// First hop of X-Forwarded-For is the original client.
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			parts := strings.Split(fwd, ",")
			if addr := strings.TrimSpace(parts[0]); addr != "" {
				return addr
			}
		}
		if real := r.Header.Get("X-Real-IP"); real != "" {
			return real
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
