// Package serviceaddr computes the identity of the running process instance,
// used to stamp responses with the replica that served them.
package serviceaddr

import (
	"net"
	"os"
	"sync"
)

const (
	unknownHost = "unknown host name"
	unknownIP   = "unknown IP address"
)

// Resolver computes "hostname/ip:port" once and caches it for the life of the process.
// It is safe for concurrent use.
type Resolver struct {
	port string

	hostname func() (string, error)
	lookupIP func(host string) ([]net.IP, error)

	once    sync.Once
	address string
}

// New creates a Resolver for a process listening on port
func New(port string) *Resolver {
	return &Resolver{
		port:     port,
		hostname: os.Hostname,
		lookupIP: net.LookupIP,
	}
}

// Address returns the cached service address, computing it on first use
func (r *Resolver) Address() string {
	r.once.Do(func() {
		host := r.findHostname()
		r.address = host + "/" + r.findIPAddress(host) + ":" + r.port
	})
	return r.address
}

func (r *Resolver) findHostname() string {
	host, err := r.hostname()
	if err != nil || host == "" {
		return unknownHost
	}
	return host
}

// findIPAddress prefers a non-loopback IPv4 address of host
func (r *Resolver) findIPAddress(host string) string {
	if host == unknownHost {
		return unknownIP
	}
	ips, err := r.lookupIP(host)
	if err != nil || len(ips) == 0 {
		return unknownIP
	}
	for _, ip := range ips {
		if ip4 := ip.To4(); ip4 != nil && !ip4.IsLoopback() {
			return ip4.String()
		}
	}
	return ips[0].String()
}

// Static returns a Resolver that always reports address. Useful in tests.
func Static(address string) *Resolver {
	r := &Resolver{}
	r.once.Do(func() { r.address = address })
	return r
}
