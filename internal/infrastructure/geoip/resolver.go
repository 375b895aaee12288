package geoip

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	"github.com/oschwald/geoip2-golang"

	"github.com/vistream-io/vistream/internal/shared/logger"
)

// Resolver maps request addresses to ISO country codes using a local
// MaxMind database. A nil reader (no database configured) resolves
// everything to the empty country, which the geo guard treats as
// unattributable and admits.
type Resolver struct {
	reader *geoip2.Reader
	logger logger.Interface
}

// NewResolver opens the MaxMind database at the given path. An empty
// path returns a resolver that never attributes a country.
func NewResolver(databasePath string, log logger.Interface) (*Resolver, error) {
	if databasePath == "" {
		log.Warn("geoip database not configured, geo restrictions resolve as unattributable")
		return &Resolver{logger: log}, nil
	}

	reader, err := geoip2.Open(databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open geoip database: %w", err)
	}

	return &Resolver{reader: reader, logger: log}, nil
}

// ResolveCountry returns the ISO 3166-1 alpha-2 code for the address.
// Private, loopback, and unparseable addresses return the empty string
// with no error.
func (r *Resolver) ResolveCountry(_ context.Context, ipAddress string) (string, error) {
	if r.reader == nil || ipAddress == "" {
		return "", nil
	}

	addr, err := netip.ParseAddr(ipAddress)
	if err != nil {
		return "", nil
	}
	if addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() || addr.IsUnspecified() {
		return "", nil
	}

	record, err := r.reader.Country(net.IP(addr.AsSlice()))
	if err != nil {
		return "", fmt.Errorf("geoip country lookup failed: %w", err)
	}

	return record.Country.IsoCode, nil
}

// Close releases the database reader
func (r *Resolver) Close() error {
	if r.reader == nil {
		return nil
	}
	return r.reader.Close()
}
