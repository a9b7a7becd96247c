package domain

import (
	"fmt"
	"strings"
)

const (
	MiB int64 = 1024 * 1024

	// DefaultBaseThreshold is the chat platform's own attachment limit
	DefaultBaseThreshold = 10 * MiB
)

// HostID identifies a supported file host
type HostID string

const (
	HostBuzzHeavier HostID = "buzzheavier"
	HostCatbox      HostID = "catbox"
	HostLitterbox   HostID = "litterbox"
)

// Hosts lists every supported host, in display order
var Hosts = []HostID{HostBuzzHeavier, HostCatbox, HostLitterbox}

var hostCeilings = map[HostID]int64{
	HostBuzzHeavier: 0,
	HostCatbox:      200 * MiB,
	HostLitterbox:   1024 * MiB,
}

// ParseHostID parses s into a HostID
func ParseHostID(s string) (HostID, error) {
	id := HostID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := hostCeilings[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHost, s)
	}
	return id, nil
}

// Valid reports whether h is a supported host
func (h HostID) Valid() bool {
	_, ok := hostCeilings[h]
	return ok
}

// Ceiling returns the maximum file size accepted by the host. ok is false when the host has no limit.
func (h HostID) Ceiling() (limit int64, ok bool) {
	limit = hostCeilings[h]
	return limit, limit > 0
}

func (h HostID) String() string {
	return string(h)
}

// ExpiryCode is the retention time of an ephemeral upload
type ExpiryCode string

const (
	Expiry1h  ExpiryCode = "1h"
	Expiry12h ExpiryCode = "12h"
	Expiry24h ExpiryCode = "24h"
	Expiry72h ExpiryCode = "72h"

	DefaultExpiry = Expiry24h
)

// ParseExpiryCode parses s into an ExpiryCode, an empty string yields DefaultExpiry
func ParseExpiryCode(s string) (ExpiryCode, error) {
	code := ExpiryCode(strings.TrimSpace(s))
	switch code {
	case "":
		return DefaultExpiry, nil
	case Expiry1h, Expiry12h, Expiry24h, Expiry72h:
		return code, nil
	default:
		return "", fmt.Errorf("%w: %q (expected one of 1h, 12h, 24h, 72h)", ErrInvalidExpiry, s)
	}
}

// HostConfig is the host selection of a user plus host specific options
type HostConfig struct {
	Host     HostID
	Expiry   ExpiryCode
	UserHash string
}

// WithOverrides returns c with every non-empty override applied and validated
func (c HostConfig) WithOverrides(host, expiry, userHash string) (HostConfig, error) {
	out := c
	if host != "" {
		id, err := ParseHostID(host)
		if err != nil {
			return HostConfig{}, err
		}
		out.Host = id
	}
	if expiry != "" {
		code, err := ParseExpiryCode(expiry)
		if err != nil {
			return HostConfig{}, err
		}
		out.Expiry = code
	}
	if userHash != "" {
		out.UserHash = userHash
	}
	return out, nil
}
