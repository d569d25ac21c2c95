package config

import (
	"slices"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/spf13/cast"
)

// settings carries the stored field values. Kept as a separate struct so
// field defaults can be applied by tag while the fields stay hidden behind
// ConnectionConfig's accessors.
type settings struct {
	BaseDN            string
	FollowReferrals   bool
	Port              string `default:"389"`
	UseTLS            bool
	DomainControllers []string
	AccountPrefix     string
	AccountSuffix     string
	Admin             AdminCredentials
}

// ConnectionConfig holds connection parameters and identity-formatting
// rules for establishing a directory session. Construct it with
// NewConnectionConfig or Default; read it through the typed accessors.
//
// Setters mutate fields without synchronization. Construct and populate the
// object fully before sharing it across goroutines, and treat it as
// read-only from then on.
type ConnectionConfig struct {
	v settings
}

// Default returns a configuration with all fields at their defaults:
// plain LDAP port 389, no TLS, referrals not followed, no controllers and
// no credentials.
func Default() *ConnectionConfig {
	c := &ConnectionConfig{}
	if err := defaults.Set(&c.v); err != nil {
		// Only possible with a non-pointer or malformed tag, neither of
		// which can occur here.
		panic(err)
	}
	return c
}

// SetBaseDN sets the base distinguished name used as the root of searches.
// The value is coerced to its string form; no DN syntax validation is
// performed at this layer.
func (c *ConnectionConfig) SetBaseDN(value any) {
	c.v.BaseDN = cast.ToString(value)
}

// BaseDN returns the configured base distinguished name, or "" if unset.
func (c *ConnectionConfig) BaseDN() string {
	return c.v.BaseDN
}

// SetFollowReferrals sets whether the client should chase referral
// responses. The value is coerced to a boolean; values that cannot be
// interpreted as a boolean store false.
func (c *ConnectionConfig) SetFollowReferrals(value any) {
	c.v.FollowReferrals = cast.ToBool(value)
}

// FollowReferrals reports whether referral responses should be followed.
func (c *ConnectionConfig) FollowReferrals() bool {
	return c.v.FollowReferrals
}

// SetPort sets the directory server port. Integers and numeric strings are
// accepted; anything else fails with a ConfigurationError. The port is
// stored in its decimal string form.
func (c *ConnectionConfig) SetPort(value any) error {
	port, err := cast.ToIntE(value)
	if err != nil {
		return &ConfigurationError{Field: "port", Message: "port must be an integer"}
	}
	c.v.Port = strconv.Itoa(port)
	return nil
}

// Port returns the configured port as decimal text.
func (c *ConnectionConfig) Port() string {
	return c.v.Port
}

// SetUseTLS sets whether connections should be made over TLS. The value is
// coerced to a boolean.
func (c *ConnectionConfig) SetUseTLS(value any) {
	c.v.UseTLS = cast.ToBool(value)
}

// UseTLS reports whether TLS is enabled.
func (c *ConnectionConfig) UseTLS() bool {
	return c.v.UseTLS
}

// SetDomainControllers sets the ordered list of directory servers to
// attempt, verbatim: no deduplication, no reordering. An empty list fails
// with a ConfigurationError.
func (c *ConnectionConfig) SetDomainControllers(value any) error {
	controllers, err := cast.ToStringSliceE(value)
	if err != nil {
		return &ConfigurationError{Field: "domain_controllers", Message: "domain controllers must be a list of hosts"}
	}
	if len(controllers) == 0 {
		return &ConfigurationError{Field: "domain_controllers", Message: "must specify at least one domain controller"}
	}
	c.v.DomainControllers = controllers
	return nil
}

// DomainControllers returns a copy of the configured server list, in the
// order it was supplied.
func (c *ConnectionConfig) DomainControllers() []string {
	return slices.Clone(c.v.DomainControllers)
}

// SetAccountPrefix sets the text prepended to account names when forming a
// bind identity.
func (c *ConnectionConfig) SetAccountPrefix(value any) {
	c.v.AccountPrefix = cast.ToString(value)
}

// AccountPrefix returns the configured account prefix, or "" if unset.
func (c *ConnectionConfig) AccountPrefix() string {
	return c.v.AccountPrefix
}

// SetAccountSuffix sets the text appended to account names when forming a
// bind identity, typically a UPN suffix such as "@example.com".
func (c *ConnectionConfig) SetAccountSuffix(value any) {
	c.v.AccountSuffix = cast.ToString(value)
}

// AccountSuffix returns the configured account suffix, or "" if unset.
func (c *ConnectionConfig) AccountSuffix() string {
	return c.v.AccountSuffix
}

// SetAdminUsername sets the administrator account name used for the
// service bind.
func (c *ConnectionConfig) SetAdminUsername(value any) {
	c.v.Admin.Username = cast.ToString(value)
}

// SetAdminPassword sets the administrator password. The value is never
// validated or inspected beyond string coercion at this layer.
func (c *ConnectionConfig) SetAdminPassword(value any) {
	c.v.Admin.Password = cast.ToString(value)
}

// SetAdminAccountSuffix sets a suffix specific to the administrator
// account, overriding the general account suffix for the service bind.
func (c *ConnectionConfig) SetAdminAccountSuffix(value any) {
	c.v.Admin.AccountSuffix = cast.ToString(value)
}
