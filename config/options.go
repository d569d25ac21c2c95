package config

import (
	"fmt"
	"strings"
)

// Option is one key/value pair of an ordered option sequence. Use the
// []Option form of NewConnectionConfig when application order matters;
// with a map, order follows Go map iteration.
type Option struct {
	Key   string
	Value any
}

// setters maps a normalized option key to the typed setter that consumes
// it. Built once; option dispatch never resolves method names from
// strings.
var setters = map[string]func(*ConnectionConfig, any) error{
	"basedn": func(c *ConnectionConfig, v any) error {
		c.SetBaseDN(v)
		return nil
	},
	"followreferrals": func(c *ConnectionConfig, v any) error {
		c.SetFollowReferrals(v)
		return nil
	},
	"port": (*ConnectionConfig).SetPort,
	"usetls": func(c *ConnectionConfig, v any) error {
		c.SetUseTLS(v)
		return nil
	},
	"domaincontrollers": (*ConnectionConfig).SetDomainControllers,
	"accountprefix": func(c *ConnectionConfig, v any) error {
		c.SetAccountPrefix(v)
		return nil
	},
	"accountsuffix": func(c *ConnectionConfig, v any) error {
		c.SetAccountSuffix(v)
		return nil
	},
	"adminusername": func(c *ConnectionConfig, v any) error {
		c.SetAdminUsername(v)
		return nil
	},
	"adminpassword": func(c *ConnectionConfig, v any) error {
		c.SetAdminPassword(v)
		return nil
	},
	"adminaccountsuffix": func(c *ConnectionConfig, v any) error {
		c.SetAdminAccountSuffix(v)
		return nil
	},
}

// normalizeKey reduces an option name to its lookup token: underscores
// removed, remainder lower-cased. "domain_controllers",
// "DomainControllers" and "DOMAIN_CONTROLLERS" all normalize to
// "domaincontrollers".
func normalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", ""))
}

// NewConnectionConfig builds a configuration from an untyped option set.
//
// Accepted shapes are map[string]any, map[string]string, and []Option (an
// ordered key/value sequence); nil yields Default(). Any other shape fails
// with an InvalidArgumentError. Option names with no matching setter are
// silently ignored.
//
// Options are applied one at a time in input order. A setter rejecting its
// value aborts construction and the error names the offending option;
// earlier options from the same call are not rolled back, but the partial
// object is discarded so the caller never observes it.
func NewConnectionConfig(options any) (*ConnectionConfig, error) {
	cfg := Default()

	switch opts := options.(type) {
	case nil:
	case map[string]any:
		for key, value := range opts {
			if err := cfg.apply(key, value); err != nil {
				return nil, err
			}
		}
	case map[string]string:
		for key, value := range opts {
			if err := cfg.apply(key, value); err != nil {
				return nil, err
			}
		}
	case []Option:
		for _, opt := range opts {
			if err := cfg.apply(opt.Key, opt.Value); err != nil {
				return nil, err
			}
		}
	default:
		return nil, &InvalidArgumentError{Value: options}
	}

	return cfg, nil
}

// apply dispatches one option to its setter. Unknown keys are dropped
// without error.
func (c *ConnectionConfig) apply(key string, value any) error {
	setter, ok := setters[normalizeKey(key)]
	if !ok {
		return nil
	}
	if err := setter(c, value); err != nil {
		return fmt.Errorf("option %q: %w", key, err)
	}
	return nil
}
