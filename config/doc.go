/*
Package config holds validated connection settings for a directory-service
(LDAP) client.

A ConnectionConfig is built once from an untyped option set (a map or an
ordered sequence of key/value pairs), with each option name normalized and
dispatched to a typed setter. Unknown option names are ignored so that
option sets produced by external loaders may carry keys this library does
not understand.

The package performs no I/O and no logging; all effects are confined to the
configuration object itself. A ConnectionConfig is not safe for concurrent
mutation, but is safe for concurrent reads once fully constructed.

# Example Usage

	cfg, err := config.NewConnectionConfig(map[string]any{
		"base_dn":            "DC=example,DC=com",
		"domain_controllers": []string{"dc1.example.com", "dc2.example.com"},
		"port":               636,
		"use_tls":            true,
		"account_suffix":     "@example.com",
		"admin_username":     "svc-bind",
		"admin_password":     "...",
	})
	if err != nil {
		return err
	}

	creds := cfg.AdminCredentials()
	_ = creds.Username
*/
package config
