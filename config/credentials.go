package config

// AdminCredentials groups the administrator bind identity. The three
// fields are set independently but always read back together: a bind needs
// all of them, and exposing them individually invites drift between the
// username and the suffix it was configured with.
type AdminCredentials struct {
	Username      string
	Password      string
	AccountSuffix string
}

// AdminCredentials returns the administrator credential triple. Fields
// that were never set are empty strings.
func (c *ConnectionConfig) AdminCredentials() AdminCredentials {
	return c.v.Admin
}

// HasAdminCredentials reports whether both an administrator username and
// password are configured.
func (c *ConnectionConfig) HasAdminCredentials() bool {
	return c.v.Admin.Username != "" && c.v.Admin.Password != ""
}
