/*
Package client establishes directory sessions from a config.ConnectionConfig.

The client dials the configured domain controllers in order until one
accepts, binds with the administrator credential triple (applying the
configured account prefix and suffix to form the bind identity), and runs
searches over the resulting session. Referral responses are chased once
when the configuration asks for it.

# Connection Model

One client owns at most one live connection. There is no pooling and no
retry within a single server; resilience comes from failover across the
ordered controller list. Connect, Bind and Search return the underlying
error when every avenue is exhausted.

# Logging

Operations log through the Logger interface; the default is a no-op and
ZapLogger adapts a *zap.Logger. Credential material is stripped from log
fields before emission, see SanitizeFields.

# Example Usage

	cfg, err := config.NewConnectionConfig(map[string]any{
		"domain_controllers": []string{"dc1.example.com"},
		"use_tls":            true,
		"port":               636,
		"admin_username":     "svc-bind",
		"admin_password":     password,
		"account_suffix":     "@example.com",
	})
	if err != nil {
		return err
	}

	c := client.New(cfg, client.WithLogger(client.NewZapLogger(log)))
	defer c.Close()

	if err := c.Connect(ctx); err != nil {
		return err
	}
	if err := c.Bind(ctx); err != nil {
		return err
	}
*/
package client
