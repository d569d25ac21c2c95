package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "389", cfg.Port())
	assert.Equal(t, "", cfg.BaseDN())
	assert.False(t, cfg.UseTLS())
	assert.False(t, cfg.FollowReferrals())
	assert.Empty(t, cfg.DomainControllers())
	assert.Equal(t, "", cfg.AccountPrefix())
	assert.Equal(t, "", cfg.AccountSuffix())
	assert.False(t, cfg.HasAdminCredentials())
}

func TestConnectionConfig_SetPort(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    string
		wantErr bool
	}{
		{name: "integer", value: 389, want: "389"},
		{name: "numeric string", value: "636", want: "636"},
		{name: "zero", value: 0, want: "0"},
		{name: "whole float", value: 3268.0, want: "3268"},
		{name: "arbitrary text", value: "abc", wantErr: true},
		{name: "mixed text", value: "636a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.SetPort(tt.value)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigurationError(err))
				assert.EqualError(t, err, "port must be an integer")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Port())
		})
	}
}

func TestConnectionConfig_SetDomainControllers(t *testing.T) {
	cfg := Default()

	err := cfg.SetDomainControllers([]string{})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.EqualError(t, err, "must specify at least one domain controller")

	// Order preserved, duplicates kept.
	require.NoError(t, cfg.SetDomainControllers([]string{"dc2", "dc1", "dc2"}))
	assert.Equal(t, []string{"dc2", "dc1", "dc2"}, cfg.DomainControllers())

	// A failed set leaves the previous value in place.
	require.Error(t, cfg.SetDomainControllers([]string{}))
	assert.Equal(t, []string{"dc2", "dc1", "dc2"}, cfg.DomainControllers())
}

func TestConnectionConfig_DomainControllersCopy(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.SetDomainControllers([]string{"dc1", "dc2"}))

	got := cfg.DomainControllers()
	got[0] = "mutated"

	assert.Equal(t, []string{"dc1", "dc2"}, cfg.DomainControllers())
}

func TestConnectionConfig_BooleanCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "bool true", value: true, want: true},
		{name: "bool false", value: false, want: false},
		{name: "string true", value: "true", want: true},
		{name: "string one", value: "1", want: true},
		{name: "int one", value: 1, want: true},
		{name: "int zero", value: 0, want: false},
		{name: "empty string", value: "", want: false},
		{name: "unparseable string", value: "abc", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()

			cfg.SetUseTLS(tt.value)
			assert.Equal(t, tt.want, cfg.UseTLS(), "UseTLS")

			cfg.SetFollowReferrals(tt.value)
			assert.Equal(t, tt.want, cfg.FollowReferrals(), "FollowReferrals")
		})
	}
}

func TestConnectionConfig_StringCoercion(t *testing.T) {
	cfg := Default()

	cfg.SetBaseDN("DC=example,DC=com")
	assert.Equal(t, "DC=example,DC=com", cfg.BaseDN())

	cfg.SetAccountPrefix("EXAMPLE\\")
	assert.Equal(t, "EXAMPLE\\", cfg.AccountPrefix())

	cfg.SetAccountSuffix("@example.com")
	assert.Equal(t, "@example.com", cfg.AccountSuffix())

	// Non-string values store their string form.
	cfg.SetAccountPrefix(42)
	assert.Equal(t, "42", cfg.AccountPrefix())
}

func TestConnectionConfig_AdminCredentials(t *testing.T) {
	cfg := Default()

	// Unset fields surface as empty strings.
	assert.Equal(t, AdminCredentials{}, cfg.AdminCredentials())
	assert.False(t, cfg.HasAdminCredentials())

	cfg.SetAdminUsername("alice")
	assert.False(t, cfg.HasAdminCredentials(), "username alone is not enough")

	cfg.SetAdminPassword("secret")
	cfg.SetAdminAccountSuffix("@corp.local")

	assert.True(t, cfg.HasAdminCredentials())
	assert.Equal(t, AdminCredentials{
		Username:      "alice",
		Password:      "secret",
		AccountSuffix: "@corp.local",
	}, cfg.AdminCredentials())
}
