package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/isometry/adconnect/config"
)

// ErrNotConnected is returned by operations that require an established
// connection before Connect has succeeded.
var ErrNotConnected = errors.New("not connected to a domain controller")

// defaultDialTimeout bounds each individual controller dial attempt.
const defaultDialTimeout = 10 * time.Second

// SearchScope defines LDAP search scope.
type SearchScope int

const (
	ScopeBaseObject SearchScope = iota
	ScopeSingleLevel
	ScopeWholeSubtree
)

// SearchRequest encapsulates LDAP search parameters.
type SearchRequest struct {
	BaseDN     string
	Scope      SearchScope
	Filter     string
	Attributes []string
	SizeLimit  int
	TimeLimit  time.Duration
}

// SearchResult contains search results and any referrals the server
// returned that were not chased.
type SearchResult struct {
	Entries   []*ldap.Entry
	Referrals []string
}

// Client establishes and operates a directory session using the settings
// held by a config.ConnectionConfig.
type Client interface {
	// Connect dials the configured domain controllers in order and keeps
	// the first connection that succeeds.
	Connect(ctx context.Context) error

	// Bind authenticates the session with the administrator credentials.
	Bind(ctx context.Context) error

	// Search runs a search over the established session.
	Search(ctx context.Context, req *SearchRequest) (*SearchResult, error)

	// Close tears down the session. Safe to call more than once.
	Close() error
}

// ClientOption adjusts client behavior at construction.
type ClientOption func(*client)

// WithLogger sets the logger used for connection events.
func WithLogger(log Logger) ClientOption {
	return func(c *client) {
		c.log = log
	}
}

// WithDialTimeout bounds each controller dial attempt.
func WithDialTimeout(timeout time.Duration) ClientOption {
	return func(c *client) {
		c.dialTimeout = timeout
	}
}

// client implements the Client interface.
type client struct {
	cfg         *config.ConnectionConfig
	log         Logger
	dialTimeout time.Duration

	mu     sync.Mutex
	conn   *ldap.Conn
	connID string
}

// New creates a client for the given configuration. The configuration must
// be fully populated before New is called and must not be mutated
// afterwards.
func New(cfg *config.ConnectionConfig, opts ...ClientOption) Client {
	c := &client{
		cfg:         cfg,
		log:         NopLogger{},
		dialTimeout: defaultDialTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// serverURL forms the dial URL for one controller, switching scheme on the
// TLS setting.
func serverURL(host, port string, useTLS bool) string {
	scheme := "ldap"
	if useTLS {
		scheme = "ldaps"
	}
	return fmt.Sprintf("%s://%s", scheme, net.JoinHostPort(host, port))
}

// Connect dials each configured controller in order until one accepts.
// Every failed attempt is retained in the returned error when all of them
// fail.
func (c *client) Connect(ctx context.Context) error {
	controllers := c.cfg.DomainControllers()
	if len(controllers) == 0 {
		return errors.New("no domain controllers configured")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	var errs *multierror.Error
	for _, host := range controllers {
		if err := ctx.Err(); err != nil {
			return err
		}

		url := serverURL(host, c.cfg.Port(), c.cfg.UseTLS())
		conn, err := ldap.DialURL(url, ldap.DialWithDialer(&net.Dialer{Timeout: c.dialTimeout}))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", host, err))
			c.log.Warn("domain controller unreachable", map[string]any{
				"host":  host,
				"error": err.Error(),
			})
			continue
		}

		c.conn = conn
		c.connID = uuid.NewString()
		c.log.Info("connection established", map[string]any{
			"connection_id": c.connID,
			"host":          host,
			"port":          c.cfg.Port(),
			"tls":           c.cfg.UseTLS(),
		})
		return nil
	}

	return fmt.Errorf("all domain controllers failed: %w", errs.ErrorOrNil())
}

// Bind authenticates the session using the administrator credential
// triple. An empty password with a username performs an anonymous bind.
func (c *client) Bind(ctx context.Context) error {
	creds := c.cfg.AdminCredentials()
	if creds.Username == "" {
		return errors.New("no administrator credentials configured")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	identity := c.bindIdentity(creds)
	fields := map[string]any{
		"connection_id":  c.connID,
		"bind_identity":  identity,
		"anonymous_bind": creds.Password == "",
	}
	c.log.Debug("performing simple bind", fields)

	if err := c.conn.Bind(identity, creds.Password); err != nil {
		fields["error"] = err.Error()
		c.log.Error("bind failed", fields)
		return fmt.Errorf("bind as %q: %w", identity, err)
	}

	c.log.Info("bind successful", fields)
	return nil
}

// bindIdentity forms the identity presented at bind time: the account
// prefix, the administrator username, and the administrator suffix when
// set, falling back to the general account suffix.
func (c *client) bindIdentity(creds config.AdminCredentials) string {
	suffix := creds.AccountSuffix
	if suffix == "" {
		suffix = c.cfg.AccountSuffix()
	}
	return c.cfg.AccountPrefix() + creds.Username + suffix
}

// Search runs a search over the established session. When the server
// returns referrals and the configuration enables following them, the
// first referral is chased once and its entries merged into the result;
// otherwise referrals are surfaced untouched on the result.
func (c *client) Search(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	if req == nil {
		return nil, errors.New("search request cannot be nil")
	}

	c.mu.Lock()
	conn := c.conn
	connID := c.connID
	c.mu.Unlock()

	if conn == nil {
		return nil, ErrNotConnected
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	baseDN := req.BaseDN
	if baseDN == "" {
		baseDN = c.cfg.BaseDN()
	}

	result, err := conn.Search(c.toLDAPRequest(req, baseDN))
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	out := &SearchResult{Entries: result.Entries}

	if len(result.Referrals) == 0 {
		return out, nil
	}

	if !c.cfg.FollowReferrals() {
		out.Referrals = result.Referrals
		return out, nil
	}

	c.log.Debug("chasing referral", map[string]any{
		"connection_id": connID,
		"referral":      result.Referrals[0],
	})

	referred, err := c.chaseReferral(ctx, req, baseDN, result.Referrals[0])
	if err != nil {
		return nil, fmt.Errorf("referral to %q: %w", result.Referrals[0], err)
	}
	out.Entries = append(out.Entries, referred.Entries...)
	out.Referrals = referred.Referrals

	return out, nil
}

// chaseReferral opens a short-lived session against the referred server,
// binds with the same identity, and repeats the search there. Referrals
// returned by the referred server are not chased further.
func (c *client) chaseReferral(ctx context.Context, req *SearchRequest, baseDN, referralURL string) (*SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	conn, err := ldap.DialURL(referralURL, ldap.DialWithDialer(&net.Dialer{Timeout: c.dialTimeout}))
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if creds := c.cfg.AdminCredentials(); creds.Username != "" {
		if err := conn.Bind(c.bindIdentity(creds), creds.Password); err != nil {
			return nil, err
		}
	}

	result, err := conn.Search(c.toLDAPRequest(req, baseDN))
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Entries:   result.Entries,
		Referrals: result.Referrals,
	}, nil
}

// toLDAPRequest converts the request envelope to a go-ldap request.
func (c *client) toLDAPRequest(req *SearchRequest, baseDN string) *ldap.SearchRequest {
	return ldap.NewSearchRequest(
		baseDN,
		int(req.Scope),
		ldap.NeverDerefAliases,
		req.SizeLimit,
		int(req.TimeLimit.Seconds()),
		false,
		req.Filter,
		req.Attributes,
		nil,
	)
}

// Close tears down the session.
func (c *client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.log.Info("connection closed", map[string]any{"connection_id": c.connID})
	c.conn = nil
	c.connID = ""

	if err != nil {
		return fmt.Errorf("close connection: %w", err)
	}
	return nil
}
