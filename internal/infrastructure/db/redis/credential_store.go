package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

// ErrNoToken is returned by SetProfile when the profile has no token to
// belong to, e.g. because a logout won the race against a validation.
var ErrNoToken = errors.New("credential store: no token for profile")

// setProfileScript writes the profile only while the token exists, and
// slides both keys' expiry.
// KEYS[1] token key, KEYS[2] user key; ARGV[1] profile JSON, ARGV[2] ttl ms.
var setProfileScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 0
end
local ttl = tonumber(ARGV[2])
if ttl > 0 then
  redis.call('SET', KEYS[2], ARGV[1], 'PX', ttl)
  redis.call('PEXPIRE', KEYS[1], ttl)
else
  redis.call('SET', KEYS[2], ARGV[1])
end
return 1
`)

// refreshProfileScript is setProfileScript guarded by the token value.
// KEYS[1] token key, KEYS[2] user key; ARGV[1] expected token,
// ARGV[2] profile JSON, ARGV[3] ttl ms.
var refreshProfileScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) ~= ARGV[1] then
  return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
  redis.call('SET', KEYS[2], ARGV[2], 'PX', ttl)
  redis.call('PEXPIRE', KEYS[1], ttl)
else
  redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// clearIfScript deletes both keys only while the token is ARGV[1].
var clearIfScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1], KEYS[2])
end
return 0
`)

// CredentialStore keeps bearer tokens and cached profiles in Redis, one pair
// of keys per browser profile:
//
//	dashboard:profile:<id>:token  bearer token
//	dashboard:profile:<id>:user   profile JSON
type CredentialStore struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCredentialStore wraps client. A positive ttl expires idle credentials;
// every write pushes the expiry forward.
func NewCredentialStore(client *redis.Client, ttl time.Duration, log zerolog.Logger) *CredentialStore {
	return &CredentialStore{client: client, ttl: ttl, log: log}
}

// ForProfile returns the store bound to one browser profile.
func (s *CredentialStore) ForProfile(profileID string) ports.CredentialStore {
	return &profileCredentials{
		store:    s,
		tokenKey: fmt.Sprintf("dashboard:profile:%s:token", profileID),
		userKey:  fmt.Sprintf("dashboard:profile:%s:user", profileID),
	}
}

type profileCredentials struct {
	store    *CredentialStore
	tokenKey string
	userKey  string
}

func (p *profileCredentials) SetToken(ctx context.Context, token string) error {
	if err := p.store.client.Set(ctx, p.tokenKey, token, p.store.ttl).Err(); err != nil {
		return fmt.Errorf("set token: %w", err)
	}
	return nil
}

func (p *profileCredentials) Token(ctx context.Context) (string, bool) {
	token, err := p.store.client.Get(ctx, p.tokenKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.store.log.Warn().Err(err).Str("key", p.tokenKey).Msg("token read failed, treating as absent")
		}
		return "", false
	}
	return token, token != ""
}

func (p *profileCredentials) HasToken(ctx context.Context) bool {
	_, ok := p.Token(ctx)
	return ok
}

func (p *profileCredentials) SetProfile(ctx context.Context, profile *domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	n, err := setProfileScript.Run(ctx, p.store.client,
		[]string{p.tokenKey, p.userKey}, string(raw), p.store.ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	if n == 0 {
		return ErrNoToken
	}
	return nil
}

func (p *profileCredentials) RefreshProfile(ctx context.Context, token string, profile *domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	n, err := refreshProfileScript.Run(ctx, p.store.client,
		[]string{p.tokenKey, p.userKey}, token, string(raw), p.store.ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("refresh profile: %w", err)
	}
	if n == 0 {
		return domain.ErrCredentialsChanged
	}
	return nil
}

func (p *profileCredentials) Profile(ctx context.Context) (*domain.Profile, bool) {
	raw, err := p.store.client.Get(ctx, p.userKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.store.log.Warn().Err(err).Str("key", p.userKey).Msg("profile read failed, treating as absent")
		}
		return nil, false
	}

	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		p.store.log.Warn().Err(err).Str("key", p.userKey).Msg("stored profile is not valid JSON")
		return nil, false
	}
	return &profile, true
}

func (p *profileCredentials) Set(ctx context.Context, token string, profile *domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	_, err = p.store.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, p.tokenKey, token, p.store.ttl)
		pipe.Set(ctx, p.userKey, raw, p.store.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("set credentials: %w", err)
	}
	return nil
}

// Clear deletes both keys with a single DEL, so no reader ever sees one
// without the other.
func (p *profileCredentials) Clear(ctx context.Context) error {
	if err := p.store.client.Del(ctx, p.tokenKey, p.userKey).Err(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

func (p *profileCredentials) ClearIf(ctx context.Context, token string) error {
	if err := clearIfScript.Run(ctx, p.store.client, []string{p.tokenKey, p.userKey}, token).Err(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
