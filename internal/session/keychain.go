package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/handygo/tenant-client/internal/domain"
)

const (
	KeyToken  = "token"
	KeyUser   = "user"
	KeyTenant = "tenant"
)

// Keychain reads and writes the three session keys on top of a Store.
type Keychain struct {
	store Store
}

func NewKeychain(store Store) *Keychain {
	return &Keychain{store: store}
}

// Save persists a login result. A result without a tenant removes any tenant left
// from an earlier session. If any write fails the keys are cleared, so a failed
// save never leaves a half-written session behind.
func (k *Keychain) Save(ctx context.Context, res domain.AuthResult) error {
	userJSON, err := json.Marshal(res.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	var tenantJSON []byte
	if res.Tenant != nil {
		if tenantJSON, err = json.Marshal(res.Tenant); err != nil {
			return fmt.Errorf("failed to encode tenant: %w", err)
		}
	}

	if err := k.write(ctx, res.Token, userJSON, tenantJSON); err != nil {
		if cerr := k.Clear(ctx); cerr != nil {
			return errors.Join(err, fmt.Errorf("failed to roll back session: %w", cerr))
		}
		return err
	}
	return nil
}

func (k *Keychain) write(ctx context.Context, token string, userJSON, tenantJSON []byte) error {
	if err := k.store.Set(ctx, KeyToken, token); err != nil {
		return err
	}
	if err := k.store.Set(ctx, KeyUser, string(userJSON)); err != nil {
		return err
	}
	if tenantJSON == nil {
		return k.store.Delete(ctx, KeyTenant)
	}
	return k.store.Set(ctx, KeyTenant, string(tenantJSON))
}

func (k *Keychain) Token(ctx context.Context) (string, error) {
	token, _, err := k.store.Get(ctx, KeyToken)
	return token, err
}

// User returns nil when nobody is logged in.
func (k *Keychain) User(ctx context.Context) (*domain.User, error) {
	var user domain.User
	ok, err := k.load(ctx, KeyUser, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (k *Keychain) Tenant(ctx context.Context) (*domain.Tenant, error) {
	var tenant domain.Tenant
	ok, err := k.load(ctx, KeyTenant, &tenant)
	if err != nil || !ok {
		return nil, err
	}
	return &tenant, nil
}

// Clear removes all three keys together.
func (k *Keychain) Clear(ctx context.Context) error {
	for _, key := range []string{KeyToken, KeyUser, KeyTenant} {
		if err := k.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (k *Keychain) load(ctx context.Context, key string, out any) (bool, error) {
	raw, ok, err := k.store.Get(ctx, key)
	if err != nil || !ok || raw == "" {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("failed to decode session %s: %w", key, err)
	}
	return true, nil
}
