// Package share issues and resolves read-only share links. A share link
// freezes a copy of the document; later edits never change what a recipient
// sees. The link token is signed and carries its own expiry.
package share

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lithammer/shortuuid/v4"

	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTTL is how long a share link stays resolvable.
const DefaultTTL = 7 * 24 * time.Hour

// InvalidTokenError reports a share token that failed verification, including
// expiry.
type InvalidTokenError struct {
	Cause error
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid share token: %v", e.Cause)
}

func (e *InvalidTokenError) Unwrap() error {
	return e.Cause
}

// Link is an issued share link.
type Link struct {
	Key       string    `json:"key"`
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type claims struct {
	Key string `json:"key"`
	jwt.RegisteredClaims
}

// Manager issues tokens and stores the frozen copies they point at.
type Manager struct {
	store      storage.Store
	signingKey []byte
	baseURL    string
	ttl        time.Duration

	now func() time.Time
}

// NewManager creates a manager signing tokens with key and building URLs
// under baseURL.
func NewManager(store storage.Store, signingKey []byte, baseURL string) *Manager {
	return &Manager{
		store:      store,
		signingKey: signingKey,
		baseURL:    baseURL,
		ttl:        DefaultTTL,
		now:        time.Now,
	}
}

// Create freezes a copy of the snapshot under a fresh share key and returns a
// link whose token expires after the manager's TTL.
func (m *Manager) Create(ctx context.Context, snapshot types.Snapshot) (Link, error) {
	key := types.ShareKeyPrefix + shortuuid.New()
	frozen := snapshot.Clone()
	frozen.ID = key
	frozen.Date = m.now()

	if err := m.store.Save(ctx, key, frozen); err != nil {
		return Link{}, fmt.Errorf("failed to store share copy: %w", err)
	}

	expires := m.now().Add(m.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Key: key,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(m.now()),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := token.SignedString(m.signingKey)
	if err != nil {
		return Link{}, fmt.Errorf("failed to sign share token: %w", err)
	}

	return Link{
		Key:       key,
		Token:     signed,
		URL:       m.baseURL + "/share/" + signed,
		ExpiresAt: expires,
	}, nil
}

// Resolve verifies a token and loads the frozen copy it points at.
func (m *Manager) Resolve(ctx context.Context, token string) (*types.Snapshot, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.signingKey, nil
	})
	if err != nil {
		return nil, &InvalidTokenError{Cause: err}
	}

	snapshot, err := m.store.Load(ctx, parsed.Key)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, &storage.NotFoundError{Key: parsed.Key}
	}
	return snapshot, nil
}

// Revoke deletes the frozen copy behind a share key, invalidating its links.
func (m *Manager) Revoke(ctx context.Context, key string) error {
	return m.store.Remove(ctx, key)
}
