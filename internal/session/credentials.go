package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zalando/go-keyring"

	"talentreq-client/internal/models"
)

const (
	tokenAccount = "access-token"
	userFileName = "user.json"
)

// Credentials persists the access token and the signed-in user record across
// process restarts. An empty token or nil user with a nil error means
// nothing is stored.
type Credentials interface {
	AccessToken() (string, error)
	SetAccessToken(token string) error
	ClearAccessToken() error
	User() (*models.User, error)
	SetUser(user models.User) error
	ClearUser() error
}

// KeyringCredentials keeps the access token in the OS keychain and the user
// record as a JSON file under the state directory.
type KeyringCredentials struct {
	// Service groups the app's secrets in the OS keychain.
	Service  string
	StateDir string
}

// NewKeyringCredentials creates the credential store backing the session.
func NewKeyringCredentials(service, stateDir string) (*KeyringCredentials, error) {
	if strings.TrimSpace(service) == "" {
		return nil, errors.New("keyring service name is empty")
	}
	if err := os.MkdirAll(stateDir, 0o700); err != nil {
		return nil, err
	}
	return &KeyringCredentials{Service: service, StateDir: stateDir}, nil
}

func (k *KeyringCredentials) AccessToken() (string, error) {
	token, err := keyring.Get(k.Service, tokenAccount)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

func (k *KeyringCredentials) SetAccessToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("access token is empty")
	}
	return keyring.Set(k.Service, tokenAccount, token)
}

func (k *KeyringCredentials) ClearAccessToken() error {
	if err := keyring.Delete(k.Service, tokenAccount); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

func (k *KeyringCredentials) User() (*models.User, error) {
	data, err := os.ReadFile(k.userPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (k *KeyringCredentials) SetUser(user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(k.userPath(), data, 0o600)
}

func (k *KeyringCredentials) ClearUser() error {
	if err := os.Remove(k.userPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (k *KeyringCredentials) userPath() string {
	return filepath.Join(k.StateDir, userFileName)
}

// MemoryCredentials is an in-memory Credentials used by tests and one-shot
// CLI invocations that must not touch the keychain.
type MemoryCredentials struct {
	mu    sync.Mutex
	token string
	user  *models.User
}

func (m *MemoryCredentials) AccessToken() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryCredentials) SetAccessToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryCredentials) ClearAccessToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

func (m *MemoryCredentials) User() (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, nil
	}
	u := *m.user
	return &u, nil
}

func (m *MemoryCredentials) SetUser(user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	return nil
}

func (m *MemoryCredentials) ClearUser() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	return nil
}
