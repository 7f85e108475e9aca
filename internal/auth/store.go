// Package auth gère la session utilisateur : table de comptes en
// mémoire (un seul compte de démo au démarrage) et instantané du
// profil persisté dans le stockage clé-valeur, sans le mot de passe.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"olyncha_back_end/internal/models"
	"olyncha_back_end/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Erreurs retournées telles quelles au client, jamais levées en panic.
var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrNoUser             = errors.New("No user logged in")
	ErrUserExists         = errors.New("User already exists")
)

const (
	DemoEmail    = "demo@olyncha.com"
	demoPassword = "demo123"
)

func userKey(sessionID string) string { return "user:" + sessionID }

type account struct {
	user         models.User
	passwordHash string
}

type SignupData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

// ProfileUpdate : fusion superficielle, seul les champs non-nil
// écrasent l'existant.
type ProfileUpdate struct {
	Name    *string         `json:"name,omitempty"`
	Email   *string         `json:"email,omitempty"`
	Phone   *string         `json:"phone,omitempty"`
	Address *models.Address `json:"address,omitempty"`
}

type Store struct {
	kv storage.KV

	mu       sync.Mutex
	accounts []account
}

// NewStore crée le store avec le compte de démonstration pré-enregistré.
func NewStore(kv storage.KV) *Store {
	hash, _ := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	demo := account{
		user: models.User{
			ID:    "1",
			Email: DemoEmail,
			Name:  "Demo User",
			Phone: "(555) 123-4567",
			Address: &models.Address{
				Street:  "123 Main St",
				City:    "Rochester",
				State:   "NH",
				ZipCode: "03867",
			},
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		},
		passwordHash: string(hash),
	}
	return &Store{kv: kv, accounts: []account{demo}}
}

// Current hydrate la session : JSON valide → utilisateur connecté,
// JSON corrompu → clé supprimée + déconnecté, clé absente → déconnecté.
// Ne retourne jamais d'erreur.
func (s *Store) Current(ctx context.Context, sessionID string) (models.User, bool) {
	data, err := s.kv.Get(ctx, userKey(sessionID))
	if err != nil || data == "" {
		return models.User{}, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		log.Printf("⚠️ Session %s corrompue, suppression: %v", sessionID, err)
		_ = s.kv.Del(ctx, userKey(sessionID))
		return models.User{}, false
	}
	return user, true
}

// Login vérifie les identifiants contre la table de comptes. Échec →
// ErrInvalidCredentials, la session reste inchangée.
func (s *Store) Login(ctx context.Context, sessionID, email, password string) (models.User, error) {
	s.mu.Lock()
	var found *account
	for i := range s.accounts {
		if s.accounts[i].user.Email == email {
			found = &s.accounts[i]
			break
		}
	}
	s.mu.Unlock()

	if found == nil || bcrypt.CompareHashAndPassword([]byte(found.passwordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	s.persist(ctx, sessionID, found.user)
	// les requêtes authentifiées par token résolvent leur session sur
	// l'id utilisateur : on écrit le même instantané sous cette clé
	if sessionID != found.user.ID {
		s.persist(ctx, found.user.ID, found.user)
	}
	return found.user, nil
}

// Signup crée un compte avec un id frais et connecte la session.
// L'unicité de l'email n'est vérifiée que contre la table du process.
func (s *Store) Signup(ctx context.Context, sessionID string, data SignupData) (models.User, error) {
	s.mu.Lock()
	for i := range s.accounts {
		if s.accounts[i].user.Email == data.Email {
			s.mu.Unlock()
			return models.User{}, ErrUserExists
		}
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	user := models.User{
		ID:        uuid.NewString(),
		Email:     data.Email,
		Name:      data.Name,
		Phone:     data.Phone,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.accounts = append(s.accounts, account{user: user, passwordHash: string(hash)})
	s.mu.Unlock()

	s.persist(ctx, sessionID, user)
	if sessionID != user.ID {
		s.persist(ctx, user.ID, user)
	}
	return user, nil
}

// Logout supprime physiquement la clé de session : une hydratation
// immédiate retombe sur l'état déconnecté.
func (s *Store) Logout(ctx context.Context, sessionID string) {
	if err := s.kv.Del(ctx, userKey(sessionID)); err != nil {
		log.Printf("⚠️ Erreur suppression session %s: %v", sessionID, err)
	}
}

// UpdateProfile fusionne les champs fournis sur l'utilisateur courant
// (dernier écrit gagne) et persiste l'instantané complet.
func (s *Store) UpdateProfile(ctx context.Context, sessionID string, patch ProfileUpdate) (models.User, error) {
	user, ok := s.Current(ctx, sessionID)
	if !ok {
		return models.User{}, ErrNoUser
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Address != nil {
		user.Address = patch.Address
	}

	// garde la table de comptes cohérente avec le profil mis à jour
	s.mu.Lock()
	for i := range s.accounts {
		if s.accounts[i].user.ID == user.ID {
			s.accounts[i].user = user
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx, sessionID, user)
	return user, nil
}

func (s *Store) persist(ctx context.Context, sessionID string, user models.User) {
	data, _ := json.Marshal(user)
	if err := s.kv.Set(ctx, userKey(sessionID), string(data), 0); err != nil {
		log.Printf("❌ Erreur sauvegarde session %s: %v", sessionID, err)
	}
}
