package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"olyncha_back_end/internal/models"
	"olyncha_back_end/internal/storage"
)

// TTL aligné sur la durée de vie du panier côté client (30 jours)
const cartTTL = 30 * 24 * time.Hour

func cartKey(sessionID string) string { return "cart:" + sessionID }

// Store persiste la liste des items après chaque mutation et notifie
// les observateurs (websocket). Le flag isOpen reste en mémoire par
// session et n'est jamais persisté.
type Store struct {
	kv       storage.KV
	notifier storage.Notifier // optionnel

	mu   sync.Mutex
	open map[string]bool
}

func NewStore(kv storage.KV, notifier storage.Notifier) *Store {
	return &Store{
		kv:       kv,
		notifier: notifier,
		open:     make(map[string]bool),
	}
}

// Items hydrate le panier depuis le stockage. Une clé absente ou un
// JSON corrompu dégradent silencieusement vers un panier vide :
// l'hydratation n'échoue jamais.
func (s *Store) Items(ctx context.Context, sessionID string) []models.LineItem {
	data, err := s.kv.Get(ctx, cartKey(sessionID))
	if err != nil || data == "" {
		return []models.LineItem{}
	}

	var items []models.LineItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		log.Printf("⚠️ Panier %s illisible, on repart de zéro: %v", sessionID, err)
		return []models.LineItem{}
	}
	if items == nil {
		items = []models.LineItem{}
	}
	return items
}

func (s *Store) AddItem(ctx context.Context, sessionID string, item models.LineItem) []models.LineItem {
	items := Add(s.Items(ctx, sessionID), item)
	s.persist(ctx, sessionID, items)
	return items
}

func (s *Store) RemoveItem(ctx context.Context, sessionID, id string) []models.LineItem {
	items := Remove(s.Items(ctx, sessionID), id)
	s.persist(ctx, sessionID, items)
	return items
}

func (s *Store) UpdateQuantity(ctx context.Context, sessionID, id string, quantity int) []models.LineItem {
	items := UpdateQuantity(s.Items(ctx, sessionID), id, quantity)
	s.persist(ctx, sessionID, items)
	return items
}

func (s *Store) ClearCart(ctx context.Context, sessionID string) []models.LineItem {
	items := []models.LineItem{}
	s.persist(ctx, sessionID, items)
	return items
}

// persist ré-sérialise la liste complète (écriture en bloc, jamais de
// patch partiel) puis publie la notification de changement.
func (s *Store) persist(ctx context.Context, sessionID string, items []models.LineItem) {
	data, _ := json.Marshal(items)
	if err := s.kv.Set(ctx, cartKey(sessionID), string(data), cartTTL); err != nil {
		log.Printf("❌ Erreur sauvegarde panier %s: %v", sessionID, err)
		return
	}
	if s.notifier != nil {
		_ = s.notifier.Publish(ctx, cartKey(sessionID), "updated")
	}
}

// --- Flag UI isOpen (mémoire seulement) ---

func (s *Store) IsOpen(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open[sessionID]
}

func (s *Store) ToggleCart(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open[sessionID] = !s.open[sessionID]
	return s.open[sessionID]
}

func (s *Store) OpenCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open[sessionID] = true
}

func (s *Store) CloseCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open[sessionID] = false
}
