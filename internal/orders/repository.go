// Package orders stocke les commandes derrière une interface de
// repository : implémentation mémoire par défaut (durée de vie du
// process, jamais de suppression), ScyllaDB en option.
package orders

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"olyncha_back_end/internal/models"
)

type Repository interface {
	Create(order models.Order) models.Order
	GetByID(id string) (models.Order, bool)
	GetByUser(userID string) []models.Order
	List() []models.Order
	UpdateStatus(id, status string) (models.Order, bool)
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderID génère un id de la forme ORD-<timestamp ms>-<suffixe base36>.
// L'unicité n'est pas garantie par construction, seulement très probable.
func NewOrderID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		suffix[i] = base36[n.Int64()]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

// --- Implémentation mémoire ---

type MemoryRepository struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(order models.Order) models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
	return order
}

func (r *MemoryRepository) GetByID(id string) (models.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

func (r *MemoryRepository) GetByUser(userID string) []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []models.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result
}

func (r *MemoryRepository) List() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Order{}, r.orders...)
}

// UpdateStatus pose le statut tel quel (aucune validation de
// transition) et rafraîchit updatedAt.
func (r *MemoryRepository) UpdateStatus(id, status string) (models.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			return r.orders[i], true
		}
	}
	return models.Order{}, false
}
