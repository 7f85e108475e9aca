package orders

import (
	"regexp"
	"testing"
	"time"

	"olyncha_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d+-[0-9a-z]{9}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewOrderID()
		assert.Regexp(t, pattern, id)
		// collision ≈ 0, pas garantie par construction
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestMemoryRepositoryCreateAndLookup(t *testing.T) {
	repo := NewMemoryRepository()

	order := repo.Create(models.Order{
		ID:     NewOrderID(),
		UserID: "1",
		Items:  []models.LineItem{{ID: "matcha-latte", Quantity: 2, Price: 6.95}},
		Status: models.OrderStatusPlaced,
	})

	got, ok := repo.GetByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, order, got)

	_, ok = repo.GetByID("doesnotexist")
	assert.False(t, ok)
}

func TestMemoryRepositoryGetByUser(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Create(models.Order{ID: "a", UserID: "1"})
	repo.Create(models.Order{ID: "b", UserID: "2"})
	repo.Create(models.Order{ID: "c", UserID: "1"})

	mine := repo.GetByUser("1")
	assert.Len(t, mine, 2)

	// utilisateur sans commande → liste vide, pas une erreur
	assert.Empty(t, repo.GetByUser("999"))
}

func TestMemoryRepositoryList(t *testing.T) {
	repo := NewMemoryRepository()
	assert.Empty(t, repo.List())

	repo.Create(models.Order{ID: "a"})
	repo.Create(models.Order{ID: "b"})
	assert.Len(t, repo.List(), 2)
}

func TestUpdateStatus(t *testing.T) {
	repo := NewMemoryRepository()
	before := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	repo.Create(models.Order{ID: "a", Status: models.OrderStatusPlaced, UpdatedAt: before})

	updated, ok := repo.UpdateStatus("a", models.OrderStatusPreparing)
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusPreparing, updated.Status)
	assert.NotEqual(t, before, updated.UpdatedAt)

	// aucune validation de transition : toute valeur est acceptée
	updated, ok = repo.UpdateStatus("a", "teleported")
	require.True(t, ok)
	assert.Equal(t, "teleported", updated.Status)

	_, ok = repo.UpdateStatus("doesnotexist", models.OrderStatusDelivered)
	assert.False(t, ok)
}
