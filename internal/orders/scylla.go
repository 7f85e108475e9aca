package orders

import (
	"encoding/json"
	"log"
	"time"

	"olyncha_back_end/internal/models"

	"github.com/gocql/gocql"
)

// ScyllaRepository : même contrat que le repository mémoire, adossé à
// la table orders du keyspace configuré. Les items et customerInfo
// sont stockés en JSON (instantanés, jamais re-joints au catalogue).
//
// Schéma attendu :
//
//	CREATE TABLE orders (
//	    order_id text PRIMARY KEY,
//	    user_id text,
//	    items text,
//	    subtotal double, tax double, delivery_fee double, total double,
//	    status text,
//	    customer_info text,
//	    payment_method text,
//	    created_at text, updated_at text, estimated_delivery text
//	);
type ScyllaRepository struct {
	session *gocql.Session
}

func NewScyllaRepository(session *gocql.Session) *ScyllaRepository {
	return &ScyllaRepository{session: session}
}

func (r *ScyllaRepository) Create(order models.Order) models.Order {
	itemsJSON, _ := json.Marshal(order.Items)
	customerJSON, _ := json.Marshal(order.CustomerInfo)

	err := r.session.Query(`INSERT INTO orders
		(order_id, user_id, items, subtotal, tax, delivery_fee, total, status,
		 customer_info, payment_method, created_at, updated_at, estimated_delivery)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.UserID, string(itemsJSON),
		order.Subtotal, order.Tax, order.DeliveryFee, order.Total, order.Status,
		string(customerJSON), order.PaymentMethod,
		order.CreatedAt, order.UpdatedAt, order.EstimatedDelivery).Exec()
	if err != nil {
		log.Printf("❌ Erreur insertion commande %s dans Scylla: %v", order.ID, err)
	}
	return order
}

func (r *ScyllaRepository) GetByID(id string) (models.Order, bool) {
	order, ok := r.scan(`SELECT order_id, user_id, items, subtotal, tax, delivery_fee,
		total, status, customer_info, payment_method, created_at, updated_at,
		estimated_delivery FROM orders WHERE order_id = ?`, id)
	if !ok {
		return models.Order{}, false
	}
	return order, true
}

func (r *ScyllaRepository) GetByUser(userID string) []models.Order {
	return r.query(`SELECT order_id, user_id, items, subtotal, tax, delivery_fee,
		total, status, customer_info, payment_method, created_at, updated_at,
		estimated_delivery FROM orders WHERE user_id = ? ALLOW FILTERING`, userID)
}

func (r *ScyllaRepository) List() []models.Order {
	return r.query(`SELECT order_id, user_id, items, subtotal, tax, delivery_fee,
		total, status, customer_info, payment_method, created_at, updated_at,
		estimated_delivery FROM orders`)
}

func (r *ScyllaRepository) UpdateStatus(id, status string) (models.Order, bool) {
	order, ok := r.GetByID(id)
	if !ok {
		return models.Order{}, false
	}

	updatedAt := time.Now().UTC().Format(time.RFC3339)
	err := r.session.Query(`UPDATE orders SET status = ?, updated_at = ? WHERE order_id = ?`,
		status, updatedAt, id).Exec()
	if err != nil {
		log.Printf("❌ Erreur mise à jour statut %s: %v", id, err)
		return models.Order{}, false
	}

	order.Status = status
	order.UpdatedAt = updatedAt
	return order, true
}

func (r *ScyllaRepository) scan(stmt string, values ...interface{}) (models.Order, bool) {
	var o models.Order
	var itemsJSON, customerJSON string

	err := r.session.Query(stmt, values...).Scan(
		&o.ID, &o.UserID, &itemsJSON, &o.Subtotal, &o.Tax, &o.DeliveryFee,
		&o.Total, &o.Status, &customerJSON, &o.PaymentMethod,
		&o.CreatedAt, &o.UpdatedAt, &o.EstimatedDelivery)
	if err != nil {
		return models.Order{}, false
	}

	_ = json.Unmarshal([]byte(itemsJSON), &o.Items)
	_ = json.Unmarshal([]byte(customerJSON), &o.CustomerInfo)
	if o.Items == nil {
		o.Items = []models.LineItem{}
	}
	return o, true
}

func (r *ScyllaRepository) query(stmt string, values ...interface{}) []models.Order {
	iter := r.session.Query(stmt, values...).Iter()
	defer iter.Close()

	result := []models.Order{}
	var o models.Order
	var itemsJSON, customerJSON string
	for iter.Scan(&o.ID, &o.UserID, &itemsJSON, &o.Subtotal, &o.Tax, &o.DeliveryFee,
		&o.Total, &o.Status, &customerJSON, &o.PaymentMethod,
		&o.CreatedAt, &o.UpdatedAt, &o.EstimatedDelivery) {
		order := o
		_ = json.Unmarshal([]byte(itemsJSON), &order.Items)
		_ = json.Unmarshal([]byte(customerJSON), &order.CustomerInfo)
		if order.Items == nil {
			order.Items = []models.LineItem{}
		}
		result = append(result, order)
	}
	return result
}
