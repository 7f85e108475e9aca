// Package storage expose le stockage clé-valeur durable (équivalent
// serveur du localStorage) : valeurs JSON écrites en bloc, jamais en
// patch partiel.
package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("clé introuvable")

type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Notifier publie un événement de changement pour une clé (pub/sub).
// Utilisé par la synchro websocket du panier.
type Notifier interface {
	Publish(ctx context.Context, channel, payload string) error
}
