package database

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"olyncha_back_end/internal/storage"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"
)

// --- Variables globales ---
var (
	RedisClient *redis.Client
	Elastic     *elasticsearch.Client
	Scylla      *gocql.Session

	// KV est le stockage durable effectif : Redis si disponible,
	// sinon repli mémoire (le storefront reste utilisable en dev).
	KV storage.KV
	// Notifier publie les changements de panier (nil sans Redis).
	Notifier storage.Notifier
)

// ConnectDatabases initialise Redis (stockage durable), et en option
// ScyllaDB (archive des commandes) et Elasticsearch (recherche).
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectRedis(ctx)
	connectScylla()
	connectElastic()

	log.Println("✅ Connexions base de données initialisées")
}

// =============================================
// REDIS — stockage clé-valeur durable
// =============================================
func connectRedis(ctx context.Context) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("⚠️ REDIS_HOST non configuré — stockage en mémoire (non durable)")
		KV = storage.NewMemoryKV()
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         host,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis injoignable (%v) — stockage en mémoire (non durable)", err)
		RedisClient = nil
		KV = storage.NewMemoryKV()
		return
	}

	kv := storage.NewRedisKV(RedisClient)
	KV = kv
	Notifier = kv
	log.Println("✅ Connecté à Redis")
}

// =============================================
// SCYLLA DB — archive des commandes (optionnel)
// =============================================
func connectScylla() {
	hosts := os.Getenv("SCYLLA_HOSTS")
	keyspace := os.Getenv("SCYLLA_KEYSPACE")
	if hosts == "" || keyspace == "" {
		log.Println("ℹ️ ScyllaDB non configuré — commandes en mémoire")
		return
	}

	cluster := gocql.NewCluster(strings.Split(hosts, ",")...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.ReconnectInterval = 1 * time.Second
	if user := os.Getenv("SCYLLA_USERNAME"); user != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: user,
			Password: os.Getenv("SCYLLA_PASSWORD"),
		}
	}
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	session, err := cluster.CreateSession()
	if err != nil {
		log.Printf("⚠️ ScyllaDB injoignable (%v) — commandes en mémoire", err)
		return
	}

	Scylla = session
	log.Printf("✅ Connecté à ScyllaDB (keyspace %s)", keyspace)
}

// CloseScylla ferme la session ScyllaDB si elle existe.
func CloseScylla() {
	if Scylla != nil {
		Scylla.Close()
		log.Println("🔌 Session ScyllaDB fermée")
	}
}

// =============================================
// ELASTICSEARCH — recherche produits (optionnel)
// =============================================
func connectElastic() {
	url := os.Getenv("ELASTIC_URL")
	if url == "" {
		log.Println("ℹ️ Elasticsearch non configuré — recherche en mémoire")
		return
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	})
	if err != nil {
		log.Printf("⚠️ Erreur création client Elasticsearch: %v", err)
		return
	}

	res, err := client.Info()
	if err != nil {
		log.Printf("⚠️ Elasticsearch injoignable (%v) — recherche en mémoire", err)
		return
	}
	defer res.Body.Close()

	Elastic = client
	log.Println("✅ Connecté à Elasticsearch")
}
