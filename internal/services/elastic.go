package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"

	"olyncha_back_end/internal/catalog"
	"olyncha_back_end/internal/database"
	"olyncha_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const productsIndex = "products"

//
// --- INDEXATION DU CATALOGUE ---
//

// IndexCatalog indexe tout le catalogue statique au démarrage.
func IndexCatalog() {
	if database.Elastic == nil {
		return
	}
	for _, p := range catalog.All() {
		indexProduct(p)
	}
	log.Printf("✅ Catalogue indexé dans Elasticsearch (%d produits)", len(catalog.All()))
}

func indexProduct(p models.Product) {
	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productsIndex,
		DocumentID: p.ID,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur indexation Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", p.Name, res.String())
	}
}

//
// --- RECHERCHE ---
//

// SearchProducts interroge Elasticsearch sur nom, description et tags.
// Retourne (nil, false) si Elastic est indisponible ou en erreur : le
// handler retombe alors sur le filtre en mémoire du catalogue.
func SearchProducts(query string) ([]models.Product, bool) {
	if database.Elastic == nil {
		return nil, false
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "tags"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, false
	}

	req := esapi.SearchRequest{
		Index: []string{productsIndex},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("⚠️ Erreur requête Elastic:", err)
		return nil, false
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Println("⚠️ Réponse Elastic en erreur:", res.String())
		return nil, false
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, false
	}

	products := []models.Product{}
	for _, hit := range parsed.Hits.Hits {
		products = append(products, hit.Source)
	}
	return products, true
}
