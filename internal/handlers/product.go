package handlers

import (
	"net/http"

	"olyncha_back_end/internal/catalog"
	"olyncha_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /api/products?category=&search=
//
func GetProducts(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	// Elasticsearch si disponible, sinon filtre mémoire du catalogue
	if search != "" {
		if hits, ok := services.SearchProducts(search); ok {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": hits, "total": len(hits)})
			return
		}
	}

	products := catalog.Filter(category, search)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": products, "total": len(products)})
}

//
// 🟢 GET /api/products/:id
//
func GetProductByID(c *gin.Context) {
	product, ok := catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

//
// 🟢 POST /api/products — actions utilitaires (getCategories)
//
func ProductActions(c *gin.Context) {
	var body struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Action != "getCategories" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": catalog.Categories()})
}
