// handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fundilink/catalog"
	"fundilink/locations"
)

// GetCategoriesHandler handles GET /api/catalog/categories.
func GetCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}

// GetCategoryHandler handles GET /api/catalog/categories/:key with its services.
func GetCategoryHandler(c *gin.Context) {
	key := c.Param("key")
	category, ok := catalog.Get(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category", "message": "No such service category."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"services": catalog.ServicesFor(key),
	})
}

// SearchServicesHandler handles GET /api/catalog/services/search?q=.
func SearchServicesHandler(c *gin.Context) {
	query := c.Query("q")
	c.JSON(http.StatusOK, gin.H{"services": catalog.SearchServices(query)})
}

// Location cascade endpoints feed the dependent county, sub-county, ward
// and area selects.

func GetCountiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"counties": locations.Counties()})
}

func GetSubCountiesHandler(c *gin.Context) {
	county := c.Param("county")
	c.JSON(http.StatusOK, gin.H{"sub_counties": locations.SubCounties(county)})
}

func GetWardsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"wards": locations.Wards(c.Param("county"), c.Param("subCounty"))})
}

func GetAreasHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"areas": locations.Areas(c.Param("county"), c.Param("subCounty"), c.Param("ward")),
	})
}
