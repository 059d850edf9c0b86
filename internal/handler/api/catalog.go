package api

import (
	"net/http"

	resdto "hotelcart/internal/handler/dto/response"
	"hotelcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List room types
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	views, err := h.catalogQueries.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp, err := resdto.FromRoomViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List menu items
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.MenuItemResponse
// @Router /menu [get]
func (h *CatalogHandler) ListMenuItems(c *gin.Context) {
	views, err := h.catalogQueries.ListMenuItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp, err := resdto.FromMenuItemViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List booking add-ons
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.AddonResponse
// @Router /addons [get]
func (h *CatalogHandler) ListAddons(c *gin.Context) {
	views, err := h.catalogQueries.ListAddons(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp, err := resdto.FromAddonViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
