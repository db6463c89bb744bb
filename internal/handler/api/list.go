package api

import (
	"net/http"

	reqdto "wishkeeper/internal/handler/dto/request"
	resdto "wishkeeper/internal/handler/dto/response"
	"wishkeeper/internal/handler/httperr"
	"wishkeeper/internal/handler/middleware"
	"wishkeeper/internal/usecase/commands"
	"wishkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListHandler struct {
	wishlistCommands commands.WishlistCommands
	itemQueries      queries.ItemQueries
}

func NewListHandler(wishlistCommands commands.WishlistCommands, itemQueries queries.ItemQueries) *ListHandler {
	return &ListHandler{
		wishlistCommands: wishlistCommands,
		itemQueries:      itemQueries,
	}
}

// @Summary Create a location
// @Description Create a household grouping for wishlists
// @Tags wishlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLocationRequest true "Location request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /locations [post]
func (h *ListHandler) CreateLocation(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.wishlistCommands.CreateLocation(c.Request.Context(), actor, req.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Delete a location
// @Description Delete a location and everything under it; owner only
// @Tags wishlists
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /locations/{id} [delete]
func (h *ListHandler) DeleteLocation(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location ID format", nil)
		return
	}

	if err := h.wishlistCommands.DeleteLocation(c.Request.Context(), actor, locationID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create a list
// @Description Create a wishlist for a year inside a location
// @Tags wishlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListRequest true "List request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lists [post]
func (h *ListHandler) CreateList(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.wishlistCommands.CreateList(c.Request.Context(), actor, commands.CreateListInput{
		LocationID: req.LocationID,
		Name:       req.Name,
		Year:       req.Year,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get a list with items
// @Description Read a list and its items; owners see purchase state redacted
// @Tags wishlists
// @Produce json
// @Param id path string true "List ID"
// @Param guest query string false "Guest access token"
// @Success 200 {object} resdto.ListItemsResponse
// @Failure 404 {object} httperr.Response
// @Router /lists/{id} [get]
func (h *ListHandler) GetListItems(c *gin.Context) {
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid list ID format", nil)
		return
	}

	view, err := h.itemQueries.GetListItems(c.Request.Context(), middleware.GetPrincipal(c), listID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromListItemsView(view))
}

// @Summary Set list visibility
// @Description Toggle the list's household-public flag; owner only
// @Tags wishlists
// @Accept json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Param request body reqdto.SetListPublicRequest true "Visibility request"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /lists/{id}/visibility [put]
func (h *ListHandler) SetListPublic(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid list ID format", nil)
		return
	}

	var req reqdto.SetListPublicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.wishlistCommands.SetListPublic(c.Request.Context(), actor, listID, *req.IsPublic); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete a list
// @Description Delete a list and its items; owner only
// @Tags wishlists
// @Security BearerAuth
// @Param id path string true "List ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /lists/{id} [delete]
func (h *ListHandler) DeleteList(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid list ID format", nil)
		return
	}

	if err := h.wishlistCommands.DeleteList(c.Request.Context(), actor, listID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add an item
// @Description Add an item to a list; requires editor access
// @Tags wishlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Param request body reqdto.CreateItemRequest true "Item request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lists/{id}/items [post]
func (h *ListHandler) CreateItem(c *gin.Context) {
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid list ID format", nil)
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.wishlistCommands.CreateItem(c.Request.Context(), middleware.GetPrincipal(c), commands.CreateItemInput{
		ListID:     listID,
		Name:       req.Name,
		URL:        req.TrimmedURL(),
		PriceCents: req.PriceCents,
		Priority:   req.Priority,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update an item
// @Description Rewrite an item's describable attributes; requires editor access
// @Tags wishlists
// @Accept json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Item request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [put]
func (h *ListHandler) UpdateItem(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err := h.wishlistCommands.UpdateItem(c.Request.Context(), middleware.GetPrincipal(c), commands.UpdateItemInput{
		ItemID:     itemID,
		Name:       req.Name,
		URL:        req.TrimmedURL(),
		PriceCents: req.PriceCents,
		Priority:   req.Priority,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete an item
// @Description Remove an item from a list; requires editor access
// @Tags wishlists
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [delete]
func (h *ListHandler) DeleteItem(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	if err := h.wishlistCommands.DeleteItem(c.Request.Context(), middleware.GetPrincipal(c), itemID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
