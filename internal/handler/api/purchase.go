package api

import (
	"net/http"

	resdto "wishkeeper/internal/handler/dto/response"
	"wishkeeper/internal/handler/httperr"
	"wishkeeper/internal/handler/middleware"
	"wishkeeper/internal/usecase/commands"
	"wishkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	purchaseCommands commands.PurchaseCommands
	itemQueries      queries.ItemQueries
}

func NewPurchaseHandler(purchaseCommands commands.PurchaseCommands, itemQueries queries.ItemQueries) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseCommands: purchaseCommands,
		itemQueries:      itemQueries,
	}
}

func itemIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Reserve an item
// @Description Take or refresh the advisory lock on an item before buying it
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ReserveResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /items/{id}/reserve [post]
func (h *PurchaseHandler) Reserve(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	result, err := h.purchaseCommands.Reserve(c.Request.Context(), middleware.GetPrincipal(c), itemID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReserveResult(result))
}

// @Summary Confirm a purchase
// @Description Convert the caller's live reservation into a recorded purchase
// @Tags purchases
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /items/{id}/purchase [post]
func (h *PurchaseHandler) ConfirmPurchase(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	if err := h.purchaseCommands.ConfirmPurchase(c.Request.Context(), middleware.GetPrincipal(c), itemID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Release a reservation
// @Description Give up the caller's reservation on an item
// @Tags purchases
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /items/{id}/reserve [delete]
func (h *PurchaseHandler) Release(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	if err := h.purchaseCommands.Release(c.Request.Context(), middleware.GetPrincipal(c), itemID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Unmark a purchase
// @Description Reopen a purchased item; allowed to the purchaser or a list editor
// @Tags purchases
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/purchase [delete]
func (h *PurchaseHandler) UnmarkPurchase(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	if err := h.purchaseCommands.UnmarkPurchase(c.Request.Context(), middleware.GetPrincipal(c), itemID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary My reservations
// @Description List the caller's live reservations
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *PurchaseHandler) MyReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	views, err := h.itemQueries.MyReservations(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}
