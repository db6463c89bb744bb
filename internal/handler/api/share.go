package api

import (
	"net/http"

	"wishkeeper/internal/domain/access"
	reqdto "wishkeeper/internal/handler/dto/request"
	resdto "wishkeeper/internal/handler/dto/response"
	"wishkeeper/internal/handler/httperr"
	"wishkeeper/internal/handler/middleware"
	"wishkeeper/internal/usecase/commands"
	"wishkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShareHandler struct {
	shareCommands commands.ShareCommands
	shareQueries  queries.ShareQueries
}

func NewShareHandler(shareCommands commands.ShareCommands, shareQueries queries.ShareQueries) *ShareHandler {
	return &ShareHandler{
		shareCommands: shareCommands,
		shareQueries:  shareQueries,
	}
}

// @Summary Share a resource
// @Description Grant a user a role on a location or list
// @Tags shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateShareRequest true "Share request"
// @Success 201 {object} resdto.CreateShareResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /shares [post]
func (h *ShareHandler) CreateShare(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	id, err := h.shareCommands.CreateShare(c.Request.Context(), actor, input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateShareResponse{ID: id})
}

// @Summary Revoke a share
// @Description Remove a previously granted share
// @Tags shares
// @Security BearerAuth
// @Param id path string true "Share ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /shares/{id} [delete]
func (h *ShareHandler) RevokeShare(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	shareID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid share ID format", nil)
		return
	}

	if err := h.shareCommands.RevokeShare(c.Request.Context(), actor, shareID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Share with many users
// @Description Grant several users a role on one resource; entries succeed or fail independently
// @Tags shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ShareManyRequest true "Batch share request"
// @Success 207 {array} resdto.ShareResultResponse
// @Failure 400 {object} httperr.Response
// @Router /shares/batch [post]
func (h *ShareHandler) ShareWithMany(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.ShareManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	resource, entries, err := req.ToEntries()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	results, err := h.shareCommands.ShareWithMany(c.Request.Context(), actor, resource, entries)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusMultiStatus, resdto.FromShareResults(results))
}

// @Summary List shares on a resource
// @Description List active and expired shares; owner only
// @Tags shares
// @Produce json
// @Security BearerAuth
// @Param resource_type query string true "location or list"
// @Param resource_id query string true "Resource ID"
// @Success 200 {array} resdto.ShareResponse
// @Failure 404 {object} httperr.Response
// @Router /shares [get]
func (h *ShareHandler) ListShares(c *gin.Context) {
	principal := middleware.GetPrincipal(c)

	resourceType, err := access.NewResourceType(c.Query("resource_type"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource type", nil)
		return
	}
	resourceID, err := uuid.Parse(c.Query("resource_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID format", nil)
		return
	}

	views, err := h.shareQueries.ListForResource(c.Request.Context(), principal, access.ResourceRef{Type: resourceType, ID: resourceID})
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]*resdto.ShareResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, resdto.FromShareView(v))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Mint a guest link
// @Description Rotate the list's guest access token; the previous link stops working
// @Tags shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Param request body reqdto.GuestLinkRequest false "Optional expiry"
// @Success 201 {object} resdto.GuestLinkResponse
// @Failure 404 {object} httperr.Response
// @Router /lists/{id}/guest-link [post]
func (h *ShareHandler) CreateGuestLink(c *gin.Context) {
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

	var req reqdto.GuestLinkRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	token, err := h.shareCommands.CreateGuestLink(c.Request.Context(), actor, listID, req.ExpiresAt)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.GuestLinkResponse{Token: token})
}

// @Summary Create an invite code
// @Description Mint a short redeemable code granting a role on a resource
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInviteRequest true "Invite request"
// @Success 201 {object} resdto.InviteCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /invites [post]
func (h *ShareHandler) CreateInviteCode(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	code, err := h.shareCommands.CreateInviteCode(c.Request.Context(), actor, input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.InviteCodeResponse{Code: code})
}

// @Summary Redeem an invite code
// @Description Exchange a code for a share or location membership
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemInviteRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /invites/redeem [post]
func (h *ShareHandler) RedeemInviteCode(c *gin.Context) {
	actor, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.RedeemInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.shareCommands.RedeemInviteCode(c.Request.Context(), actor, req.Code)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}
