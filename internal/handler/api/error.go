package api

import (
	"errors"
	"net/http"

	"wishkeeper/internal/domain/share"
	"wishkeeper/internal/domain/user"
	"wishkeeper/internal/domain/wishlist"
	"wishkeeper/internal/handler/httperr"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// handleError translates the business error taxonomy into HTTP statuses in
// one place so every handler surfaces the same contract. NotFound already
// masks denied access at the usecase layer; nothing here may undo that.
func handleError(c *gin.Context, err error) {
	var reserved *commands.AlreadyReservedError
	if errors.As(err, &reserved) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Item already reserved", gin.H{"reserved_by": reserved.HolderName})
		return
	}
	var purchased *commands.PurchaseConflictError
	if errors.As(err, &purchased) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Item already purchased", gin.H{"purchased_by": purchased.PurchaserName})
		return
	}

	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errors.Is(err, commands.ErrEmailTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
	case errors.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, errs.ErrForbidden), errors.Is(err, errs.ErrNotOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errors.Is(err, errs.ErrSelfShare):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot share with yourself", nil)
	case errors.Is(err, errs.ErrAlreadyReserved):
		httperr.AbortWithError(c, http.StatusConflict, err, "Item already reserved", nil)
	case errors.Is(err, errs.ErrAlreadyPurchased):
		httperr.AbortWithError(c, http.StatusConflict, err, "Item already purchased", nil)
	case errors.Is(err, errs.ErrNoReservation):
		httperr.AbortWithError(c, http.StatusConflict, err, "No live reservation held", nil)
	case errors.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Conflicting update, please retry", nil)
	case errors.Is(err, errs.ErrExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Expired", nil)
	case errors.Is(err, errs.ErrExhausted):
		httperr.AbortWithError(c, http.StatusGone, err, "Invite code exhausted", nil)
	case isValidationError(err):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func isValidationError(err error) bool {
	validationErrs := []error{
		share.ErrExpiryInPast,
		share.ErrNotShareable,
		share.ErrInvalidUses,
		wishlist.ErrEmptyName,
		wishlist.ErrNameTooLong,
		wishlist.ErrInvalidYear,
		wishlist.ErrNegativePrice,
		wishlist.ErrInvalidPriority,
		user.ErrInvalidEmail,
		user.ErrInvalidUserName,
		user.ErrEmptyPassword,
	}
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
