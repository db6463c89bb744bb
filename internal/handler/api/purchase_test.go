//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"wishkeeper/internal/domain/access"
	"wishkeeper/internal/handler/api"
	"wishkeeper/internal/pkg/errs"
	"wishkeeper/internal/usecase/commands"
	"wishkeeper/internal/usecase/queries"
	testhttp "wishkeeper/tests/common/httptest"
	commandsmock "wishkeeper/tests/mock/commands"
	queriesmock "wishkeeper/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	purchaseCmd *commandsmock.MockPurchaseCommands
	itemQueries *queriesmock.MockItemQueries
	router      *gin.Engine
	userID      uuid.UUID
}

func (s *PurchaseHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.purchaseCmd = commandsmock.NewMockPurchaseCommands(s.ctrl)
	s.itemQueries = queriesmock.NewMockItemQueries(s.ctrl)
	s.userID = uuid.New()

	h := api.NewPurchaseHandler(s.purchaseCmd, s.itemQueries)
	s.router = gin.New()
	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.userID)
	})
	authed.POST("/items/:id/reserve", h.Reserve)
	authed.DELETE("/items/:id/reserve", h.Release)
	authed.POST("/items/:id/purchase", h.ConfirmPurchase)
	authed.DELETE("/items/:id/purchase", h.UnmarkPurchase)
	authed.GET("/reservations", h.MyReservations)
}

func (s *PurchaseHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PurchaseHandlerSuite) principal() access.Principal {
	return access.Principal{UserID: s.userID}
}

func (s *PurchaseHandlerSuite) TestReserve_Success() {
	itemID := uuid.New()
	expires := time.Now().Add(10 * time.Minute).UTC()

	s.purchaseCmd.EXPECT().Reserve(gomock.Any(), s.principal(), itemID).
		Return(&commands.ReserveResult{ItemID: itemID, ExpiresAt: expires}, nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/reserve", nil, "")

	var resp struct {
		ItemID    uuid.UUID `json:"item_id"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(itemID, resp.ItemID)
	s.True(expires.Equal(resp.ExpiresAt))
}

func (s *PurchaseHandlerSuite) TestReserve_AlreadyReservedNamesHolder() {
	itemID := uuid.New()

	s.purchaseCmd.EXPECT().Reserve(gomock.Any(), s.principal(), itemID).
		Return(nil, &commands.AlreadyReservedError{HolderName: "Bob"})

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/reserve", nil, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Item already reserved")

	var resp struct {
		Detail struct {
			ReservedBy string `json:"reserved_by"`
		} `json:"detail"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Bob", resp.Detail.ReservedBy)
}

func (s *PurchaseHandlerSuite) TestReserve_MaskedAsNotFound() {
	itemID := uuid.New()

	s.purchaseCmd.EXPECT().Reserve(gomock.Any(), s.principal(), itemID).
		Return(nil, errs.ErrNotFound)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/reserve", nil, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
}

func (s *PurchaseHandlerSuite) TestReserve_InvalidItemID() {
	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/items/not-a-uuid/reserve", nil, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid item ID format")
}

func (s *PurchaseHandlerSuite) TestConfirmPurchase_Success() {
	itemID := uuid.New()

	s.purchaseCmd.EXPECT().ConfirmPurchase(gomock.Any(), s.principal(), itemID).Return(nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/purchase", nil, "")
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *PurchaseHandlerSuite) TestConfirmPurchase_NoReservation() {
	itemID := uuid.New()

	s.purchaseCmd.EXPECT().ConfirmPurchase(gomock.Any(), s.principal(), itemID).
		Return(errs.ErrNoReservation)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/purchase", nil, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "No live reservation held")
}

func (s *PurchaseHandlerSuite) TestConfirmPurchase_AlreadyPurchased() {
	itemID := uuid.New()

	s.purchaseCmd.EXPECT().ConfirmPurchase(gomock.Any(), s.principal(), itemID).
		Return(errs.ErrAlreadyPurchased)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/purchase", nil, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Item already purchased")
}

func (s *PurchaseHandlerSuite) TestConfirmPurchase_ConflictNamesPurchaser() {
	itemID := uuid.New()

	s.purchaseCmd.EXPECT().ConfirmPurchase(gomock.Any(), s.principal(), itemID).
		Return(&commands.PurchaseConflictError{PurchaserName: "Bob"})

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/purchase", nil, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Item already purchased")

	var resp struct {
		Detail struct {
			PurchasedBy string `json:"purchased_by"`
		} `json:"detail"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Bob", resp.Detail.PurchasedBy)
}

func (s *PurchaseHandlerSuite) TestRelease_Success() {
	itemID := uuid.New()

	s.purchaseCmd.EXPECT().Release(gomock.Any(), s.principal(), itemID).Return(nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/items/"+itemID.String()+"/reserve", nil, "")
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *PurchaseHandlerSuite) TestUnmarkPurchase_Forbidden() {
	itemID := uuid.New()

	s.purchaseCmd.EXPECT().UnmarkPurchase(gomock.Any(), s.principal(), itemID).
		Return(errs.ErrForbidden)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/items/"+itemID.String()+"/purchase", nil, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Forbidden")
}

func (s *PurchaseHandlerSuite) TestMyReservations_Success() {
	views := []*queries.ReservationView{
		{ItemID: uuid.New(), ItemName: "Wool socks", ListID: uuid.New()},
	}
	s.itemQueries.EXPECT().MyReservations(gomock.Any(), s.userID).Return(views, nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

	var resp []struct {
		ItemName string `json:"item_name"`
	}
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Require().Len(resp, 1)
	s.Equal("Wool socks", resp[0].ItemName)
}

func (s *PurchaseHandlerSuite) TestMyReservations_Unauthenticated() {
	h := api.NewPurchaseHandler(s.purchaseCmd, s.itemQueries)
	bare := gin.New()
	bare.GET("/reservations", h.MyReservations)

	w := testhttp.PerformRequest(s.T(), bare, http.MethodGet, "/reservations", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerSuite))
}
