//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"padel-booking/internal/domain/auth"
	"padel-booking/internal/domain/booking"
	"padel-booking/internal/domain/user"
	"padel-booking/internal/handler/api"
	reqdto "padel-booking/internal/handler/dto/request"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/handler/middleware"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"
	"padel-booking/tests/common/builder"
	"padel-booking/tests/common/httptest"
	commandsmock "padel-booking/tests/mock/commands"
	queriesmock "padel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// asPrincipal stands in for RequireAuth in handler tests.
func asPrincipal(id uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetPrincipal(c, auth.Principal{UserID: id, Role: role})
		c.Next()
	}
}

type AdminBookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	actorID      uuid.UUID
}

func (s *AdminBookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.actorID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewAdminBookingHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/admin", asPrincipal(s.actorID, user.RoleOperator))
	g.GET("/bookings", h.List)
	g.GET("/bookings/:ref", h.Get)
	g.PATCH("/bookings/:ref/status", h.ChangeStatus)
}

func (s *AdminBookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminBookingHandlerTestSuite))
}

func (s *AdminBookingHandlerTestSuite) TestList() {
	s.Run("success: passes filters through", func() {
		courtID := uuid.New()
		view := builder.NewBookingBuilder().BuildView()
		want := queries.BookingFilter{
			Status:  lo.ToPtr("paid"),
			CourtID: &courtID,
			Limit:   20,
			Offset:  40,
		}
		s.mockQueries.EXPECT().AdminList(gomock.Any(), want).
			Return(&queries.BookingPage{Items: []*queries.BookingView{view}, Total: 41, Limit: 20, Offset: 40}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/bookings?status=paid&court_id="+courtID.String()+"&limit=20&offset=40", nil, "")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(41), response.Total)
		s.Require().Len(response.Bookings, 1)
		s.Equal(view.CustomerEmail, response.Bookings[0].CustomerEmail)
	})

	s.Run("error: invalid query values", func() {
		for _, q := range []string{"status=lost", "limit=201", "date=2025-13-01", "court_id=abc", "offset=-1"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?"+q, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
			})
		}
	})
}

func (s *AdminBookingHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().AdminGet(gomock.Any(), view.Ref).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/"+view.Ref, nil, "")

		var response resdto.AdminBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID.String(), response.ID)
		s.Equal(view.Ref, response.BookingRef)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().AdminGet(gomock.Any(), "PB-UNKNOWN000").Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/PB-UNKNOWN000", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *AdminBookingHandlerTestSuite) TestChangeStatus() {
	ref := "PB-7K3M9Q2X4W"
	url := "/admin/bookings/" + ref + "/status"
	req := reqdto.ChangeBookingStatusRequest{Status: "paid"}

	s.Run("success: returns the updated booking", func() {
		view := builder.NewBookingBuilder().WithStatus(booking.StatusPaid).BuildView()
		gomock.InOrder(
			s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), ref, req, s.actorID).Return(nil),
			s.mockQueries.EXPECT().AdminGet(gomock.Any(), ref).Return(view, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, req, "")

		var response resdto.AdminBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("paid", response.Status)
	})

	s.Run("error: unknown status is rejected by binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "lost"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "not found", err: commands.ErrBookingNotFound, status: http.StatusNotFound, msg: "Booking not found"},
			{name: "terminal status", err: errs.Mark(booking.ErrInvalidTransition, commands.ErrInvalidTransition), status: http.StatusConflict, msg: booking.ErrInvalidTransition.Error()},
			{name: "lost update", err: commands.ErrConcurrentUpdate, status: http.StatusConflict, msg: "reload and retry"},
			{name: "database", err: commands.ErrDatabaseOperation, status: http.StatusInternalServerError, msg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), ref, req, s.actorID).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, req, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}
