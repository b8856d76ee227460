//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"padel-booking/internal/domain/booking"
	"padel-booking/internal/handler/api"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"
	"padel-booking/tests/common/builder"
	"padel-booking/tests/common/httptest"
	"padel-booking/tests/common/testutil"
	commandsmock "padel-booking/tests/mock/commands"
	queriesmock "padel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", h.Create)
	s.router.GET("/bookings/lookup", h.Lookup)
	s.router.GET("/bookings/:ref/success", h.Success)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateDTO()
	result := &commands.CreateBookingResult{
		ID:         b.ID,
		Ref:        b.Ref,
		Status:     booking.StatusPending,
		Date:       b.Date,
		PriceCents: b.PriceCents,
	}

	s.Run("success: returns 201 with the booking ref", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(resdto.CreateBookingResponse{
			BookingRef: "PB-7K3M9Q2X4W",
			Status:     "pending",
			Date:       "2025-05-12",
			PriceCents: 3600,
		}, response)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing court_id", mutate: testutil.Field("court_id", nil)},
			{name: "missing time_slot_id", mutate: testutil.Field("time_slot_id", nil)},
			{name: "malformed date", mutate: testutil.Field("date", "12/05/2025")},
			{name: "missing customer_name", mutate: testutil.Field("customer_name", nil)},
			{name: "customer_name too long", mutate: testutil.Field("customer_name", strings.Repeat("a", 101))},
			{name: "invalid customer_email", mutate: testutil.Field("customer_email", "not-an-email")},
			{name: "notes too long", mutate: testutil.Field("notes", strings.Repeat("n", 501))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "bookings closed shows the club message",
				err:            errs.Mark(errs.New("Closed for the summer"), commands.ErrBookingsClosed),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Closed for the summer",
			},
			{
				name:           "date in the past",
				err:            errs.Mark(booking.ErrDateInPast, commands.ErrInvalidBooking),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    booking.ErrDateInPast.Error(),
			},
			{
				name:           "court inactive",
				err:            commands.ErrCourtUnavailable,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Court not found",
			},
			{
				name:           "slot inactive",
				err:            commands.ErrSlotUnavailable,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Time slot not found",
			},
			{
				name:           "slot taken",
				err:            commands.ErrSlotTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "database failure",
				err:            errs.Mark(errors.New("connection refused"), commands.ErrDatabaseOperation),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestSuccess() {
	ref := "PB-7K3M9Q2X4W"

	s.Run("granted: returns the booking", func() {
		paidAt := time.Date(2025, 5, 10, 9, 5, 0, 0, time.UTC)
		view := builder.NewBookingBuilder().PaidAtTime(paidAt).BuildView()
		s.mockQueries.EXPECT().SuccessPage(gomock.Any(), ref).
			Return(&queries.SuccessPageResult{Granted: true, Booking: view}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+ref+"/success", nil, "")

		var response resdto.SuccessPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Granted)
		s.Require().NotNil(response.Booking)
		s.Equal(ref, response.Booking.BookingRef)
		s.Equal("paid", response.Booking.Status)
		s.Empty(response.RedirectURL)
	})

	s.Run("denied: returns the lookup URL", func() {
		redirect := booking.BuildLookupURL("ana@example.com", ref)
		s.mockQueries.EXPECT().SuccessPage(gomock.Any(), ref).
			Return(&queries.SuccessPageResult{Granted: false, RedirectURL: redirect}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+ref+"/success", nil, "")

		var response resdto.SuccessPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Granted)
		s.Nil(response.Booking)
		s.Equal("/booking-status?email=ana%40example.com&booking_ref=PB-7K3M9Q2X4W", response.RedirectURL)
	})
}

func (s *BookingHandlerTestSuite) TestLookup() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns status details", func() {
		s.mockQueries.EXPECT().Lookup(gomock.Any(), "ana@example.com", "PB-7K3M9Q2X4W").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/lookup?email=ana%40example.com&booking_ref=PB-7K3M9Q2X4W", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("pending", response.Status)
		s.Equal("Court 1", response.CourtName)
	})

	s.Run("error: maps query errors", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "missing params", err: queries.ErrLookupParamsRequired, expectedStatus: http.StatusBadRequest, expectedMsg: "required"},
			{name: "no match", err: queries.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "read failure", err: errs.Mark(errors.New("timeout"), queries.ErrBookingReadFailed), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Lookup(gomock.Any(), "", "PB-7K3M9Q2X4W").Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/lookup?booking_ref=PB-7K3M9Q2X4W", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
