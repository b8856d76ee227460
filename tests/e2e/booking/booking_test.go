//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"padel-booking/internal/domain/user"
	"padel-booking/internal/handler/dto/request"
	"padel-booking/internal/handler/dto/response"
	"padel-booking/internal/usecase/queries"
	"padel-booking/tests/common/authtest"
	"padel-booking/tests/common/dbtest"
	"padel-booking/tests/common/httptest"
	"padel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL   = "/api/bookings"
	lookupURL     = "/api/bookings/lookup"
	adminBookings = "/api/admin/bookings"
	notifications = "/api/admin/notifications"
)

type bookingSuite struct {
	e2e.SharedSuite
	operatorToken string
	viewerToken   string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.operatorToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@padel.example", string(user.RoleOperator))
	s.viewerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "viewer@padel.example", string(user.RoleViewer))
}

func nextWeek() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format(request.DateLayout)
}

func newBookingRequest(courtID, slotID uuid.UUID, date string) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		CourtID:       courtID,
		TimeSlotID:    slotID,
		Date:          date,
		CustomerName:  "Lucia Ortega",
		CustomerEmail: "lucia@example.com",
		CustomerPhone: lo.ToPtr("+34 600 000 000"),
	}
}

func (s *bookingSuite) createBooking(req request.CreateBookingRequest) response.CreateBookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
	var res response.CreateBookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

// changeStatus returns the response code and body.
func (s *bookingSuite) changeStatus(ref, status, token string) (int, string) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
		fmt.Sprintf("%s/%s/status", adminBookings, ref),
		request.ChangeBookingStatusRequest{Status: status}, token)
	return w.Code, w.Body.String()
}

func (s *bookingSuite) TestCreate() {
	tests := []struct {
		name           string
		req            func() request.CreateBookingRequest
		expectedStatus int
		expectedError  string
	}{
		{
			name: "予約作成成功",
			req: func() request.CreateBookingRequest {
				return newBookingRequest(dbtest.CentreCourtID, dbtest.MorningSlotID, nextWeek())
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "非アクティブなコートは404",
			req: func() request.CreateBookingRequest {
				return newBookingRequest(dbtest.ClosedCourtID, dbtest.MorningSlotID, nextWeek())
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "非アクティブな時間枠は404",
			req: func() request.CreateBookingRequest {
				return newBookingRequest(dbtest.CentreCourtID, dbtest.RetiredSlotID, nextWeek())
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "過去の日付は400",
			req: func() request.CreateBookingRequest {
				return newBookingRequest(dbtest.CentreCourtID, dbtest.MorningSlotID, time.Now().UTC().AddDate(0, 0, -2).Format(request.DateLayout))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "booking date cannot be in the past",
		},
		{
			name: "メールアドレス不正は400",
			req: func() request.CreateBookingRequest {
				r := newBookingRequest(dbtest.CentreCourtID, dbtest.MorningSlotID, nextWeek())
				r.CustomerEmail = "not-an-email"
				return r
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, tt.req(), "")
			if tt.expectedStatus != http.StatusCreated {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedError)
				require.Zero(t, dbtest.CountRows(t, s.DB, "bookings"))
				return
			}

			var res response.CreateBookingResponse
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
			require.True(t, strings.HasPrefix(res.BookingRef, "PB-"), res.BookingRef)
			require.Equal(t, "pending", res.Status)
			// 90 minutes at 3200/h
			require.Equal(t, int64(4800), res.PriceCents)
			require.Equal(t, "pending", dbtest.BookingStatus(t, s.DB, res.BookingRef))
		})
	}
}

func (s *bookingSuite) TestSlotConflict() {
	s.Run("同じコート・日付・時間枠の二重予約は409", func() {
		t := s.T()
		date := nextWeek()

		s.createBooking(newBookingRequest(dbtest.CentreCourtID, dbtest.EveningSlotID, date))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			newBookingRequest(dbtest.CentreCourtID, dbtest.EveningSlotID, date), "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already booked")

		// 別コートなら予約できる
		s.createBooking(newBookingRequest(dbtest.OutdoorCourtID, dbtest.EveningSlotID, date))
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "bookings"))
	})

	s.Run("キャンセル済みの枠は再予約できる", func() {
		t := s.T()
		date := nextWeek()

		first := s.createBooking(newBookingRequest(dbtest.CentreCourtID, dbtest.EveningSlotID, date))
		code, body := s.changeStatus(first.BookingRef, "cancelled", s.operatorToken)
		require.Equal(t, http.StatusOK, code, body)

		second := s.createBooking(newBookingRequest(dbtest.CentreCourtID, dbtest.EveningSlotID, date))
		require.NotEqual(t, first.BookingRef, second.BookingRef)
	})
}

func (s *bookingSuite) TestBookingsClosed() {
	s.Run("受付停止中は409とメッセージ", func() {
		t := s.T()
		dbtest.CloseBookings(t, s.DB, "Closed for the club championship")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/booking-window", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Closed for the club championship")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			newBookingRequest(dbtest.CentreCourtID, dbtest.MorningSlotID, nextWeek()), "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Closed for the club championship")
		require.Zero(t, dbtest.CountRows(t, s.DB, "bookings"))
	})
}

func (s *bookingSuite) TestSuccessPageAccess() {
	s.Run("支払い前は詳細を返さずルックアップへ誘導", func() {
		t := s.T()
		created := s.createBooking(newBookingRequest(dbtest.CentreCourtID, dbtest.MorningSlotID, nextWeek()))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.BookingRef+"/success", nil, "")
		var res response.SuccessPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		require.False(t, res.Granted)
		require.Nil(t, res.Booking)
		require.Equal(t,
			"/booking-status?email="+url.QueryEscape("lucia@example.com")+"&booking_ref="+url.QueryEscape(created.BookingRef),
			res.RedirectURL)
	})

	s.Run("支払い済みにすると詳細が見られる", func() {
		t := s.T()
		created := s.createBooking(newBookingRequest(dbtest.CentreCourtID, dbtest.MorningSlotID, nextWeek()))

		code, body := s.changeStatus(created.BookingRef, "paid", s.operatorToken)
		require.Equal(t, http.StatusOK, code, body)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.BookingRef+"/success", nil, "")
		var page response.SuccessPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)

		require.True(t, page.Granted)
		require.NotNil(t, page.Booking)
		require.Equal(t, created.BookingRef, page.Booking.BookingRef)
		require.Equal(t, "Centre Court", page.Booking.CourtName)
		require.Equal(t, "09:00", page.Booking.StartTime)
		require.NotNil(t, page.Booking.PaidAt)
	})

	s.Run("返金後はアクセス不可", func() {
		t := s.T()
		created := s.createBooking(newBookingRequest(dbtest.CentreCourtID, dbtest.MorningSlotID, nextWeek()))
		code, _ := s.changeStatus(created.BookingRef, "paid", s.operatorToken)
		require.Equal(t, http.StatusOK, code)
		code, _ = s.changeStatus(created.BookingRef, "refunded", s.operatorToken)
		require.Equal(t, http.StatusOK, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.BookingRef+"/success", nil, "")
		var page response.SuccessPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.False(t, page.Granted)
	})

	s.Run("存在しない予約はルックアップページへ", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/PB-DOESNOTEXIST/success", nil, "")
		var page response.SuccessPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.False(t, page.Granted)
		require.Equal(t, "/booking-status", page.RedirectURL)
	})
}

func (s *bookingSuite) TestLookup() {
	s.Run("メールアドレスと予約番号で照会", func() {
		t := s.T()
		created := s.createBooking(newBookingRequest(dbtest.OutdoorCourtID, dbtest.MorningSlotID, nextWeek()))

		q := url.Values{"email": {"Lucia@Example.com"}, "booking_ref": {created.BookingRef}}
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, lookupURL+"?"+q.Encode(), nil, "")
		var res response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, created.BookingRef, res.BookingRef)
		require.Equal(t, "pending", res.Status)
		require.Equal(t, "Garden Court", res.CourtName)

		q.Set("email", "someone.else@example.com")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, lookupURL+"?"+q.Encode(), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, lookupURL+"?booking_ref="+created.BookingRef, nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *bookingSuite) TestAdminStatusChange() {
	s.Run("viewerはステータスを変更できない", func() {
		t := s.T()
		created := s.createBooking(newBookingRequest(dbtest.CentreCourtID, dbtest.MorningSlotID, nextWeek()))

		code, _ := s.changeStatus(created.BookingRef, "paid", s.viewerToken)
		require.Equal(t, http.StatusForbidden, code)
		require.Equal(t, "pending", dbtest.BookingStatus(t, s.DB, created.BookingRef))
	})

	s.Run("許可されない遷移は409", func() {
		t := s.T()
		created := s.createBooking(newBookingRequest(dbtest.CentreCourtID, dbtest.MorningSlotID, nextWeek()))

		code, body := s.changeStatus(created.BookingRef, "completed", s.operatorToken)
		require.Equal(t, http.StatusConflict, code, body)
		require.Equal(t, "pending", dbtest.BookingStatus(t, s.DB, created.BookingRef))
	})

	s.Run("一覧と詳細はviewerでも見られる", func() {
		t := s.T()
		created := s.createBooking(newBookingRequest(dbtest.CentreCourtID, dbtest.MorningSlotID, nextWeek()))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookings+"?status=pending", nil, s.viewerToken)
		var list response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.EqualValues(t, 1, list.Total)
		require.Len(t, list.Bookings, 1)
		require.Equal(t, "lucia@example.com", list.Bookings[0].CustomerEmail)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookings+"/"+created.BookingRef, nil, s.viewerToken)
		var detail response.AdminBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, dbtest.CentreCourtID.String(), detail.CourtID)
	})
}

func (s *bookingSuite) TestNotifications() {
	s.Run("予約作成と状態変更が通知される", func() {
		t := s.T()
		created := s.createBooking(newBookingRequest(dbtest.CentreCourtID, dbtest.MorningSlotID, nextWeek()))
		code, _ := s.changeStatus(created.BookingRef, "paid", s.operatorToken)
		require.Equal(t, http.StatusOK, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, notifications+"?unread=true", nil, s.viewerToken)
		var inbox response.NotificationListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &inbox)
		require.EqualValues(t, 2, inbox.Unread)
		require.Len(t, inbox.Notifications, 2)

		kinds := lo.Map(inbox.Notifications, func(n *queries.NotificationView, _ int) string { return n.Kind })
		require.ElementsMatch(t, []string{"booking.created", "booking.status_changed"}, kinds)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			notifications+"/"+inbox.Notifications[0].ID.String()+"/read", nil, s.viewerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, notifications+"?unread=true", nil, s.viewerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &inbox)
		require.EqualValues(t, 1, inbox.Unread)
	})
}
