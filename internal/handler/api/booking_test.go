//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/dto/response"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/tests/common/builder"
	apptest "salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"
	commandsmock "salon-booking/tests/mock/commands"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	bookingCommands *commandsmock.MockBookingCommands
	bookingQueries  *queriesmock.MockBookingQueries
	router          *gin.Engine
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.bookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	handler := api.NewBookingHandler(s.bookingCommands, s.bookingQueries)
	s.router = gin.New()
	s.router.POST("/api/bookings", handler.CreateBooking)
	s.router.GET("/api/bookings", handler.GetBookingsByPhone)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("success returns 201 with the created view", func() {
		b := builder.NewBookingBuilder()
		view := b.BuildView()

		s.bookingCommands.EXPECT().CreateBooking(gomock.Any(), b.BuildCreateDTO()).
			Return(view, nil)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", b.BuildCreateDTO(), "")

		var got response.BookingResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
		s.Equal("pending", got.Status)
		s.Equal(view.AppointmentTime, got.AppointmentTime)
	})

	s.Run("slot conflict names the occupying service", func() {
		b := builder.NewBookingBuilder()

		s.bookingCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(&commands.SlotTakenError{ServiceName: "Perm"}, commands.ErrSlotConflict))

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", b.BuildCreateDTO(), "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already booked for Perm")
	})

	s.Run("slot conflict without attribution", func() {
		b := builder.NewBookingBuilder()

		s.bookingCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(&commands.SlotTakenError{}, commands.ErrSlotConflict))

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", b.BuildCreateDTO(), "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "This slot is already booked")
	})

	s.Run("domain validation surfaces the broken rule", func() {
		b := builder.NewBookingBuilder()

		s.bookingCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(booking.ErrTimeOffGrid, commands.ErrDomainValidation))

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", b.BuildCreateDTO(), "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, booking.ErrTimeOffGrid.Error())
	})

	s.Run("unknown service returns 404", func() {
		b := builder.NewBookingBuilder()

		s.bookingCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrServiceNotFound)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", b.BuildCreateDTO(), "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Service not found")
	})

	s.Run("inactive service returns 400", func() {
		b := builder.NewBookingBuilder()

		s.bookingCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrServiceUnavailable)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", b.BuildCreateDTO(), "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "not currently offered")
	})

	s.Run("malformed service id returns 400 before the command runs", func() {
		body := testutil.DtoMap(s.T(), builder.NewBookingBuilder().BuildCreateDTO(),
			testutil.Field("service_id", "not-a-uuid"))

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("missing required fields return 400", func() {
		for _, field := range []string{"appointment_date", "appointment_time", "customer_name", "customer_phone"} {
			body := testutil.DtoMap(s.T(), builder.NewBookingBuilder().BuildCreateDTO(),
				testutil.Field(field, nil))

			w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body, "")
			apptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("unexpected failure returns 500", func() {
		b := builder.NewBookingBuilder()

		s.bookingCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDatabaseOperationFailed)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", b.BuildCreateDTO(), "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) TestGetBookingsByPhone() {
	s.Run("success returns the customer's bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithPhone("13812345678").BuildView(),
			builder.NewBookingBuilder().WithPhone("13812345678").WithStatus("confirmed").BuildView(),
		}

		s.bookingQueries.EXPECT().ListByPhone(gomock.Any(), "13812345678").
			Return(views, nil)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?phone=13812345678", nil, "")

		var got []*response.BookingResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Len(got, 2)
	})

	s.Run("invalid phone returns 400", func() {
		w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?phone=12345", nil, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid phone number")
	})

	s.Run("missing phone returns 400", func() {
		w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid phone number")
	})
}
