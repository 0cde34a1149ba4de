package main

import (
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/db"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Mock   sqlmock.Sqlmock
	Router *gin.Engine
}

func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	mockdb, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 mockdb,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("traveldate", travelDateValidatorFunc)
		v.RegisterValidation("gtdate", gtfield)
	}

	d, mock := NewMockDB()
	db.NewDB(d)
	s.DB = d
	s.Mock = mock

	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1 = customerHandlers(apiv1)
	apiv1 = bookingHandlers(apiv1)
	apiv1 = calendarHandlers(apiv1)
	apiv1 = catalogHandlers(apiv1)
	apiv1 = itineraryHandlers(apiv1)
	apiv1 = assistantHandlers(apiv1)
	apiv1 = dashboardHandlers(apiv1)
	s.Router = router
}

func (s *TestSuite) performRequest(method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) TestPing() {
	w := s.performRequest(http.MethodGet, "/", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	router.GET("/guarded", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusServiceUnavailable, w.Code)
}

func (s *TestSuite) TestCreateBookingRejectsMalformedDate() {
	body := `{"customer_id":1,"destination":"Lisbon","start_date":"June 1st","end_date":"2026-06-08"}`
	w := s.performRequest(http.MethodPost, "/api/v1/bookings", body)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestCreateBookingRejectsReversedRange() {
	body := `{"customer_id":1,"destination":"Lisbon","start_date":"2026-06-08","end_date":"2026-06-01"}`
	w := s.performRequest(http.MethodPost, "/api/v1/bookings", body)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestCreateCustomerRejectsBadEmail() {
	body := `{"name":"Ana","email":"not-an-email"}`
	w := s.performRequest(http.MethodPost, "/api/v1/customers", body)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestInboxRejectsUnknownChannel() {
	body := `{"channel":"fax","from":"a@b.co","body":"hello"}`
	w := s.performRequest(http.MethodPost, "/api/v1/inbox", body)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestCalendarRejectsUnknownView() {
	w := s.performRequest(http.MethodGet, "/api/v1/calendar?view=year", "")
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestCalendarMonthGrid() {
	rows := sqlmock.NewRows([]string{"id", "customer_id", "customer_name", "destination", "start_date", "end_date", "status"}).
		AddRow(1, 7, "Ana Silva", "Lisbon", "2024-06-10", "2024-06-12", "Confirmed")
	s.Mock.ExpectQuery("SELECT").WillReturnRows(rows)

	w := s.performRequest(http.MethodGet, "/api/v1/calendar?view=month&date=2024-06-15", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)

	res := w.Body.String()
	cells := gjson.Get(res, "cells")
	assert.Equal(s.T(), int64(35), cells.Get("#").Int())
	assert.Equal(s.T(), "2024-05-27", cells.Get("0.date").String())
	assert.Equal(s.T(), "2024-06-30", cells.Get("34.date").String())

	byDate := map[string]gjson.Result{}
	cells.ForEach(func(_, cell gjson.Result) bool {
		byDate[cell.Get("date").String()] = cell
		return true
	})
	assert.Equal(s.T(), int64(1), byDate["2024-06-10"].Get("events.#").Int())
	assert.Equal(s.T(), int64(1), byDate["2024-06-12"].Get("events.#").Int())
	assert.Equal(s.T(), int64(0), byDate["2024-06-13"].Get("events.#").Int())
	assert.Equal(s.T(), "Ana Silva", byDate["2024-06-11"].Get("events.0.customer_name").String())
}

func (s *TestSuite) TestCalendarDayDetail() {
	rows := sqlmock.NewRows([]string{"id", "customer_id", "customer_name", "destination", "start_date", "end_date", "status"}).
		AddRow(3, 2, "Marco Rossi", "Rome", "2024-06-10", "2024-06-12", "Pending")
	s.Mock.ExpectQuery("SELECT").WillReturnRows(rows)

	w := s.performRequest(http.MethodGet, "/api/v1/calendar/day/2024-06-11", "")
	assert.Equal(s.T(), http.StatusOK, w.Code)

	res := w.Body.String()
	assert.Equal(s.T(), int64(1), gjson.Get(res, "count").Int())
	assert.Equal(s.T(), "Rome", gjson.Get(res, "data.0.destination").String())
}

func (s *TestSuite) TestCalendarDayRejectsBadDate() {
	w := s.performRequest(http.MethodGet, "/api/v1/calendar/day/notadate", "")
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func TestSuiteRun(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
