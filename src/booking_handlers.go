package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/db"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/lib"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bookings", func(ctx *gin.Context) {
			var query struct {
				CustomerID *uint `form:"customer_id"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var bookings []models.Booking
			err := db.Transaction(func(tx *gorm.DB) error {
				model := tx.
					Model(&models.Booking{}).
					Preload("Customer").
					Order("start_date asc")
				if query.CustomerID != nil {
					model = model.Where("customer_id = ?", *query.CustomerID)
				}
				err := model.Find(&bookings).Error
				if err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var booking models.Booking
			if err := db.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: params.ID}).
				Preload("Customer").
				Preload("Hotel").
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking := models.Booking{
				CustomerID:       body.CustomerID,
				Destination:      body.Destination,
				StartDate:        body.StartDate,
				EndDate:          body.EndDate,
				TotalAmount:      body.TotalAmount,
				HotelID:          body.HotelID,
				BookingReference: utils.NewBookingReference(),
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var count int64
				if err := tx.
					Model(&models.Customer{}).
					Where("id = ?", body.CustomerID).
					Count(&count).
					Error; err != nil {
					return err
				}
				if count == 0 {
					return errors.New("customer not found")
				}
				if err := tx.Create(&booking).Error; err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				log.Printf("Error creating Booking: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		PUT("/bookings/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body struct {
				Status string `json:"status" binding:"required,oneof=Pending Confirmed Cancelled"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				err := tx.
					Model(&models.Booking{}).
					Where("id = ?", params.ID).
					Update("status", body.Status).
					Error
				if err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				log.Printf("Error updating Booking status [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		PUT("/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var booking models.Booking
				err := tx.
					Model(&models.Booking{}).
					Where("id = ?", params.ID).
					First(&booking).
					Error
				if err != nil {
					return err
				}
				if booking.Status == string(types.BOOKING_CANCELED) {
					return errors.New("booking is already cancelled")
				}
				err = tx.
					Model(&models.Booking{}).
					Where(&models.Booking{ID: params.ID}).
					Update("status", types.BOOKING_CANCELED).
					Error
				if err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				log.Printf("Could not complete request: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/bookings/:id/payment_link", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var linkURL string
			err := db.Transaction(func(tx *gorm.DB) error {
				var booking models.Booking
				if err := tx.
					Model(&models.Booking{}).
					Where("id = ?", params.ID).
					First(&booking).
					Error; err != nil {
					return err
				}
				if booking.Status != string(types.BOOKING_PENDING) {
					return errors.New("payment links can only be created for pending bookings")
				}
				if booking.TotalAmount <= 0 {
					return errors.New("booking has no amount to collect")
				}
				url, err := lib.CreateDepositPaymentLink(booking.TotalAmount, booking.BookingReference)
				if err != nil {
					return err
				}
				if err := tx.
					Model(&models.Booking{}).
					Where("id = ?", params.ID).
					Update("payment_link_url", url).
					Error; err != nil {
					return err
				}
				linkURL = url
				return nil
			})
			if err != nil {
				log.Printf("Error creating payment link for Booking [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"url": linkURL})
		})
	return g
}
