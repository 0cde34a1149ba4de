package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/assistant"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/db"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func itineraryHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/itineraries", func(ctx *gin.Context) {
			var query struct {
				CustomerID *uint `form:"customer_id"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var itineraries []models.Itinerary
			model := db.
				Model(&models.Itinerary{}).
				Preload("Customer").
				Order("created_at desc")
			if query.CustomerID != nil {
				model = model.Where("customer_id = ?", *query.CustomerID)
			}
			if err := model.Find(&itineraries).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": itineraries, "count": len(itineraries)})
		}).
		GET("/itineraries/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var itinerary models.Itinerary
			if err := db.
				Model(&models.Itinerary{}).
				Where(&models.Itinerary{ID: params.ID}).
				Preload("Customer").
				Preload("Days", func(db *gorm.DB) *gorm.DB {
					return db.Order("itinerary_days.day_number asc")
				}).
				Preload("Days.Items").
				First(&itinerary).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": itinerary})
		}).
		GET("/itineraries/:id/pricing", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var itinerary models.Itinerary
			if err := db.
				Model(&models.Itinerary{}).
				Where(&models.Itinerary{ID: params.ID}).
				Preload("Days").
				Preload("Days.Items").
				First(&itinerary).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			breakdown := utils.PriceItinerary(itinerary.Days, itinerary.MarkupPercent)
			ctx.JSON(http.StatusOK, gin.H{"data": breakdown})
		}).
		POST("/itineraries", func(ctx *gin.Context) {
			var body types.CreateItineraryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			itinerary := models.Itinerary{
				CustomerID:    body.CustomerID,
				Title:         body.Title,
				Slug:          utils.ItinerarySlug(body.Title),
				Destination:   body.Destination,
				MarkupPercent: body.MarkupPercent,
			}
			for _, d := range body.Days {
				day := models.ItineraryDay{
					DayNumber:   d.DayNumber,
					Title:       d.Title,
					Description: d.Description,
				}
				for _, it := range d.Items {
					day.Items = append(day.Items, models.ItineraryItem{
						Description: it.Description,
						UnitPrice:   it.UnitPrice,
						Qty:         it.Qty,
					})
				}
				itinerary.Days = append(itinerary.Days, day)
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
				return tx.Create(&itinerary).Error
			})
			if err != nil {
				log.Printf("Error creating Itinerary: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": itinerary})
		}).
		POST("/itineraries/generate", func(ctx *gin.Context) {
			var body types.GenerateItineraryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// Simulated generation. The delay stands in for a model round trip.
			time.Sleep(assistant.ResponseDelay())
			plans := assistant.GenerateItinerary(body.Destination, body.Days)
			title := body.Destination + " itinerary"
			itinerary := models.Itinerary{
				CustomerID:  body.CustomerID,
				Title:       title,
				Slug:        utils.ItinerarySlug(title),
				Destination: body.Destination,
			}
			for _, p := range plans {
				itinerary.Days = append(itinerary.Days, models.ItineraryDay{
					DayNumber:   p.DayNumber,
					Title:       p.Title,
					Description: p.Description,
				})
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
				return tx.Create(&itinerary).Error
			})
			if err != nil {
				log.Printf("Error generating Itinerary: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": itinerary})
		}).
		PUT("/itineraries/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body struct {
				Status string `json:"status" binding:"required,oneof=draft final"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				return tx.
					Model(&models.Itinerary{}).
					Where("id = ?", params.ID).
					Update("status", body.Status).
					Error
			})
			if err != nil {
				log.Printf("Error updating Itinerary status [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		DELETE("/itineraries/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var itinerary models.Itinerary
				if err := tx.
					Model(&models.Itinerary{}).
					Where("id = ?", params.ID).
					First(&itinerary).
					Error; err != nil {
					return err
				}
				if itinerary.Status == string(types.ITINERARY_FINAL) {
					return errors.New("finalized itineraries cannot be deleted")
				}
				return tx.Delete(&models.Itinerary{}, params.ID).Error
			})
			if err != nil {
				log.Printf("Error deleting Itinerary [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
