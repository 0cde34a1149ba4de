package main

import (
	"log"
	"net/http"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/db"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Rate catalogs: hotels, guides and activities with their current price lists.
func catalogHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/hotels", func(ctx *gin.Context) {
			var query struct {
				Destination *string `form:"destination"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var hotels []models.Hotel
			model := db.Model(&models.Hotel{}).Preload("Rates").Order("name asc")
			if query.Destination != nil {
				model = model.Where("destination = ?", *query.Destination)
			}
			if err := model.Find(&hotels).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotels, "count": len(hotels)})
		}).
		POST("/hotels", func(ctx *gin.Context) {
			var body types.CreateHotelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hotel := models.Hotel{
				Name:         body.Name,
				Destination:  body.Destination,
				Category:     body.Category,
				ContactEmail: body.ContactEmail,
			}
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&hotel).Error
			}); err != nil {
				log.Printf("Error creating Hotel: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": hotel})
		}).
		POST("/hotels/:id/rates", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateHotelRateRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			rate := models.HotelRate{
				HotelID:     params.ID,
				RoomType:    body.RoomType,
				SeasonStart: body.SeasonStart,
				SeasonEnd:   body.SeasonEnd,
				NightlyRate: body.NightlyRate,
				Currency:    body.Currency,
			}
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				var count int64
				if err := tx.Model(&models.Hotel{}).Where("id = ?", params.ID).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return gorm.ErrRecordNotFound
				}
				return tx.Create(&rate).Error
			}); err != nil {
				log.Printf("Error creating HotelRate for Hotel [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": rate})
		}).
		GET("/guides", func(ctx *gin.Context) {
			var query struct {
				Destination *string `form:"destination"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var guides []models.Guide
			model := db.Model(&models.Guide{}).Preload("Rates").Order("name asc")
			if query.Destination != nil {
				model = model.Where("destination = ?", *query.Destination)
			}
			if err := model.Find(&guides).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": guides, "count": len(guides)})
		}).
		POST("/guides", func(ctx *gin.Context) {
			var body types.CreateGuideRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			guide := models.Guide{
				Name:        body.Name,
				Destination: body.Destination,
				Languages:   body.Languages,
				Phone:       body.Phone,
			}
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&guide).Error
			}); err != nil {
				log.Printf("Error creating Guide: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": guide})
		}).
		POST("/guides/:id/rates", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateGuideRateRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			rate := models.GuideRate{
				GuideID:   params.ID,
				Service:   body.Service,
				DailyRate: body.DailyRate,
				Currency:  body.Currency,
			}
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				var count int64
				if err := tx.Model(&models.Guide{}).Where("id = ?", params.ID).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return gorm.ErrRecordNotFound
				}
				return tx.Create(&rate).Error
			}); err != nil {
				log.Printf("Error creating GuideRate for Guide [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": rate})
		}).
		GET("/activities", func(ctx *gin.Context) {
			var query struct {
				Destination *string `form:"destination"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var activities []models.Activity
			model := db.Model(&models.Activity{}).Preload("Rates").Order("name asc")
			if query.Destination != nil {
				model = model.Where("destination = ?", *query.Destination)
			}
			if err := model.Find(&activities).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": activities, "count": len(activities)})
		}).
		POST("/activities", func(ctx *gin.Context) {
			var body types.CreateActivityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			activity := models.Activity{
				Name:          body.Name,
				Destination:   body.Destination,
				Description:   body.Description,
				DurationHours: body.DurationHours,
			}
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&activity).Error
			}); err != nil {
				log.Printf("Error creating Activity: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": activity})
		}).
		POST("/activities/:id/rates", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateActivityRateRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			rate := models.ActivityRate{
				ActivityID:     params.ID,
				PricePerPerson: body.PricePerPerson,
				MinPeople:      body.MinPeople,
				Currency:       body.Currency,
			}
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				var count int64
				if err := tx.Model(&models.Activity{}).Where("id = ?", params.ID).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return gorm.ErrRecordNotFound
				}
				return tx.Create(&rate).Error
			}); err != nil {
				log.Printf("Error creating ActivityRate for Activity [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": rate})
		})
	return g
}
