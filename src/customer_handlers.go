package main

import (
	"log"
	"net/http"
	"time"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/db"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/travel"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// customerRow is what the customer list renders: the stored record plus the
// derived status and upcoming travel window, resolved on every read.
type customerRow struct {
	models.Customer
	CalculatedStatus string         `json:"calculated_status"`
	NextTravel       *travel.Window `json:"next_travel,omitempty"`
}

func toCustomerRow(c models.Customer, today time.Time) customerRow {
	return customerRow{
		Customer:         c,
		CalculatedStatus: travel.ResolveStatus(c, c.Bookings, today),
		NextTravel:       travel.NextTravelWindow(c, c.Bookings, today),
	}
}

func customerHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/customers", func(ctx *gin.Context) {
			db := db.GetDb()
			var customers []models.Customer
			err := db.Transaction(func(tx *gorm.DB) error {
				err := tx.
					Model(&models.Customer{}).
					Preload("Bookings").
					Order("created_at desc").
					Find(&customers).
					Error
				if err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			today := time.Now()
			rows := make([]customerRow, 0, len(customers))
			for _, c := range customers {
				rows = append(rows, toCustomerRow(c, today))
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rows, "count": len(rows)})
		}).
		GET("/customers/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var customer models.Customer
			if err := db.
				Model(&models.Customer{}).
				Where(&models.Customer{ID: params.ID}).
				Preload("Bookings").
				Preload("Itineraries").
				First(&customer).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": toCustomerRow(customer, time.Now())})
		}).
		POST("/customers", func(ctx *gin.Context) {
			var body types.CreateCustomerRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			customer := models.Customer{
				Name:           body.Name,
				Email:          body.Email,
				Phone:          body.Phone,
				Nationality:    body.Nationality,
				Destination:    body.Destination,
				TripType:       body.TripType,
				NumberOfPeople: body.NumberOfPeople,
				Value:          body.Value,
				StartDate:      body.StartDate,
				EndDate:        body.EndDate,
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				err := tx.Create(&customer).Error
				if err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				log.Printf("Error creating Customer: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": customer})
		}).
		PUT("/customers/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateCustomerRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := map[string]any{}
			if body.Name != nil {
				updates["name"] = *body.Name
			}
			if body.Email != nil {
				updates["email"] = *body.Email
			}
			if body.Phone != nil {
				updates["phone"] = *body.Phone
			}
			if body.Nationality != nil {
				updates["nationality"] = *body.Nationality
			}
			if body.Destination != nil {
				updates["destination"] = *body.Destination
			}
			if body.TripType != nil {
				updates["trip_type"] = *body.TripType
			}
			if body.NumberOfPeople != nil {
				updates["number_of_people"] = *body.NumberOfPeople
			}
			if body.Value != nil {
				updates["value"] = *body.Value
			}
			if body.StartDate != nil {
				updates["start_date"] = *body.StartDate
			}
			if body.EndDate != nil {
				updates["end_date"] = *body.EndDate
			}
			if len(updates) == 0 {
				ctx.Status(http.StatusNoContent)
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				err := tx.
					Model(&models.Customer{}).
					Where("id = ?", params.ID).
					Updates(updates).
					Error
				if err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				log.Printf("Error updating Customer [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		PUT("/customers/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				err := tx.
					Model(&models.Customer{}).
					Where("id = ?", params.ID).
					Update("status", body.Status).
					Error
				if err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				log.Printf("Error updating Customer status [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
