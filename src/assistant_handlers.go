package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/assistant"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/db"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/lib"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func assistantHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/inbox", func(ctx *gin.Context) {
			var query struct {
				Status  *string `form:"status"`
				Channel *string `form:"channel" binding:"omitempty,oneof=email whatsapp"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var messages []models.InboxMessage
			model := db.
				Model(&models.InboxMessage{}).
				Preload("Customer").
				Order("created_at desc")
			if query.Status != nil {
				model = model.Where("status = ?", *query.Status)
			}
			if query.Channel != nil {
				model = model.Where("channel = ?", *query.Channel)
			}
			if err := model.Find(&messages).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": messages, "count": len(messages)})
		}).
		POST("/inbox", func(ctx *gin.Context) {
			var body types.CreateInboxMessageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			message := models.InboxMessage{
				CustomerID:  body.CustomerID,
				Channel:     body.Channel,
				FromAddress: body.FromAddress,
				Subject:     body.Subject,
				Body:        body.Body,
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				// Unmatched senders are linked by email when a customer exists.
				if message.CustomerID == nil && body.Channel == string(types.CHANNEL_EMAIL) {
					var customer models.Customer
					err := tx.
						Model(&models.Customer{}).
						Where("email = ?", body.FromAddress).
						First(&customer).
						Error
					if err == nil {
						message.CustomerID = &customer.ID
					} else if !errors.Is(err, gorm.ErrRecordNotFound) {
						return err
					}
				}
				return tx.Create(&message).Error
			})
			if err != nil {
				log.Printf("Error creating InboxMessage: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": message})
		}).
		PUT("/inbox/:id/read", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				return tx.
					Model(&models.InboxMessage{}).
					Where("id = ?", params.ID).
					Update("status", "read").
					Error
			})
			if err != nil {
				log.Printf("Error marking InboxMessage read [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/assistant/draft", func(ctx *gin.Context) {
			var body types.DraftReplyRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var message models.InboxMessage
			if err := db.
				Model(&models.InboxMessage{}).
				Where(&models.InboxMessage{ID: body.MessageID}).
				Preload("Customer").
				First(&message).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			time.Sleep(assistant.ResponseDelay())
			var draft string
			if message.Channel == string(types.CHANNEL_WHATSAPP) {
				draft = assistant.DraftWhatsAppReply(message, message.Customer)
			} else {
				draft = assistant.DraftEmailReply(message, message.Customer)
			}
			now := time.Now()
			intent := assistant.DetectIntent(message.Body)
			meta := types.Metadata{"intent": intent}
			err := db.Transaction(func(tx *gorm.DB) error {
				return tx.
					Model(&models.InboxMessage{}).
					Where("id = ?", message.ID).
					Updates(map[string]any{
						"draft_body": draft,
						"drafted_at": now,
						"metadata":   &meta,
					}).
					Error
			})
			if err != nil {
				log.Printf("Error saving draft for InboxMessage [%d]: %s\n", message.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"draft": draft, "intent": intent, "drafted_at": now})
		}).
		POST("/assistant/send", func(ctx *gin.Context) {
			var body types.SendDraftRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var message models.InboxMessage
			if err := db.
				Model(&models.InboxMessage{}).
				Where(&models.InboxMessage{ID: body.MessageID}).
				First(&message).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			if message.DraftBody == nil || *message.DraftBody == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "message has no draft to send"})
				return
			}
			if err := lib.SendMail(&lib.SendMailInput{
				From:     os.Getenv("SMTP_FROM"),
				FromName: "Wanderlust Whisper",
				To:       []string{body.To},
				Subject:  body.Subject,
				Body:     *message.DraftBody,
			}); err != nil {
				log.Printf("Error sending draft for InboxMessage [%d]: %s\n", message.ID, err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			now := time.Now()
			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.
					Model(&models.InboxMessage{}).
					Where("id = ?", message.ID).
					Update("status", "replied").
					Error; err != nil {
					return err
				}
				if message.CustomerID != nil {
					if err := tx.
						Model(&models.Customer{}).
						Where("id = ?", *message.CustomerID).
						Update("last_contact", now).
						Error; err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				log.Printf("Error updating InboxMessage after send [%d]: %s\n", message.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
