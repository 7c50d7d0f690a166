package handlers

import (
	"github.com/gin-gonic/gin"

	mw "github.com/espacionido/nido-backend/internal/app/api/middleware"
	"github.com/espacionido/nido-backend/internal/app/service/announcement"
	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/pkg/response"
	"github.com/espacionido/nido-backend/pkg/types"
)

type createAnnouncementResp struct {
	AnnouncementID string          `json:"announcement_id"`
	EmailStats     types.SendStats `json:"email_stats"`
	PushStats      types.SendStats `json:"push_stats"`
}

// @Summary      Create Announcement (Admin)
// @Description  Creates an announcement and fans it out by email/push to active clients.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body announcement.CreateRequest true "Announcement"
// @Success      200  {object}  response.APIResponse[createAnnouncementResp]
// @Router       /api/v1/admin/announcements [post]
func ApiCreateAnnouncement(svc *announcement.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req announcement.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
			return
		}
		claims := mw.ClaimsFrom(c)
		res, err := svc.Create(c.Request.Context(), claims.UserID, &req)
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, createAnnouncementResp{
			AnnouncementID: res.Announcement.ID,
			EmailStats:     res.EmailStats,
			PushStats:      res.PushStats,
		})
	}
}

type listAnnouncementsResp struct {
	Announcements []*models.Announcement `json:"announcements"`
}

// @Summary      List Active Announcements
// @Tags         Announcements
// @Produce      json
// @Success      200  {object}  response.APIResponse[listAnnouncementsResp]
// @Router       /api/v1/client/announcements [get]
func ApiListAnnouncements(svc *announcement.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.ListActive(c.Request.Context())
		if err != nil {
			failFromErr(c, err)
			return
		}
		response.OK(c, listAnnouncementsResp{Announcements: rows})
	}
}

// @Summary      Delete Announcement (Admin)
// @Description  Hard delete; the announcement is gone permanently.
// @Tags         Admin
// @Produce      json
// @Param        id  path  string  true  "Announcement id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/admin/announcements/{id} [delete]
func ApiDeleteAnnouncement(svc *announcement.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mw.ClaimsFrom(c)
		if err := svc.Delete(c.Request.Context(), c.Param("id"), claims.UserID); err != nil {
			failFromErr(c, err)
			return
		}
		response.OK[any](c, nil)
	}
}

type registerTokenBody struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// @Summary      Register Push Token
// @Tags         Announcements
// @Accept       json
// @Produce      json
// @Param        request body registerTokenBody true "FCM token"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/client/push/token [post]
func ApiRegisterPushToken(svc *announcement.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body registerTokenBody
		if err := c.ShouldBindJSON(&body); err != nil {
			response.Fail(c, response.APIResponseCodeBadRequest, err.Error())
			return
		}
		claims := mw.ClaimsFrom(c)
		if err := svc.RegisterToken(c.Request.Context(), claims.UserID, body.Token, body.Platform); err != nil {
			failFromErr(c, err)
			return
		}
		response.OK[any](c, nil)
	}
}

func RegisterClientAnnouncementRoutes(r gin.IRouter, svc *announcement.Service) {
	r.GET("/announcements", ApiListAnnouncements(svc))
	r.POST("/push/token", ApiRegisterPushToken(svc))
}

func RegisterAdminAnnouncementRoutes(r gin.IRouter, svc *announcement.Service) {
	r.POST("/announcements", ApiCreateAnnouncement(svc))
	r.GET("/announcements", ApiListAnnouncements(svc))
	r.DELETE("/announcements/:id", ApiDeleteAnnouncement(svc))
}
