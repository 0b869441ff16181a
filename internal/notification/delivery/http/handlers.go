package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"agentic-task-manager/pkg/response"
)

var errInvalidBody = errors.New("invalid request body")

// SendPRNotification
// @Summary Send a PR notification manually
// @Description Runs the generate-and-send pipeline inline for the given PR data
// @Tags Notification
// @Accept json
// @Produce json
// @Param body body prReq false "PR data, all fields optional"
// @Success 200 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/notifications/pr [post]
func (h *handler) SendPRNotification(c *gin.Context) {
	ctx := c.Request.Context()

	var req prReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "notification.delivery.http.SendPRNotification.ShouldBindJSON: %v", err)
		response.Error(c, errInvalidBody, nil)
		return
	}

	event := req.toEvent()
	if h.uc.ProcessPullRequest(ctx, event) {
		response.OK(c, gin.H{
			"status":   "delivered",
			"pr_title": event.Title,
		})
		return
	}

	h.l.Errorf(ctx, "notification.delivery.http.SendPRNotification: delivery failed for %q", event.Title)
	response.InternalError(c, errors.New("notification delivery failed"))
}

// TestService
// @Summary Test the notification service end to end
// @Description Generates and sends a notification for a fixed sample PR
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/notifications/test [post]
func (h *handler) TestService(c *gin.Context) {
	out := h.uc.TestService(c.Request.Context())
	response.OK(c, newTestResp(out))
}

// Status
// @Summary Report notification service configuration status
// @Description Reports which configuration groups are present, never the values
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/notifications/status [get]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, newStatusResp(h.uc.Status()))
}
