package service

import (
	"portfolio/logutils"
	"portfolio/response"

	"github.com/gin-gonic/gin"
)

// Error text kept verbatim from the original API contract, "OTP" and all.
const msgEmailFailed = "Failed to send OTP"

// EmailSender is the mail surface the handler needs.
type EmailSender interface {
	SendWelcome(to, name string) error
	SendNotification(name, message string) error
}

type EmailService struct {
	sender EmailSender
}

func NewEmailService(sender EmailSender) *EmailService {
	return &EmailService{sender: sender}
}

// RegisterEmail mounts the sendemail route.
func RegisterEmail(r gin.IRouter, s *EmailService) {
	r.POST("/sendemail", s.SendEmail)
}

type sendEmailReq struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// SendEmail sends the welcome mail to the requester and the notification mail
// to the operator, in that order. Both must succeed; there is no
// partial-success reporting.
func (s *EmailService) SendEmail(c *gin.Context) {
	var req sendEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logutils.Log.Error("send email: bind body: ", err)
		response.Error(c, response.Upstream, msgEmailFailed)
		return
	}

	if err := s.sender.SendWelcome(req.Email, req.Name); err != nil {
		logutils.Log.Error("send email: welcome to ", req.Email, ": ", err)
		response.Error(c, response.Upstream, msgEmailFailed)
		return
	}
	if err := s.sender.SendNotification(req.Name, req.Message); err != nil {
		logutils.Log.Error("send email: notification: ", err)
		response.Error(c, response.Upstream, msgEmailFailed)
		return
	}
	response.OK(c, gin.H{"status": true})
}
