package endpoint

import (
	"fmt"
	"net/http"

	"github.com/daifend/platform/util"
	"github.com/gin-gonic/gin"
)

// mailer relays intake submissions. Set during startup via SetMailer; tests
// inject a fake the same way.
var mailer util.MailSender

// SetMailer configures the outbound mail relay used by the intake handlers.
func SetMailer(m util.MailSender) {
	mailer = m
}

type contactRequest struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" example:"jane@example.com"`
	Message string `json:"message" example:"I would like to talk about your research."`
}

type applicationRequest struct {
	Name        string `json:"name" example:"Jane Doe"`
	Email       string `json:"email" example:"jane@example.com"`
	Position    string `json:"position" example:"Security Researcher"`
	CoverLetter string `json:"coverLetter"`
	// Website is a honeypot: real users never fill it, bots do. Submissions
	// with a value here are acknowledged but dropped.
	Website string `json:"website"`
}

// SubmitContact godoc
// @Summary      Contact form intake
// @Description  Relays one email per submission; nothing is persisted
// @Tags         Intake
// @Accept       json
// @Produce      json
// @Param        request body contactRequest true "Contact fields"
// @Success      200 {object} map[string]bool
// @Failure      400 {object} util.APIError "Missing fields"
// @Failure      500 {object} util.APIError "Relay failure"
// @Router       /api/contact [post]
func SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, "Missing fields")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		util.CallUserError(c, "Missing fields")
		return
	}

	msg := util.MailMessage{
		FromName: req.Name,
		ReplyTo:  req.Email,
		Subject:  "New Contact Message from Daifend Website",
		Body:     req.Message,
	}
	if mailer == nil {
		util.CallServerError(c, "Failed to send message", fmt.Errorf("mailer not configured"))
		return
	}
	if err := mailer.Send(msg); err != nil {
		util.CallServerError(c, "Failed to send message", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitApplication godoc
// @Summary      Job application intake
// @Description  Relays one email per submission. The website field is a honeypot; filled-in values are silently discarded with a success response.
// @Tags         Intake
// @Accept       json
// @Produce      json
// @Param        request body applicationRequest true "Application fields"
// @Success      200 {object} map[string]bool
// @Failure      400 {object} util.APIError "Missing fields"
// @Failure      500 {object} util.APIError "Relay failure"
// @Router       /api/careers/apply [post]
func SubmitApplication(c *gin.Context) {
	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, "Missing fields")
		return
	}

	// Bot submission: acknowledge and drop.
	if req.Website != "" {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if req.Name == "" || req.Email == "" || req.Position == "" || req.CoverLetter == "" {
		util.CallUserError(c, "Missing fields")
		return
	}

	msg := util.MailMessage{
		FromName: req.Name,
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("New Job Application: %s", req.Position),
		Body:     req.CoverLetter,
	}
	if mailer == nil {
		util.CallServerError(c, "Failed to send message", fmt.Errorf("mailer not configured"))
		return
	}
	if err := mailer.Send(msg); err != nil {
		util.CallServerError(c, "Failed to send message", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
