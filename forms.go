package brochure

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/brochure/convertkit"
)

const (
	formContact   = "contact"
	formSubscribe = "subscribe"

	defaultContactSubject = "General Inquiry"
)

type contactRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Subject  string `json:"subject" form:"subject"`
	Message  string `json:"message" form:"message"`
	Redirect string `json:"-" form:"redirect"`
}

type subscribeRequest struct {
	Email     string          `json:"email" form:"email"`
	FirstName string          `json:"firstName" form:"firstName"`
	FormID    convertkit.ID   `json:"formId" form:"formId"`
	Tags      []convertkit.ID `json:"tags" form:"tags"`
	Redirect  string          `json:"-" form:"redirect"`
}

// formReply is the outcome of a submission, rendered as JSON for API
// clients or as a flash message and redirect for plain browser posts.
type formReply struct {
	status  int
	body    echo.Map
	outcome string
}

func replyError(status int, outcome, msg string) formReply {
	return formReply{status: status, body: echo.Map{"error": msg}, outcome: outcome}
}

func (r formReply) message() string {
	if m, ok := r.body["message"].(string); ok {
		return m
	}
	m, _ := r.body["error"].(string)
	return m
}

func (a *App) handleContact(c echo.Context) error {
	if r, limited := a.limit(c, formContact); limited {
		return a.respond(c, formContact, "", "/contact/", r)
	}
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return a.respond(c, formContact, "", "/contact/", replyError(http.StatusBadRequest, outcomeInvalid, "Invalid request body"))
	}
	return a.respond(c, formContact, req.Redirect, "/contact/", a.contact(c, req))
}

func (a *App) contact(c echo.Context, req contactRequest) formReply {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return replyError(http.StatusBadRequest, outcomeInvalid, "Name, email, and message are required")
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = defaultContactSubject
	}

	_, err := a.ConvertKit.TagSubscribe(c.Request().Context(), convertkit.ID(a.Config.ContactTagID), convertkit.Subscriber{
		Email:     email,
		FirstName: name,
		Fields: map[string]string{
			"contact_subject": subject,
			"contact_message": message,
		},
	})
	if err != nil {
		return a.upstreamFailure(formContact, err, func(*convertkit.UpstreamError) echo.Map {
			return echo.Map{"error": "Failed to send message"}
		})
	}
	return formReply{
		status:  http.StatusOK,
		body:    echo.Map{"success": true, "message": "Message sent successfully!"},
		outcome: outcomeSuccess,
	}
}

func (a *App) handleSubscribe(c echo.Context) error {
	if r, limited := a.limit(c, formSubscribe); limited {
		return a.respond(c, formSubscribe, "", "/", r)
	}
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return a.respond(c, formSubscribe, "", "/", replyError(http.StatusBadRequest, outcomeInvalid, "Invalid request body"))
	}
	return a.respond(c, formSubscribe, req.Redirect, "/", a.subscribe(c, req))
}

func (a *App) subscribe(c echo.Context, req subscribeRequest) formReply {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return replyError(http.StatusBadRequest, outcomeInvalid, "Email is required")
	}
	var tags []convertkit.ID
	for _, t := range req.Tags {
		if t != "" {
			tags = append(tags, t)
		}
	}
	if req.FormID == "" && len(tags) == 0 {
		return replyError(http.StatusBadRequest, outcomeInvalid, "Form ID or tag required")
	}

	sub := convertkit.Subscriber{
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		Tags:      tags,
	}
	var (
		result json.RawMessage
		err    error
	)
	ctx := c.Request().Context()
	if req.FormID != "" {
		result, err = a.ConvertKit.FormSubscribe(ctx, req.FormID, sub)
	} else {
		result, err = a.ConvertKit.TagSubscribe(ctx, tags[0], sub)
	}
	if err != nil {
		return a.upstreamFailure(formSubscribe, err, func(up *convertkit.UpstreamError) echo.Map {
			return echo.Map{"error": "Subscription failed", "details": up.Body}
		})
	}

	body := echo.Map{"success": true, "message": "Successfully subscribed!"}
	if len(result) > 0 && string(result) != "null" {
		body["subscriber"] = result
	}
	return formReply{status: http.StatusOK, body: body, outcome: outcomeSuccess}
}

// upstreamFailure logs a failed ConvertKit call and maps it to a reply.
// The secret's absence and transport details never reach the client.
func (a *App) upstreamFailure(form string, err error, onUpstream func(*convertkit.UpstreamError) echo.Map) formReply {
	if errors.Is(err, convertkit.ErrMissingSecret) {
		a.Logger.Error("convertkit api secret not configured", zap.String("form", form))
		return replyError(http.StatusInternalServerError, outcomeConfigError, "Server configuration error")
	}
	var up *convertkit.UpstreamError
	if errors.As(err, &up) {
		a.Logger.Error("convertkit api error",
			zap.String("form", form),
			zap.Int("status", up.StatusCode),
			zap.String("body", up.Body),
		)
		return formReply{status: http.StatusInternalServerError, body: onUpstream(up), outcome: outcomeUpstreamError}
	}
	a.Logger.Error("form submission failed", zap.String("form", form), zap.Error(err))
	return replyError(http.StatusInternalServerError, outcomeError, "An error occurred")
}

func (a *App) limit(c echo.Context, form string) (formReply, bool) {
	if a.formLimiter.Allow(c.RealIP()) {
		return formReply{}, false
	}
	a.Logger.Warn("form rate limited", zap.String("form", form), zap.String("ip", c.RealIP()))
	return replyError(http.StatusTooManyRequests, outcomeRateLimited, "Too many requests"), true
}

// respond records the outcome and writes the reply. Plain browser form
// posts get a flash message and a 303 back to a site-relative page.
func (a *App) respond(c echo.Context, form, redirect, fallback string, r formReply) error {
	a.Metrics.submission(form, r.outcome)
	if isFormRequest(c) {
		if redirect == "" {
			redirect = c.FormValue("redirect")
		}
		if err := setFlash(c, r.message()); err != nil {
			a.Logger.Warn("set flash", zap.Error(err))
		}
		return c.Redirect(http.StatusSeeOther, safeRedirect(redirect, fallback))
	}
	return c.JSON(r.status, r.body)
}
