package http

import (
	"github.com/gin-gonic/gin"

	"flowx/pkg/response"
)

// Login godoc
// @Summary     Start a session
// @Description Resumes the stored profile when the username matches, otherwise starts a default profile.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Username"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/session/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(p))
}

// Logout godoc
// @Summary     End the session
// @Tags        Session
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/session/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Detail godoc
// @Summary     Current profile
// @Tags        Profile
// @Produce     json
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Login required"
// @Router      /api/v1/profile [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.Current(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(p))
}

// Onboarding godoc
// @Summary     Complete onboarding
// @Description Merges the questionnaire answers into the profile and persists it. Omitted fields keep their value. Runs once per profile.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body onboardingReq true "Answers"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Login required"
// @Failure     409 {object} response.Resp "Already onboarded"
// @Router      /api/v1/profile/onboarding [POST]
func (h *handler) Onboarding(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOnboardingReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.CompleteOnboarding(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CompleteOnboarding: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(p))
}

// Suggestions godoc
// @Summary     Task suggestions
// @Description Up to five off-hours task ideas for the profile's profession. Empty when the assistant is unavailable.
// @Tags        Profile
// @Produce     json
// @Success     200 {object} suggestionsResp
// @Failure     401 {object} response.Resp "Login required"
// @Router      /api/v1/profile/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.suggester.Suggestions(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, suggestionsResp{Suggestions: list})
}
