package http

import "github.com/gin-gonic/gin"

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processOnboardingReq(c *gin.Context) (onboardingReq, error) {
	var req onboardingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
