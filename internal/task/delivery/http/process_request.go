package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateStatusReq binds the status event body and the URI id.
func (h *handler) processUpdateStatusReq(c *gin.Context) (updateStatusReq, error) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

func (h *handler) processConfirmReq(c *gin.Context) (confirmReq, error) {
	var req confirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}
