package api

import (
	"net/http"

	"github.com/Mohsinsiddi/w3tokens/internal/service"
	"github.com/gin-gonic/gin"
)

type asyncResponse struct {
	ID string `json:"id"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "clients": s.hub.Clients()})
}

func (s *Server) createPool(c *gin.Context) {
	var req service.CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	res, err := s.svc.CreatePool(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if res.Pool != nil {
		c.JSON(http.StatusOK, res.Pool)
		return
	}
	c.JSON(http.StatusAccepted, asyncResponse{ID: res.ID})
}

func (s *Server) activatePool(c *gin.Context) {
	var req service.ActivatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	pool, err := s.svc.ActivatePool(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

func (s *Server) mint(c *gin.Context) {
	var req service.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	s.respondAsync(c, func() (string, error) { return s.svc.Mint(c.Request.Context(), req) })
}

func (s *Server) transfer(c *gin.Context) {
	var req service.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	s.respondAsync(c, func() (string, error) { return s.svc.Transfer(c.Request.Context(), req) })
}

func (s *Server) burn(c *gin.Context) {
	var req service.BurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	s.respondAsync(c, func() (string, error) { return s.svc.Burn(c.Request.Context(), req) })
}

func (s *Server) approval(c *gin.Context) {
	var req service.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	s.respondAsync(c, func() (string, error) { return s.svc.Approval(c.Request.Context(), req) })
}

func (s *Server) balance(c *gin.Context) {
	var req service.BalanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	bal, err := s.svc.BalanceOf(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bal)
}

func (s *Server) respondAsync(c *gin.Context, op func() (string, error)) {
	id, err := op()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, asyncResponse{ID: id})
}
