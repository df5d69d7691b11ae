package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type BranchController struct{ Svc *services.BranchService }

func NewBranchController(s *services.BranchService) *BranchController {
	return &BranchController{Svc: s}
}

// GET /branches (public)
func (h *BranchController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /branches/:slug (public)
func (h *BranchController) GetBySlug(c *gin.Context) {
	b, err := h.Svc.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, b)
}

// POST /admin/branches
func (h *BranchController) Create(c *gin.Context) {
	var req services.BranchIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b, err := h.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, b)
}

// PUT /admin/branches/:id
func (h *BranchController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid branch id")
		return
	}
	var req services.BranchIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b, err := h.Svc.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, b)
}

// DELETE /admin/branches/:id
func (h *BranchController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid branch id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
