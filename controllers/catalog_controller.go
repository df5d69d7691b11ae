package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// CatalogController serves both the admin CRUD for categories/food items
// (numeric branch ids) and the public browse endpoints (branch slugs).
type CatalogController struct {
	Svc       *services.CatalogService
	BranchSvc *services.BranchService
}

func NewCatalogController(s *services.CatalogService, bs *services.BranchService) *CatalogController {
	return &CatalogController{Svc: s, BranchSvc: bs}
}

// ---------------- Categories ----------------

// POST /admin/branches/:id/categories
func (h *CatalogController) CreateCategory(c *gin.Context) {
	branchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid branch id")
		return
	}
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(uint(branchID), req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /admin/categories/:id
func (h *CatalogController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.UpdateCategory(uint(id), req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /admin/categories/:id
func (h *CatalogController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	if err := h.Svc.DeleteCategory(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /branches/:slug/categories (public)
func (h *CatalogController) ListCategories(c *gin.Context) {
	b, err := h.BranchSvc.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	items, err := h.Svc.ListCategories(b.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// ---------------- Food items ----------------

// POST /admin/branches/:id/food-items
func (h *CatalogController) CreateFoodItem(c *gin.Context) {
	branchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid branch id")
		return
	}
	var req services.FoodItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	fi, err := h.Svc.CreateFoodItem(uint(branchID), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, fi)
}

// PUT /admin/food-items/:id
func (h *CatalogController) UpdateFoodItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid food item id")
		return
	}
	var req services.FoodItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	fi, err := h.Svc.UpdateFoodItem(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, fi)
}

// DELETE /admin/food-items/:id
func (h *CatalogController) DeleteFoodItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid food item id")
		return
	}
	if err := h.Svc.DeleteFoodItem(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /branches/:slug/food-items?categoryId= (public)
func (h *CatalogController) ListFoodItems(c *gin.Context) {
	b, err := h.BranchSvc.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	var categoryID *uint
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid category id")
			return
		}
		u := uint(id)
		categoryID = &u
	}
	items, err := h.Svc.ListFoodItems(b.ID, categoryID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /branches/:slug/food-items/count (public)
func (h *CatalogController) CountFoodItems(c *gin.Context) {
	b, err := h.BranchSvc.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	cnt, err := h.Svc.CountFoodItems(b.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"count": cnt})
}
