package controllers

import (
	"encoding/json"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc       *services.OrderService
	BranchSvc *services.BranchService
	WASvc     *services.WhatsAppService
}

func NewOrderController(s *services.OrderService, bs *services.BranchService, wa *services.WhatsAppService) *OrderController {
	return &OrderController{Svc: s, BranchSvc: bs, WASvc: wa}
}

// ===== Create =====

type createOrderReq struct {
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerAddress string          `json:"customerAddress"`
	Items           json.RawMessage `json:"items"`
}

// POST /branches/:slug/orders (public)
func (h *OrderController) Create(c *gin.Context) {
	b, err := h.BranchSvc.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	items, err := services.ParseItems(req.Items)
	if err != nil {
		resp.Error(c, err)
		return
	}

	out, err := h.Svc.Create(b.ID, &services.CreateOrderIn{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// ===== Status page & WhatsApp handoff =====

// GET /orders/:id (public order status page)
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	d, err := h.Svc.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /orders/:id/whatsapp
func (h *OrderController) WhatsApp(c *gin.Context) {
	handoff, err := h.handoff(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, handoff)
}

// GET /orders/:id/whatsapp/qr
func (h *OrderController) WhatsAppQR(c *gin.Context) {
	handoff, err := h.handoff(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	png, err := h.WASvc.QR(handoff.Link)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(200, "image/png", png)
}

func (h *OrderController) handoff(c *gin.Context) (*services.WhatsAppHandoff, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, services.ErrInvalidOrderID
	}
	d, err := h.Svc.Detail(uint(id))
	if err != nil {
		return nil, err
	}
	b, err := h.Svc.BranchForOrder(&d.Order)
	if err != nil {
		return nil, err
	}
	return h.WASvc.BuildHandoff(b, &d.Order, d.Items), nil
}

// ===== Admin =====

// GET /admin/orders?branchId=&status=&page=&limit=
func (h *OrderController) ListForAdmin(c *gin.Context) {
	var branchID *uint
	if v := c.Query("branchId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid branch id")
			return
		}
		u := uint(id)
		branchID = &u
	}
	var status *entity.OrderStatus
	if v := c.Query("status"); v != "" {
		st := entity.OrderStatus(v)
		if !st.Valid() {
			resp.BadRequest(c, "invalid status")
			return
		}
		status = &st
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := h.Svc.List(branchID, status, page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/orders/:id
func (h *OrderController) DetailForAdmin(c *gin.Context) {
	h.Detail(c)
}

// PATCH /admin/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateStatus(uint(id), body.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": body.Status})
}
