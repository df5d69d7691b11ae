package controllers

import (
	"backend/cart"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

const cartTokenHeader = "X-Cart-Token"

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// token reads the client's cart token, minting one on first contact. The
// minted token is echoed back so the client can persist it.
func (h *CartController) token(c *gin.Context) string {
	t := c.GetHeader(cartTokenHeader)
	if t == "" {
		t = h.Svc.MintToken()
	}
	c.Header(cartTokenHeader, t)
	return t
}

// GET /cart and GET /cart?branch=slug
func (h *CartController) Get(c *gin.Context) {
	token := h.token(c)
	if branch := c.Query("branch"); branch != "" {
		out, err := h.Svc.GetForBranch(c.Request.Context(), token, branch)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, out)
		return
	}
	doc, err := h.Svc.Get(c.Request.Context(), token)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, doc)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	token := h.token(c)
	var line cart.Line
	if err := c.ShouldBindJSON(&line); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	doc, err := h.Svc.Add(c.Request.Context(), token, line)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, doc)
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQuantity(c *gin.Context) {
	token := h.token(c)
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	doc, err := h.Svc.UpdateQuantity(c.Request.Context(), token, c.Param("id"), body.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, doc)
}

// DELETE /cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	token := h.token(c)
	doc, err := h.Svc.Remove(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, doc)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	token := h.token(c)
	if err := h.Svc.Clear(c.Request.Context(), token); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
