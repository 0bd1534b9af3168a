package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"sole_and_ankle/catalog/internal/auth"
	"sole_and_ankle/catalog/internal/card"
	"sole_and_ankle/catalog/internal/logic"
	"sole_and_ankle/catalog/internal/store"

	"github.com/gin-gonic/gin"
)

type AdminStore interface {
	GetAdmin(ctx context.Context, username string) (*store.Admin, error)
}

type HTTPHandler struct {
	catalog *Catalog
	admins  AdminStore
	tokens  *auth.TokenManager
}

func NewHTTPHandler(c *Catalog, admins AdminStore, tokens *auth.TokenManager) *HTTPHandler {
	return &HTTPHandler{catalog: c, admins: admins, tokens: tokens}
}

// Router wires public storefront routes and JWT-protected admin routes.
func (h *HTTPHandler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/shoes", h.ListCards)
	api.GET("/shoes/:slug", h.GetCard)
	api.POST("/classify", h.Classify)
	api.POST("/admin/login", h.Login)

	admin := api.Group("/admin")
	admin.Use(auth.AdminMiddleware(h.tokens))
	{
		admin.POST("/shoes", h.SaveShoe)
		admin.DELETE("/shoes/:slug", h.DeleteShoe)
	}
	return r
}

func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListCards returns every card in the catalog, or only the shoes named by
// repeated slug query parameters.
func (h *HTTPHandler) ListCards(c *gin.Context) {
	var (
		cards []card.Card
		err   error
	)
	if slugs := c.QueryArray("slug"); len(slugs) > 0 {
		cards, err = h.catalog.CardsBySlugs(c.Request.Context(), slugs)
	} else {
		cards, err = h.catalog.Cards(c.Request.Context())
	}
	if err != nil {
		log.Printf("[catalog-http] list failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list shoes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cards})
}

// GetCard returns a single card by slug.
func (h *HTTPHandler) GetCard(c *gin.Context) {
	slug := c.Param("slug")
	cd, err := h.catalog.Card(c.Request.Context(), slug)
	if errors.Is(err, store.ErrShoeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "shoe not found"})
		return
	} else if err != nil {
		log.Printf("[catalog-http] get failed slug=%s err=%v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shoe"})
		return
	}
	c.JSON(http.StatusOK, cd)
}

// Classify renders a card for an ad-hoc record without storing it.
func (h *HTTPHandler) Classify(c *gin.Context) {
	var shoe logic.Shoe
	if err := c.ShouldBindJSON(&shoe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if shoe.Slug == "" {
		shoe.Slug = "preview"
	}
	cd, err := h.catalog.Preview(shoe)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cd)
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges admin credentials for an access token.
func (h *HTTPHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	admin, err := h.admins.GetAdmin(c.Request.Context(), req.Username)
	if err != nil || !auth.CheckPassword(admin.PasswordHash, req.Password) {
		if err != nil && !errors.Is(err, store.ErrAdminNotFound) {
			log.Printf("[catalog-http] admin lookup failed user=%s err=%v", req.Username, err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateAccessToken(admin.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// SaveShoe creates or replaces a shoe.
func (h *HTTPHandler) SaveShoe(c *gin.Context) {
	var shoe logic.Shoe
	if err := c.ShouldBindJSON(&shoe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	id, cd, err := h.catalog.Save(c.Request.Context(), shoe)
	if err != nil {
		if isValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[catalog-http] save failed slug=%s err=%v", shoe.Slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save shoe"})
		return
	}
	log.Printf("[catalog-http] saved slug=%s id=%d admin=%d", shoe.Slug, id, c.GetInt(auth.CtxAdminIDKey))
	c.JSON(http.StatusCreated, gin.H{"id": id, "card": cd})
}

// DeleteShoe removes a shoe by slug.
func (h *HTTPHandler) DeleteShoe(c *gin.Context) {
	slug := c.Param("slug")
	err := h.catalog.Delete(c.Request.Context(), slug)
	if errors.Is(err, store.ErrShoeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "shoe not found"})
		return
	} else if err != nil {
		log.Printf("[catalog-http] delete failed slug=%s err=%v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete shoe"})
		return
	}
	c.Status(http.StatusNoContent)
}

func isValidation(err error) bool {
	for _, target := range []error{
		logic.ErrMissingSlug,
		logic.ErrNegativePrice,
		logic.ErrNegativeSalePrice,
		logic.ErrMissingReleaseDate,
		logic.ErrNegativeColors,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
