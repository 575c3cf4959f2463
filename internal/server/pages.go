package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fastreader/internal/documents"
)

// Pages renders the HTML list and reader views.
type Pages struct {
	Docs *documents.Service
}

// NewPages constructs a Pages handler.
func NewPages(docs *documents.Service) *Pages {
	return &Pages{Docs: docs}
}

// RegisterRoutes attaches the HTML routes to the router.
func (p *Pages) RegisterRoutes(r *gin.Engine) {
	r.GET("/", p.index)
	r.GET("/reader/:id", p.reader)
}

func (p *Pages) index(c *gin.Context) {
	docs, err := p.Docs.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to list documents")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Documents": docs})
}

func (p *Pages) reader(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.String(http.StatusNotFound, "document not found")
		return
	}

	doc, err := p.Docs.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			c.String(http.StatusNotFound, "document not found")
			return
		}
		c.String(http.StatusInternalServerError, "failed to fetch document")
		return
	}

	c.HTML(http.StatusOK, "reader.html", gin.H{"Document": doc})
}
