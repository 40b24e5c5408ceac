package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
	"github.com/orgball2608/insta-feed-ingestor/internal/ingestor"
	"github.com/orgball2608/insta-feed-ingestor/pkg/errors"
	"github.com/orgball2608/insta-feed-ingestor/pkg/logger"
)

type Handler struct {
	ingestor ingestor.Client
	logger   logger.Logger
}

func NewHandler(ing ingestor.Client, log logger.Logger) *Handler {
	return &Handler{
		ingestor: ing,
		logger:   log.WithComponent("HTTP"),
	}
}

type feedData struct {
	Profile json.RawMessage      `json:"profile,omitempty"`
	Posts   []json.RawMessage    `json:"posts"`
	Cursor  string               `json:"cursor,omitempty"`
	Ingest  *domain.IngestResult `json:"ingest,omitempty"`
}

// GetProfile fetches one feed page of :username, stores it and echoes it back.
func (h *Handler) GetProfile(c *gin.Context) {
	username := strings.TrimPrefix(strings.TrimSpace(c.Param("username")), "@")
	if username == "" {
		fail(c, http.StatusBadRequest, fetchFailedError, "username is required")
		return
	}
	cursor := c.Query("cursor")

	result, err := h.ingestor.FetchAndIngest(c.Request.Context(), username, cursor)
	if err != nil {
		h.logger.Error("Failed to fetch Instagram profile",
			"username", username,
			"cursor", cursor,
			"code", errors.GetCode(err),
			"error", err,
		)
		fail(c, http.StatusInternalServerError, fetchFailedError, err.Error())
		return
	}

	posts := result.Posts
	if posts == nil {
		posts = []json.RawMessage{}
	}

	ok(c, feedData{
		Profile: result.Profile,
		Posts:   posts,
		Cursor:  result.Cursor,
		Ingest:  result.Ingest,
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
