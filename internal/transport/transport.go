// Package transport provides the HTTP server (by ginext) of the search service with handlers to serve endpoints
package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxKeyRequestID = "request_id"
)

type SearchProcessor interface {
	ProcessInput(ctx context.Context, req *model.SearchRequest) *model.SearchResult
}

type handler struct {
	proc         SearchProcessor
	log          *zap.Logger
	maxBodyBytes int64
}

func NewServer(addr string, proc SearchProcessor, log *zap.Logger, maxBodyBytes int64) *http.Server {
	h := &handler{proc: proc, log: log, maxBodyBytes: maxBodyBytes}

	engine := ginext.New("release")
	engine.Use(gin.Recovery(), h.requestID, h.accessLog)
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.Search)

	return &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (h *handler) HealthCheck(ctx *ginext.Context) {
	ctx.Status(http.StatusOK)
}

func (h *handler) Search(ctx *ginext.Context) {
	var req model.SearchRequest

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxBodyBytes)
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse search request: " + err.Error()})
		return
	}

	res := h.proc.ProcessInput(ctx.Request.Context(), &req)
	res.RequestID = ctx.GetString(ctxKeyRequestID)

	ctx.JSON(http.StatusOK, res)
}

// requestID берет X-Request-ID клиента или генерирует новый
func (h *handler) requestID(ctx *ginext.Context) {
	id := ctx.GetHeader(HeaderRequestID)
	if id == "" {
		id = uuid.Generate().String()
	}
	ctx.Set(ctxKeyRequestID, id)
	ctx.Header(HeaderRequestID, id)
	ctx.Next()
}

func (h *handler) accessLog(ctx *ginext.Context) {
	start := time.Now()

	ctx.Next()

	h.log.Info("HTTP request",
		zap.String("request_id", ctx.GetString(ctxKeyRequestID)),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
		zap.Int("status", ctx.Writer.Status()),
		zap.Duration("duration", time.Since(start)),
	)
}
