// Package transport provides the search-node http server (by ginext) with handlers to serve endpoints
package transport

import (
	"context"
	"fmt"
	"net/http"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"
)

type TaskProcessor interface {
	ProcessTask(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

type handler struct {
	proc TaskProcessor
	log  zerolog.Logger
}

func NewNodeServer(addr string, proc TaskProcessor, log zerolog.Logger) *http.Server {
	h := handler{proc: proc, log: log}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handler) HealthCheck(ctx *ginext.Context) {
	h.log.Debug().Str("remote", ctx.ClientIP()).Msg("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h handler) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		h.log.Warn().Err(err).Msg("failed to parse task from body")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}

	h.log.Info().
		Str("tid", task.TaskID).
		Bool("strict", task.Strict).
		Int("bytes", len(task.Text())).
		Msg("received task")

	res := h.proc.ProcessTask(ctx.Request.Context(), &task)
	h.log.Info().Str("tid", res.TaskID).Int("matches", len(res.Lines)).Msg("task done")

	ctx.Header("ETag", fmt.Sprintf("%q", fmt.Sprintf("%016x", res.HashSumm)))
	ctx.JSON(http.StatusOK, res)
}
