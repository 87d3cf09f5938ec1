package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"statushub/internal/app/adapters/metrics"
	"statushub/internal/app/domain/status"
	"statushub/internal/app/infrastructure/config"
	"statushub/internal/app/ports"
	"statushub/pkg/logger"
)

type Handlers struct {
	log     logger.Logger
	manager *config.Manager
	store   ports.StoragePort
	hub     ports.HubPort
	media   ports.MediaPort
	started time.Time
}

func New(log logger.Logger, manager *config.Manager, store ports.StoragePort, hub ports.HubPort, media ports.MediaPort) *Handlers {
	return &Handlers{
		log:     log,
		manager: manager,
		store:   store,
		hub:     hub,
		media:   media,
		started: time.Now(),
	}
}

// ListStatuses returns all live statuses, newest first.
func (h *Handlers) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListActive())
}

// ListUserStatuses returns the user's live statuses, newest first.
func (h *Handlers) ListUserStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListActiveByUser(c.Param("userId")))
}

// CreateStatus publishes a status from a JSON body and notifies subscribers.
func (h *Handlers) CreateStatus(c *gin.Context) {
	var params status.CreateParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.createAndNotify(c, params)
}

// createAndNotify runs the shared create path: store mutation first, then
// the broadcast. The two are deliberately separate calls, never nested
// under one lock.
func (h *Handlers) createAndNotify(c *gin.Context, params status.CreateParams) {
	rec, err := h.store.Create(params)
	if err != nil {
		if status.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("Failed to create status", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	h.hub.Notify(status.EventAdded, rec)
	metrics.StatusesCreated.Inc()
	metrics.StoredStatuses.Set(float64(h.store.Len()))

	c.JSON(http.StatusCreated, rec)
}

// DeleteStatus removes one status by id. The delete targets raw existence:
// an expired but unswept record is still deletable.
func (h *Handlers) DeleteStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status id"})
		return
	}

	rec, err := h.store.DeleteByID(id)
	if err != nil {
		if errors.Is(err, status.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "status not found"})
			return
		}
		h.log.Error("Failed to delete status", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	h.hub.Notify(status.EventDeleted, rec.ID)
	metrics.StatusesDeleted.WithLabelValues("id").Inc()
	metrics.StoredStatuses.Set(float64(h.store.Len()))

	c.Status(http.StatusNoContent)
}

// DeleteUserStatuses removes every status of one user and emits one
// StatusDeleted event per removed id.
func (h *Handlers) DeleteUserStatuses(c *gin.Context) {
	userID := c.Param("userId")

	ids, err := h.store.DeleteAllByUser(userID)
	if err != nil {
		if errors.Is(err, status.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user has no statuses"})
			return
		}
		h.log.Error("Failed to delete user statuses", err, "userId", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	for _, id := range ids {
		h.hub.Notify(status.EventDeleted, id)
	}
	metrics.StatusesDeleted.WithLabelValues("user").Add(float64(len(ids)))
	metrics.StoredStatuses.Set(float64(h.store.Len()))

	c.Status(http.StatusNoContent)
}
