package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Stats reports process diagnostics: host load, memory, uptime and the
// current store/hub sizes.
func (h *Handlers) Stats(c *gin.Context) {
	out := gin.H{
		"uptimeSeconds":  int64(time.Since(h.started).Seconds()),
		"storedStatuses": h.store.Len(),
		"activeStatuses": len(h.store.ListActive()),
		"connections":    h.hub.Count(),
		"groupMembers":   h.hub.Members(),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		out["cpuPercent"] = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		out["memUsedPercent"] = vm.UsedPercent
	}

	c.JSON(http.StatusOK, out)
}
