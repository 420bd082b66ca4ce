package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/allansomensi/printer-supplies-api/internal/apierror"
	"github.com/allansomensi/printer-supplies-api/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type StatusHandler struct{ db *gorm.DB }

func NewStatusHandler(db *gorm.DB) *StatusHandler { return &StatusHandler{db: db} }

// Show godoc
// @Summary Get API and database status
// @Description Database version, max connections and currently open connections.
// @Tags status
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /v1/status [get]
func (h *StatusHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	var version string
	if err := h.db.WithContext(ctx).Raw("SHOW server_version").Scan(&version).Error; err != nil {
		log.Error().Err(err).Msg("error retrieving database version")
		c.JSON(http.StatusInternalServerError, apierror.New("error retrieving database status"))
		return
	}

	// SHOW reports settings as text, even numeric ones.
	var maxConnectionsRaw string
	if err := h.db.WithContext(ctx).Raw("SHOW max_connections").Scan(&maxConnectionsRaw).Error; err != nil {
		log.Error().Err(err).Msg("error retrieving database max connections")
		c.JSON(http.StatusInternalServerError, apierror.New("error retrieving database status"))
		return
	}
	maxConnections, err := strconv.Atoi(maxConnectionsRaw)
	if err != nil {
		log.Error().Err(err).Msg("error parsing database max connections")
		c.JSON(http.StatusInternalServerError, apierror.New("error retrieving database status"))
		return
	}

	var openedConnections int
	if err := h.db.WithContext(ctx).
		Raw("SELECT count(*) FROM pg_stat_activity WHERE datname = current_database()").
		Scan(&openedConnections).Error; err != nil {
		log.Error().Err(err).Msg("error retrieving database opened connections")
		c.JSON(http.StatusInternalServerError, apierror.New("error retrieving database status"))
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Dependencies: dto.StatusDependencies{
			Database: dto.DatabaseStatus{
				Version:           version,
				MaxConnections:    maxConnections,
				OpenedConnections: openedConnections,
			},
		},
	})
}
