package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"hinga/pkg/dataset"
)

var appStart = time.Now()

type HealthCtrl struct {
	db    *gorm.DB
	store *dataset.Store
}

func NewHealthCtrl(db *gorm.DB, store *dataset.Store) *HealthCtrl {
	return &HealthCtrl{db: db, store: store}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	dataOK := h.store != nil

	allOK := dbOK && dataOK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	datasets := map[string]any{"ok": dataOK}
	if h.store != nil {
		datasets["production_rows"] = len(h.store.Production)
		datasets["consumption_rows"] = len(h.store.Consumption)
		datasets["establishment_rows"] = len(h.store.Establishments)
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
			"datasets": datasets,
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
