package controller

import (
	"errors"
	"net/http"

	"stockdash/customerrors"
	"stockdash/dashboard"
	"stockdash/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type DashboardController struct {
	dash *dashboard.Dashboard
}

func NewDashboardController(d *dashboard.Dashboard) *DashboardController {
	return &DashboardController{dash: d}
}

// RegisterRoutes serves the page and its fragments. The engine must have the
// dashboard templates loaded.
func (ctrl *DashboardController) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ctrl.page)

	fragments := router.Group("/fragments")
	{
		fragments.GET("/:trigger/:region", ctrl.fragment)
		fragments.POST("/click/:region", ctrl.click)
	}
}

func (ctrl *DashboardController) page(c *gin.Context) {
	c.HTML(http.StatusOK, dashboard.PageTemplate, ctrl.dash.Page())
}

func (ctrl *DashboardController) fragment(c *gin.Context) {
	ctrl.dispatch(c, dashboard.Event{
		Trigger: dashboard.Trigger(c.Param("trigger")),
		Region:  c.Param("region"),
	})
}

// click resolves which button was pressed from the before/after click
// counters. A malformed body is treated as no click.
func (ctrl *DashboardController) click(c *gin.Context) {
	var req model.ChartClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("Ignoring unreadable click payload")
	}

	symbol, _ := dashboard.TriggeredSymbol(req.Previous, req.Current)
	ctrl.dispatch(c, dashboard.Event{
		Trigger: dashboard.TriggerClick,
		Region:  c.Param("region"),
		Symbol:  symbol,
	})
}

func (ctrl *DashboardController) dispatch(c *gin.Context, ev dashboard.Event) {
	frag, err := ctrl.dash.Dispatch(c.Request.Context(), ev)
	if errors.Is(err, customerrors.ErrUnknownRegion) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if frag.Template == "" {
		c.JSON(http.StatusOK, frag.Data)
		return
	}
	c.HTML(http.StatusOK, frag.Template, frag.Data)
}
