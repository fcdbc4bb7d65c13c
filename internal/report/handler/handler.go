package reporthandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/hisba-backend/internal/access"
	"github.com/xw1nchester/hisba-backend/internal/apperror"
	"github.com/xw1nchester/hisba-backend/internal/handlers"
	"github.com/xw1nchester/hisba-backend/internal/market/product"
	"github.com/xw1nchester/hisba-backend/internal/market/store"
	"github.com/xw1nchester/hisba-backend/internal/report"
	"go.uber.org/zap"
)

const (
	defaultRecentLimit = 5
	defaultListLimit   = 10
	maxLimit           = 100
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockreportservice
type Service interface {
	Overview(ctx context.Context) (*report.Overview, error)
	Dashboard(ctx context.Context) (*report.Dashboard, error)
	SalesByStore(ctx context.Context, limit int) ([]report.StoreSales, error)
	UserActivity(ctx context.Context, limit int) ([]report.UserActivity, error)
	Recent(ctx context.Context, limit int) (*report.Recent, error)
	TopStores(ctx context.Context, limit int) ([]store.Store, error)
	MostOrdered(ctx context.Context, limit int) ([]product.Popular, error)
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	staticURL      string
	logger         *zap.Logger
}

func New(
	service Service,
	authMiddleware func(http.Handler) http.Handler,
	staticURL string,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		staticURL:      staticURL,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Group(func(reportRouter chi.Router) {
		reportRouter.Use(h.authMiddleware, access.RequireAdmin)

		reportRouter.Get("/admin/reports", apperror.Middleware(h.overviewHandler))
		reportRouter.Get("/admin/reports/dashboard", apperror.Middleware(h.dashboardHandler))
		reportRouter.Get("/admin/reports/sales", apperror.Middleware(h.salesHandler))
		reportRouter.Get("/admin/reports/user-activity", apperror.Middleware(h.userActivityHandler))
		reportRouter.Get("/admin/reports/recent", apperror.Middleware(h.recentHandler))
		reportRouter.Get("/admin/reports/top-stores", apperror.Middleware(h.topStoresHandler))
		reportRouter.Get("/admin/reports/most-ordered", apperror.Middleware(h.mostOrderedHandler))
	})
}

// @Security	ApiKeyAuth
// @Tags		report
// @Success	200	{object}	reporthandler.OverviewResponse
// @Failure	401,403,500	{object}	apperror.AppError
// @Router		/admin/reports [get]
func (h *handler) overviewHandler(w http.ResponseWriter, r *http.Request) error {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, NewOverviewResponse(*overview, h.staticURL))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		report
// @Success	200	{object}	reporthandler.DashboardResponse
// @Failure	401,403,500	{object}	apperror.AppError
// @Router		/admin/reports/dashboard [get]
func (h *handler) dashboardHandler(w http.ResponseWriter, r *http.Request) error {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, DashboardResponse{Dashboard: *dashboard})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		report
// @Param		limit	query		int	false	"max stores"
// @Success	200		{object}	reporthandler.SalesResponse
// @Failure	401,403,500	{object}	apperror.AppError
// @Router		/admin/reports/sales [get]
func (h *handler) salesHandler(w http.ResponseWriter, r *http.Request) error {
	sales, err := h.service.SalesByStore(r.Context(), handlers.LimitQuery(r, defaultListLimit, maxLimit))
	if err != nil {
		return err
	}

	render.JSON(w, r, SalesResponse{Sales: sales})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		report
// @Param		limit	query		int	false	"max users"
// @Success	200		{object}	reporthandler.UserActivityResponse
// @Failure	401,403,500	{object}	apperror.AppError
// @Router		/admin/reports/user-activity [get]
func (h *handler) userActivityHandler(w http.ResponseWriter, r *http.Request) error {
	activity, err := h.service.UserActivity(r.Context(), handlers.LimitQuery(r, defaultListLimit, maxLimit))
	if err != nil {
		return err
	}

	render.JSON(w, r, UserActivityResponse{Users: activity})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		report
// @Param		limit	query		int	false	"max rows per section"
// @Success	200		{object}	report.Recent
// @Failure	401,403,500	{object}	apperror.AppError
// @Router		/admin/reports/recent [get]
func (h *handler) recentHandler(w http.ResponseWriter, r *http.Request) error {
	recent, err := h.service.Recent(r.Context(), handlers.LimitQuery(r, defaultRecentLimit, maxLimit))
	if err != nil {
		return err
	}

	render.JSON(w, r, recent)

	return nil
}

// @Security	ApiKeyAuth
// @Tags		report
// @Param		limit	query		int	false	"max stores"
// @Success	200		{object}	reporthandler.TopStoresResponse
// @Failure	401,403,500	{object}	apperror.AppError
// @Router		/admin/reports/top-stores [get]
func (h *handler) topStoresHandler(w http.ResponseWriter, r *http.Request) error {
	stores, err := h.service.TopStores(r.Context(), handlers.LimitQuery(r, defaultRecentLimit, maxLimit))
	if err != nil {
		return err
	}

	render.JSON(w, r, TopStoresResponse{Stores: withCoverURLs(stores, h.staticURL)})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		report
// @Param		limit	query		int	false	"max products"
// @Success	200		{object}	reporthandler.MostOrderedResponse
// @Failure	401,403,500	{object}	apperror.AppError
// @Router		/admin/reports/most-ordered [get]
func (h *handler) mostOrderedHandler(w http.ResponseWriter, r *http.Request) error {
	products, err := h.service.MostOrdered(r.Context(), handlers.LimitQuery(r, defaultRecentLimit, maxLimit))
	if err != nil {
		return err
	}

	render.JSON(w, r, MostOrderedResponse{Products: withImageURLs(products, h.staticURL)})

	return nil
}
