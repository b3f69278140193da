package controller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// parseMonth reads the month query parameter. An absent parameter selects
// fallback; "all" selects all time.
func parseMonth(ctx *gin.Context, fallback entity.Month) (entity.Month, error) {
	raw, present := ctx.GetQuery("month")
	if !present {
		return fallback, nil
	}
	month, ok := ledger.ParseMonth(raw)
	if !ok {
		return entity.Month{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonth,
			"month must be YYYY-MM or all",
			domainerror.ErrInvalidMonth,
		)
	}
	return month, nil
}

// parseView builds the view config from the query string.
func parseView(ctx *gin.Context, fallbackMonth entity.Month, defaultPageSize int) (entity.ViewConfig, error) {
	month, err := parseMonth(ctx, fallbackMonth)
	if err != nil {
		return entity.ViewConfig{}, err
	}

	view := entity.ViewConfig{
		Month:    month,
		Category: strings.TrimSpace(ctx.Query("category")),
		PageSize: defaultPageSize,
	}

	if order := strings.ToLower(strings.TrimSpace(ctx.Query("order"))); order != "" {
		view.Order = entity.SortOrder(order)
		if !view.Order.IsValid() {
			return entity.ViewConfig{}, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidSortOrder,
				"order must be: newest or oldest",
				domainerror.ErrInvalidSortOrder,
			)
		}
	}

	if view.Page, err = positiveQuery(ctx, "page"); err != nil {
		return entity.ViewConfig{}, err
	}
	pageSize, err := positiveQuery(ctx, "page_size")
	if err != nil {
		return entity.ViewConfig{}, err
	}
	if pageSize > 0 {
		view.PageSize = pageSize
	}

	return view, nil
}

// positiveQuery returns 0 when the parameter is absent.
func positiveQuery(ctx *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(ctx.Query(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPage,
			"page and page_size must be positive integers",
			domainerror.ErrInvalidPage,
		)
	}
	return n, nil
}
