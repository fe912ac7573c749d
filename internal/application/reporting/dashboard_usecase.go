// Package reporting contiene los casos de uso read-only: resumen del
// dashboard, listado de transacciones y exportaciones CSV/PDF.
// Ninguno muta estado.
package reporting

import (
	"context"
	"fmt"

	"github.com/grocerflow/grocerflow-api/internal/application/dto"
	"github.com/grocerflow/grocerflow-api/internal/domain/repository"
)

const (
	dashboardLowStockCap  = 10 // productos bajos de stock en el widget
	dashboardRecentTxsCap = 10 // transacciones recientes en el widget
)

// DashboardUseCase genera el resumen del dashboard: totales del catálogo,
// productos bajos de stock y transacciones recientes.
//
// Fuente de datos: ReportRepository (consultas read-only).
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. Totales (products, categories, suppliers)
//  2. Bajos de stock (stock ascendente, máx. 10)
//  3. Transacciones recientes (fecha descendente, máx. 10)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countsResult struct {
		products, categories, suppliers int
		err                             error
	}
	type lowStockResult struct {
		items []dto.LowStockItemDTO
		err   error
	}
	type recentResult struct {
		items []dto.TransactionRowDTO
		err   error
	}

	countsCh := make(chan countsResult, 1)
	lowCh := make(chan lowStockResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		var r countsResult
		r.products, r.err = uc.reportRepo.CountProducts(ctx)
		if r.err == nil {
			r.categories, r.err = uc.reportRepo.CountCategories(ctx)
		}
		if r.err == nil {
			r.suppliers, r.err = uc.reportRepo.CountSuppliers(ctx)
		}
		countsCh <- r
	}()
	go func() {
		items, err := uc.reportRepo.ListLowStock(ctx, dashboardLowStockCap)
		lowCh <- lowStockResult{items, err}
	}()
	go func() {
		items, err := uc.reportRepo.ListTransactionRows(ctx, dto.TransactionReportFilter{Limit: dashboardRecentTxsCap})
		recentCh <- recentResult{items, err}
	}()

	counts := <-countsCh
	low := <-lowCh
	recent := <-recentCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", counts.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: bajos de stock: %w", low.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones recientes: %w", recent.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:      counts.products,
		TotalCategories:    counts.categories,
		TotalSuppliers:     counts.suppliers,
		LowStock:           low.items,
		RecentTransactions: recent.items,
	}, nil
}
