package handler

import (
	"encoding/json"
	"net/http"

	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/snapshotting"
	"github.com/farah2601/investor-plattform-sub002/pkg/apiErrors"
	"github.com/farah2601/investor-plattform-sub002/pkg/log"
	"github.com/farah2601/investor-plattform-sub002/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

// GetCompanySnapshots retorna as linhas brutas de KPIs da empresa no formato
// {ok, rows, sources} consumido pelo dashboard
func GetCompanySnapshots(service snapshotting.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("company_id", id).Info("snapshots: fetching snapshots by company ID")

		filters := &domain.SnapshotFilters{}

		if startDateStr := r.URL.Query().Get("start_date"); startDateStr != "" {
			startDate, err := utils.ParseDate(startDateStr)
			if err != nil {
				logger.WithFields(log.Fields{
					"company_id": id,
					"start_date": startDateStr,
					"error":      err.Error(),
				}).Warn("snapshots: invalid start_date parameter")

				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			filters.StartDate = startDate
		}

		if endDateStr := r.URL.Query().Get("end_date"); endDateStr != "" {
			endDate, err := utils.ParseDate(endDateStr)
			if err != nil {
				logger.WithFields(log.Fields{
					"company_id": id,
					"end_date":   endDateStr,
					"error":      err.Error(),
				}).Warn("snapshots: invalid end_date parameter")

				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			filters.EndDate = endDate
		}

		response, err := service.GetSnapshots(id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": id,
				"error":      err.Error(),
			}).Error("snapshots: failed to get snapshots for company")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"company_id": id,
			"rows":       len(response.Rows),
		}).Info("snapshots: successfully retrieved company snapshots")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"company_id": id,
				"error":      err.Error(),
			}).Error("snapshots: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListCompanyMetrics retorna as métricas lógicas presentes no histórico da empresa
func ListCompanyMetrics(service snapshotting.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("company_id", id).Info("snapshots: listing available metrics")

		metrics, err := service.ListMetrics(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": id,
				"error":      err.Error(),
			}).Error("snapshots: failed to list metrics for company")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"metrics": metrics,
		}); err != nil {
			logger.WithError(err).Error("snapshots: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// RefreshCompanySnapshots invoca o agente de insights para reprocessar os
// snapshots da empresa
func RefreshCompanySnapshots(service snapshotting.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("company_id", id).Info("snapshots: manual refresh requested")

		result, err := service.RefreshCompany(r.Context(), id)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": id,
				"error":      err.Error(),
			}).Error("snapshots: failed to refresh company")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"company_id":   id,
			"rows_written": result.RowsWritten,
		}).Info("snapshots: company refreshed successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("snapshots: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
