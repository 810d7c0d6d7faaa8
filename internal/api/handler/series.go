package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/farah2601/investor-plattform-sub002/internal/usecases/snapshotting"
	"github.com/farah2601/investor-plattform-sub002/pkg/apiErrors"
	"github.com/farah2601/investor-plattform-sub002/pkg/log"
	"github.com/farah2601/investor-plattform-sub002/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

// Limite superior de meses projetados por requisição
const maxMonthsAhead = 24

// GetCompanySeries monta a série mensal densa de uma métrica, opcionalmente
// estendida com forecast (months_ahead)
func GetCompanySeries(service snapshotting.Snapshotter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		metric := r.URL.Query().Get("metric")
		if metric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro metric é obrigatório", nil)
			return
		}

		req := &snapshotting.SeriesRequest{
			Metric: metric,
		}

		if monthsAheadStr := r.URL.Query().Get("months_ahead"); monthsAheadStr != "" {
			monthsAhead, err := strconv.Atoi(monthsAheadStr)
			if err != nil || monthsAhead < 0 || monthsAhead > maxMonthsAhead {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro months_ahead inválido", nil)
				return
			}
			req.MonthsAhead = monthsAhead
		}

		if percentStr := r.URL.Query().Get("percent"); percentStr != "" {
			percent, err := strconv.ParseBool(percentStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro percent inválido", nil)
				return
			}
			req.Percent = &percent
		}

		if allowNegativeStr := r.URL.Query().Get("allow_negative"); allowNegativeStr != "" {
			allowNegative, err := strconv.ParseBool(allowNegativeStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro allow_negative inválido", nil)
				return
			}
			req.AllowNegative = &allowNegative
		}

		if startDateStr := r.URL.Query().Get("start_date"); startDateStr != "" {
			startDate, err := utils.ParseDate(startDateStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start_date inválido", nil)
				return
			}
			req.StartDate = startDate
		}

		if endDateStr := r.URL.Query().Get("end_date"); endDateStr != "" {
			endDate, err := utils.ParseDate(endDateStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end_date inválido", nil)
				return
			}
			req.EndDate = endDate
		}

		logger.WithFields(log.Fields{
			"company_id":   id,
			"metric":       metric,
			"months_ahead": req.MonthsAhead,
		}).Info("series: building metric series")

		response, err := service.GetSeries(id, req)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": id,
				"metric":     metric,
				"error":      err.Error(),
			}).Error("series: failed to build series for company")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"company_id": id,
				"metric":     metric,
				"error":      err.Error(),
			}).Error("series: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
