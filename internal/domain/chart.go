package domain

import "time"

// ChartPoint é um ponto de série pronto para renderização no dashboard.
// Value é nil para meses sem dado (gap explícito, nunca zero). Forecast é
// preenchido apenas no último ponto histórico (âncora) e nos pontos
// projetados além dele; pontos projetados nunca carregam Value.
type ChartPoint struct {
	Date     time.Time `json:"date"`
	Label    string    `json:"label"`
	Value    *float64  `json:"value"`
	Forecast *float64  `json:"valueForecast,omitempty"`
}

// SeriesResponse é a resposta do endpoint de séries: os pontos densos
// (com extensão de forecast quando solicitada) e a métrica resolvida.
type SeriesResponse struct {
	Metric      string            `json:"metric"`
	Points      []ChartPoint      `json:"points"`
	MonthsAhead int               `json:"months_ahead,omitempty"`
	Sources     map[string]string `json:"sources,omitempty"`
}
