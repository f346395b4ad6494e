package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backbone-api/internal/usecases/analyzing"
	"github.com/vfg2006/backbone-api/pkg/apiErrors"
)

// GetPriorityQueue retorna a fila de prioridades globalmente ordenada.
// A fila é recalculada a cada requisição a partir do dataset corrente.
func GetPriorityQueue(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		queue, err := analyzer.GetPriorityQueue()
		if err != nil {
			logrus.Error("Erro ao montar a fila de prioridades:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar a fila de prioridades", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(queue); err != nil {
			logrus.Error("Erro ao enviar resposta da fila de prioridades:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetPortfolioHealth retorna o agregado de saúde do portfólio
func GetPortfolioHealth(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := analyzer.GetPortfolioSummary()
		if err != nil {
			logrus.Error("Erro ao calcular a saúde do portfólio:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular a saúde do portfólio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error("Erro ao enviar resposta da saúde do portfólio:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
