package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backbone-api/internal/usecases/analyzing"
	"github.com/vfg2006/backbone-api/internal/usecases/importing"
	"github.com/vfg2006/backbone-api/pkg/apiErrors"
)

// ImportDatasetRequest carrega as tabelas CSV brutas enviadas pelo cliente
type ImportDatasetRequest struct {
	Companies string `json:"companies"`
	Rounds    string `json:"rounds"`
	Deals     string `json:"deals"`
	Firms     string `json:"firms"`
	People    string `json:"people"`
	Goals     string `json:"goals"`
}

// ImportDatasetResponse devolve o resumo do que foi persistido
type ImportDatasetResponse struct {
	Summary    any       `json:"summary"`
	ImportedAt time.Time `json:"imported_at"`
}

// ImportDataset recebe as tabelas CSV e substitui o dataset atual
func ImportDataset(importer importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportDataset")

		var req ImportDatasetRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		summary, err := importer.ImportDataset(r.Context(), &importing.ImportRequest{
			Companies: req.Companies,
			Rounds:    req.Rounds,
			Deals:     req.Deals,
			Firms:     req.Firms,
			People:    req.People,
			Goals:     req.Goals,
		})
		if err != nil {
			logrus.Error("Erro ao importar dataset:", err)

			switch {
			case errors.Is(err, importing.ErrCompaniesRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

			case errors.Is(err, importing.ErrNoCompaniesParsed):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao persistir o dataset", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(ImportDatasetResponse{
			Summary:    summary,
			ImportedAt: time.Now(),
		})
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetDatasetSummary retorna a contagem de registros do dataset atual
func GetDatasetSummary(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := analyzer.GetDatasetSummary()
		if err != nil {
			logrus.Error("Erro ao resumir o dataset:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao resumir o dataset", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
