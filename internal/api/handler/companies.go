package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backbone-api/internal/usecases/analyzing"
	"github.com/vfg2006/backbone-api/pkg/apiErrors"
)

// ListCompanies retorna todas as empresas com o health score anexado
func ListCompanies(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companies, err := analyzer.ListCompaniesWithHealth()
		if err != nil {
			logrus.Error("Erro ao listar empresas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar empresas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(companies); err != nil {
			logrus.Error("Erro ao enviar resposta de empresas:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetCompanyHealth retorna o health score de uma empresa específica
func GetCompanyHealth(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da empresa não informado", nil)
			return
		}

		company, err := analyzer.GetCompanyHealth(companyID)
		if err != nil {
			logrus.Error("Erro ao calcular saúde da empresa:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular saúde da empresa", nil)
			return
		}

		if company == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Empresa não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(company); err != nil {
			logrus.Error("Erro ao enviar resposta de saúde da empresa:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
