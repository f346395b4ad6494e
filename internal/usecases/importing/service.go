// Package importing implementa a importação do dataset via CSV colado.
// É o colaborador de entrada do motor de análise: converte valores textuais
// em tipos nativos antes de persistir; o motor nunca recebe strings cruas.
package importing

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backbone-api/infrastructure/database/postgres"
	"github.com/vfg2006/backbone-api/infrastructure/repository"
	"github.com/vfg2006/backbone-api/internal/domain"
	"github.com/vfg2006/backbone-api/pkg/utils"
)

// ImportRequest carrega o texto CSV de cada tabela. Companies é obrigatória;
// as demais são opcionais e entram vazias quando omitidas.
type ImportRequest struct {
	Companies string `json:"companies"`
	Rounds    string `json:"rounds"`
	Deals     string `json:"deals"`
	Firms     string `json:"firms"`
	People    string `json:"people"`
	Goals     string `json:"goals"`
}

var (
	ErrCompaniesRequired = errors.New("a tabela de empresas é obrigatória")
	ErrNoCompaniesParsed = errors.New("nenhuma empresa encontrada no CSV")
)

type Importer interface {
	ImportDataset(ctx context.Context, req *ImportRequest) (*domain.DatasetSummary, error)
}

type Service struct {
	conn        postgres.Conn
	companyRepo repository.CompanyRepository
	roundRepo   repository.RoundRepository
	dealRepo    repository.DealRepository
	firmRepo    repository.FirmRepository
	personRepo  repository.PersonRepository
	goalRepo    repository.GoalRepository
}

func NewService(
	conn postgres.Conn,
	companyRepo repository.CompanyRepository,
	roundRepo repository.RoundRepository,
	dealRepo repository.DealRepository,
	firmRepo repository.FirmRepository,
	personRepo repository.PersonRepository,
	goalRepo repository.GoalRepository,
) Importer {
	return &Service{
		conn:        conn,
		companyRepo: companyRepo,
		roundRepo:   roundRepo,
		dealRepo:    dealRepo,
		firmRepo:    firmRepo,
		personRepo:  personRepo,
		goalRepo:    goalRepo,
	}
}

// ImportDataset interpreta as seis tabelas e substitui o dataset armazenado
// dentro de uma única transação: ou o import inteiro entra, ou nada muda.
func (s *Service) ImportDataset(ctx context.Context, req *ImportRequest) (*domain.DatasetSummary, error) {
	if strings.TrimSpace(req.Companies) == "" {
		return nil, ErrCompaniesRequired
	}

	dataset, err := s.parseDataset(req)
	if err != nil {
		return nil, err
	}

	if len(dataset.Companies) == 0 {
		return nil, ErrNoCompaniesParsed
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.companyRepo.ReplaceAll(tx, dataset.Companies); err != nil {
			return err
		}
		if err := s.roundRepo.ReplaceAll(tx, dataset.Rounds); err != nil {
			return err
		}
		if err := s.dealRepo.ReplaceAll(tx, dataset.Deals); err != nil {
			return err
		}
		if err := s.firmRepo.ReplaceAll(tx, dataset.Firms); err != nil {
			return err
		}
		if err := s.personRepo.ReplaceAll(tx, dataset.People); err != nil {
			return err
		}
		return s.goalRepo.ReplaceAll(tx, dataset.Goals)
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao persistir o dataset importado")
	}

	summary := dataset.Summarize()

	logrus.WithFields(logrus.Fields{
		"companies": summary.Companies,
		"rounds":    summary.Rounds,
		"deals":     summary.Deals,
		"firms":     summary.Firms,
		"people":    summary.People,
		"goals":     summary.Goals,
	}).Info("Dataset importado com sucesso")

	return summary, nil
}

func (s *Service) parseDataset(req *ImportRequest) (*domain.Dataset, error) {
	companies, err := parseCompanies(req.Companies)
	if err != nil {
		return nil, errors.Wrap(err, "tabela de empresas inválida")
	}

	rounds, err := parseRounds(req.Rounds)
	if err != nil {
		return nil, errors.Wrap(err, "tabela de rodadas inválida")
	}

	deals, err := parseDeals(req.Deals)
	if err != nil {
		return nil, errors.Wrap(err, "tabela de deals inválida")
	}

	firms, err := parseFirms(req.Firms)
	if err != nil {
		return nil, errors.Wrap(err, "tabela de firmas inválida")
	}

	people, err := parsePeople(req.People)
	if err != nil {
		return nil, errors.Wrap(err, "tabela de contatos inválida")
	}

	goals, err := parseGoals(req.Goals)
	if err != nil {
		return nil, errors.Wrap(err, "tabela de metas inválida")
	}

	return &domain.Dataset{
		Companies: companies,
		Rounds:    rounds,
		Deals:     deals,
		Firms:     firms,
		People:    people,
		Goals:     goals,
	}, nil
}

// ensureID mantém o identificador vindo do CSV ou gera um novo quando ausente
func ensureID(id string) string {
	if id != "" {
		return id
	}

	generated, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar identificador, usando vazio")
		return ""
	}
	return generated
}
