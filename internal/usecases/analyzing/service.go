// Package analyzing orquestra o pipeline de análise: carrega o dataset dos
// repositórios, roda a detecção de issues e entrega as visões consumidas pela
// API (fila de prioridades, saúde por empresa, agregado do portfólio).
package analyzing

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backbone-api/infrastructure/repository"
	"github.com/vfg2006/backbone-api/internal/domain"
	"github.com/vfg2006/backbone-api/internal/usecases/detecting"
	"github.com/vfg2006/backbone-api/internal/usecases/prioritizing"
	"github.com/vfg2006/backbone-api/internal/usecases/scoring"
)

type Analyzer interface {
	GetPriorityQueue() (*domain.PriorityQueueResponse, error)
	GetPortfolioSummary() (*domain.PortfolioSummary, error)
	RunDetection() (*domain.PriorityQueueResponse, *domain.PortfolioSummary, error)
	ListCompaniesWithHealth() ([]*domain.CompanyWithHealth, error)
	GetCompanyHealth(companyID string) (*domain.CompanyWithHealth, error)
	GetDatasetSummary() (*domain.DatasetSummary, error)
}

type Service struct {
	companyRepo repository.CompanyRepository
	roundRepo   repository.RoundRepository
	dealRepo    repository.DealRepository
	firmRepo    repository.FirmRepository
	personRepo  repository.PersonRepository
	goalRepo    repository.GoalRepository

	detector    detecting.Detector
	scorer      scoring.Scorer
	prioritizer prioritizing.Prioritizer
}

func NewService(
	companyRepo repository.CompanyRepository,
	roundRepo repository.RoundRepository,
	dealRepo repository.DealRepository,
	firmRepo repository.FirmRepository,
	personRepo repository.PersonRepository,
	goalRepo repository.GoalRepository,
	detector detecting.Detector,
	scorer scoring.Scorer,
	prioritizer prioritizing.Prioritizer,
) Analyzer {
	return &Service{
		companyRepo: companyRepo,
		roundRepo:   roundRepo,
		dealRepo:    dealRepo,
		firmRepo:    firmRepo,
		personRepo:  personRepo,
		goalRepo:    goalRepo,
		detector:    detector,
		scorer:      scorer,
		prioritizer: prioritizer,
	}
}

// loadDataset monta o dataset completo a partir dos repositórios. Firms e
// People são carregados junto mesmo sem participar da detecção: o schema é
// preservado para regras futuras.
func (s *Service) loadDataset() (*domain.Dataset, error) {
	companies, err := s.companyRepo.List()
	if err != nil {
		return nil, err
	}

	rounds, err := s.roundRepo.List()
	if err != nil {
		return nil, err
	}

	deals, err := s.dealRepo.List()
	if err != nil {
		return nil, err
	}

	firms, err := s.firmRepo.List()
	if err != nil {
		return nil, err
	}

	people, err := s.personRepo.List()
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.List()
	if err != nil {
		return nil, err
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

func (s *Service) GetPriorityQueue() (*domain.PriorityQueueResponse, error) {
	return s.getPriorityQueueAt(time.Now())
}

// getPriorityQueueAt permite fixar o instante de referência nos testes.
// O mesmo `now` vale para toda a execução: derivação, regras e resposta.
func (s *Service) getPriorityQueueAt(now time.Time) (*domain.PriorityQueueResponse, error) {
	dataset, err := s.loadDataset()
	if err != nil {
		return nil, err
	}

	issues := s.detector.Detect(dataset, now)

	logrus.WithFields(logrus.Fields{
		"issues": len(issues),
	}).Debug("Detecção de issues concluída")

	return s.prioritizer.BuildQueue(dataset, issues, now), nil
}

func (s *Service) GetPortfolioSummary() (*domain.PortfolioSummary, error) {
	return s.getPortfolioSummaryAt(time.Now())
}

// RunDetection produz a fila de prioridades e o agregado do portfólio em uma
// única execução: um carregamento do dataset, um instante de referência e uma
// detecção alimentando os dois resultados. É o que o agendador publica como
// snapshot, para que fila e agregado nunca divirjam entre si.
func (s *Service) RunDetection() (*domain.PriorityQueueResponse, *domain.PortfolioSummary, error) {
	return s.runDetectionAt(time.Now())
}

func (s *Service) runDetectionAt(now time.Time) (*domain.PriorityQueueResponse, *domain.PortfolioSummary, error) {
	dataset, err := s.loadDataset()
	if err != nil {
		return nil, nil, err
	}

	issues := s.detector.Detect(dataset, now)

	queue := s.prioritizer.BuildQueue(dataset, issues, now)
	summary := s.scorer.PortfolioSummary(dataset.Companies, issues)

	return queue, summary, nil
}

func (s *Service) getPortfolioSummaryAt(now time.Time) (*domain.PortfolioSummary, error) {
	dataset, err := s.loadDataset()
	if err != nil {
		return nil, err
	}

	issues := s.detector.Detect(dataset, now)
	return s.scorer.PortfolioSummary(dataset.Companies, issues), nil
}

func (s *Service) ListCompaniesWithHealth() ([]*domain.CompanyWithHealth, error) {
	return s.listCompaniesWithHealthAt(time.Now())
}

func (s *Service) listCompaniesWithHealthAt(now time.Time) ([]*domain.CompanyWithHealth, error) {
	dataset, err := s.loadDataset()
	if err != nil {
		return nil, err
	}

	issues := s.detector.Detect(dataset, now)

	companies := make([]*domain.CompanyWithHealth, 0, len(dataset.Companies))
	for _, company := range dataset.Companies {
		companies = append(companies, &domain.CompanyWithHealth{
			Company:     *company,
			HealthScore: s.scorer.CompanyHealth(company.ID, issues),
		})
	}

	return companies, nil
}

// GetCompanyHealth retorna nil (sem erro) quando a empresa não existe;
// o handler decide o status HTTP.
func (s *Service) GetCompanyHealth(companyID string) (*domain.CompanyWithHealth, error) {
	return s.getCompanyHealthAt(companyID, time.Now())
}

func (s *Service) getCompanyHealthAt(companyID string, now time.Time) (*domain.CompanyWithHealth, error) {
	dataset, err := s.loadDataset()
	if err != nil {
		return nil, err
	}

	company := dataset.CompanyByID(companyID)
	if company == nil {
		return nil, nil
	}

	issues := s.detector.Detect(dataset, now)

	return &domain.CompanyWithHealth{
		Company:     *company,
		HealthScore: s.scorer.CompanyHealth(company.ID, issues),
	}, nil
}

func (s *Service) GetDatasetSummary() (*domain.DatasetSummary, error) {
	dataset, err := s.loadDataset()
	if err != nil {
		return nil, err
	}

	return dataset.Summarize(), nil
}
