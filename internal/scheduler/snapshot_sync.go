package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/agent"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/sheets"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/stripe"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/repository"
	"github.com/farah2601/investor-plattform-sub002/internal/config"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/farah2601/investor-plattform-sub002/pkg/utils"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots
type SnapshotSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	RetentionMonths     int
	SyncEnabled         bool
}

// SnapshotSyncService gerencia o agendamento e execução da sincronização
// noturna de snapshots de KPIs de todas as empresas ativas. A via preferida
// é o agente de insights; quando ele está indisponível, cai para a ingestão
// local (Stripe + planilha).
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	appConfig           *config.Config
	companyRepo         repository.CompanyRepository
	snapshotRepo        repository.SnapshotRepository
	agentService        agent.AgentIntegrator
	stripeService       stripe.StripeIntegrator
	sheetsService       sheets.SheetsIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSnapshotSyncService cria uma nova instância do serviço de sincronização de snapshots
func NewSnapshotSyncService(
	companyRepo repository.CompanyRepository,
	snapshotRepo repository.SnapshotRepository,
	agentService agent.AgentIntegrator,
	stripeService stripe.StripeIntegrator,
	sheetsService sheets.SheetsIntegrator,
	appConfig *config.Config,
) *SnapshotSyncService {
	// Criar a configuração com base na config global
	syncConfig := SnapshotSyncConfig{
		CronSchedule:        appConfig.SnapshotSync.CronSchedule,
		RequestDelaySeconds: appConfig.SnapshotSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.SnapshotSync.MaxConcurrentJobs,
		RetentionMonths:     appConfig.SnapshotSync.RetentionMonths,
		SyncEnabled:         appConfig.SnapshotSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"retention_months":      syncConfig.RetentionMonths,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		appConfig:     appConfig,
		companyRepo:   companyRepo,
		snapshotRepo:  snapshotRepo,
		agentService:  agentService,
		stripeService: stripeService,
		sheetsService: sheetsService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de snapshots")

	// Agendar a sincronização de snapshots
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots sincroniza os snapshots de todas as empresas ativas
func (s *SnapshotSyncService) syncAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots para todas as empresas ativas")

	activeCompanies, err := s.getActiveCompanies()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de empresas para sincronização de snapshots")
		return
	}

	if len(activeCompanies) == 0 {
		logrus.Info("Nenhuma empresa ativa encontrada para sincronização de snapshots")
		return
	}

	ctx := context.Background()
	agentAvailable := s.agentService.Available(ctx)
	if !agentAvailable {
		logrus.Warn("Agente de insights indisponível, usando ingestão local (Stripe + planilha)")
	}

	s.processCompanies(ctx, activeCompanies, agentAvailable)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"companies": len(activeCompanies),
	}).Info("Sincronização de snapshots concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveCompanies busca e filtra empresas ativas
func (s *SnapshotSyncService) getActiveCompanies() ([]*domain.Company, error) {
	activeCompanies, err := s.companyRepo.ListActive()
	if err != nil {
		return nil, err
	}

	if len(activeCompanies) == 0 {
		logrus.Info("Nenhuma empresa encontrada para sincronização de snapshots")
		return []*domain.Company{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_companies": len(activeCompanies),
	}).Info("Empresas encontradas para sincronização de snapshots")

	return activeCompanies, nil
}

// processCompanies processa as empresas com workers concorrentes limitados
func (s *SnapshotSyncService) processCompanies(ctx context.Context, companies []*domain.Company, agentAvailable bool) {
	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, company := range companies {
		// Empresas sem nenhuma origem conectada não têm o que sincronizar
		if !company.HasStripe() && !company.HasSheet() {
			logrus.WithField("company_id", company.ID).Info("Empresa sem origem de dados conectada. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(c *domain.Company) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"company_id":   c.ID,
				"company_name": c.Name,
			}).Info("Processando snapshots para empresa")

			s.processCompany(ctx, c, agentAvailable)

			// Aguardar antes da próxima empresa para evitar sobrecarga nas APIs
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(company)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()
}

// processCompany sincroniza uma empresa pela via do agente ou pela ingestão local
func (s *SnapshotSyncService) processCompany(ctx context.Context, company *domain.Company, agentAvailable bool) {
	var err error
	if agentAvailable {
		err = s.refreshViaAgent(ctx, company)
	} else {
		err = s.ingestLocally(ctx, company)
	}

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": company.ID,
			"error":      err.Error(),
		}).Error("Erro ao sincronizar snapshots da empresa")
		return
	}

	s.applyRetention(company)

	if err := s.companyRepo.TouchLastSynced(company.ID, time.Now().UTC()); err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar last_synced_at da empresa")
	}

	logrus.WithField("company_id", company.ID).Info("Snapshots da empresa sincronizados com sucesso")
}

// refreshViaAgent invoca o agente de insights e persiste as linhas retornadas
func (s *SnapshotSyncService) refreshViaAgent(ctx context.Context, company *domain.Company) error {
	rows, sources, err := s.agentService.RefreshCompany(ctx, company)
	if err != nil {
		return fmt.Errorf("erro ao invocar o agente de insights: %w", err)
	}

	for _, row := range rows {
		if err := s.snapshotRepo.SaveOrUpdate(row); err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": company.ID,
				"period":     row.PeriodDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("Erro ao salvar snapshot retornado pelo agente")
		}
	}

	if len(sources) > 0 {
		if err := s.snapshotRepo.SaveSources(company.ID, sources); err != nil {
			logrus.WithError(err).Warn("Erro ao salvar origens das métricas")
		}
	}

	return nil
}

// ingestLocally monta os snapshots a partir das origens conectadas da
// empresa: linhas históricas da planilha e KPIs do mês corrente da Stripe.
func (s *SnapshotSyncService) ingestLocally(ctx context.Context, company *domain.Company) error {
	sources := make(map[string]string)

	if company.HasSheet() {
		rows, err := s.sheetsService.SnapshotRows(ctx, company)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": company.ID,
				"error":      err.Error(),
			}).Error("Erro ao ler planilha de KPIs da empresa")
		} else {
			for _, row := range rows {
				if err := s.snapshotRepo.SaveOrUpdate(row); err != nil {
					logrus.WithError(err).Error("Erro ao salvar snapshot da planilha")
					continue
				}
				for metric := range row.KPIs {
					sources[metric] = "sheet"
				}
			}
		}
	}

	if company.HasStripe() {
		if err := s.ingestStripeSnapshot(ctx, company, sources); err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": company.ID,
				"error":      err.Error(),
			}).Error("Erro ao montar snapshot da Stripe")
		}
	}

	if len(sources) > 0 {
		if err := s.snapshotRepo.SaveSources(company.ID, sources); err != nil {
			logrus.WithError(err).Warn("Erro ao salvar origens das métricas")
		}
	}

	return nil
}

// ingestStripeSnapshot mescla os KPIs derivados da Stripe no snapshot do mês
// corrente. Métricas da Stripe têm precedência sobre as da planilha.
func (s *SnapshotSyncService) ingestStripeSnapshot(ctx context.Context, company *domain.Company, sources map[string]string) error {
	kpis, err := s.stripeService.SnapshotKPIs(ctx, company)
	if err != nil {
		return err
	}

	if len(kpis) == 0 {
		return nil
	}

	now := time.Now().UTC()
	period := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	row, err := s.snapshotRepo.GetByCompanyIDAndPeriod(company.ID, period)
	if err != nil {
		return err
	}

	if row == nil {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		row = &domain.SnapshotRow{
			ID:         id,
			CompanyID:  company.ID,
			PeriodDate: period,
			KPIs:       make(map[string]any),
		}
	}

	for metric, value := range kpis {
		row.KPIs[metric] = value
		sources[metric] = "stripe"
	}
	row.Source = "stripe"

	return s.snapshotRepo.SaveOrUpdate(row)
}

// applyRetention remove snapshots mais antigos que a janela de retenção
func (s *SnapshotSyncService) applyRetention(company *domain.Company) {
	if s.config.RetentionMonths <= 0 {
		return
	}

	deleted, err := s.snapshotRepo.DeleteOlderThan(company.ID, s.config.RetentionMonths)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": company.ID,
			"error":      err.Error(),
		}).Error("Erro ao aplicar retenção de snapshots")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"company_id": company.ID,
			"deleted":    deleted,
		}).Info("Snapshots antigos removidos pela política de retenção")
	}
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots")
	go s.syncAllSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"retention_months":       s.config.RetentionMonths,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
