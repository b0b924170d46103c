// Package settlement мониторит расчеты по проведенным транзакциям через API шлюза.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/gamepay/internal/domain"
	"github.com/fsdevblog/gamepay/internal/service"
	"github.com/fsdevblog/gamepay/internal/session"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout    = 3 * time.Second
	defaultAPITimeout        = 10 * time.Second
	defaultLimitPerIteration = uint(100)
	defaultSettlementWorkers = uint(5)
	defaultPollInterval      = 15 * time.Second
)

// Processor периодически опрашивает шлюз по транзакциям, отправленным на
// settlement, и обновляет записи в сессиях когда шлюз сообщает терминальный
// статус.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	pollInterval      time.Duration
}

// New создает новый экземпляр процессора мониторинга расчетов.
func New(svs Servicer, client Client, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "settlement",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            client,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultSettlementWorkers,
		pollInterval:      defaultPollInterval,
	}
}

// SetLimitPerIteration устанавливает кол-во записей, обрабатываемых в одной итерации.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetWorkers устанавливает кол-во воркеров, опрашивающих шлюз.
func (p *Processor) SetWorkers(workers uint) *Processor {
	p.workers = workers
	return p
}

// SetPollInterval устанавливает паузу между итерациями опроса.
func (p *Processor) SetPollInterval(interval time.Duration) *Processor {
	p.pollInterval = interval
	return p
}

// Run запускает мониторинг в цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации через сервисный слой запрашивается список записей,
//     не достигших терминального статуса расчетов.
//  2. N воркеров (SetWorkers) параллельно опрашивают шлюз по этим транзакциям.
//  3. Свежие статусы отправляются в сервисный слой.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
	}).Info("Starting")

	// операционное ограничение: отправленную продажу, исход которой не удалось
	// подтвердить, система не отменяет. Такие транзакции останутся в
	// нетерминальном статусе и видны в логах мониторинга.
	p.l.Warn("dispatched sales are never voided automatically; unconfirmed transactions require operator review")

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		default:
			if err := p.process(ctx); err != nil && !errors.Is(err, ErrNoTransactions) {
				p.l.WithError(err).Error("process error")
			}

			select {
			case <-ctx.Done():
			case <-time.After(p.pollInterval):
			}
		}
	}
}

// process выполняет одну итерацию мониторинга: скан записей, опрос шлюза,
// обновление статусов. Возвращает ErrNoTransactions если опрашивать нечего.
func (p *Processor) process(ctx context.Context) error {
	records, recordsErr := p.produce(ctx)
	if recordsErr != nil {
		return fmt.Errorf("process: %w", recordsErr)
	}

	results := p.runWorkers(ctx, records)
	if len(results) == 0 {
		return nil
	}

	var updateArgs = make([]service.UpdateSettlementArgs, 0, len(results))
	for _, result := range results {
		// статус не изменился — обновлять нечего, воркер вернется к записи
		// на следующей итерации.
		if result.Error == nil && result.Status == result.PrevStatus {
			continue
		}
		updateArgs = append(updateArgs, service.UpdateSettlementArgs{
			Error:            result.Error,
			SessionID:        result.SessionID,
			Status:           result.Status,
			ProcessorMessage: result.ProcessorMessage,
		})
	}

	if len(updateArgs) == 0 {
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if updErr := p.svs.UpdateSettlement(reqCtx, updateArgs); updErr != nil {
		return fmt.Errorf("process: %s", updErr.Error())
	}

	return nil
}

// workerResult результат опроса одной транзакции.
type workerResult struct {
	WorkerID         uint
	SessionID        string
	TransactionID    string
	Error            error
	Status           domain.TransactionStatusType
	PrevStatus       domain.TransactionStatusType
	ProcessorMessage string
}

// runWorkers запускает параллельных воркеров для опроса шлюза и ожидает конца их
// работы. Паттерн fan-out/fan-in, как и в остальных фоновых обработчиках.
func (p *Processor) runWorkers(ctx context.Context, records []session.KeyedRecord) []workerResult {
	var taskCh = make(chan *session.KeyedRecord, len(records))

	for i := range records {
		taskCh <- &records[i]
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.workers)) //nolint:gosec

	var resultCh = make(chan *workerResult, len(records))

	for i := range p.workers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(records))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":        result.WorkerID,
			"transactionID": result.TransactionID,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("get transaction status")
		} else {
			l.WithField("status", result.Status).Debug("polled")
		}
		results = append(results, *result)
	}
	return results
}

// worker обрабатывает записи из канала: запрашивает статус транзакции на шлюзе
// и отправляет результат.
func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *session.KeyedRecord,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.pollTransaction(ctx, workerID, task)
		}
	}
}

func (p *Processor) pollTransaction(ctx context.Context, workerID uint, task *session.KeyedRecord) *workerResult {
	result := workerResult{
		WorkerID:      workerID,
		SessionID:     task.SessionID,
		TransactionID: task.Record.TransactionID,
		PrevStatus:    task.Record.Status,
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
	defer cancel()

	resp, err := p.client.FindTransaction(reqCtx, task.Record.TransactionID)
	if err != nil {
		result.Error = err
		return &result
	}

	result.Status = resp.Status
	result.ProcessorMessage = resp.ProcessorMessage
	return &result
}

// produce получает список записей для мониторинга расчетов.
// Возвращает ErrNoTransactions, если записи отсутствуют.
func (p *Processor) produce(ctx context.Context) ([]session.KeyedRecord, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	records, recordsErr := p.svs.TransactionsForSettlementMonitoring(produceCtx, p.limitPerIteration)
	if recordsErr != nil {
		return nil, fmt.Errorf("produce: %w", recordsErr)
	}

	if len(records) == 0 {
		return nil, ErrNoTransactions
	}
	return records, nil
}
