package clock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fichaje-api/internal/application/dto"
	"github.com/jhoicas/fichaje-api/internal/domain"
	"github.com/jhoicas/fichaje-api/internal/domain/entity"
	"github.com/jhoicas/fichaje-api/internal/domain/repository"
	"github.com/jhoicas/fichaje-api/internal/domain/timeclock"
)

// Policy reglas configurables del fichaje de salida.
type Policy struct {
	ReportRequiredOnExit bool
	ReportMinLength      int
}

// ClockUseCase registra fichajes de forma transaccional y sirve el feed del día.
//
// RecordEvent bloquea la fila del usuario (SELECT FOR UPDATE) dentro de la
// transacción: dos envíos concurrentes del mismo usuario se serializan y el
// segundo re-lee los eventos ya con el primero confirmado, con lo que la
// alternancia ENTRADA/SAIDA nunca se rompe.
type ClockUseCase struct {
	txRunner  TxRunner
	userRepo  repository.UserRepository
	deptRepo  repository.DepartmentRepository
	eventRepo repository.ClockEventRepository
	pdfGen    ReceiptPDFGenerator
	policy    Policy
}

// NewClockUseCase construye el caso de uso.
func NewClockUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	deptRepo repository.DepartmentRepository,
	eventRepo repository.ClockEventRepository,
	pdfGen ReceiptPDFGenerator,
	policy Policy,
) *ClockUseCase {
	return &ClockUseCase{
		txRunner:  txRunner,
		userRepo:  userRepo,
		deptRepo:  deptRepo,
		eventRepo: eventRepo,
		pdfGen:    pdfGen,
		policy:    policy,
	}
}

// Today devuelve los fichajes del día local del usuario, ordenados ascendente,
// más el tipo permitido del próximo fichaje y el total de horas cerradas.
// Se re-lee de la base en cada llamada; no hay caché.
func (uc *ClockUseCase) Today(ctx context.Context, userID string) (*dto.TodayResponse, error) {
	start, end := timeclock.DayWindow(time.Now())
	events, err := uc.eventRepo.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listar fichajes del día: %w", err)
	}
	return todayResponse(events), nil
}

// RecordEvent registra un fichaje. claimedType es lo que la UI cree que toca;
// el tipo real se re-deriva dentro de la transacción a partir del último
// estado confirmado y, si no coinciden, se rechaza con ErrOutOfSequence sin
// persistir nada (protege contra UI desactualizada y dobles envíos).
func (uc *ClockUseCase) RecordEvent(ctx context.Context, userID string, in dto.RecordEventRequest) (*dto.ClockEventResponse, error) {
	if in.Type != entity.EventTypeENTRADA && in.Type != entity.EventTypeSAIDA {
		return nil, fmt.Errorf("%w: tipo de fichaje desconocido %q", domain.ErrInvalidInput, in.Type)
	}

	var created *entity.ClockEvent
	err := uc.txRunner.Run(ctx, func(
		userRepo repository.UserRepository,
		eventRepo repository.ClockEventRepository,
	) error {
		// Serializa los fichajes concurrentes del mismo usuario
		user, err := userRepo.GetByIDForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("bloquear usuario: %w", err)
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		now := time.Now()
		start, end := timeclock.DayWindow(now)
		events, err := eventRepo.ListByUserBetween(ctx, userID, start, end)
		if err != nil {
			return fmt.Errorf("listar fichajes del día: %w", err)
		}

		next := timeclock.NextType(events)
		if next != in.Type {
			return domain.ErrOutOfSequence
		}

		report, err := uc.exitReport(next, in.Report)
		if err != nil {
			return err
		}

		created = &entity.ClockEvent{
			ID:        uuid.New().String(),
			UserID:    userID,
			Type:      next,
			Report:    report,
			CreatedAt: now, // siempre asignado por el servidor
		}
		return eventRepo.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	resp := toEventResponse(created)
	return &resp, nil
}

// exitReport aplica la política de informe: en SAIDA puede ser obligatorio con
// longitud mínima; en ENTRADA se ignora y se guarda ausente.
func (uc *ClockUseCase) exitReport(eventType, report string) (*string, error) {
	if eventType != entity.EventTypeSAIDA {
		return nil, nil
	}
	trimmed := strings.TrimSpace(report)
	if uc.policy.ReportRequiredOnExit && len([]rune(trimmed)) < uc.policy.ReportMinLength {
		return nil, fmt.Errorf("%w: el informe de salida requiere al menos %d caracteres",
			domain.ErrInvalidInput, uc.policy.ReportMinLength)
	}
	if trimmed == "" {
		return nil, nil
	}
	return &trimmed, nil
}

// DayReceipt genera el comprobante PDF de los fichajes del día.
func (uc *ClockUseCase) DayReceipt(ctx context.Context, userID string) ([]byte, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	department, err := uc.deptRepo.GetByID(ctx, user.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("buscar departamento: %w", err)
	}

	now := time.Now()
	start, end := timeclock.DayWindow(now)
	events, err := uc.eventRepo.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listar fichajes del día: %w", err)
	}

	return uc.pdfGen.GenerateDayReceipt(ctx, user, department, now, events, timeclock.WorkedTotal(events))
}

func todayResponse(events []*entity.ClockEvent) *dto.TodayResponse {
	out := &dto.TodayResponse{
		Events:      make([]dto.ClockEventResponse, 0, len(events)),
		NextType:    timeclock.NextType(events),
		WorkedHours: timeclock.WorkedTotal(events).String(),
	}
	for _, ev := range events {
		out.Events = append(out.Events, toEventResponse(ev))
	}
	return out
}

func toEventResponse(ev *entity.ClockEvent) dto.ClockEventResponse {
	return dto.ClockEventResponse{
		ID:        ev.ID,
		Type:      ev.Type,
		Report:    ev.Report,
		CreatedAt: ev.CreatedAt,
	}
}
