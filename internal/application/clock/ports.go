package clock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fichaje-api/internal/domain/entity"
	"github.com/jhoicas/fichaje-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la verificación de alternancia
// y el insert del fichaje sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		eventRepo repository.ClockEventRepository,
	) error) error
}

// ReceiptPDFGenerator genera el comprobante PDF de los fichajes de un día.
type ReceiptPDFGenerator interface {
	GenerateDayReceipt(
		ctx context.Context,
		user *entity.User,
		department *entity.Department,
		day time.Time,
		events []*entity.ClockEvent,
		workedHours decimal.Decimal,
	) ([]byte, error)
}
