package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentInput  = errors.New("invalid payment input")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrOrderCancelled       = errors.New("order cancelled")
	ErrGatewayRejected      = errors.New("payment gateway rejected the payment")
)

// AmountExceedsBalanceError carries the computed balance so the caller can
// display the exact remaining amount.
type AmountExceedsBalanceError struct {
	Balance float64
}

func (e *AmountExceedsBalanceError) Error() string {
	return fmt.Sprintf("amount exceeds balance (remaining %.2f)", e.Balance)
}

// AddPaymentInput carries one payment receipt. ProviderPayload is only read
// for card methods and is forwarded to the configured gateway.
type AddPaymentInput struct {
	Method          entities.PaymentMethod
	Amount          float64
	PaidAt          time.Time
	ReceivedBy      string
	Notes           string
	ProviderPayload json.RawMessage
}

// OrderBalance is the reconciliation snapshot for one order.
type OrderBalance struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Balance float64 `json:"balance"`
}

// IPaymentUseCase owns payment reconciliation: balance computation, the
// epsilon-guarded payment insert, and the paid-in-full completion side effect.

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks
type IPaymentUseCase interface {
	AddPayment(ctx context.Context, actor entities.Actor, orderID string, in AddPaymentInput) (entities.Payment, error)
	Balance(ctx context.Context, actor entities.Actor, orderID string) (OrderBalance, error)
	ListByOrder(ctx context.Context, actor entities.Actor, orderID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	orderRepo interfaces.IServiceOrderRepository
	inspRepo  interfaces.IInspectionRepository
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orderRepo interfaces.IServiceOrderRepository, inspRepo interfaces.IInspectionRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, inspRepo: inspRepo, gateway: gateway}
}

// AddPayment validates the amount against the current balance (ε = 0.01),
// optionally runs card payments through the gateway, and inserts the receipt
// transactionally with the order-version bump. When the insert makes the
// remaining balance drop below ε and the final inspection is concluded, the
// order is completed through the same gate as an explicit status request.
// A fully paid order with an unfinished inspection is left exactly where it
// was: paying is independently valid, so no error reaches the payer.
func (u *PaymentUseCase) AddPayment(ctx context.Context, actor entities.Actor, orderID string, in AddPaymentInput) (entities.Payment, error) {
	if in.Amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	if !entities.IsValidPaymentMethod(in.Method) {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}

	o, err := loadOrder(ctx, u.orderRepo, actor.TenantID, orderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if o.Status == entities.OrderStatusCancelado {
		return entities.Payment{}, ErrOrderCancelled
	}

	payments, err := u.repo.ListByOrderID(ctx, actor.TenantID, o.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	paid := entities.SumPayments(payments)
	balance := o.Total - paid
	if in.Amount-balance > entities.PaymentEpsilon {
		log.Printf("[payment][usecase] amount exceeds balance order_id=%s amount=%.2f balance=%.2f", o.ID, in.Amount, balance)
		return entities.Payment{}, &AmountExceedsBalanceError{Balance: balance}
	}

	paidAt := in.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}
	p := entities.Payment{
		ID:         uuid.NewString(),
		TenantID:   actor.TenantID,
		OrderID:    o.ID,
		Method:     in.Method,
		Amount:     in.Amount,
		PaidAt:     paidAt.UTC(),
		ReceivedBy: actor.UserID,
		Notes:      strings.TrimSpace(in.Notes),
	}
	if rb := strings.TrimSpace(in.ReceivedBy); rb != "" {
		p.ReceivedBy = rb
	}

	if in.Method.IsCard() && len(in.ProviderPayload) > 0 {
		if err := u.processThroughGateway(ctx, &p, o, in.ProviderPayload); err != nil {
			return entities.Payment{}, err
		}
	}

	created, err := u.repo.CreateWithOrderVersion(ctx, p, o.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			log.Printf("[payment][usecase] concurrent payment detected order_id=%s", o.ID)
			return entities.Payment{}, ErrConcurrentUpdate
		}
		log.Printf("[payment][usecase] create failed order_id=%s err=%v", o.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create success order_id=%s payment_id=%s amount=%.2f", o.ID, created.ID, created.Amount)

	remaining := o.Total - (paid + in.Amount)
	if remaining < entities.PaymentEpsilon && entities.CanTransition(o.Status, entities.OrderStatusConcluido) {
		u.autoComplete(ctx, o)
	}

	return created, nil
}

func (u *PaymentUseCase) Balance(ctx context.Context, actor entities.Actor, orderID string) (OrderBalance, error) {
	o, err := loadOrder(ctx, u.orderRepo, actor.TenantID, orderID)
	if err != nil {
		return OrderBalance{}, err
	}
	payments, err := u.repo.ListByOrderID(ctx, actor.TenantID, o.ID)
	if err != nil {
		return OrderBalance{}, err
	}
	paid := entities.SumPayments(payments)
	return OrderBalance{OrderID: o.ID, Total: o.Total, Paid: paid, Balance: o.Total - paid}, nil
}

func (u *PaymentUseCase) ListByOrder(ctx context.Context, actor entities.Actor, orderID string) ([]entities.Payment, error) {
	o, err := loadOrder(ctx, u.orderRepo, actor.TenantID, orderID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByOrderID(ctx, actor.TenantID, o.ID)
}

// processThroughGateway runs the card payment through the external provider
// and stores the provider response on the receipt. The recorded amount is the
// source of truth: it overrides whatever transaction_amount the payload holds.
func (u *PaymentUseCase) processThroughGateway(ctx context.Context, p *entities.Payment, o entities.ServiceOrder, payload json.RawMessage) error {
	if u.gateway == nil {
		return errors.New("payment gateway not configured")
	}
	if !json.Valid(payload) {
		return ErrInvalidPaymentInput
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = o.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Ordem de serviço %s", o.Code)
		}
		reqMap["transaction_amount"] = p.Amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[payment][usecase] calling payment gateway order_id=%s amount=%.2f", o.ID, p.Amount)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed order_id=%s err=%v", o.ID, err)
		return fmt.Errorf("%w: %v", ErrGatewayRejected, err)
	}
	p.ProviderPaymentID = providerID
	p.ProviderStatus = providerStatus
	p.ProviderPayloadRaw = providerResp
	return nil
}

// autoComplete applies the same final-inspection gate as an explicit
// UpdateStatus(CONCLUIDO) request. Gate failures are swallowed: the order stays
// fully paid but not yet completable.
func (u *PaymentUseCase) autoComplete(ctx context.Context, o entities.ServiceOrder) {
	updated, err := completeOrder(ctx, u.orderRepo, u.inspRepo, o)
	if err != nil {
		if errors.Is(err, ErrCompletionBlocked) {
			log.Printf("[payment][usecase] paid in full but final inspection pending order_id=%s", o.ID)
			return
		}
		log.Printf("[payment][usecase] auto-completion failed order_id=%s err=%v", o.ID, err)
		return
	}
	log.Printf("[payment][usecase] order auto-completed order_id=%s status=%s", updated.ID, updated.Status)
}
