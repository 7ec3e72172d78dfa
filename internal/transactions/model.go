package transactions

import (
	"errors"
	"time"

	"github.com/Hum-Tech/TSOAM-V4-sub002/internal/money"
)

type Direction string

const (
	DirectionIncome  Direction = "Income"
	DirectionExpense Direction = "Expense"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// Module is the subsystem a transaction originated from.
type Module string

const (
	ModuleFinance   Module = "Finance"
	ModuleInventory Module = "Inventory"
	ModuleHR        Module = "HR"
	ModuleWelfare   Module = "Welfare"
	ModuleEvents    Module = "Events"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodMobileMoney  PaymentMethod = "Mobile Money"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCheque       PaymentMethod = "Cheque"
)

// ApprovalThreshold is the amount in cents above which non-Finance
// transactions wait for manual sign-off.
const ApprovalThreshold = 1000 * money.CentsPerUnit

var (
	ErrAmountMustBePositive = errors.New("amount must be greater than zero")
	ErrDescriptionRequired  = errors.New("description is required")
	ErrCategoryRequired     = errors.New("category is required")
	ErrInvalidDirection     = errors.New("direction must be Income or Expense")
	ErrInvalidModule        = errors.New("unknown originating module")
	ErrInvalidMethod        = errors.New("unknown payment method")
	ErrInvalidStatus        = errors.New("unknown status")
)

// Transaction is a single recorded monetary movement with a lifecycle status.
// Amounts are in cents.
type Transaction struct {
	ID               int64         `json:"id"`
	Date             time.Time     `json:"date"`
	Direction        Direction     `json:"direction"`
	Category         string        `json:"category"`
	Subcategory      string        `json:"subcategory,omitempty"`
	Description      string        `json:"description"`
	Amount           int64         `json:"amount"`
	Currency         string        `json:"currency"`
	Method           PaymentMethod `json:"payment_method"`
	Reference        string        `json:"reference"`
	ExternalRef      string        `json:"external_payment_ref,omitempty"`
	Module           Module        `json:"module"`
	ModuleRef        string        `json:"module_ref,omitempty"`
	Status           Status        `json:"status"`
	CreatedBy        string        `json:"created_by"`
	RequestedBy      string        `json:"requested_by"`
	ApprovedBy       string        `json:"approved_by,omitempty"`
	RequiresApproval bool          `json:"requires_approval"`
	Notes            string        `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Input is the caller-supplied part of a transaction. The store assigns
// the id, timestamps, approval flag and initial status.
type Input struct {
	Date        time.Time     `json:"date"`
	Direction   Direction     `json:"direction"`
	Category    string        `json:"category"`
	Subcategory string        `json:"subcategory,omitempty"`
	Description string        `json:"description"`
	Amount      int64         `json:"amount"`
	Currency    string        `json:"currency,omitempty"`
	Method      PaymentMethod `json:"payment_method"`
	Reference   string        `json:"reference,omitempty"`
	ExternalRef string        `json:"external_payment_ref,omitempty"`
	Module      Module        `json:"module"`
	ModuleRef   string        `json:"module_ref,omitempty"`
	// Status overrides the Completed default for transactions that do not
	// need approval. Ignored when approval is required.
	Status      Status `json:"status,omitempty"`
	CreatedBy   string `json:"created_by"`
	RequestedBy string `json:"requested_by"`
	Notes       string `json:"notes,omitempty"`
}

// RequiresApproval is the single approval-gate rule: a transaction waits
// for sign-off iff it did not originate in Finance and its amount exceeds
// the threshold. Adapters must not re-check this.
func RequiresApproval(m Module, amount int64) bool {
	return m != ModuleFinance && amount > ApprovalThreshold
}

func (in Input) Validate() error {
	if in.Amount <= 0 {
		return ErrAmountMustBePositive
	}
	if in.Description == "" {
		return ErrDescriptionRequired
	}
	if in.Category == "" {
		return ErrCategoryRequired
	}
	switch in.Direction {
	case DirectionIncome, DirectionExpense:
	default:
		return ErrInvalidDirection
	}
	switch in.Module {
	case ModuleFinance, ModuleInventory, ModuleHR, ModuleWelfare, ModuleEvents:
	default:
		return ErrInvalidModule
	}
	switch in.Method {
	case MethodCash, MethodMobileMoney, MethodBankTransfer, MethodCheque:
	default:
		return ErrInvalidMethod
	}
	if in.Status != "" {
		switch in.Status {
		case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		default:
			return ErrInvalidStatus
		}
	}
	return nil
}
