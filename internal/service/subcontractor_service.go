package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nirbeaver/construction-management/internal/calc"
	"github.com/nirbeaver/construction-management/internal/model"
)

// SubcontractorRepository is the persistence surface the subcontractor
// service needs. Change orders and payments are persisted as child rows of
// the subcontractor.
type SubcontractorRepository interface {
	Create(ctx context.Context, sub *model.Subcontractor) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Subcontractor, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Subcontractor, error)
	Update(ctx context.Context, sub *model.Subcontractor) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddChangeOrder(ctx context.Context, co *model.ChangeOrder) error
	AddPayment(ctx context.Context, payment *model.Payment) error
}

type SubcontractorService struct {
	repo     SubcontractorRepository
	projects ProjectRepository
	log      zerolog.Logger
}

func NewSubcontractorService(repo SubcontractorRepository, projects ProjectRepository, log zerolog.Logger) *SubcontractorService {
	return &SubcontractorService{repo: repo, projects: projects, log: log}
}

type SubcontractorInput struct {
	Name           string
	Company        string
	Role           string
	Email          string
	Phone          string
	ContractAmount model.Cents
	EstimatedCost  model.Cents
	StartDate      string
	Duration       int
	DurationType   model.DurationType
	HasContract    bool
}

// SubcontractorView couples a subcontractor with its derived totals.
type SubcontractorView struct {
	model.Subcontractor
	Totals calc.Totals
}

func (s *SubcontractorService) Add(ctx context.Context, principal model.Principal, projectID uuid.UUID, input SubcontractorInput) (*model.Subcontractor, error) {
	if _, err := s.loadProject(ctx, principal, projectID); err != nil {
		return nil, err
	}
	if err := validateSubcontractorInput(input); err != nil {
		return nil, err
	}

	endDate, err := calc.EndDate(input.StartDate, input.Duration, input.DurationType)
	if err != nil {
		s.log.Warn().Str("subcontractor", input.Name).Str("start_date", input.StartDate).
			Msg("start date did not parse, keeping raw value as end date")
	}

	now := time.Now().UTC()
	sub := &model.Subcontractor{
		ID:             uuid.New(),
		ProjectID:      projectID,
		Name:           input.Name,
		Company:        input.Company,
		Role:           input.Role,
		Email:          input.Email,
		Phone:          input.Phone,
		ContractAmount: input.ContractAmount,
		EstimatedCost:  input.EstimatedCost,
		StartDate:      input.StartDate,
		Duration:       input.Duration,
		DurationType:   input.DurationType,
		EndDate:        endDate,
		Progress:       0,
		Status:         model.SubcontractorStatusPending,
		HasContract:    input.HasContract,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubcontractorService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*SubcontractorView, error) {
	sub, err := s.load(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	return &SubcontractorView{
		Subcontractor: *sub,
		Totals:        calc.SubcontractorTotals(*sub),
	}, nil
}

func (s *SubcontractorService) ListByProject(ctx context.Context, principal model.Principal, projectID uuid.UUID) ([]SubcontractorView, error) {
	if _, err := s.loadProject(ctx, principal, projectID); err != nil {
		return nil, err
	}
	subs, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	views := make([]SubcontractorView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, SubcontractorView{
			Subcontractor: sub,
			Totals:        calc.SubcontractorTotals(sub),
		})
	}
	return views, nil
}

func (s *SubcontractorService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input SubcontractorInput) (*model.Subcontractor, error) {
	sub, err := s.load(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if err := validateSubcontractorInput(input); err != nil {
		return nil, err
	}

	scheduleChanged := sub.StartDate != input.StartDate ||
		sub.Duration != input.Duration ||
		sub.DurationType != input.DurationType

	sub.Name = input.Name
	sub.Company = input.Company
	sub.Role = input.Role
	sub.Email = input.Email
	sub.Phone = input.Phone
	sub.ContractAmount = input.ContractAmount
	sub.EstimatedCost = input.EstimatedCost
	sub.StartDate = input.StartDate
	sub.Duration = input.Duration
	sub.DurationType = input.DurationType
	sub.HasContract = input.HasContract
	sub.UpdatedAt = time.Now().UTC()

	if scheduleChanged {
		endDate, err := calc.EndDate(sub.StartDate, sub.Duration, sub.DurationType)
		if err != nil {
			s.log.Warn().Str("subcontractor", sub.Name).Str("start_date", sub.StartDate).
				Msg("start date did not parse, keeping raw value as end date")
		}
		// change-order extensions recorded before the reschedule are
		// re-applied on top of the fresh end date
		for _, co := range sub.ChangeOrders {
			if co.AdditionalDays != 0 {
				impact := calc.ChangeOrderImpact(co, endDate)
				endDate = impact.NewEndDate
			}
		}
		sub.EndDate = endDate
	}

	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubcontractorService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	project, err := s.projects.GetByID(ctx, sub.ProjectID)
	if err != nil {
		return err
	}
	if !principal.CanDelete(project.OwnerID) {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

type ChangeOrderInput struct {
	Description  string
	Amount       model.Cents
	Date         string
	Duration     int
	DurationType model.DurationType
	Documents    []string
}

// AddChangeOrder records a contract adjustment and extends the
// subcontractor's end date by the change order's additional days. The
// amount may be negative; a credit still counts toward the contract value.
func (s *SubcontractorService) AddChangeOrder(ctx context.Context, principal model.Principal, subID uuid.UUID, input ChangeOrderInput) (*model.ChangeOrder, error) {
	sub, err := s.load(ctx, principal, subID)
	if err != nil {
		return nil, err
	}
	if input.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	if err := validateDurationType(input.DurationType); err != nil {
		return nil, err
	}

	co := &model.ChangeOrder{
		ID:              uuid.New(),
		SubcontractorID: sub.ID,
		Seq:             len(sub.ChangeOrders) + 1,
		Description:     input.Description,
		Amount:          input.Amount,
		Date:            input.Date,
		Status:          model.ChangeOrderStatusPending,
		Duration:        input.Duration,
		DurationType:    input.DurationType,
		Documents:       input.Documents,
		CreatedAt:       time.Now().UTC(),
	}

	impact := calc.ChangeOrderImpact(*co, sub.EndDate)
	co.AdditionalDays = impact.AdditionalDays

	if err := s.repo.AddChangeOrder(ctx, co); err != nil {
		return nil, err
	}

	if impact.AdditionalDays != 0 {
		sub.EndDate = impact.NewEndDate
		sub.UpdatedAt = time.Now().UTC()
		if err := s.repo.Update(ctx, sub); err != nil {
			return nil, err
		}
	}
	return co, nil
}

type PaymentInput struct {
	Amount      model.Cents
	Date        string
	Description string
	Method      model.PaymentMethod
	BankName    string
	CheckNumber string
	CardType    string
	Last4Digits string
	AccountID   string
}

func (s *SubcontractorService) AddPayment(ctx context.Context, principal model.Principal, subID uuid.UUID, input PaymentInput) (*model.Payment, error) {
	sub, err := s.load(ctx, principal, subID)
	if err != nil {
		return nil, err
	}
	if input.Amount < 0 {
		return nil, fmt.Errorf("%w: payment amount must not be negative", ErrInvalidInput)
	}
	if err := validatePaymentMethod(input); err != nil {
		return nil, err
	}

	payment := &model.Payment{
		ID:              uuid.New(),
		SubcontractorID: sub.ID,
		Seq:             len(sub.Payments) + 1,
		Amount:          input.Amount,
		Date:            input.Date,
		Description:     input.Description,
		Method:          input.Method,
		BankName:        input.BankName,
		CheckNumber:     input.CheckNumber,
		CardType:        input.CardType,
		Last4Digits:     input.Last4Digits,
		AccountID:       input.AccountID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.AddPayment(ctx, payment); err != nil {
		return nil, err
	}

	// actual cost tracks the paid-out total
	sub.Payments = append(sub.Payments, *payment)
	sub.ActualCost = calc.SubcontractorTotals(*sub).TotalPayments
	sub.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *SubcontractorService) load(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Subcontractor, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.loadProject(ctx, principal, sub.ProjectID); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubcontractorService) loadProject(ctx context.Context, principal model.Principal, projectID uuid.UUID) (*model.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.CanAccess(project.OwnerID) {
		return nil, ErrPermissionDenied
	}
	return project, nil
}

func validateSubcontractorInput(input SubcontractorInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.ContractAmount < 0 || input.EstimatedCost < 0 {
		return fmt.Errorf("%w: monetary amounts must not be negative", ErrInvalidInput)
	}
	if input.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return validateDurationType(input.DurationType)
}

func validatePaymentMethod(input PaymentInput) error {
	switch input.Method {
	case model.PaymentMethodCheck:
		if input.BankName == "" || input.CheckNumber == "" {
			return fmt.Errorf("%w: check payments require bank name and check number", ErrInvalidInput)
		}
	case model.PaymentMethodCreditCard:
		if input.CardType == "" || input.Last4Digits == "" {
			return fmt.Errorf("%w: credit card payments require card type and last 4 digits", ErrInvalidInput)
		}
	case model.PaymentMethodBankTransfer:
		if input.BankName == "" {
			return fmt.Errorf("%w: bank transfers require a bank name", ErrInvalidInput)
		}
	case model.PaymentMethodZelle, model.PaymentMethodVenmo:
		if input.AccountID == "" {
			return fmt.Errorf("%w: %s payments require an account identifier", ErrInvalidInput, input.Method)
		}
	case model.PaymentMethodCash:
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, input.Method)
	}
	return nil
}
