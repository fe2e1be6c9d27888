package order

import (
	"errors"
	"fmt"
	"time"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// StaffRole names the staff slots an admin can assign on an order.
type StaffRole string

const (
	StaffDesigner  StaffRole = "DESIGNER"
	StaffValidator StaffRole = "VALIDATOR"
	StaffPrintshop StaffRole = "PRINT_SHOP"
)

// Validate checks that the role is one of the assignable staff slots.
func (r StaffRole) Validate() error {
	switch r {
	case StaffDesigner, StaffValidator, StaffPrintshop:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("staffRole",
		fmt.Errorf("%q is not an assignable staff role", string(r)))
}

// Order is the aggregate root for a print-goods order. It owns the lifecycle
// status, the price breakdown, the validation sub-cycle state, and the staff
// assignments, and it is the single authority on which transitions are legal.
//
// Order uses private fields so every mutation goes through a guarded method.
// Construct new orders with NewOrder; rebuild persisted ones with RestoreOrder.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	productID  kernel.UUID

	plan     DesignPlan
	status   Status
	quantity int

	designFileURL string

	validationRequested bool
	validationStatus    ValidationStatus

	assignedDesignerID  *kernel.UUID
	assignedValidatorID *kernel.UUID
	assignedPrintshopID *kernel.UUID

	revisionCount int
	maxRevisions  *int

	designPrice     kernel.Money
	validationPrice kernel.Money
	fixPrice        kernel.Money
	printPrice      kernel.Money
	totalPrice      kernel.Money

	trackingCode    string
	shippingAddress string
	customerNotes   string
	adminNotes      string

	acceptedAt  *time.Time
	printedAt   *time.Time
	shippedAt   *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	// version supports conditional updates in the repository; it is bumped
	// on every successful write.
	version int

	isConstructed bool
}

// NewOrder creates an order from validated inputs and a computed price
// breakdown, and derives the initial status:
//
//   - validation requested           -> AWAITING_VALIDATION
//   - plan with a design phase       -> DESIGNING
//   - otherwise                      -> PENDING
//
// An OWN_DESIGN order must arrive with a design file URL.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	plan DesignPlan,
	quantity int,
	designFileURL string,
	validationRequested bool,
	shippingAddress string,
	customerNotes string,
	pricing Pricing,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
		version:       1,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setProductID(productID),
		o.setPlan(plan),
		o.setQuantity(quantity),
		o.setPricing(pricing),
	); err != nil {
		return nil, err
	}

	if plan.RequiresDesignFile() && designFileURL == "" {
		return nil, errs.NewValueIsRequiredError("designFileUrl")
	}
	o.designFileURL = designFileURL
	o.shippingAddress = shippingAddress
	o.customerNotes = customerNotes

	o.validationRequested = validationRequested
	switch {
	case validationRequested:
		o.status = StatusAwaitingValidation
		o.validationStatus = ValidationPending
	case plan.RequiresDesignPhase():
		o.status = StatusDesigning
	default:
		o.status = StatusPending
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence without re-running creation
// rules. The repository is trusted to hand back what it was given.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	plan DesignPlan,
	status Status,
	quantity int,
	designFileURL string,
	validationRequested bool,
	validationStatus ValidationStatus,
	assignedDesignerID *kernel.UUID,
	assignedValidatorID *kernel.UUID,
	assignedPrintshopID *kernel.UUID,
	revisionCount int,
	maxRevisions *int,
	designPrice kernel.Money,
	validationPrice kernel.Money,
	fixPrice kernel.Money,
	printPrice kernel.Money,
	totalPrice kernel.Money,
	trackingCode string,
	shippingAddress string,
	customerNotes string,
	adminNotes string,
	acceptedAt *time.Time,
	printedAt *time.Time,
	shippedAt *time.Time,
	deliveredAt *time.Time,
	cancelledAt *time.Time,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		productID.Validate(),
		plan.Validate(),
		status.Validate(),
		validationStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if quantity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order")
	}

	return &Order{
		id:                  id,
		customerID:          customerID,
		productID:           productID,
		plan:                plan,
		status:              status,
		quantity:            quantity,
		designFileURL:       designFileURL,
		validationRequested: validationRequested,
		validationStatus:    validationStatus,
		assignedDesignerID:  assignedDesignerID,
		assignedValidatorID: assignedValidatorID,
		assignedPrintshopID: assignedPrintshopID,
		revisionCount:       revisionCount,
		maxRevisions:        maxRevisions,
		designPrice:         designPrice,
		validationPrice:     validationPrice,
		fixPrice:            fixPrice,
		printPrice:          printPrice,
		totalPrice:          totalPrice,
		trackingCode:        trackingCode,
		shippingAddress:     shippingAddress,
		customerNotes:       customerNotes,
		adminNotes:          adminNotes,
		acceptedAt:          acceptedAt,
		printedAt:           printedAt,
		shippedAt:           shippedAt,
		deliveredAt:         deliveredAt,
		cancelledAt:         cancelledAt,
		version:             version,
		isConstructed:       true,
	}, nil
}

const maxQuantity = 1000000

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID             { return o.id }
func (o *Order) CustomerID() kernel.UUID     { return o.customerID }
func (o *Order) ProductID() kernel.UUID      { return o.productID }
func (o *Order) Plan() DesignPlan            { return o.plan }
func (o *Order) Status() Status              { return o.status }
func (o *Order) Quantity() int               { return o.quantity }
func (o *Order) DesignFileURL() string       { return o.designFileURL }
func (o *Order) ValidationRequested() bool   { return o.validationRequested }
func (o *Order) RevisionCount() int          { return o.revisionCount }
func (o *Order) MaxRevisions() *int          { return o.maxRevisions }
func (o *Order) DesignPrice() kernel.Money   { return o.designPrice }
func (o *Order) FixPrice() kernel.Money      { return o.fixPrice }
func (o *Order) PrintPrice() kernel.Money    { return o.printPrice }
func (o *Order) TotalPrice() kernel.Money    { return o.totalPrice }
func (o *Order) TrackingCode() string        { return o.trackingCode }
func (o *Order) ShippingAddress() string     { return o.shippingAddress }
func (o *Order) CustomerNotes() string       { return o.customerNotes }
func (o *Order) AdminNotes() string          { return o.adminNotes }
func (o *Order) AcceptedAt() *time.Time      { return o.acceptedAt }
func (o *Order) PrintedAt() *time.Time       { return o.printedAt }
func (o *Order) ShippedAt() *time.Time       { return o.shippedAt }
func (o *Order) DeliveredAt() *time.Time     { return o.deliveredAt }
func (o *Order) CancelledAt() *time.Time     { return o.cancelledAt }
func (o *Order) Version() int                { return o.version }
func (o *Order) Designer() *kernel.UUID      { return o.assignedDesignerID }
func (o *Order) AssignedValidator() *kernel.UUID { return o.assignedValidatorID }
func (o *Order) Printshop() *kernel.UUID     { return o.assignedPrintshopID }

// ValidationPrice returns the price of the requested validation pass.
func (o *Order) ValidationPrice() kernel.Money { return o.validationPrice }

// ValidationStatus returns the current state of the validation sub-cycle.
func (o *Order) ValidationStatus() ValidationStatus { return o.validationStatus }

// IsOwnedBy reports whether the given user is the order's customer.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.customerID.IsEqual(userID)
}

// UpdateDetails changes the order's shape while it is still malleable. Only
// PENDING and NEEDS_ACTION orders accept updates; once work has started, the
// shape is frozen. Nil fields are left untouched. Prices are immutable here.
func (o *Order) UpdateDetails(designFileURL, shippingAddress, customerNotes *string) error {
	if o.status != StatusPending && o.status != StatusNeedsAction {
		return errs.NewInvalidStateError("update", o.status.String())
	}

	if designFileURL != nil {
		if o.plan.RequiresDesignFile() && *designFileURL == "" {
			return errs.NewValueIsRequiredError("designFileUrl")
		}
		o.designFileURL = *designFileURL
	}
	if shippingAddress != nil {
		o.shippingAddress = *shippingAddress
	}
	if customerNotes != nil {
		o.customerNotes = *customerNotes
	}
	return nil
}

// SetAdminNotes replaces the staff-facing notes. Role gating happens in the
// command handler; the aggregate only refuses terminal orders.
func (o *Order) SetAdminNotes(notes string) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("set admin notes", o.status.String())
	}
	o.adminNotes = notes
	return nil
}

// Assign attaches a staff member to one of the order's slots. Assignment is
// allowed in any pre-terminal state and never changes the status by itself.
func (o *Order) Assign(role StaffRole, userID kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("assign", o.status.String())
	}

	switch role {
	case StaffDesigner:
		o.assignedDesignerID = &userID
	case StaffValidator:
		o.assignedValidatorID = &userID
	case StaffPrintshop:
		o.assignedPrintshopID = &userID
	}
	return nil
}

// AcceptByPrintshop moves a READY_FOR_PRINT order into PRINTING, recording the
// accepting print shop and the acceptance time. The status guard makes the
// acceptance time a set-exactly-once timestamp.
func (o *Order) AcceptByPrintshop(printshopID kernel.UUID, at time.Time) error {
	if err := printshopID.Validate(); err != nil {
		return err
	}
	if o.status != StatusReadyForPrint {
		return errs.NewInvalidStateError("accept by printshop", o.status.String())
	}

	o.assignedPrintshopID = &printshopID
	o.acceptedAt = &at
	o.status = StatusPrinting
	return nil
}

// Ship moves a PRINTING order to SHIPPED, recording the tracking code and the
// print/ship times.
func (o *Order) Ship(trackingCode string, at time.Time) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	if !o.status.CanTransitionTo(StatusShipped) {
		return errs.NewInvalidStateError("ship", o.status.String())
	}

	o.trackingCode = trackingCode
	if o.printedAt == nil {
		o.printedAt = &at
	}
	o.shippedAt = &at
	o.status = StatusShipped
	return nil
}

// Deliver moves a SHIPPED order to the terminal DELIVERED state.
func (o *Order) Deliver(at time.Time) error {
	if !o.status.CanTransitionTo(StatusDelivered) {
		return errs.NewInvalidStateError("deliver", o.status.String())
	}

	o.deliveredAt = &at
	o.status = StatusDelivered
	return nil
}

// MarkReadyForPrint advances the order to READY_FOR_PRINT once its gate has
// cleared: a design/print payment succeeded, a validation passed, or a fix was
// accepted. A PENDING order that still awaits validation never skips the gate.
func (o *Order) MarkReadyForPrint() error {
	if o.validationStatus == ValidationPending {
		return errs.NewInvalidStateError("mark ready for print", o.status.String())
	}
	if !o.status.CanTransitionTo(StatusReadyForPrint) {
		return errs.NewInvalidStateError("mark ready for print", o.status.String())
	}

	o.status = StatusReadyForPrint
	return nil
}

// Cancel moves the order to the terminal CANCELLED state. Orders already at
// the print shop or beyond (PRINTING, SHIPPED, DELIVERED) cannot be cancelled.
func (o *Order) Cancel(at time.Time) error {
	if !o.status.CanTransitionTo(StatusCancelled) {
		return errs.NewInvalidStateError("cancel", o.status.String())
	}

	o.cancelledAt = &at
	o.status = StatusCancelled
	return nil
}

// RequestValidation flags the order for human design review and parks it in
// AWAITING_VALIDATION. Requesting again while the review is pending is a
// no-op. A NEEDS_ACTION order may re-enter validation once the customer has
// reworked the design; the verdict resets to PENDING for the fresh pass.
func (o *Order) RequestValidation() error {
	if o.status == StatusAwaitingValidation {
		return nil
	}
	if !o.status.CanTransitionTo(StatusAwaitingValidation) {
		return errs.NewInvalidStateError("request validation", o.status.String())
	}

	o.validationRequested = true
	o.validationStatus = ValidationPending
	o.status = StatusAwaitingValidation
	return nil
}

// ApplyValidationReport records the outcome of a validation pass.
//
// PASSED sends the order to READY_FOR_PRINT. FAILED parks it in NEEDS_ACTION
// and prices the fix: the fix price is set from the report and folded into the
// total. Prices never decrease, so a later report cannot lower an already-set
// fix price.
func (o *Order) ApplyValidationReport(validatorID kernel.UUID, outcome ValidationStatus, fixCost kernel.Money) error {
	if err := validatorID.Validate(); err != nil {
		return err
	}
	if outcome != ValidationPassed && outcome != ValidationFailed {
		return errs.NewValueIsInvalidErrorWithCause("outcome",
			fmt.Errorf("%q is not a report outcome", outcome.String()))
	}
	if o.status != StatusAwaitingValidation {
		return errs.NewInvalidStateError("apply validation report", o.status.String())
	}

	o.assignedValidatorID = &validatorID

	if outcome == ValidationPassed {
		o.validationStatus = ValidationPassed
		o.status = StatusReadyForPrint
		return nil
	}

	if !fixCost.GreaterOrEqual(o.fixPrice) {
		return errs.NewValueIsInvalidErrorWithCause("fixCost",
			fmt.Errorf("fix cost %s is lower than the already-set fix price %s", fixCost, o.fixPrice))
	}
	increase, err := fixCost.Sub(o.fixPrice)
	if err != nil {
		return err
	}
	o.fixPrice = fixCost
	o.totalPrice = o.totalPrice.Add(increase)
	o.validationStatus = ValidationFailed
	o.status = StatusNeedsAction
	return nil
}

// MarkFixed records that a failed validation was resolved: the fix was paid
// (verified by the caller against the payment history) and the customer
// re-uploaded the design file. The order returns to READY_FOR_PRINT.
func (o *Order) MarkFixed(designFileURL string) error {
	if designFileURL == "" {
		return errs.NewValueIsRequiredError("designFileUrl")
	}
	if o.status != StatusNeedsAction || o.validationStatus != ValidationFailed {
		return errs.NewInvalidStateError("mark fixed", o.status.String())
	}

	o.designFileURL = designFileURL
	o.validationStatus = ValidationFixed
	o.status = StatusReadyForPrint
	return nil
}

// RequestRevision counts a customer-requested design change against the
// plan's revision allowance. A nil allowance is unlimited. Revisions can be
// requested while the design is being worked on or after a failed validation.
func (o *Order) RequestRevision() error {
	if o.status != StatusDesigning && o.status != StatusNeedsAction {
		return errs.NewInvalidStateError("request revision", o.status.String())
	}
	if o.maxRevisions != nil && o.revisionCount+1 > *o.maxRevisions {
		return errs.NewRevisionLimitExceededError(o.revisionCount+1, *o.maxRevisions)
	}

	o.revisionCount++
	return nil
}

// PriceFor returns the order's price field matching a payment purpose key
// (one of DESIGN, VALIDATION, FIX, PRINT). Used when a payment is initiated:
// the amount is snapshotted from the order at that moment.
func (o *Order) PriceFor(purpose string) (kernel.Money, error) {
	switch purpose {
	case "DESIGN":
		return o.designPrice, nil
	case "VALIDATION":
		return o.validationPrice, nil
	case "FIX":
		return o.fixPrice, nil
	case "PRINT":
		return o.printPrice, nil
	}
	return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("purpose",
		fmt.Errorf("%q has no matching price field", purpose))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	o.productID = id
	return nil
}

func (o *Order) setPlan(plan DesignPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	o.plan = plan
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.designPrice = pricing.Design
	o.validationPrice = pricing.Validation
	o.printPrice = pricing.Print
	o.totalPrice = pricing.Total
	o.maxRevisions = pricing.MaxRevisions
	return nil
}
