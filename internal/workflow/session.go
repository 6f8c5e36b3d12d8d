// Package workflow drives one restaurant transaction from greeting to
// payment as an explicit state machine.
//
// A Session is stepped one input line at a time with Step, which returns the
// next state and the lines to show. It never reads or writes on its own, so
// it can be driven by a console (see Run), a socket or a test.
package workflow

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/diner/internal/catalog"
	"github.com/mmynk/diner/internal/console"
	"github.com/mmynk/diner/internal/ledger"
	"github.com/mmynk/diner/internal/membership"
	"github.com/mmynk/diner/internal/metrics"
	"github.com/mmynk/diner/internal/models"
	"github.com/mmynk/diner/internal/money"
	"github.com/mmynk/diner/internal/payment"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInputExhausted  = errors.New("input exhausted")
	ErrSessionComplete = errors.New("session already complete")
)

// Config holds the billing rules for a session.
type Config struct {
	// Discount multiplies a member's bill.
	Discount decimal.Decimal

	// ExactTender completes a cash payment at paid >= due instead of paid > due.
	ExactTender bool
}

// DefaultConfig is 15% off for members and strict cash completion.
func DefaultConfig() Config {
	return Config{Discount: decimal.RequireFromString("0.85")}
}

// Option configures a Session.
type Option func(*Session)

// WithMetrics records session counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) {
		s.metrics = m
	}
}

// Session is a single customer's transaction.
type Session struct {
	cfg     Config
	menu    *catalog.Catalog
	members *membership.Directory
	ledger  *ledger.Ledger
	metrics *metrics.Metrics

	state State

	// subtotal is computed once, when the bill is first called.
	billed   bool
	subtotal decimal.Decimal

	discounted      bool
	discountedTotal decimal.Decimal
	memberID        string
	enrollName      string

	method models.PaymentMethod
	cash   *payment.CashReconciler
	card   *payment.Terminal
}

// New starts a session in the greeting state.
func New(menu *catalog.Catalog, members *membership.Directory, cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		menu:    menu,
		members: members,
		ledger:  ledger.New(menu),
		state:   StateGreeting,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the state the session is waiting in.
func (s *Session) State() State {
	return s.state
}

// Discounted reports whether a membership discount was applied.
func (s *Session) Discounted() bool {
	return s.discounted
}

// Ledger exposes the session's order for inspection.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// Subtotal returns the undiscounted bill. It is zero until the bill is called.
func (s *Session) Subtotal() decimal.Decimal {
	return s.subtotal
}

// Due returns the amount the customer must pay.
func (s *Session) Due() decimal.Decimal {
	if s.discounted {
		return s.discountedTotal
	}
	return s.subtotal
}

// Start returns the opening banner and menu.
func (s *Session) Start() []string {
	lines := []string{msgWelcome, ""}
	lines = append(lines, console.Menu(s.menu.Items())...)
	return append(lines, msgCallWaiter)
}

// Prompt returns the inline prefix shown while waiting for input.
func (s *Session) Prompt() string {
	switch s.state {
	case StateServing:
		return promptEat
	case StateCashPayment:
		return promptCash
	case StateCardPayment:
		switch s.card.Stage() {
		case payment.StageCardNumber:
			return promptCardNumber
		case payment.StageExpiry:
			return promptExpiry
		case payment.StageSecurityCode:
			return promptSecurityCode
		}
	case StateCompletion:
		return ""
	}
	return promptCustomer
}

// Step feeds one line of input to the session and returns the new state
// and the lines to display. Unrecognized or invalid input leaves the state
// unchanged and returns the re-prompt. The only error is ErrSessionComplete.
func (s *Session) Step(line string) (State, []string, error) {
	if s.state == StateCompletion {
		return s.state, nil, ErrSessionComplete
	}

	input := strings.TrimSpace(line)
	from := s.state
	out, err := s.dispatch(input)
	if err != nil {
		s.metrics.InputRejected(from.String())
		slog.Debug("Input rejected", "state", from, "error", err)
	} else if s.state != from {
		slog.Debug("State changed", "from", from, "to", s.state)
	}
	return s.state, out, nil
}

func (s *Session) dispatch(input string) ([]string, error) {
	switch s.state {
	case StateGreeting:
		return s.greet(input)
	case StateOrdering:
		return s.order(input)
	case StateOrderConfirm:
		return s.confirmOrder(input)
	case StateServing:
		return s.serve(input)
	case StateBillRequested:
		return s.callBill(input)
	case StateMembershipChoice:
		return s.chooseMembership(input)
	case StateMembershipLogin:
		return s.login(input)
	case StateEnrollmentChoice:
		return s.chooseEnrollment(input)
	case StateEnrollmentName:
		return s.takeName(input)
	case StateEnrollmentPhone:
		return s.takePhone(input)
	case StatePaymentGate:
		return s.payGate(input)
	case StatePaymentMethod:
		return s.chooseMethod(input)
	case StateCashPayment:
		return s.tenderCash(input)
	case StateCardPayment:
		return s.enterCard(input)
	}
	return nil, fmt.Errorf("unhandled state %s", s.state)
}

// yesNo parses a yes/no answer. ok is false for anything else.
func yesNo(input string) (yes bool, ok bool) {
	switch {
	case strings.EqualFold(input, "yes"):
		return true, true
	case strings.EqualFold(input, "no"):
		return false, true
	}
	return false, false
}

func unknown(input string) error {
	return fmt.Errorf("%w: %q", ErrUnknownCommand, input)
}

func (s *Session) greet(input string) ([]string, error) {
	if !strings.Contains(strings.ToLower(input), "waiter") {
		return []string{msgGreetingRetry}, unknown(input)
	}
	s.state = StateOrdering
	return []string{msgWaiterHello, msgTakeOrder}, nil
}

// order takes one dish name. Answering "yes" before any dish is on the
// ledger closes an empty order.
func (s *Session) order(input string) ([]string, error) {
	if s.ledger.Len() == 0 {
		if yes, ok := yesNo(input); ok && yes {
			if _, onMenu := s.menu.Lookup(input); !onMenu {
				return s.orderPlaced(), nil
			}
		}
	}

	entry, err := s.ledger.Add(input)
	if err != nil {
		return []string{msgNotOnMenu}, err
	}
	slog.Debug("Item ordered", "item", entry.Key, "price", entry.Price.String())
	s.state = StateOrderConfirm
	return []string{msgIsThatAll}, nil
}

func (s *Session) confirmOrder(input string) ([]string, error) {
	yes, ok := yesNo(input)
	if !ok {
		return []string{msgYesOrNo}, unknown(input)
	}
	if !yes {
		s.state = StateOrdering
		return []string{msgOrderMore}, nil
	}
	return s.orderPlaced(), nil
}

func (s *Session) orderPlaced() []string {
	s.state = StateServing
	lines := []string{msgOrderPlaced, "", msgServed}
	for i, e := range s.ledger.Entries() {
		lines = append(lines, fmt.Sprintf("    %d. %s", i+1, e.Name))
	}
	return lines
}

func (s *Session) serve(input string) ([]string, error) {
	if !strings.EqualFold(input, "EAT") {
		return nil, unknown(input)
	}
	s.state = StateBillRequested
	return []string{msgEating, "", msgCallBill}, nil
}

func (s *Session) callBill(input string) ([]string, error) {
	if !strings.EqualFold(input, "bill") {
		return []string{msgBillRetry}, unknown(input)
	}
	if !s.billed {
		s.subtotal = s.ledger.Total()
		s.billed = true
	}
	s.state = StateMembershipChoice

	lines := []string{msgHereIsBill}
	lines = append(lines, console.Bill(s.ledger.Entries(), s.subtotal)...)
	return append(lines, msgHaveMembership), nil
}

func (s *Session) chooseMembership(input string) ([]string, error) {
	yes, ok := yesNo(input)
	if !ok {
		return []string{msgDidNotCatch, msgHaveMembership}, unknown(input)
	}
	if yes {
		s.state = StateMembershipLogin
		return []string{msgAskMemberID}, nil
	}
	s.state = StateEnrollmentChoice
	return []string{msgWantMembership}, nil
}

func (s *Session) login(input string) ([]string, error) {
	member, err := s.members.RecordVisit(input)
	if err != nil {
		return []string{msgUnknownMember}, err
	}
	s.memberID = member.ID
	s.metrics.MemberLogin()
	slog.Info("Member logged in", "member_id", member.ID, "frequency", member.Frequency)

	lines := []string{
		fmt.Sprintf("WAITER: Well Hello %s! Good to have you with us for %d times!", member.Name, member.Frequency),
		msgLoginDiscount,
	}
	lines = append(lines, s.applyDiscount()...)
	return append(lines, msgReadyToPay), nil
}

func (s *Session) chooseEnrollment(input string) ([]string, error) {
	yes, ok := yesNo(input)
	if !ok {
		return []string{msgEnrollRetry}, unknown(input)
	}
	if yes {
		s.state = StateEnrollmentName
		return []string{msgAskName}, nil
	}
	s.state = StatePaymentGate
	return []string{msgNoMembership, msgReadyToPay}, nil
}

func (s *Session) takeName(input string) ([]string, error) {
	s.enrollName = input
	s.state = StateEnrollmentPhone
	return []string{msgAskPhone}, nil
}

func (s *Session) takePhone(input string) ([]string, error) {
	if err := membership.ValidatePhone(input); err != nil {
		return []string{msgInvalidPhone}, err
	}

	member, err := s.members.Enroll(s.enrollName, input)
	if err != nil {
		slog.Warn("Enrollment failed", "error", err)
		s.state = StatePaymentGate
		return []string{msgEnrollFailed, msgReadyToPay}, nil
	}
	s.memberID = member.ID
	s.metrics.MemberEnrolled()
	slog.Info("Member enrolled", "member_id", member.ID)

	lines := []string{
		"WAITER: Thank you for joining our restaurant membership. Your Membership ID is: " + member.ID,
		msgEnrollDiscount,
	}
	lines = append(lines, s.applyDiscount()...)
	return append(lines, msgReadyToPay), nil
}

// applyDiscount rebases the ledger once, prints the new bill and moves on
// to payment.
func (s *Session) applyDiscount() []string {
	s.ledger.ApplyDiscount(s.cfg.Discount)
	s.discounted = true
	s.discountedTotal = s.ledger.Total()
	s.state = StatePaymentGate
	return console.Bill(s.ledger.Entries(), s.discountedTotal)
}

func (s *Session) payGate(input string) ([]string, error) {
	if !strings.EqualFold(input, "pay") {
		return []string{msgPayRetry}, unknown(input)
	}
	s.state = StatePaymentMethod
	return []string{msgCashOrCard}, nil
}

func (s *Session) chooseMethod(input string) ([]string, error) {
	switch strings.ToLower(input) {
	case "cash":
		s.method = models.PaymentCash
		s.cash = payment.NewCashReconciler(s.Due(), s.cfg.ExactTender)
		if s.cash.Done() {
			return s.settleCash(), nil
		}
		s.state = StateCashPayment
		return s.cashStatus(), nil
	case "card":
		s.method = models.PaymentCard
		s.card = payment.NewTerminal()
		s.state = StateCardPayment
		return []string{msgFetchMachine, msgEnterCard}, nil
	}
	return []string{msgMethodRetry}, unknown(input)
}

func (s *Session) cashStatus() []string {
	return []string{
		msgEnterNotes,
		fmt.Sprintf("NARRATOR: You have paid = %s, remaining = %s.",
			money.Format(s.cash.Paid()), money.Format(s.cash.Remaining())),
		notesLine(),
	}
}

func (s *Session) tenderCash(input string) ([]string, error) {
	var lines []string
	_, err := s.cash.Tender(input)
	switch {
	case errors.Is(err, payment.ErrInvalidNote):
		lines = append(lines, msgNoteNotListed)
	case err != nil:
		lines = append(lines, msgInvalidNote)
	}
	if s.cash.Done() {
		return s.settleCash(), nil
	}
	return append(lines, s.cashStatus()...), err
}

func (s *Session) settleCash() []string {
	s.state = StateCompletion
	paid, due, change := s.cash.Paid(), s.cash.Due(), s.cash.Change()
	if change.IsPositive() {
		return []string{fmt.Sprintf("WAITER: You have paid $%s for $%s. Here is a change of $%s.",
			money.Format(paid), money.Format(due), money.Format(change))}
	}
	return []string{fmt.Sprintf("WAITER: You have paid $%s. Thank you.", money.Format(paid))}
}

func (s *Session) enterCard(input string) ([]string, error) {
	if s.card.Stage() == payment.StageConfirm {
		yes, ok := yesNo(input)
		if !ok {
			return []string{msgProceedRetry}, unknown(input)
		}
		if err := s.card.Confirm(yes); err != nil {
			return nil, err
		}
		if !yes {
			return []string{msgEnterCard}, nil
		}
		s.state = StateCompletion
		return []string{msgCardApproved}, nil
	}

	if err := s.card.Enter(input); err != nil {
		var fe *payment.FormatError
		if errors.As(err, &fe) {
			return []string{cardError(fe)}, err
		}
		return nil, err
	}

	switch s.card.Stage() {
	case payment.StageExpiry:
		return []string{msgEnterExpiry}, nil
	case payment.StageSecurityCode:
		return []string{msgEnterSecurity}, nil
	default:
		return []string{
			fmt.Sprintf("MACHINE: You are paying with card number %q with expiry date %q.",
				payment.FormatCardNumber(s.card.Number()), s.card.Expiry()),
			msgProceed,
		}, nil
	}
}
