package workflow

// State is a point in the transaction where the session waits for input.
type State int

const (
	StateGreeting State = iota
	StateOrdering
	StateOrderConfirm
	StateServing
	StateBillRequested
	StateMembershipChoice
	StateMembershipLogin
	StateEnrollmentChoice
	StateEnrollmentName
	StateEnrollmentPhone
	StatePaymentGate
	StatePaymentMethod
	StateCashPayment
	StateCardPayment
	StateCompletion
)

func (s State) String() string {
	switch s {
	case StateGreeting:
		return "greeting"
	case StateOrdering:
		return "ordering"
	case StateOrderConfirm:
		return "order_confirm"
	case StateServing:
		return "serving"
	case StateBillRequested:
		return "bill_requested"
	case StateMembershipChoice:
		return "membership_choice"
	case StateMembershipLogin:
		return "membership_login"
	case StateEnrollmentChoice:
		return "enrollment_choice"
	case StateEnrollmentName:
		return "enrollment_name"
	case StateEnrollmentPhone:
		return "enrollment_phone"
	case StatePaymentGate:
		return "payment_gate"
	case StatePaymentMethod:
		return "payment_method"
	case StateCashPayment:
		return "cash_payment"
	case StateCardPayment:
		return "card_payment"
	case StateCompletion:
		return "completion"
	default:
		return "unknown"
	}
}
