package payment

// Stage is the card terminal's current prompt.
type Stage int

const (
	StageCardNumber Stage = iota
	StageExpiry
	StageSecurityCode
	StageConfirm
	StageApproved
)

func (s Stage) String() string {
	switch s {
	case StageCardNumber:
		return "card_number"
	case StageExpiry:
		return "expiry"
	case StageSecurityCode:
		return "security_code"
	case StageConfirm:
		return "confirm"
	case StageApproved:
		return "approved"
	default:
		return "unknown"
	}
}

// Terminal captures card details one field at a time, then asks for
// confirmation. Declining restarts the capture from the card number.
// Nothing is sent anywhere: the terminal only checks the shape of input.
type Terminal struct {
	stage  Stage
	number string
	expiry string
}

// NewTerminal returns a terminal waiting for a card number.
func NewTerminal() *Terminal {
	return &Terminal{stage: StageCardNumber}
}

// Stage returns the field the terminal is waiting for.
func (t *Terminal) Stage() Stage {
	return t.stage
}

// Number returns the captured card number.
func (t *Terminal) Number() string {
	return t.number
}

// Expiry returns the captured expiry.
func (t *Terminal) Expiry() string {
	return t.expiry
}

// Enter submits the value for the current field and advances on success.
// The security code is validated but never retained.
func (t *Terminal) Enter(value string) error {
	switch t.stage {
	case StageCardNumber:
		if err := ValidateCardNumber(value); err != nil {
			return err
		}
		t.number = value
		t.stage = StageExpiry
	case StageExpiry:
		if err := ValidateExpiry(value); err != nil {
			return err
		}
		t.expiry = value
		t.stage = StageSecurityCode
	case StageSecurityCode:
		if err := ValidateSecurityCode(value); err != nil {
			return err
		}
		t.stage = StageConfirm
	default:
		return ErrOutOfSequence
	}
	return nil
}

// Confirm approves the payment or restarts the capture.
// The amount is not re-checked on approval.
func (t *Terminal) Confirm(proceed bool) error {
	if t.stage != StageConfirm {
		return ErrOutOfSequence
	}
	if proceed {
		t.stage = StageApproved
		return nil
	}
	*t = Terminal{stage: StageCardNumber}
	return nil
}

// Approved reports whether the customer confirmed the payment.
func (t *Terminal) Approved() bool {
	return t.stage == StageApproved
}
