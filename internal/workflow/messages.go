package workflow

import (
	"fmt"
	"strings"

	"github.com/mmynk/diner/internal/payment"
)

const (
	promptCustomer     = "CUSTOMER: "
	promptEat          = `TO EAT INPUT "EAT": `
	promptCash         = "ENTER CASH (per note): "
	promptCardNumber   = "    CARD NUMBER: "
	promptExpiry       = "    EXPIRY: "
	promptSecurityCode = "    SECURITY KEY: "
)

const (
	msgWelcome        = "WELCOME TO THE RESTAURANT! HERE IS THE MENU!"
	msgCallWaiter     = "NARRATOR: If you are ready to order, just call the waiter (input waiter)."
	msgGreetingRetry  = "I am sorry I don't understand, but if you are ready just yell for the waiter! (input waiter)."
	msgWaiterHello    = "WAITER: Hi, I will be serving you today."
	msgTakeOrder      = "WAITER: What can I get for you?"
	msgNotOnMenu      = "WAITER: Sorry we do not have that in our menu."
	msgIsThatAll      = "WAITER: Noted, is that all? (yes/no)"
	msgOrderPlaced    = "WAITER: Thank you, please wait for your order while we prepare it for you."
	msgOrderMore      = "WAITER: Alright then. What can I get for you?"
	msgYesOrNo        = "WAITER: I am sorry I do not understand. Is that a yes or no?"
	msgServed         = "WAITER: Sorry for the wait, here is your food!"
	msgEating         = "CUSTOMER: *eats food* *yum* (IMAGINE YOU ARE EATING GOOD FOOD!)."
	msgCallBill       = `NARRATOR: If you are done, just call the bill by entering "bill". Thank you.`
	msgBillRetry      = `NARRATOR: Sorry I did not get what you meant. To call the bill, just enter "bill". Thank you.`
	msgHereIsBill     = "WAITER: Here is your bill. I hope you have enjoyed the food!"
	msgHaveMembership = "WAITER: Do you have a membership with us? (yes/no)"
	msgDidNotCatch    = "WAITER: I am sorry I did not catch that."
	msgAskMemberID    = "WAITER: Could you please tell me your membership number?"
	msgUnknownMember  = "WAITER: I am sorry, I don't think you are in our membership list. Feel free to retry by entering your membership number."
	msgLoginDiscount  = "WAITER: I have changed your bill with your membership discount."
	msgWantMembership = "WAITER: Would you want a membership with us? (yes/no)"
	msgEnrollRetry    = "WAITER: I am sorry I did not catch that. Would you want a membership with us? (yes/no)"
	msgNoMembership   = "WAITER: Alright then, no problem."
	msgAskName        = "WAITER: Please enter your name."
	msgAskPhone       = "WAITER: Please enter your phone number as well."
	msgInvalidPhone   = "WAITER: Please enter a valid phone number."
	msgEnrollFailed   = "WAITER: I am sorry, we cannot issue a new membership right now."
	msgEnrollDiscount = "WAITER: We have provided a discount for you. This is the new bill."
	msgReadyToPay     = `NARRATOR: Whenever you are ready to pay, please input "pay"`
	msgPayRetry       = `NARRATOR: Just input "pay" whenever you are ready.`
	msgCashOrCard     = "WAITER: Cash or card? (cash/card)"
	msgMethodRetry    = "WAITER: Sorry, could you please pay with cash or card? (cash/card)"
	msgEnterNotes     = "NARRATOR: Enter the notes to pay. (without the dollar sign)"
	msgInvalidNote    = "WAITER: Please enter a valid cash note."
	msgNoteNotListed  = "NARRATOR: Please enter a valid cash note in the provided list."
	msgFetchMachine   = "WAITER: Wait for a sec, I will get the debit machine."
	msgEnterCard      = "MACHINE: Please enter your card number. (Without spaces)"
	msgEnterExpiry    = "MACHINE: Please enter your card's expiry (month year; eg. 1221 for December 2021)."
	msgEnterSecurity  = "MACHINE: Please enter your security key (eg: 123)."
	msgProceed        = "MACHINE: Do you want to proceed with the payment? (yes/no)"
	msgProceedRetry   = "MACHINE: *ERROR* Please re-enter (yes/no) to proceed with payment."
	msgCardApproved   = "MACHINE: Payment successful."
	msgThankYou       = "WAITER: Thank you for eating at this restaurant! Hope you will come by again!"
	msgEnd            = "*** END OF SIMULATION ***"
)

// notesLine lists the accepted denominations, e.g. "NOTES: $1, $2, $5."
func notesLine() string {
	notes := make([]string, len(payment.Denominations))
	for i, d := range payment.Denominations {
		notes[i] = fmt.Sprintf("$%d", d)
	}
	return "NOTES: " + strings.Join(notes, ", ") + "."
}

// cardError maps a rejected card field to the terminal's error line.
func cardError(fe *payment.FormatError) string {
	switch fe.Field {
	case payment.FieldCardNumber:
		if fe.WrongLength {
			return "MACHINE: *ERROR* Card number must be 16 numbers long. Please re-enter."
		}
		return "MACHINE: *ERROR* Please enter a valid card number."
	case payment.FieldExpiry:
		if fe.WrongLength {
			return "MACHINE: *ERROR* Expiry date must be entered with this format -> 1221 for Dec 2021. Please re-enter."
		}
		return "MACHINE: *ERROR* Please enter your card's expiry."
	default:
		if fe.WrongLength {
			return "MACHINE: *ERROR* Security key must be only 3 numbers long. Please re-enter."
		}
		return "MACHINE: *ERROR* Please enter your security key correctly."
	}
}
