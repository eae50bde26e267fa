package filter

import "github.com/s0up4200/swire/signalwire"

// Apply returns the numbers matching f, preserving order. A nil filter
// matches everything.
func Apply(f Filter, numbers []Number) []Number {
	if f == nil {
		return numbers
	}

	matched := make([]Number, 0, len(numbers))
	for _, n := range numbers {
		if f.Evaluate(n) {
			matched = append(matched, n)
		}
	}
	return matched
}

// OwnedNumbers converts a relay REST listing page for filtering
func OwnedNumbers(resp *signalwire.OwnedPhoneNumbersResponse) []Number {
	numbers := make([]Number, 0, len(resp.Data))
	for _, n := range resp.Data {
		numbers = append(numbers, FromOwned(n))
	}
	return numbers
}

// AvailableNumbers converts a search result for filtering
func AvailableNumbers(resp *signalwire.AvailablePhoneNumbersResponse) []Number {
	numbers := make([]Number, 0, len(resp.AvailablePhoneNumbers))
	for _, n := range resp.AvailablePhoneNumbers {
		numbers = append(numbers, FromAvailable(n))
	}
	return numbers
}

// SubprojectNumbers converts a subproject listing page for filtering
func SubprojectNumbers(resp *signalwire.SubprojectPhoneNumbersResponse) []Number {
	numbers := make([]Number, 0, len(resp.IncomingPhoneNumbers))
	for _, n := range resp.IncomingPhoneNumbers {
		numbers = append(numbers, FromSubproject(n))
	}
	return numbers
}
