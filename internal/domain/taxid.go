package domain

var taxIDWeights = [9]int{6, 5, 7, 2, 3, 4, 5, 6, 7}

// ValidTaxID checks a Polish NIP: ten digits where the weighted sum of the
// first nine, mod 11, equals the last digit. A remainder of 10 never matches.
func ValidTaxID(nip string) bool {
	if len(nip) != 10 {
		return false
	}
	sum := 0
	for i := 0; i < 10; i++ {
		if nip[i] < '0' || nip[i] > '9' {
			return false
		}
		if i < 9 {
			sum += int(nip[i]-'0') * taxIDWeights[i]
		}
	}
	m := sum % 11
	if m == 10 {
		return false
	}
	return m == int(nip[9]-'0')
}
