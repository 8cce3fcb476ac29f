package crt

// ArrayChaining - Separate chaining where each bucket is an exactly sized array that is reallocated on every change.
// Tables using this technique never grow.
const ArrayChaining int = 1

// ListChaining - Separate chaining where each bucket is a dynamic list
const ListChaining int = 2

// LinkedChaining - Separate chaining where each bucket is a singly linked list of nodes kept in an index based arena
const LinkedChaining int = 3

// LinearProbing - Open addressing probing with the sequence i0, i0+1, i0+2, ... (mod table size)
const LinearProbing int = 4

// QuadraticProbing - Open addressing probing with the sequence i0, i0+1², i0+2², ... (mod table size)
const QuadraticProbing int = 5

// Techniques - All supported collision resolution techniques in the order they were introduced
var Techniques = []int{ArrayChaining, ListChaining, LinkedChaining, LinearProbing, QuadraticProbing}

// Name - Returns a human-readable name of a collision resolution technique
func Name(technique int) string {
	switch technique {
	case ArrayChaining:
		return "ArrayChaining"
	case ListChaining:
		return "ListChaining"
	case LinkedChaining:
		return "LinkedChaining"
	case LinearProbing:
		return "LinearProbing"
	case QuadraticProbing:
		return "QuadraticProbing"
	default:
		return "Unknown"
	}
}

// IsValid - Returns true if technique is one of the supported collision resolution techniques
func IsValid(technique int) bool {
	return technique >= ArrayChaining && technique <= QuadraticProbing
}

// IsOpenAddressing - Returns true if technique stores entries directly in a flat slot array
func IsOpenAddressing(technique int) bool {
	return technique == LinearProbing || technique == QuadraticProbing
}
