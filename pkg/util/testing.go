package util

import (
	"reflect"
	"testing"
)

// Words is a fixed list of 25 words used as keys throughout the tests
var Words = []string{
	"reproducibility",
	"eruct",
	"acids",
	"flyspecks",
	"driveshafts",
	"volcanically",
	"discouraging",
	"acapnia",
	"phenazines",
	"hoarser",
	"abusing",
	"samara",
	"thromboses",
	"impolite",
	"drivennesses",
	"tenancy",
	"counterreaction",
	"kilted",
	"linty",
	"kistful",
	"biomarkers",
	"infusiblenesses",
	"capsulate",
	"reflowering",
	"heterophyllies",
}

func AssertExpected(t testing.TB, expected, got interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("error, expected: %v, got: %v\n", expected, got)
		return false
	}
	return true
}

func AssertTrue(t testing.TB, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, true, got)
}

func AssertFalse(t testing.TB, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, false, got)
}

func AssertNoError(t testing.TB, err error) bool {
	t.Helper()
	if err != nil {
		t.Errorf("error, expected no error, got: %v\n", err)
		return false
	}
	return true
}

func AssertError(t testing.TB, err error) bool {
	t.Helper()
	if err == nil {
		t.Errorf("error, expected an error, got nil\n")
		return false
	}
	return true
}

// AssertSameElements checks that expected and got hold the same
// elements, ignoring order
func AssertSameElements[T comparable](t testing.TB, expected, got []T) bool {
	t.Helper()
	if len(expected) != len(got) {
		t.Errorf("error, expected %d elements: %v, got %d: %v\n", len(expected), expected, len(got), got)
		return false
	}
	seen := make(map[T]int, len(expected))
	for _, e := range expected {
		seen[e]++
	}
	for _, g := range got {
		seen[g]--
	}
	for e, n := range seen {
		if n != 0 {
			t.Errorf("error, element %v count off by %d; expected: %v, got: %v\n", e, n, expected, got)
			return false
		}
	}
	return true
}
