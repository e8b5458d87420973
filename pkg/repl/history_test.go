package repl

import (
	"errors"
	"testing"
)

func TestHistory(t *testing.T) {
	h := History{}

	if h.Len() != 0 {
		t.Error("wanted an empty history, got", h.Len())
	}

	h.Add("2+3", 5, nil)
	h.Add("10/0", 0, errors.New("division by zero"))

	if h.Len() != 2 {
		t.Error("wanted 2 entries, got", h.Len())
	}

	values := h.Values()
	if values[0][1] != "2+3" || values[0][2] != "5" {
		t.Error("wanted 2+3 = 5, got", values[0])
	}
	if values[1][2] != "division by zero" {
		t.Error("wanted the error message, got", values[1][2])
	}
}

func TestHistoryGroupsLargeValues(t *testing.T) {
	h := History{}
	h.Add("1000000*2", 2000000, nil)

	if got := h.Values()[0][2]; got != "2,000,000" {
		t.Error("wanted 2,000,000 got", got)
	}
}
