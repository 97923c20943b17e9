package schema

import (
	"testing"

	"github.com/bollettelab/bollette-tracker/constants"
)

func TestValidBillType(t *testing.T) {
	for _, s := range constants.BillTypesAsStrings() {
		if err := validBillType(s); err != nil {
			t.Errorf("validBillType(%q) = %v, want nil", s, err)
		}
	}
	for _, s := range []string{"", "luce", "ACQUA", "metano"} {
		if err := validBillType(s); err == nil {
			t.Errorf("validBillType(%q) accepted a non-canonical value", s)
		}
	}
}

func TestPhonePattern(t *testing.T) {
	if !rePhone.MatchString("+39 333 1234567") {
		t.Error("rePhone rejected a valid number")
	}
	if rePhone.MatchString("not-a-phone") {
		t.Error("rePhone accepted garbage")
	}
}
