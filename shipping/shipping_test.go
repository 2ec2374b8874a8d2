package shipping

import (
	"testing"

	"github.com/JamesBarr456/tienda-api/errs"
)

func TestRateForKnownLocalities(t *testing.T) {
	tests := []struct {
		locality string
		tier     Tier
		want     string
	}{
		{"corrientes-capital", TierStandard, "2000"},
		{"corrientes-capital", TierExpress, "2500"},
		{"bella-vista", TierStandard, "2400"},
		{"resistencia-chaco", TierExpress, "4000"},
		{"paso-patria", TierStandard, "2700"},
	}

	for _, tc := range tests {
		rate, err := RateFor(tc.locality, tc.tier)
		if err != nil {
			t.Errorf("%s/%s: %v", tc.locality, tc.tier, err)
			continue
		}
		if got := rate.StringFixed(0); got != tc.want {
			t.Errorf("%s/%s: expected %s, got %s", tc.locality, tc.tier, tc.want, got)
		}
	}
}

func TestRateForUnknownLocality(t *testing.T) {
	_, err := RateFor("narnia", TierStandard)
	if !errs.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestRateForUnknownTier(t *testing.T) {
	_, err := RateFor("corrientes-capital", "overnight")
	if !errs.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestLocalitiesKeepDisplayOrder(t *testing.T) {
	all := Localities()
	if len(all) != 8 {
		t.Fatalf("expected 8 localities, got %d", len(all))
	}
	if all[0].Key != "corrientes-capital" {
		t.Errorf("expected corrientes-capital first, got %q", all[0].Key)
	}
	if all[len(all)-1].Key != "bella-vista" {
		t.Errorf("expected bella-vista last, got %q", all[len(all)-1].Key)
	}

	for _, l := range all {
		if l.Standard.Rate.GreaterThanOrEqual(l.Express.Rate) {
			t.Errorf("%s: standard rate %s not below express %s",
				l.Key, l.Standard.Rate, l.Express.Rate)
		}
	}
}
