// Package shipping holds the fixed delivery rate table for the
// localities the store ships to. Rates are informational at checkout;
// the courier fee is settled separately on delivery.
package shipping

import (
	"github.com/JamesBarr456/tienda-api/errs"
	"github.com/shopspring/decimal"
)

type Tier string

const (
	TierStandard Tier = "standard"
	TierExpress  Tier = "express"
)

// Pickup details shown when the customer chooses to collect in store.
const (
	PickupAddress = "Av. Pedro Ferré 1802, W3408MRO, Corrientes"
	PickupPhone   = "0379 470-1723"
)

type Option struct {
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

type Locality struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Standard Option `json:"standard"`
	Express  Option `json:"express"`
}

var localities = []Locality{
	locality("corrientes-capital", "Corrientes, Capital", 2000, 2500),
	locality("san-luis-palmas", "San Luis del Palmas", 2500, 3000),
	locality("itaibate", "Itaibate", 3000, 3500),
	locality("resistencia-chaco", "Resistencia-Chaco", 3500, 4000),
	locality("paso-patria", "Paso de la Patria", 2700, 3200),
	locality("empedrado", "Empedrado", 2300, 2800),
	locality("el-sombrero", "El Sombrero", 2800, 3300),
	locality("bella-vista", "Bella Vista", 2400, 2900),
}

var byKey = func() map[string]Locality {
	m := make(map[string]Locality, len(localities))
	for _, l := range localities {
		m[l.Key] = l
	}
	return m
}()

func locality(key, name string, standard, express int64) Locality {
	return Locality{
		Key:      key,
		Name:     name,
		Standard: Option{Name: "Minimo", Rate: decimal.NewFromInt(standard)},
		Express:  Option{Name: "Maximo", Rate: decimal.NewFromInt(express)},
	}
}

// Localities returns the table in display order.
func Localities() []Locality {
	out := make([]Locality, len(localities))
	copy(out, localities)
	return out
}

// Info returns the locality entry for a key.
func Info(key string) (Locality, error) {
	l, ok := byKey[key]
	if !ok {
		return Locality{}, errs.NotFound("locality", key)
	}
	return l, nil
}

// OptionFor returns the named rate option for a locality and tier.
func OptionFor(key string, tier Tier) (Option, error) {
	l, err := Info(key)
	if err != nil {
		return Option{}, err
	}
	switch tier {
	case TierStandard:
		return l.Standard, nil
	case TierExpress:
		return l.Express, nil
	default:
		return Option{}, errs.NotFound("shipping tier", string(tier))
	}
}

// RateFor returns the fixed rate for a locality and tier.
func RateFor(key string, tier Tier) (decimal.Decimal, error) {
	opt, err := OptionFor(key, tier)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return opt.Rate, nil
}
