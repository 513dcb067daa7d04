package domain

// CountryRecord is one entry of the country reference dataset.
type CountryRecord struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currency_code"`
	CurrencyName string `json:"currency_name"`
}

// CountryLookup resolves a country code to its reference record. The
// reference data store implements it.
type CountryLookup interface {
	Get(code string) (CountryRecord, bool)
}

// CountryValidator checks raw country codes against the reference data.
// The zero value rejects every code.
type CountryValidator struct {
	lookup CountryLookup
}

// NewCountryValidator returns a validator backed by lookup.
func NewCountryValidator(lookup CountryLookup) CountryValidator {
	return CountryValidator{lookup: lookup}
}

// Validate returns the record whose code matches raw exactly (case
// sensitive). It fails with KindInvalidCountryCode carrying raw otherwise.
func (v CountryValidator) Validate(raw string) (CountryRecord, error) {
	return v.validate("country", raw)
}

func (v CountryValidator) validate(field, raw string) (CountryRecord, error) {
	if v.lookup == nil {
		return CountryRecord{}, invalidCountry(field, raw)
	}
	rec, ok := v.lookup.Get(raw)
	if !ok {
		return CountryRecord{}, invalidCountry(field, raw)
	}
	return rec, nil
}
