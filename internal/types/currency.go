package types

// CURRENCY_CODES_SYMBOLS is a map of 3 digit ISO currency codes to their symbols
var CURRENCY_CODES_SYMBOLS = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
	"mxn": "MX$",
	"ars": "AR$",
	"cop": "COL$",
	"clp": "CLP$",
	"pen": "S/",
	"brl": "R$",
	"cad": "CA$",
	"aud": "AU$",
	"inr": "₹",
	"jpy": "¥",
}

// GetCurrencySymbol returns the symbol for a given currency code
// if the code is not found, it returns the code itself
func GetCurrencySymbol(code string) string {
	if symbol, ok := CURRENCY_CODES_SYMBOLS[code]; ok {
		return symbol
	}
	return code
}
