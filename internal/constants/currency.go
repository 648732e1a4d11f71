package constants

// CurrencySymbols for display formatting. Home currency is TRY.
var CurrencySymbols = map[string]string{
	"TRY": "₺",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

const HomeCurrency = "TRY"
