package model

// FmpGainer is one row of the Financial Modeling Prep gainers endpoint.
// ChangePercent arrives either as a number or as a string such as "+4.52%".
type FmpGainer struct {
	Symbol        string  `mapstructure:"symbol"`
	Price         float64 `mapstructure:"price"`
	ChangePercent float64 `mapstructure:"changesPercentage"`
	CompanyName   string  `mapstructure:"name"`
}

// FmpArticle is one entry of the "content" list of the articles endpoint.
type FmpArticle struct {
	Title          string `mapstructure:"title"`
	RelatedTickers string `mapstructure:"tickers"`
	Link           string `mapstructure:"link"`
	Date           string `mapstructure:"date"`
}
