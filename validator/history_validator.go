package validator

import (
	"regexp"
	"sort"

	"stockdash/model"

	"github.com/Oudwins/zog"
)

// symbolPattern accepts Yahoo style tickers such as BRK-B, ^GSPC, EURUSD=X.
var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9.\-^=]{1,15}$`)

var HistoryShape = zog.Shape{
	"Symbol": zog.String().Required().Match(symbolPattern),
	"Range":  zog.String().Required().OneOf(model.YahooTimeRanges),
}

// ValidateHistoryInput returns one message per failing field, sorted by
// field. Nil means the input is valid.
func ValidateHistoryInput(input *model.HistoryInput) []string {
	issues := zog.Struct(HistoryShape).Validate(input)
	if len(issues) == 0 {
		return nil
	}

	var messages []string
	for field, list := range issues {
		if field == "$first" {
			continue
		}
		for _, issue := range list {
			messages = append(messages, field+": "+issue.Message)
		}
	}
	sort.Strings(messages)
	return messages
}
