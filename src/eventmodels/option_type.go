package eventmodels

import (
	"fmt"
	"strings"
)

type OptionType string

func (o OptionType) Validate() error {
	if o != Call && o != Put {
		return fmt.Errorf("OptionType: Validate: invalid option type: %s", o)
	}

	return nil
}

// NewOptionType trims the upstream kind code. The result is not validated.
func NewOptionType(code string) OptionType {
	return OptionType(strings.TrimSpace(code))
}

const (
	Call OptionType = "CE"
	Put  OptionType = "PE"
)

// OptionTypes lists every recognized option side, calls first.
var OptionTypes = []OptionType{Call, Put}
