package tui

import (
	"errors"

	"github.com/akyairhashvil/greenbite/internal/calculator"
	"github.com/akyairhashvil/greenbite/internal/util"
)

func (m MainModel) calculate() MainModel {
	in := calculator.ParseInput(
		m.calcInputs[calcAge].Value(),
		string(m.gender),
		m.calcInputs[calcHeight].Value(),
		m.calcInputs[calcWeight].Value(),
		"",
	)
	in.Activity = calculator.ActivityLevels[m.activity].Factor
	res, err := calculator.Calculate(in)
	if errors.Is(err, calculator.ErrInvalidInput) {
		m.calcResult = nil
		m.Message = "Enter age, height and weight."
		return m
	}
	if err != nil {
		m.err = err
		return m
	}
	m.calcResult = &res
	return m
}

func (m MainModel) toggleGender() MainModel {
	if m.gender == calculator.Male {
		m.gender = calculator.Female
	} else {
		m.gender = calculator.Male
	}
	return m
}

func (m MainModel) cycleActivity() MainModel {
	m.activity = util.Wrap(m.activity+1, len(calculator.ActivityLevels))
	return m
}

// clearCalculator resets every field and hides the result.
func (m MainModel) clearCalculator() MainModel {
	m.stopEditing()
	for i := range m.calcInputs {
		m.calcInputs[i].Reset()
	}
	m.gender = calculator.Male
	m.activity = 0
	m.calcResult = nil
	return m
}
