package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/monster-battle/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	err := errors.NewValidationBuilder().
		Field("species", "is required").
		Fieldf("level", "must be between %d and %d", 1, 100).
		RequiredField("player").
		InvalidField("weather", "not a weather condition").
		Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(
		"validation failed: level: must be between 1 and 100; player: is required; "+
			"species: is required; weather: is invalid: not a weather condition",
		errors.GetMessage(err),
	)
	s.Assert().NotNil(errors.GetMeta(err)["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().False(vb.HasErrors())
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "bulbasaur", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("species", tc.value, vb)
			s.Assert().Equal(tc.shouldErr, vb.HasErrors())
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"lower bound", 1, false},
		{"upper bound", 100, false},
		{"below", 0, true},
		{"above", 101, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("level", tc.value, 1, 100, vb)
			s.Assert().Equal(tc.shouldErr, vb.HasErrors())
		})
	}
}

func (s *ValidationTestSuite) TestValidateNonNegative() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("weather_duration", 0, vb)
	s.Assert().False(vb.HasErrors())

	errors.ValidateNonNegative("weather_duration", -1, vb)
	s.Assert().True(vb.HasErrors())
}
