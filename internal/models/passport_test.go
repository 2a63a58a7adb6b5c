// internal/models/passport_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPassport() *ProductPassport {
	return &ProductPassport{
		ProductInformation: ProductInformation{
			GTIN: "1234567890123",
			Name: "Organic cotton t-shirt",
		},
		Materials: MaterialCompositions{
			{MaterialName: "Organic Cotton", CompositionPercentage: 95},
			{MaterialName: "Elastane", CompositionPercentage: 5},
		},
		EndOfLife: EndOfLife{RecyclabilityPct: 80},
	}
}

func TestPassportValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProductPassport)
		wantErr string
	}{
		{
			name:   "valid passport",
			mutate: func(p *ProductPassport) {},
		},
		{
			name:   "composition at upper bound",
			mutate: func(p *ProductPassport) { p.Materials[0].CompositionPercentage = 100 },
		},
		{
			name:   "composition at lower bound",
			mutate: func(p *ProductPassport) { p.Materials[1].CompositionPercentage = 0 },
		},
		{
			name:    "composition above 100",
			mutate:  func(p *ProductPassport) { p.Materials[0].CompositionPercentage = 101 },
			wantErr: "material_compositions[0].composition_percentage",
		},
		{
			name:    "negative composition",
			mutate:  func(p *ProductPassport) { p.Materials[1].CompositionPercentage = -1 },
			wantErr: "material_compositions[1].composition_percentage",
		},
		{
			name:    "empty gtin",
			mutate:  func(p *ProductPassport) { p.ProductInformation.GTIN = "" },
			wantErr: "gtin",
		},
		{
			name:    "recyclability above 100",
			mutate:  func(p *ProductPassport) { p.EndOfLife.RecyclabilityPct = 100.5 },
			wantErr: "end_of_life.recyclability_pct",
		},
		{
			name:    "negative recyclability",
			mutate:  func(p *ProductPassport) { p.EndOfLife.RecyclabilityPct = -3 },
			wantErr: "end_of_life.recyclability_pct",
		},
		{
			name:   "no materials",
			mutate: func(p *ProductPassport) { p.Materials = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passport := validPassport()
			tt.mutate(passport)

			err := passport.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantErr, validationErr.Field)
		})
	}
}

// Percentages need not sum to 100; only the per-material range matters.
func TestPassportValidateSumNotEnforced(t *testing.T) {
	passport := validPassport()
	passport.Materials = MaterialCompositions{
		{MaterialName: "Cotton", CompositionPercentage: 40},
		{MaterialName: "Wool", CompositionPercentage: 40},
	}
	assert.NoError(t, passport.Validate())
}
