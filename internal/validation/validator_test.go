package validation

import (
	"testing"

	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantMsg string
	}{
		{
			name:  "valid registration",
			input: models.RegisterInput{Email: "ada@example.com", Password: "s3cretpass", FirstName: "Ada", LastName: "Lovelace"},
		},
		{
			name:    "bad email",
			input:   models.RegisterInput{Email: "nope", Password: "s3cretpass", FirstName: "Ada", LastName: "Lovelace"},
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "short password",
			input:   models.RegisterInput{Email: "ada@example.com", Password: "short", FirstName: "Ada", LastName: "Lovelace"},
			wantMsg: "password must be at least 8 characters long",
		},
		{
			name:    "unknown status filter",
			input:   models.PropertyFilter{Status: "sold"},
			wantMsg: "status must be one of: draft, listed, funding, funded, closed",
		},
		{
			name:    "page size above cap",
			input:   models.PropertyFilter{PageSize: 500},
			wantMsg: "pageSize must be at most 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestStruct_InvestmentInput(t *testing.T) {
	id := "not-a-uuid"
	shares := int64(0)

	err := Struct(models.CreateInvestmentInput{PropertyID: &id, Shares: &shares})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "propertyId must be a valid id", appErr.Message)
}
