package validator

import (
	"testing"

	domainerrors "zakaz/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactRequest struct {
	Phone string `json:"phone" validate:"required,uzphone"`
	Name  string `json:"full_name" validate:"required,min=2"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		req        contactRequest
		wantDetail string
	}{
		{name: "valid local number", req: contactRequest{Phone: "901234567", Name: "Aziz"}},
		{name: "valid international number", req: contactRequest{Phone: "+998901234567", Name: "Aziz"}},
		{name: "valid trunk prefix", req: contactRequest{Phone: "0901234567", Name: "Aziz"}},
		{name: "landline rejected", req: contactRequest{Phone: "+998712345678", Name: "Aziz"}, wantDetail: "phone: uzphone"},
		{name: "short name", req: contactRequest{Phone: "901234567", Name: "A"}, wantDetail: "full_name: min=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantDetail == "" {
				assert.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Details(), tt.wantDetail)
		})
	}
}
