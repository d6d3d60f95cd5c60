package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email     string    `validate:"required,email"`
	Quantity  int       `validate:"required,gt=0"`
	ProductID uuid.UUID `validate:"uuid_required"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		errs := ValidateStruct(&sampleRequest{
			Email:     "jane@example.com",
			Quantity:  3,
			ProductID: uuid.New(),
		})
		assert.Empty(t, errs)
	})

	t.Run("missing fields are reported", func(t *testing.T) {
		errs := ValidateStruct(&sampleRequest{})
		require.NotEmpty(t, errs)
		assert.Len(t, errs, 3)
	})

	t.Run("nil uuid fails uuid_required", func(t *testing.T) {
		errs := ValidateStruct(&sampleRequest{
			Email:    "jane@example.com",
			Quantity: 3,
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "uuid_required", errs[0].Tag)
	})

	t.Run("non-positive quantity fails gt", func(t *testing.T) {
		errs := ValidateStruct(&sampleRequest{
			Email:     "jane@example.com",
			Quantity:  -1,
			ProductID: uuid.New(),
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "gt", errs[0].Tag)
	})
}

func TestFirstError(t *testing.T) {
	assert.Empty(t, FirstError(nil))

	errs := ValidateStruct(&sampleRequest{Email: "not-an-email", Quantity: 1, ProductID: uuid.New()})
	require.Len(t, errs, 1)
	assert.Equal(t, "field 'Email' failed on 'email'", FirstError(errs))

	errs = ValidateStruct(&sampleRequest{Email: "a@b.c", Quantity: -2, ProductID: uuid.New()})
	require.Len(t, errs, 1)
	assert.Equal(t, "field 'Quantity' failed on 'gt=0'", FirstError(errs))
}
