package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required"`
}

type itemPayload struct {
	ProductID string `json:"productId" validate:"required,mongodb"`
	Quantity  int    `json:"quantity"  validate:"gte=1"`
}

type basketPayload struct {
	Items []itemPayload `json:"products" validate:"required,min=1,dive"`
}

func TestCheck_AggregatesAllViolationsInOrder(t *testing.T) {
	v := New()

	errs, err := v.Check(&signupPayload{Email: "not-an-email", Password: "", Username: "bob"})
	require.NoError(t, err)

	assert.False(t, errs.IsEmpty())
	require.Len(t, errs, 2)
	assert.Equal(t, FieldError{Field: "email", Message: "must be a valid email"}, errs[0])
	assert.Equal(t, FieldError{Field: "password", Message: "is required"}, errs[1])
}

func TestCheck_ValidPayload(t *testing.T) {
	errs, err := New().Check(&signupPayload{Email: "a@b.com", Password: "secret1", Username: "bob"})
	require.NoError(t, err)
	assert.True(t, errs.IsEmpty())
}

func TestCheck_MinLengthMessage(t *testing.T) {
	errs, err := New().Check(&signupPayload{Email: "a@b.com", Password: "123", Username: "bob"})
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
	assert.Equal(t, "must be at least 6 characters", errs[0].Message)
}

func TestCheck_NestedFieldPaths(t *testing.T) {
	errs, err := New().Check(&basketPayload{Items: []itemPayload{{ProductID: "nope", Quantity: 0}}})
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, "products[0].productId", errs[0].Field)
	assert.Equal(t, "must be a valid id", errs[0].Message)
	assert.Equal(t, "products[0].quantity", errs[1].Field)
}

func TestValidate_ReturnsNilOnSuccess(t *testing.T) {
	err := New().Validate(&signupPayload{Email: "a@b.com", Password: "secret1", Username: "bob"})
	assert.NoError(t, err)
}

func TestValidate_ReturnsErrors(t *testing.T) {
	err := New().Validate(&signupPayload{})

	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}

func TestCheck_NonStruct(t *testing.T) {
	_, err := New().Check("just a string")
	assert.Error(t, err)
}
