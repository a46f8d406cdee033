package restaurant_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/restaurant"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPhone(t *testing.T, value string) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone(value)
	require.NoError(t, err)
	return phone
}

func TestNewRestaurant(t *testing.T) {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), " La Trattoria ", "5 Market Square", mustPhone(t, "(91) 555-1234"))

	require.NoError(t, err)
	require.NoError(t, r.Validate())
	assert.Equal(t, "La Trattoria", r.Name())
	assert.Equal(t, "5 Market Square", r.Address())
	assert.Equal(t, "915551234", r.Phone().Digits())
	assert.Equal(t, "(91) 555-1234", r.Phone().String())
	assert.Equal(t, "LT", r.Initials())
}

func TestNewRestaurant_Invalid(t *testing.T) {
	phone := mustPhone(t, "915551234")

	tests := []struct {
		name    string
		rName   string
		address string
		phone   kernel.Phone
		wantErr error
	}{
		{"blank name", "", "5 Market Square", phone, errs.ErrValueIsRequired},
		{"one letter name", "X", "5 Market Square", phone, errs.ErrValueIsOutOfRange},
		{"short address", "Bistro", "Main", phone, errs.ErrValueIsOutOfRange},
		{"zero phone", "Bistro", "5 Market Square", kernel.Phone{}, errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := restaurant.NewRestaurant(kernel.NewUUID(), tt.rName, tt.address, tt.phone)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, r)
		})
	}
}

func TestRestaurant_Update(t *testing.T) {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), "Bistro", "5 Market Square", mustPhone(t, "915551234"))
	require.NoError(t, err)

	require.NoError(t, r.Update("Bistro Nuevo", "7 Harbour Road", mustPhone(t, "915551299")))
	assert.Equal(t, "Bistro Nuevo", r.Name())
	assert.Equal(t, "BN", r.Initials())

	err = r.Update("", "7 Harbour Road", mustPhone(t, "915551299"))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "Bistro Nuevo", r.Name())
}

func TestRestaurant_ValidateZeroValue(t *testing.T) {
	var r restaurant.Restaurant
	require.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
}
