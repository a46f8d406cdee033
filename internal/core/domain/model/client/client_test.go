package client_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/kernel"
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

func TestNewClient(t *testing.T) {
	id := kernel.NewUUID()
	c, err := client.NewClient(id, "  Ada ", "Lovelace", " 12 Baker Street ", mustPhone(t, "612 345 678"))

	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.True(t, id.IsEqual(c.ID()))
	assert.Equal(t, "Ada", c.Name())
	assert.Equal(t, "Lovelace", c.Surname())
	assert.Equal(t, "Ada Lovelace", c.FullName())
	assert.Equal(t, "12 Baker Street", c.Address())
	assert.Equal(t, "612345678", c.Phone().Digits())
	assert.Equal(t, "AL", c.Initials())
}

func TestNewClient_Invalid(t *testing.T) {
	phone := mustPhone(t, "612345678")

	tests := []struct {
		name        string
		id          kernel.UUID
		first       string
		surname     string
		address     string
		phone       kernel.Phone
		wantErr     error
		errContains string
	}{
		{"missing id", kernel.UUID{}, "Ada", "Lovelace", "12 Baker Street", phone, errs.ErrValueIsRequired, "UUID"},
		{"blank name", kernel.NewUUID(), "   ", "Lovelace", "12 Baker Street", phone, errs.ErrValueIsRequired, "name"},
		{"short name", kernel.NewUUID(), "A", "Lovelace", "12 Baker Street", phone, errs.ErrValueIsOutOfRange, "name length"},
		{"short surname", kernel.NewUUID(), "Ada", "L", "12 Baker Street", phone, errs.ErrValueIsOutOfRange, "surname length"},
		{"short address", kernel.NewUUID(), "Ada", "Lovelace", "12 B", phone, errs.ErrValueIsOutOfRange, "address length"},
		{"zero phone", kernel.NewUUID(), "Ada", "Lovelace", "12 Baker Street", kernel.Phone{}, errs.ErrValueIsRequired, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := client.NewClient(tt.id, tt.first, tt.surname, tt.address, tt.phone)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Nil(t, c)
		})
	}
}

func TestNewClient_ReportsEveryField(t *testing.T) {
	_, err := client.NewClient(kernel.NewUUID(), "", "", "", kernel.Phone{})

	require.Error(t, err)
	for _, field := range []string{"name", "surname", "address", "phone"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestClient_Update(t *testing.T) {
	c, err := client.NewClient(kernel.NewUUID(), "Ada", "Lovelace", "12 Baker Street", mustPhone(t, "612345678"))
	require.NoError(t, err)
	id := c.ID()

	require.NoError(t, c.Update("Grace", "Hopper", "1 Navy Yard", mustPhone(t, "+1 202 555 0100")))

	assert.True(t, id.IsEqual(c.ID()))
	assert.Equal(t, "Grace Hopper", c.FullName())
	assert.Equal(t, "1 Navy Yard", c.Address())
	assert.Equal(t, "12025550100", c.Phone().Digits())
	require.NoError(t, c.Validate())
}

func TestClient_UpdateInvalidLeavesClientUnchanged(t *testing.T) {
	c, err := client.NewClient(kernel.NewUUID(), "Ada", "Lovelace", "12 Baker Street", mustPhone(t, "612345678"))
	require.NoError(t, err)

	err = c.Update("Grace", "H", "1 Navy Yard", mustPhone(t, "612345678"))

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, "Ada Lovelace", c.FullName())
	assert.Equal(t, "12 Baker Street", c.Address())
}

func TestClient_ValidateZeroValue(t *testing.T) {
	var c client.Client
	require.ErrorIs(t, c.Validate(), client.ErrClientIsNotConstructed)

	var nilClient *client.Client
	require.ErrorIs(t, nilClient.Validate(), client.ErrClientIsNotConstructed)
}

func TestRestoreClient(t *testing.T) {
	id := kernel.NewUUID()
	c, err := client.RestoreClient(id, "Ada", "Lovelace", "12 Baker Street", mustPhone(t, "612345678"))

	require.NoError(t, err)
	assert.True(t, id.IsEqual(c.ID()))

	_, err = client.RestoreClient(id, "Ada", "Lovelace", "", mustPhone(t, "612345678"))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
