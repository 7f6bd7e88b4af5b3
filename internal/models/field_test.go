package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_UnmarshalDistinguishesAbsentFromNull(t *testing.T) {
	var in ViolationRecordInput

	require.NoError(t, json.Unmarshal([]byte(`{"driverId":1,"routeId":null,"fleetId":9}`), &in))
	assert.True(t, in.RouteID.IsSet())
	assert.True(t, in.RouteID.IsNull())
	_, ok := in.RouteID.Get()
	assert.False(t, ok)

	fleet, ok := in.FleetID.Get()
	assert.True(t, ok)
	assert.Equal(t, uint(9), fleet)
	assert.False(t, in.FleetID.IsNull())

	var absent ViolationRecordInput
	require.NoError(t, json.Unmarshal([]byte(`{"driverId":1}`), &absent))
	assert.False(t, absent.RouteID.IsSet())
	assert.False(t, absent.FleetID.IsSet())
	assert.False(t, absent.RouteID.IsNull())
}

func TestField_UnmarshalRejectsWrongType(t *testing.T) {
	var f Field[uint]
	assert.Error(t, json.Unmarshal([]byte(`"seven"`), &f))
}

func TestField_Constructors(t *testing.T) {
	assert.False(t, Field[uint]{}.IsSet())

	n := Null[uint]()
	assert.True(t, n.IsSet())
	assert.True(t, n.IsNull())

	v, ok := Some[uint](3).Get()
	assert.True(t, ok)
	assert.Equal(t, uint(3), v)
	assert.False(t, Some[uint](3).IsNull())
}

func TestField_Marshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Field[uint] `json:"a"`
		B Field[uint] `json:"b"`
		C Field[uint] `json:"c"`
	}{A: Some[uint](1), B: Null[uint]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":null,"c":null}`, string(out))
}
