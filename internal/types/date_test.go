package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalJSON(t *testing.T) {
	var body struct {
		ReleaseDate *Date `json:"releaseDate"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"releaseDate":"2015-05-19"}`), &body))
	require.NotNil(t, body.ReleaseDate)
	assert.Equal(t, "2015-05-19", body.ReleaseDate.String())

	body.ReleaseDate = nil
	require.NoError(t, json.Unmarshal([]byte(`{"releaseDate":"2015-05-19T23:30:00-02:00"}`), &body))
	require.NotNil(t, body.ReleaseDate)
	// 23:30 at -02:00 is the next day in UTC
	assert.Equal(t, "2015-05-20", body.ReleaseDate.String())

	body.ReleaseDate = nil
	require.NoError(t, json.Unmarshal([]byte(`{"releaseDate":null}`), &body))
	assert.Nil(t, body.ReleaseDate)
}

func TestDateUnmarshalJSONInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"19/05/2015"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20150519`), &d))
}

func TestDateMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		ReleaseDate *Date `json:"releaseDate"`
		Missing     *Date `json:"missing"`
	}{ReleaseDate: ptr(NewDate(1986, time.February, 21))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"releaseDate":"1986-02-21","missing":null}`, string(out))
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2020, time.March, 1, 18, 45, 0, 0, time.UTC))
	assert.True(t, d.Time().Equal(time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func ptr[T any](v T) *T {
	return &v
}
