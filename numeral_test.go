package roman_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/numeral-codec/roman"
)

func TestNewNumeral(t *testing.T) {
	n, err := roman.NewNumeral(1984)
	require.NoError(t, err)
	assert.True(t, n.Valid())
	assert.Equal(t, uint16(1984), n.Value())
	assert.Equal(t, "MCMLXXXIV", n.String())

	for _, bad := range []uint16{0, 4000} {
		_, err := roman.NewNumeral(bad)
		assert.True(t, roman.IsRepresentationError(err), "NewNumeral(%d)", bad)
	}
}

func TestNumeralInvalidString(t *testing.T) {
	var zero roman.Numeral
	assert.False(t, zero.Valid())
	assert.Equal(t, "Numeral(0)", zero.String())
	assert.Equal(t, "Numeral(5000)", roman.Numeral(5000).String())
}

func TestParseNumeral(t *testing.T) {
	n, err := roman.ParseNumeral("XLII")
	require.NoError(t, err)
	assert.Equal(t, roman.Numeral(42), n)

	_, err = roman.ParseNumeral("xlii")
	assert.True(t, roman.IsRepresentationError(err))
}

func TestMustParseNumeral(t *testing.T) {
	assert.Equal(t, roman.Numeral(9), roman.MustParseNumeral("IX"))
	assert.Panics(t, func() { roman.MustParseNumeral("VIIII") })
}

func TestNumeralFormatVerbs(t *testing.T) {
	n := roman.Numeral(14)
	assert.Equal(t, "XIV", fmt.Sprint(n))
	assert.Equal(t, "XIV", fmt.Sprintf("%v", n))
	assert.Equal(t, "XIV", fmt.Sprintf("%s", n))
	assert.Equal(t, "14", fmt.Sprintf("%d", n))
	assert.Equal(t, `"XIV"`, fmt.Sprintf("%q", n))
	assert.Equal(t, "  XIV", fmt.Sprintf("%5s", n))
	assert.Equal(t, "0014", fmt.Sprintf("%04d", n))
}

func TestNumeralText(t *testing.T) {
	text, err := roman.Numeral(3999).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "MMMCMXCIX", string(text))

	_, err = roman.Numeral(0).MarshalText()
	assert.True(t, roman.IsRepresentationError(err))

	var n roman.Numeral
	require.NoError(t, n.UnmarshalText([]byte("CDXLIV")))
	assert.Equal(t, roman.Numeral(444), n)
	assert.Error(t, n.UnmarshalText([]byte("CCCCXXXXIIII")))
	assert.Equal(t, roman.Numeral(444), n, "failed unmarshal must not modify the value")
}

type chapter struct {
	Title  string        `json:"title" yaml:"title"`
	Number roman.Numeral `json:"number" yaml:"number"`
}

func TestNumeralJSON(t *testing.T) {
	raw, err := json.Marshal(chapter{Title: "Fin", Number: 22})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Fin","number":"XXII"}`, string(raw))

	var c chapter
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Fin","number":"XXII"}`), &c))
	assert.Equal(t, roman.Numeral(22), c.Number)

	_, err = json.Marshal(chapter{Number: 0})
	assert.Error(t, err)
}

func TestNumeralJSONRejects(t *testing.T) {
	for _, raw := range []string{
		`{"number":22}`,
		`{"number":null}`,
		`{"number":true}`,
		`{"number":["XXII"]}`,
		`{"number":{}}`,
		`{"number":""}`,
		`{"number":"xxii"}`,
		`{"number":"XXXXII"}`,
		`{"number":"MMMM"}`,
	} {
		var c chapter
		err := json.Unmarshal([]byte(raw), &c)
		require.Error(t, err, raw)
		assert.True(t, roman.IsRepresentationError(err), "%s: %v", raw, err)
	}
}

func TestNumeralJSONMapKey(t *testing.T) {
	in := map[roman.Numeral]string{1: "one", 4: "four"}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"I":"one","IV":"four"}`, string(raw))

	var out map[roman.Numeral]string
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestNumeralYAML(t *testing.T) {
	raw, err := yaml.Marshal(chapter{Title: "Fin", Number: 1984})
	require.NoError(t, err)
	assert.Equal(t, "title: Fin\nnumber: MCMLXXXIV\n", string(raw))

	var c chapter
	require.NoError(t, yaml.Unmarshal(raw, &c))
	assert.Equal(t, roman.Numeral(1984), c.Number)

	_, err = yaml.Marshal(chapter{Number: 4000})
	assert.Error(t, err)
}

func TestNumeralYAMLRejects(t *testing.T) {
	for _, raw := range []string{
		"number: 22\n",
		"number: [XXII]\n",
		"number: {a: b}\n",
		"number: xxii\n",
		"number: IIII\n",
		`number: ""` + "\n",
	} {
		var c chapter
		err := yaml.Unmarshal([]byte(raw), &c)
		require.Error(t, err, raw)
		assert.True(t, roman.IsRepresentationError(err), "%q: %v", raw, err)
	}
}

func TestNumeralYAMLQuotedDigits(t *testing.T) {
	var c chapter
	err := yaml.Unmarshal([]byte(`number: "22"`), &c)
	assert.True(t, roman.IsRepresentationError(err))
}

// YAML null never reaches UnmarshalYAML; the field keeps its zero value,
// which is not a valid Numeral.
func TestNumeralYAMLNull(t *testing.T) {
	var c chapter
	require.NoError(t, yaml.Unmarshal([]byte("number: ~\n"), &c))
	assert.False(t, c.Number.Valid())
}
