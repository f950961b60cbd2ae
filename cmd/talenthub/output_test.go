package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"text/tabwriter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func TestOutputFlags_Validate(t *testing.T) {
	assert.NoError(t, outputFlags{format: formatTable}.validate())
	assert.NoError(t, outputFlags{format: formatJSON, query: "[].id"}.validate())

	for _, of := range []outputFlags{
		{format: "yaml"},
		{format: formatTable, query: "[].id"},
		{format: formatJSON, query: "foo["},
	} {
		err := of.validate()
		var ee *exitError
		require.ErrorAs(t, err, &ee, "%+v", of)
		assert.Equal(t, 2, ee.code)
	}
}

func TestOutputFlags_RenderJSONQueryUsesTagNames(t *testing.T) {
	data := []sample{{ID: "1", Email: "a@example.com"}, {ID: "2", Email: "b@example.com"}}
	var buf bytes.Buffer
	require.NoError(t, outputFlags{format: formatJSON, query: "[].email"}.render(&buf, data, nil))

	var got []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, got)
}

func TestOutputFlags_RenderTable(t *testing.T) {
	var buf bytes.Buffer
	err := outputFlags{format: formatTable}.render(&buf, nil, func(tw *tabwriter.Writer) {
		row(tw, "ID", "EMAIL")
		row(tw, "1", dash(""))
		fmt.Fprintln(tw, "done")
	})
	require.NoError(t, err)
	assert.Equal(t, "ID  EMAIL\n1   -\ndone\n", buf.String())
}
