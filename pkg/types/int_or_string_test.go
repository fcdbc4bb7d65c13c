package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntOrStringUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    IntOrString
		wantErr bool
	}{
		{name: "number", input: `{"v": 7}`, want: 7},
		{name: "string", input: `{"v": " 12 "}`, want: 12},
		{name: "not a number", input: `{"v": "twelve"}`, wantErr: true},
		{name: "bool", input: `{"v": true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst struct {
				V IntOrString `json:"v"`
			}

			err := json.Unmarshal([]byte(tt.input), &dst)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, dst.V)
		})
	}
}
