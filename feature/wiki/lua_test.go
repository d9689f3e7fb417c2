package wiki

import (
	"context"
	"testing"
	"time"

	"pss-assistant/core/entity"
	"pss-assistant/core/entity/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEncodeLua(t *testing.T) {
	data := entity.DesignsData{
		"2":  {"RoomDesignId": "2", "RoomName": "Bridge"},
		"10": {"RoomDesignId": "10", "RoomName": "Lift"},
	}

	want := "p={\n" +
		`["2"]={RoomDesignId="2",RoomName="Bridge"},` + "\n" +
		`["10"]={RoomDesignId="10",RoomName="Lift"}` + "\n" +
		"}\nreturn p"
	assert.Equal(t, want, EncodeLua(data))
}

func TestEncodeLua_Empty(t *testing.T) {
	src := EncodeLua(entity.DesignsData{})
	assert.NoError(t, ValidateLua(src, 0))
}

func TestEncodeLua_RoundTrip(t *testing.T) {
	data := entity.DesignsData{
		"1": {
			"RoomDesignId":         "1",
			"RoomDescription":      "Says \"hi\"\nand\\or\ttabs",
			"MissileDesign.Volley": "3",
			"end":                  "keyword",
			"Bell":                 "\a",
			"Unicode":              "Schützen ✓",
		},
	}

	src := EncodeLua(data)
	assert.Contains(t, src, `["MissileDesign.Volley"]="3"`)
	assert.Contains(t, src, `["end"]="keyword"`)
	assert.Contains(t, src, `Bell="\007"`)

	parsed, err := ParseLua(src)
	require.NoError(t, err)
	assert.Equal(t, data, parsed)
}

func TestParseLua_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", "p={"},
		{"runtime", "error('boom')"},
		{"not a table", "return 1"},
		{"numeric keys", "return {{a='1'}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLua(tt.src)
			assert.Error(t, err)
		})
	}
}

func TestValidateLua_CountMismatch(t *testing.T) {
	src := EncodeLua(entity.DesignsData{"1": {"Id": "1"}})
	assert.NoError(t, ValidateLua(src, 1))
	assert.ErrorContains(t, ValidateLua(src, 2), "holds 1 records, expected 2")
}

func TestDataLua(t *testing.T) {
	source := new(mocks.Source)
	source.Serve("RoomDesigns", `[{"RoomDesignId":1,"RoomName":"Lift"}]`)
	retriever := entity.NewRetriever(entity.RetrieverConfig{
		Endpoint:    entity.Endpoint{Name: "RoomDesigns", Path: "RoomService/ListRoomDesigns2"},
		KeyProperty: "RoomDesignId", NameProperty: "RoomName", TTL: time.Minute,
	}, source, zap.NewNop())

	src, err := DataLua(context.Background(), retriever)
	require.NoError(t, err)
	assert.Equal(t, "p={\n[\"1\"]={RoomDesignId=\"1\",RoomName=\"Lift\"}\n}\nreturn p", src)
}
