package room

import (
	"context"
	"errors"
	"testing"
	"time"

	"pss-assistant/core/entity"
	"pss-assistant/core/entity/mocks"
	"pss-assistant/core/gameapi"
	"pss-assistant/feature/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const roomsPayload = `[
	{"RoomDesignId": 1, "RoomName": "Ion Cannon Lv1", "RoomShortName": "ION:Ion Cannon", "RoomType": "Cannon",
	 "RoomDescription": "Drains shields.", "UpgradeFromRoomDesignId": 0, "Columns": 2, "Rows": 1,
	 "MaxSystemPower": 4, "EnhancementType": "None", "MinShipLevel": 2, "ReloadTime": 200,
	 "MissileDesign": {"SystemDamage": 2, "Volley": 1, "VolleyDelay": 0},
	 "ConstructionTime": 3600, "PriceString": "starbux:1500"},
	{"RoomDesignId": 12, "RoomName": "Ion Cannon Lv2", "RoomShortName": "ION:Ion Cannon", "RoomType": "Cannon", "UpgradeFromRoomDesignId": 1},
	{"RoomDesignId": 3, "RoomName": "Ion Cannon Lv3", "RoomShortName": "ION:Ion Cannon", "RoomType": "Cannon", "UpgradeFromRoomDesignId": 12},
	{"RoomDesignId": 20, "RoomName": "Anti-Craft Lv1", "RoomShortName": "AA:Anti-Craft", "RoomType": "AntiCraft", "UpgradeFromRoomDesignId": 0, "Capacity": 10},
	{"RoomDesignId": 30, "RoomName": "Lift Lv1", "RoomShortName": "LIF", "RoomType": "Lift", "UpgradeFromRoomDesignId": 0, "Capacity": 80},
	{"RoomDesignId": 40, "RoomName": "Shield Lv1", "RoomShortName": "SHD", "RoomType": "Shield", "UpgradeFromRoomDesignId": 0,
	 "Capacity": 1500, "RequirementString": "item:76x3"},
	{"RoomDesignId": 50, "RoomName": "Bare", "RoomType": "Bridge", "UpgradeFromRoomDesignId": 0},
	{"RoomDesignId": 60, "RoomName": "Teleporter", "RoomShortName": "T:Teleport", "RoomType": "Teleport", "UpgradeFromRoomDesignId": 0}
]`

const itemsPayload = `[{"ItemDesignId": 76, "ItemDesignName": "Scrap"}]`

func setupService(t *testing.T) *Service {
	src := new(mocks.Source)
	src.Serve(CacheName, roomsPayload)
	src.Serve(item.CacheName, itemsPayload)

	names, err := DisplayNames()
	require.NoError(t, err)
	noLinks := gameapi.LinkCheckerFunc(func(context.Context, string) bool { return false })
	layout, err := NewLayout(names, "https://wiki/", noLinks)
	require.NoError(t, err)

	logger := zap.NewNop()
	return NewService(
		NewRetriever(src, time.Minute, logger),
		item.NewRetriever(src, time.Minute, logger),
		layout, logger)
}

func titles(lines []string) []string {
	var out []string
	for _, l := range lines {
		if len(l) > 4 && l[:2] == "**" {
			out = append(out, l)
		}
	}
	return out
}

func TestGetRoomDetailsByName_FullDetails(t *testing.T) {
	svc := setupService(t)

	result, err := svc.GetRoomDetailsByName(context.Background(), "Ion Cannon Lv1", false)
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, []string{
		"**Ion Cannon Lv1 [ION]**",
		"_Drains shields._",
		"Size (WxH) = 2x1",
		"Max power used = 4",
		"Min ship lvl = 2",
		"Reload speed = 5.0s (~ 12/min)",
		"System dmg = 2 (dps: 0.4, per power: 0.1)",
		"Build time = 1h",
		"Build cost = 1.5k :moneybag:",
	}, result.Lines)
}

func TestGetRoomDetailsByName_UpgradeChainOrder(t *testing.T) {
	svc := setupService(t)

	result, err := svc.GetRoomDetailsByName(context.Background(), "ion", false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"**Ion Cannon Lv1 [ION]**",
		"**Ion Cannon Lv2 [ION]**",
		"**Ion Cannon Lv3 [ION]**",
	}, titles(result.Lines))
}

func TestGetRoomDetailsByName_ShortName(t *testing.T) {
	svc := setupService(t)

	result, err := svc.GetRoomDetailsByName(context.Background(), "aa", false)
	require.NoError(t, err)
	assert.True(t, result.Found)
	// Anti-craft rooms hide their storage.
	assert.Equal(t, []string{"**Anti-Craft Lv1 [AA]**"}, result.Lines)
}

func TestGetRoomDetailsByName_ShortNameBelowMinimumLength(t *testing.T) {
	svc := setupService(t)

	result, err := svc.GetRoomDetailsByName(context.Background(), "t", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"**Teleporter [T]**"}, result.Lines)

	_, err = svc.GetRoomDetailsByName(context.Background(), "x", false)
	assert.ErrorIs(t, err, entity.ErrInvalidName)
}

func TestGetRoomDetailsByName_SubtypeLabels(t *testing.T) {
	svc := setupService(t)

	shield, err := svc.GetRoomDetailsByName(context.Background(), "shield", false)
	require.NoError(t, err)
	assert.Contains(t, shield.Lines, "Shield points = 1.5k")
	assert.Contains(t, shield.Lines, "Build requirement = 3x Scrap")

	lift, err := svc.GetRoomDetailsByName(context.Background(), "lift", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"**Lift Lv1 [LIF]**", "Speed = 2 pixel/s"}, lift.Lines)
}

func TestGetRoomDetailsByName_MissingFieldsOmitted(t *testing.T) {
	svc := setupService(t)

	result, err := svc.GetRoomDetailsByName(context.Background(), "bare", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"**Bare**"}, result.Lines)
}

func TestGetRoomDetailsByName_BigSet(t *testing.T) {
	svc := setupService(t)

	result, err := svc.GetRoomDetailsByName(context.Background(), "lv1", false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Ion Cannon Lv1 [ION] (Ship lvl: 2)",
		"Anti-Craft Lv1 [AA]",
		"Lift Lv1 [LIF]",
		"Shield Lv1 [SHD]",
	}, result.Lines)

	embeds, err := svc.GetRoomDetailsByName(context.Background(), "lv1", true)
	require.NoError(t, err)
	require.Len(t, embeds.Embeds, 1)
	assert.Len(t, embeds.Embeds[0].Fields, 4)
}

func TestGetRoomDetailsByName_NotFound(t *testing.T) {
	svc := setupService(t)

	result, err := svc.GetRoomDetailsByName(context.Background(), "warp drive", false)
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, []string{"Could not find a room named **warp drive**."}, result.Lines)
}

func TestGetRoomDetailsByName_FetchError(t *testing.T) {
	src := new(mocks.Source)
	src.Serve(CacheName, roomsPayload)
	src.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("offline"))

	names, err := DisplayNames()
	require.NoError(t, err)
	layout, err := NewLayout(names, "https://wiki/", nil)
	require.NoError(t, err)
	svc := NewService(NewRetriever(src, time.Minute, nil), item.NewRetriever(src, time.Minute, nil), layout, nil)

	_, err = svc.GetRoomDetailsByName(context.Background(), "ion", false)
	assert.ErrorContains(t, err, "offline")
}

func TestGetRoomDetailsByName_ValidatesBeforeFetching(t *testing.T) {
	src := new(mocks.Source)
	src.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("offline"))
	svc := NewService(NewRetriever(src, time.Minute, nil), item.NewRetriever(src, time.Minute, nil), nil, nil)

	_, err := svc.GetRoomDetailsByName(context.Background(), "", false)
	assert.ErrorIs(t, err, entity.ErrInvalidName)
	_, err = svc.GetRoomDetailsByName(context.Background(), "   ", false)
	assert.ErrorIs(t, err, entity.ErrInvalidName)
	src.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)

	// A short name needs the room short names, never the items.
	_, err = svc.GetRoomDetailsByName(context.Background(), "x", false)
	assert.ErrorContains(t, err, "offline")
	src.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestGetRoomDetailsByName_NotFoundSkipsItems(t *testing.T) {
	src := new(mocks.Source)
	src.Serve(CacheName, roomsPayload)
	src.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("offline"))
	svc := NewService(NewRetriever(src, time.Minute, nil), item.NewRetriever(src, time.Minute, nil), nil, nil)

	result, err := svc.GetRoomDetailsByName(context.Background(), "warp drive", false)
	require.NoError(t, err)
	assert.False(t, result.Found)
	src.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestGetRoomDetailsByID(t *testing.T) {
	svc := setupService(t)

	details, ok, err := svc.GetRoomDetailsByID(context.Background(), "40")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Shield Lv1 [SHD]", details.Title)

	_, ok, err = svc.GetRoomDetailsByID(context.Background(), "999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllowedShortNames(t *testing.T) {
	data, err := entity.ParseDesigns([]byte(roomsPayload), KeyProperty)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "ION", "LIF", "SHD", "T"}, AllowedShortNames(data))
}
