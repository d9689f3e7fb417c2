// Package wiki exports design datasets as Lua data modules for the game
// wiki.
//
// An export is a chunk of the form
//
//	p={
//	["1"]={RoomDesignId="1",RoomName="Lift Lv1"},
//	["2"]={...}
//	}
//	return p
//
// written to wiki_{entity}_data_{YYYYmmdd-HHMMSS}.lua (UTC). Every chunk is
// evaluated in an embedded Lua VM before it is written, so a bad escape
// never reaches the wiki. Exports may also be uploaded to the bucket and
// are recorded in the database when one is configured.
//
// Only owners, members of allow-listed guilds and allow-listed users may
// export (AssertAllowed).
package wiki
