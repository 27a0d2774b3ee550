// Package stats reports counts over a resolved map: how much track there is,
// what terrain it covers, which track edges no connection uses and how many
// separate track networks the map holds.
//
// Every function logs its findings at Info (or Warning, for unused track) and
// returns them, counts formatted with go-humanize in the log only.
package stats
