// Package models defines the core domain models for Quando.
//
// # Models
//
//   - Group: a named set of participants sharing one availability calendar,
//     addressed by its slug
//   - Selection: a persisted "will attend" flag for one participant on one day
//   - CalendarDay: one day of the rolling availability window
//
// Participants are identified by name strings (no user accounts). Names are
// case-sensitive but unique within a group when case-folded.
//
// # Relationships
//
// Selections reference groups by ID and days by date key (YYYY-MM-DD), never
// by pointer, so the same values travel unchanged between the SQLite store,
// the local fallback store and the RPC layer.
package models
